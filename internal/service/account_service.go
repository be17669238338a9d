package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/auth"
	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/logger"
	"github.com/PS-gitpro/myblog/internal/mailer"
	"github.com/PS-gitpro/myblog/internal/metrics"
	"github.com/PS-gitpro/myblog/internal/repository"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// AccountService implements registration, login, and profile workflows.
type AccountService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	mail      mailer.Mailer
	validator *validator.Validator
	siteName  string
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	mail mailer.Mailer,
	v *validator.Validator,
	siteName string,
) *AccountService {
	return &AccountService{
		users:     users,
		profiles:  profiles,
		mail:      mail,
		validator: v,
		siteName:  siteName,
	}
}

// Register validates the form and creates the user together with an
// empty profile. A welcome email is sent best-effort; its failure never
// blocks a successful registration.
func (s *AccountService) Register(ctx context.Context, f *validator.RegisterForm) (*domain.User, error) {
	if err := s.validator.ValidateRegister(f); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     f.Username,
		Email:        f.Email,
		PasswordHash: hash,
		Role:         "user",
		CreatedAt:    now,
	}
	profile := &domain.Profile{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Avatar:    domain.DefaultAvatar,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, validation.Errors{
				"username": validation.NewError("username_taken", "username already taken"),
			}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	metrics.UsersRegisteredTotal.Inc()

	if err := s.mail.Send(mailer.Welcome(user.Email, user.Username, s.siteName)); err != nil {
		metrics.MailDispatchTotal.WithLabelValues("welcome", "error").Inc()
		logger.Error("welcome email failed",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()))
	} else {
		metrics.MailDispatchTotal.WithLabelValues("welcome", "ok").Inc()
	}

	return user, nil
}

// Authenticate checks the credentials and returns the user. Unknown
// usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Profile returns the user's profile.
func (s *AccountService) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// UpdateProfile validates and persists the profile form. Only the
// owning user reaches this path; the handler derives userID from the
// session.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, f *validator.ProfileForm) (*domain.Profile, error) {
	if err := s.validator.ValidateProfile(f); err != nil {
		return nil, err
	}

	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = f.Bio
	profile.Location = f.Location
	profile.UpdatedAt = time.Now()
	if f.Avatar != "" {
		profile.Avatar = f.Avatar
	}
	if f.BirthDate != "" {
		// Format already validated.
		birthDate, _ := time.Parse("2006-01-02", f.BirthDate)
		profile.BirthDate = &birthDate
	} else {
		profile.BirthDate = nil
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
