// Package validator validates the form input of every mutation
// workflow. Validation failures abort the workflow before any write.
package validator

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterForm is the input of the register workflow.
type RegisterForm struct {
	Username        string `form:"username" json:"username"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm"`
}

// PostForm is the input of the create-post workflow. PublishedAt is an
// optional RFC 3339 override; when absent the post publishes at
// creation time.
type PostForm struct {
	Title       string `form:"title" json:"title"`
	Content     string `form:"content" json:"content"`
	CategoryID  string `form:"category_id" json:"category_id"`
	Image       string `form:"image" json:"image"`
	PublishedAt string `form:"published_at" json:"published_at"`
}

// CommentForm is the input of the add-comment workflow.
type CommentForm struct {
	Content string `form:"content" json:"content"`
}

// ProfileForm is the input of the update-profile workflow. BirthDate
// uses YYYY-MM-DD; a blank avatar keeps the current one.
type ProfileForm struct {
	Bio       string `form:"bio" json:"bio"`
	Location  string `form:"location" json:"location"`
	BirthDate string `form:"birth_date" json:"birth_date"`
	Avatar    string `form:"avatar" json:"avatar"`
}

// CategoryForm is the input of the admin create-category workflow.
type CategoryForm struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

// Validator provides validation methods for workflow input.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegister validates registration input.
func (v *Validator) ValidateRegister(f *RegisterForm) error {
	err := validation.ValidateStruct(f,
		validation.Field(&f.Username,
			validation.Required.Error("username_required"),
			validation.Length(3, 150).Error("username_length"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 0).Error("password_too_short"),
		),
		validation.Field(&f.PasswordConfirm,
			validation.Required.Error("password_confirm_required"),
		),
	)
	if err != nil {
		return err
	}

	if f.Password != f.PasswordConfirm {
		return validation.Errors{
			"password_confirm": validation.NewError("password_mismatch", "passwords do not match"),
		}
	}
	return nil
}

// ValidatePost validates create-post input.
func (v *Validator) ValidatePost(f *PostForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&f.CategoryID,
			validation.Required.Error("category_required"),
			is.UUID.Error("invalid_category_id"),
		),
		validation.Field(&f.PublishedAt,
			validation.By(timestampRule(time.RFC3339, "invalid_published_at")),
		),
	)
}

// ValidateComment validates add-comment input.
func (v *Validator) ValidateComment(f *CommentForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
		),
	)
}

// ValidateProfile validates update-profile input.
func (v *Validator) ValidateProfile(f *ProfileForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Bio,
			validation.Length(0, 500).Error("bio_too_long"),
		),
		validation.Field(&f.Location,
			validation.Length(0, 30).Error("location_too_long"),
		),
		validation.Field(&f.BirthDate,
			validation.By(timestampRule("2006-01-02", "invalid_birth_date")),
		),
	)
}

// ValidateCategory validates admin create-category input.
func (v *Validator) ValidateCategory(f *CategoryForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Name,
			validation.Required.Error("name_required"),
			validation.Length(1, 100).Error("name_too_long"),
		),
	)
}

// timestampRule validates an optional timestamp string against a layout.
func timestampRule(layout, code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok || s == "" {
			return nil
		}
		if _, err := time.Parse(layout, s); err != nil {
			return validation.NewError(code, "invalid timestamp")
		}
		return nil
	}
}

// FieldErrors flattens a validation error into a field→reason map for
// form re-rendering. Non-validation errors map to a single form error.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			fields[field] = fieldErr.Error()
		}
		return fields
	}
	if err != nil {
		fields["form"] = err.Error()
	}
	return fields
}
