package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// PostService is a mock of service.PostServiceInterface.
type PostService struct {
	mock.Mock
}

func (m *PostService) Create(ctx context.Context, authorID string, f *validator.PostForm) (*domain.Post, error) {
	args := m.Called(ctx, authorID, f)
	if p := args.Get(0); p != nil {
		return p.(*domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) Home(ctx context.Context) (*service.HomePage, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.(*service.HomePage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) ListPage(ctx context.Context, page int) (*service.PostPage, error) {
	args := m.Called(ctx, page)
	if p := args.Get(0); p != nil {
		return p.(*service.PostPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) Detail(ctx context.Context, id string) (*service.PostDetail, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*service.PostDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) ByCategory(ctx context.Context, categoryID string) (*service.CategoryPage, error) {
	args := m.Called(ctx, categoryID)
	if p := args.Get(0); p != nil {
		return p.(*service.CategoryPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) Search(ctx context.Context, query string) ([]domain.Post, error) {
	args := m.Called(ctx, query)
	if p := args.Get(0); p != nil {
		return p.([]domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) ByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	args := m.Called(ctx, authorID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostService) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

// CommentService is a mock of service.CommentServiceInterface.
type CommentService struct {
	mock.Mock
}

func (m *CommentService) Add(ctx context.Context, postID, authorID string, f *validator.CommentForm) (*domain.Comment, error) {
	args := m.Called(ctx, postID, authorID, f)
	if c := args.Get(0); c != nil {
		return c.(*domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentService) Unapproved(ctx context.Context) ([]domain.Comment, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentService) Approve(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

// LikeService is a mock of service.LikeServiceInterface.
type LikeService struct {
	mock.Mock
}

func (m *LikeService) Toggle(ctx context.Context, postID, userID string) (*service.LikeResult, error) {
	args := m.Called(ctx, postID, userID)
	if r := args.Get(0); r != nil {
		return r.(*service.LikeResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// AccountService is a mock of service.AccountServiceInterface.
type AccountService struct {
	mock.Mock
}

func (m *AccountService) Register(ctx context.Context, f *validator.RegisterForm) (*domain.User, error) {
	args := m.Called(ctx, f)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountService) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AccountService) UpdateProfile(ctx context.Context, userID string, f *validator.ProfileForm) (*domain.Profile, error) {
	args := m.Called(ctx, userID, f)
	if p := args.Get(0); p != nil {
		return p.(*domain.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

// CategoryService is a mock of service.CategoryServiceInterface.
type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) Create(ctx context.Context, f *validator.CategoryForm) (*domain.Category, error) {
	args := m.Called(ctx, f)
	if c := args.Get(0); c != nil {
		return c.(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
