package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/mocks"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

var testSite = Site{Name: "My Blog", Description: "A simple blog", Author: "Admin"}

func TestPostHandler_Home(t *testing.T) {
	mockService := &mocks.PostService{}
	handler := NewPostHandler(mockService, testSite)

	mockService.On("Home", mock.Anything).Return(&service.HomePage{
		RecentPosts: []domain.Post{{ID: uuid.New().String(), Title: "Hello"}},
		Categories:  []domain.Category{{ID: uuid.New().String(), Name: "Tech"}},
	}, nil)

	router := gin.New()
	router.GET("/", handler.Home)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Site        Site              `json:"site"`
		RecentPosts []domain.Post     `json:"recent_posts"`
		Categories  []domain.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "My Blog", response.Site.Name)
	assert.Len(t, response.RecentPosts, 1)
	assert.Len(t, response.Categories, 1)
	mockService.AssertExpectations(t)
}

func TestPostHandler_List(t *testing.T) {
	t.Run("passes the page parameter through", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		mockService.On("ListPage", mock.Anything, 3).Return(&service.PostPage{
			Posts:      []domain.Post{},
			Page:       3,
			TotalPages: 4,
			TotalPosts: 17,
		}, nil)

		router := gin.New()
		router.GET("/posts/", handler.List)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/?page=3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed page reads as page one", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		mockService.On("ListPage", mock.Anything, 1).Return(&service.PostPage{Page: 1, TotalPages: 1}, nil)

		router := gin.New()
		router.GET("/posts/", handler.List)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/?page=abc", nil))

		require.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestPostHandler_Detail(t *testing.T) {
	t.Run("returns post with comments", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		postID := uuid.New().String()
		mockService.On("Detail", mock.Anything, postID).Return(&service.PostDetail{
			Post:     domain.Post{ID: postID, Title: "Hello"},
			Comments: []domain.Comment{{ID: uuid.New().String(), Content: "Nice"}},
		}, nil)

		router := gin.New()
		router.GET("/posts/:id/", handler.Detail)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/"+postID+"/", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var response service.PostDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Hello", response.Post.Title)
		assert.Len(t, response.Comments, 1)
	})

	t.Run("unknown post returns 404", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		postID := uuid.New().String()
		mockService.On("Detail", mock.Anything, postID).Return(nil, service.ErrNotFound)

		router := gin.New()
		router.GET("/posts/:id/", handler.Detail)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/"+postID+"/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id returns 404 without a service call", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		router := gin.New()
		router.GET("/posts/:id/", handler.Detail)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/not-a-uuid/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertNotCalled(t, "Detail", mock.Anything, mock.Anything)
	})
}

func TestPostHandler_Search(t *testing.T) {
	mockService := &mocks.PostService{}
	handler := NewPostHandler(mockService, testSite)

	mockService.On("Search", mock.Anything, "golang").Return([]domain.Post{
		{ID: uuid.New().String(), Title: "Golang tips"},
	}, nil)

	router := gin.New()
	router.GET("/search/", handler.Search)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search/?q=golang", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Query string        `json:"query"`
		Posts []domain.Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "golang", response.Query)
	assert.Len(t, response.Posts, 1)
	mockService.AssertExpectations(t)
}

func TestPostHandler_Create(t *testing.T) {
	author := &domain.User{ID: uuid.New().String(), Username: "alice", Role: "user"}

	t.Run("creates post for logged-in user", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		categoryID := uuid.New().String()
		created := &domain.Post{
			ID:          uuid.New().String(),
			Title:       "Hello",
			AuthorID:    author.ID,
			CategoryID:  categoryID,
			PublishedAt: time.Now(),
		}
		mockService.On("Create", mock.Anything, author.ID, mock.MatchedBy(func(f *validator.PostForm) bool {
			return f.Title == "Hello" && f.CategoryID == categoryID
		})).Return(created, nil)

		router := gin.New()
		router.POST("/create/", asUser(author), handler.Create)

		body := formBody(url.Values{
			"title":       {"Hello"},
			"content":     {"First post."},
			"category_id": {categoryID},
		})
		req := httptest.NewRequest(http.MethodPost, "/create/", body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response domain.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.ID, response.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("validation failure returns field errors", func(t *testing.T) {
		mockService := &mocks.PostService{}
		handler := NewPostHandler(mockService, testSite)

		mockService.On("Create", mock.Anything, author.ID, mock.Anything).
			Return(nil, validator.NewValidator().ValidatePost(&validator.PostForm{}))

		router := gin.New()
		router.POST("/create/", asUser(author), handler.Create)

		req := httptest.NewRequest(http.MethodPost, "/create/", formBody(url.Values{}))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Errors, "title")
		assert.Contains(t, response.Errors, "content")
		assert.Contains(t, response.Errors, "category_id")
	})
}

func TestPostHandler_MyPosts(t *testing.T) {
	author := &domain.User{ID: uuid.New().String(), Username: "alice", Role: "user"}

	mockService := &mocks.PostService{}
	handler := NewPostHandler(mockService, testSite)

	mockService.On("ByAuthor", mock.Anything, author.ID).Return([]domain.Post{
		{ID: uuid.New().String(), Title: "Mine", AuthorID: author.ID},
	}, nil)

	router := gin.New()
	router.GET("/my-posts/", asUser(author), handler.MyPosts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-posts/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
