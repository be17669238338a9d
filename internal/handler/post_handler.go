package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/middleware"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// Site is the static branding block rendered on the home and about
// pages.
type Site struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// PostHandler handles the public post queries and the create-post
// workflow.
type PostHandler struct {
	postService service.PostServiceInterface
	site        Site
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface, site Site) *PostHandler {
	return &PostHandler{
		postService: postService,
		site:        site,
	}
}

// Home handles GET / - recent posts, categories, and site branding.
func (h *PostHandler) Home(c *gin.Context) {
	page, err := h.postService.Home(c.Request.Context())
	if err != nil {
		respondError(c, err, "home page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"site":         h.site,
		"recent_posts": page.RecentPosts,
		"categories":   page.Categories,
	})
}

// About handles GET /about/ - the static about page.
func (h *PostHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"site": h.site})
}

// List handles GET /posts/ - the paginated post listing. Pages are
// 1-based; an absent or malformed page parameter reads as page 1.
func (h *PostHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.postService.ListPage(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "post listing")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Detail handles GET /posts/:id/ - one post with its approved comments.
func (h *PostHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	detail, err := h.postService.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "post")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ByCategory handles GET /category/:id/ - the posts of one category.
func (h *PostHandler) ByCategory(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	page, err := h.postService.ByCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "category")
		return
	}

	c.JSON(http.StatusOK, page)
}

// Search handles GET /search/ - posts matching the q parameter. A
// blank query returns an empty result set, not the full listing.
func (h *PostHandler) Search(c *gin.Context) {
	query := c.Query("q")

	posts, err := h.postService.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "search")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"posts": posts,
	})
}

// CreateForm handles GET /create/ - the create-post form
// context: the categories to choose from.
func (h *PostHandler) CreateForm(c *gin.Context) {
	categories, err := h.postService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Create handles POST /create/ - persists a new post authored by
// the logged-in user.
func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.GetUser(c)

	var form validator.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), user.ID, &form)
	if err != nil {
		respondError(c, err, "post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// MyPosts handles GET /my-posts/ - the logged-in user's posts.
func (h *PostHandler) MyPosts(c *gin.Context) {
	user := middleware.GetUser(c)

	posts, err := h.postService.ByAuthor(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
