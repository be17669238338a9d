package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// AdminHandler handles comment moderation and category management.
// All of its routes sit behind the admin middleware.
type AdminHandler struct {
	commentService  service.CommentServiceInterface
	categoryService service.CategoryServiceInterface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(commentService service.CommentServiceInterface, categoryService service.CategoryServiceInterface) *AdminHandler {
	return &AdminHandler{
		commentService:  commentService,
		categoryService: categoryService,
	}
}

// PendingComments handles GET /admin/comments/ - comments awaiting
// moderation, newest first.
func (h *AdminHandler) PendingComments(c *gin.Context) {
	comments, err := h.commentService.Unapproved(c.Request.Context())
	if err != nil {
		respondError(c, err, "comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type approveForm struct {
	IDs []string `form:"ids" json:"ids"`
}

// ApproveComments handles POST /admin/comments/approve/ - bulk-approves
// the selected comments. Already-approved or unknown IDs are skipped.
func (h *AdminHandler) ApproveComments(c *gin.Context) {
	var form approveForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}
	if len(form.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}
	for _, id := range form.IDs {
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ids must be valid UUIDs"})
			return
		}
	}

	approved, err := h.commentService.Approve(c.Request.Context(), form.IDs)
	if err != nil {
		respondError(c, err, "comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"approved": approved})
}

// CreateCategory handles POST /admin/categories/ - adds a category.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var form validator.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &form)
	if err != nil {
		respondError(c, err, "category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /admin/categories/:id - removes a
// category and, through the schema cascade, every post in it.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
