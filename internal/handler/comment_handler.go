package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/middleware"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// CommentHandler handles the add-comment workflow.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add handles POST /posts/:id/comment/ - attaches a comment to the
// post. Notification of the post author happens inside the service and
// never fails the request.
func (h *CommentHandler) Add(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	user := middleware.GetUser(c)

	var form validator.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), postID, user.ID, &form)
	if err != nil {
		respondError(c, err, "post")
		return
	}

	c.JSON(http.StatusCreated, comment)
}
