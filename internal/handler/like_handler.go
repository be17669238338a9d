package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/middleware"
	"github.com/PS-gitpro/myblog/internal/service"
)

// LikeHandler handles the like-toggle workflow.
type LikeHandler struct {
	likeService service.LikeServiceInterface
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService service.LikeServiceInterface) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Toggle handles POST /posts/:id/like/ - likes the post, or removes
// the user's existing like. The response reports the resulting state
// and the new like count.
func (h *LikeHandler) Toggle(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	user := middleware.GetUser(c)

	result, err := h.likeService.Toggle(c.Request.Context(), postID, user.ID)
	if err != nil {
		respondError(c, err, "post")
		return
	}

	c.JSON(http.StatusOK, result)
}
