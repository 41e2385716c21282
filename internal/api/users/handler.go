package users

import (
	"net/http"
	"strconv"

	"artwork-app/internal/api/apierr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns all users.
func (h *Handler) List(c *gin.Context) {
	all, err := h.svc.List(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// Update changes the caller's own account. The route is authenticated, and
// acting on another user's id is rejected before the service runs.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	if uint(id) != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to update this user."})
		return
	}

	var input struct {
		Username        string `json:"username" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and email are required"})
		return
	}
	if input.CurrentPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is required."})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), uint(id), UpdateInput{
		Username:        input.Username,
		Email:           input.Email,
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	})
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the caller's own account.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	if uint(id) != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this user."})
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), uint(id))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
