package saved

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

// Add saves an artwork for the authenticated user.
func (h *Handler) Add(c *gin.Context) {
	var input struct {
		ArtworkID uint `json:"artwork_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ArtworkID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "artwork_id is required"})
		return
	}

	record, err := h.svc.Add(c.Request.Context(), c.GetUint("user_id"), input.ArtworkID)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// List returns the authenticated user's saved artworks.
func (h *Handler) List(c *gin.Context) {
	all, err := h.svc.ListForUser(c.Request.Context(), c.GetUint("user_id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// Remove unsaves an artwork for the authenticated user.
func (h *Handler) Remove(c *gin.Context) {
	artworkID, err := strconv.ParseUint(c.Param("artwork_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artwork id"})
		return
	}

	removed, err := h.svc.Remove(c.Request.Context(), c.GetUint("user_id"), uint(artworkID))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Saved artwork not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
