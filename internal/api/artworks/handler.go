package artworks

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

const (
	defaultPage     = 1
	defaultPageSize = 21
)

// List returns one page of artworks plus pagination metadata.
func (h *Handler) List(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	pageSize := queryInt(c, "pageSize", defaultPageSize)
	if page < 1 || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "page and pageSize must be positive integers"})
		return
	}

	total, err := h.svc.Count(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	// A window that starts past the end of the stored set is a miss, not an
	// empty page.
	if total < int64((page-1)*pageSize) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No more artworks available."})
		return
	}

	result, err := h.svc.Paginated(c.Request.Context(), page, pageSize)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByID returns a single artwork.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artwork id"})
		return
	}

	artwork, err := h.svc.ByID(c.Request.Context(), id)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

// Random returns one random stored artwork.
func (h *Handler) Random(c *gin.Context) {
	artwork, err := h.svc.Random(c.Request.Context())
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, artwork)
}

// Fetch pulls new artworks from the external source on demand and responds
// with the first one saved.
func (h *Handler) Fetch(c *gin.Context) {
	var input struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Count < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "count must be a positive integer"})
		return
	}

	saved, err := h.svc.FetchAndSave(c.Request.Context(), input.Count)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if len(saved) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No artworks found"})
		return
	}
	c.JSON(http.StatusOK, saved[0])
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return value
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	return uint(id), err
}
