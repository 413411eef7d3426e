package verticals

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	repo *Repo
	log  zerolog.Logger
}

func NewHandler(repo *Repo, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// ListAll handles GET /api/verticals.
func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list verticals failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch verticals"})
		return
	}
	c.JSON(http.StatusOK, items)
}
