package stores

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

// ForProduct handles GET /api/stores/for-product/:keyName. The store list is
// the heart of the product page, so this path fails loud on query errors.
func (h *Handler) ForProduct(c *gin.Context) {
	keyName := c.Param("keyName")
	if keyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid keyName"})
		return
	}

	listings, err := h.repo.ForProduct(c.Request.Context(), keyName)
	if err != nil {
		h.log.Error().Err(err).Str("key_name", keyName).Msg("fetch stores failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores for product"})
		return
	}
	c.JSON(http.StatusOK, listings)
}
