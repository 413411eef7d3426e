package categories

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

// ProductsByCategory handles GET /api/products/category/:categoryName.
func (h *Handler) ProductsByCategory(c *gin.Context) {
	name := c.Param("categoryName")

	displayName, products, err := h.repo.ProductsByName(c.Request.Context(), name, 10)
	if err != nil {
		h.log.Error().Err(err).Str("category", name).Msg("fetch category products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products for category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": displayName, "products": products})
}
