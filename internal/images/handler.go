package images

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

// Gallery handles GET /api/images/gallery/:keyName. A missing gallery is an
// empty list, never an error; the page falls back to the primary image.
func (h *Handler) Gallery(c *gin.Context) {
	keyName := c.Param("keyName")
	if keyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid product key_name is required"})
		return
	}

	imgs, err := h.repo.GalleryForProduct(c.Request.Context(), keyName)
	if err != nil {
		h.log.Error().Err(err).Str("key_name", keyName).Msg("fetch gallery failed")
		c.JSON(http.StatusOK, []GalleryImage{})
		return
	}
	c.JSON(http.StatusOK, imgs)
}
