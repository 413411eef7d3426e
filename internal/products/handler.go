package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oraExperience/ora-electronics/internal/domain/catalog"
)

type Handler struct {
	repo *Repo
	log  zerolog.Logger
}

func NewHandler(repo *Repo, log zerolog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Search handles GET /api/products/search?q=&page=&limit=&entityid=.
// A curated-list id bypasses text search entirely. Query failures degrade to
// an empty page: search is a read path the UI can survive.
func (h *Handler) Search(c *gin.Context) {
	_, limit, offset := PageParams(c.Query("page"), c.Query("limit"))

	var (
		items []catalog.ProductSummary
		err   error
	)
	if raw := c.Query("entityid"); raw != "" {
		entityID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "entityid must be a valid number"})
			return
		}
		items, err = h.repo.ByEntity(c.Request.Context(), entityID, limit, offset)
	} else {
		items, err = h.repo.Search(c.Request.Context(), c.Query("q"), limit, offset)
	}
	if err != nil {
		h.log.Error().Err(err).Str("q", c.Query("q")).Msg("product search failed")
		c.JSON(http.StatusOK, []catalog.ProductSummary{})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ByKeyName handles GET /api/products/:keyName. Unlike search, this path
// fails loud: the product page cannot render without the record.
func (h *Handler) ByKeyName(c *gin.Context) {
	keyName := c.Param("keyName")
	p, err := h.repo.ByKeyName(c.Request.Context(), keyName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.log.Error().Err(err).Str("key_name", keyName).Msg("fetch product failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product by key name"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Variants handles GET /api/products/product-variants?vertical_id=.
func (h *Handler) Variants(c *gin.Context) {
	verticalID, err := strconv.ParseInt(c.Query("vertical_id"), 10, 64)
	if err != nil || verticalID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vertical_id parameter is required and must be a valid number"})
		return
	}

	variants, err := h.repo.VariantsByVertical(c.Request.Context(), verticalID)
	if err != nil {
		h.log.Error().Err(err).Int64("vertical_id", verticalID).Msg("fetch variants failed")
		c.JSON(http.StatusOK, []catalog.Variant{})
		return
	}
	c.JSON(http.StatusOK, variants)
}

// Similar handles GET /api/products/similar/:keyName. One call returns the
// cheapest product per other vertical.
func (h *Handler) Similar(c *gin.Context) {
	keyName := c.Param("keyName")
	if keyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid product key_name is required"})
		return
	}

	p, err := h.repo.ByKeyName(c.Request.Context(), keyName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.log.Error().Err(err).Str("key_name", keyName).Msg("fetch product for similar failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch similar products"})
		return
	}
	if p.VerticalID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product has no vertical_id"})
		return
	}

	similar, err := h.repo.Similar(c.Request.Context(), *p.VerticalID)
	if err != nil {
		h.log.Error().Err(err).Str("key_name", keyName).Msg("fetch similar products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch similar products"})
		return
	}
	c.JSON(http.StatusOK, similar)
}

// PopularPills handles GET /api/products/popular-pills.
func (h *Handler) PopularPills(c *gin.Context) {
	pills, err := h.repo.PopularPills(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch popular pills failed")
		c.JSON(http.StatusOK, []catalog.Pill{})
		return
	}
	c.JSON(http.StatusOK, pills)
}

// HomeRails handles GET /api/products/home-rails.
func (h *Handler) HomeRails(c *gin.Context) {
	rails, err := h.repo.HomeRails(c.Request.Context(), 12)
	if err != nil {
		h.log.Error().Err(err).Msg("fetch home rails failed")
		c.JSON(http.StatusOK, []catalog.Rail{})
		return
	}
	c.JSON(http.StatusOK, rails)
}

// Top handles GET /api/products/top.
func (h *Handler) Top(c *gin.Context) {
	items, err := h.repo.Top(c.Request.Context(), 3)
	if err != nil {
		h.log.Error().Err(err).Msg("fetch top products failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top products"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Reviews handles GET /api/reviews/:keyName.
func (h *Handler) Reviews(c *gin.Context) {
	keyName := c.Param("keyName")
	if keyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid keyName"})
		return
	}
	p, err := h.repo.ByKeyName(c.Request.Context(), keyName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.log.Error().Err(err).Str("key_name", keyName).Msg("fetch reviews failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews by keyName"})
		return
	}
	c.JSON(http.StatusOK, p.Reviews)
}
