package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"
	"catalog-service/internal/prices"
	"catalog-service/internal/repository"
)

type CatalogHandler struct {
	repo          *repository.SnapshotRepository
	log           *logrus.Logger
	defaultSource string
}

func NewCatalogHandler(repo *repository.SnapshotRepository, log *logrus.Logger, defaultSource string) *CatalogHandler {
	return &CatalogHandler{
		repo:          repo,
		log:           log,
		defaultSource: defaultSource,
	}
}

// GetSources lists the loaded snapshot sources
func (h *CatalogHandler) GetSources(c *gin.Context) {
	c.JSON(http.StatusOK, models.SourcesResponse{
		Success: true,
		Data:    h.repo.Sources(),
	})
}

// GetProducts returns the filtered+sorted view of the selected source. The
// request query string is the encoded filter state; each product carries its
// price partition for the current store selection. An unknown source yields
// an empty view rather than an error.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	st := catalog.DecodeState(c.Request.URL.Query())
	source := h.repo.ResolveSource(st.Source, h.defaultSource)

	filtered := h.repo.FilteredProducts(c.Request.Context(), source, st)

	total := 0
	if snap, ok := h.repo.Snapshot(source); ok {
		total = snap.Metadata.TotalProducts
		if total == 0 {
			total = len(snap.Products)
		}
	}

	views := make([]models.ProductView, 0, len(filtered))
	for i := range filtered {
		part := prices.Partition(filtered[i].Prices, st.Filters.Stores)
		views = append(views, models.ProductView{
			Product:       filtered[i],
			VisiblePrices: part.Visible,
			HiddenPrices:  part.Hidden,
			HiddenRange:   part.HiddenRange,
		})
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success:       true,
		Source:        source,
		Data:          views,
		FilteredCount: len(filtered),
		TotalProducts: total,
		Sort:          string(st.Sort),
	})
}

// LookupProduct resolves a product by its product_url, searching the named
// source first and every other loaded source as a fallback.
func (h *CatalogHandler) LookupProduct(c *gin.Context) {
	productURL := c.Query("url")
	if productURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "url query parameter is required",
				Field:   "url",
			},
		})
		return
	}
	source := c.Query("source")

	product, foundIn, ok := h.repo.FindProductByURL(source, productURL)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "No product with the given URL in any loaded source",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{
		Success: true,
		Source:  foundIn,
		Data:    *product,
	})
}

// GetCategoryTree returns the grouped category tree for the selected source.
func (h *CatalogHandler) GetCategoryTree(c *gin.Context) {
	st := catalog.DecodeState(c.Request.URL.Query())
	source := h.repo.ResolveSource(st.Source, h.defaultSource)

	food, other := h.repo.CategoryTree(c.Request.Context(), source)

	c.JSON(http.StatusOK, models.CategoryTreeResponse{
		Success: true,
		Source:  source,
		Food:    food,
		Other:   other,
	})
}
