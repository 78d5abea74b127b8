package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/catalog"
	"catalog-service/internal/links"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

type ResolveLinkRequest struct {
	Href string `json:"href" binding:"required"`
}

// ResolveLinkResponse describes the outcome of a deep link: the parsed link,
// the resolved product when one could be found, and the new state encoding
// for category links.
type ResolveLinkResponse struct {
	Success bool            `json:"success"`
	Kind    string          `json:"kind"`
	Product *models.Product `json:"product,omitempty"`
	Source  string          `json:"source,omitempty"`
	Query   string          `json:"query,omitempty"`
}

type LinksHandler struct {
	repo *repository.SnapshotRepository
	log  *logrus.Logger
}

func NewLinksHandler(repo *repository.SnapshotRepository, log *logrus.Logger) *LinksHandler {
	return &LinksHandler{repo: repo, log: log}
}

// Resolve parses a product:// or category:// deep link and resolves its
// target. A malformed link is reported and otherwise ignored: no state
// transition is derived from it.
func (h *LinksHandler) Resolve(c *gin.Context) {
	var req ResolveLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	if link, err := links.ParseProductLink(req.Href); err == nil {
		h.resolveProductLink(c, link)
		return
	} else if err != links.ErrUnknownScheme {
		h.rejectLink(c, req.Href)
		return
	}

	if link, err := links.ParseCategoryLink(req.Href); err == nil {
		h.resolveCategoryLink(c, link)
		return
	}

	h.rejectLink(c, req.Href)
}

func (h *LinksHandler) rejectLink(c *gin.Context, href string) {
	h.log.WithField("href", href).Warn("Ignoring malformed deep link")
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "MALFORMED_LINK",
			Message: "The link could not be parsed and was ignored",
			Field:   "href",
		},
	})
}

func (h *LinksHandler) resolveProductLink(c *gin.Context, link *links.ProductLink) {
	product, source, ok := h.repo.FindProductByURL(link.Store, link.URL)
	if !ok {
		h.log.WithFields(logrus.Fields{
			"store": link.Store,
			"url":   link.URL,
		}).Warn("Product link target not found")
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "NOT_FOUND",
				Message: "Linked product not present in any loaded source",
			},
		})
		return
	}
	c.JSON(http.StatusOK, ResolveLinkResponse{
		Success: true,
		Kind:    "product",
		Product: product,
		Source:  source,
	})
}

func (h *LinksHandler) resolveCategoryLink(c *gin.Context, link *links.CategoryLink) {
	st := catalog.DecodeState(c.Request.URL.Query())
	next := st.ApplyDeepLink(link.Source, link.CategoryID, link.StoreName)

	resp := ResolveLinkResponse{
		Success: true,
		Kind:    "category",
		Source:  link.Source,
		Query:   catalog.EncodeState(next).Encode(),
	}
	if link.ProductURL != "" {
		target := link.StoreName
		if target == "" {
			target = link.Source
		}
		if product, source, ok := h.repo.FindProductByURL(target, link.ProductURL); ok {
			resp.Product = product
			resp.Source = source
		}
	}
	c.JSON(http.StatusOK, resp)
}
