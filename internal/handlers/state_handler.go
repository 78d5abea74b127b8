package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"
)

// Transition actions accepted by the state endpoint
const (
	ActionToggle       = "toggle"
	ActionForceInclude = "force-include"
	ActionReset        = "reset"
	ActionClearSection = "clear-section"
	ActionSetSort      = "set-sort"
	ActionSetSource    = "set-source"
	ActionSetView      = "set-view"
	ActionDeepLink     = "deep-link"
)

// TransitionRequest describes one state transition. The current state is the
// request query string; the response carries the canonical re-encoding of
// the new state, which the client puts back into its URL.
type TransitionRequest struct {
	Action string `json:"action" binding:"required"`

	// toggle / clear-section
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`

	// force-include / deep-link
	CategoryID string `json:"categoryId,omitempty"`

	// set-sort / set-source / set-view / deep-link
	Sort      string `json:"sort,omitempty"`
	Source    string `json:"source,omitempty"`
	View      string `json:"view,omitempty"`
	StoreName string `json:"storeName,omitempty"`
}

type StateHandler struct {
	log *logrus.Logger
}

func NewStateHandler(log *logrus.Logger) *StateHandler {
	return &StateHandler{log: log}
}

// Transition applies one documented transition to the state encoded in the
// query string and returns the new canonical encoding. The state is never
// mutated in place; every action derives a fresh value.
func (h *StateHandler) Transition(c *gin.Context) {
	var req TransitionRequest
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

	st := catalog.DecodeState(c.Request.URL.Query())

	next, ok := applyTransition(st, req)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "UNKNOWN_ACTION",
				Message: "Unsupported transition action: " + req.Action,
				Field:   "action",
			},
		})
		return
	}

	encoded := catalog.EncodeState(next)
	c.JSON(http.StatusOK, models.StateResponse{
		Success: true,
		Query:   encoded.Encode(),
		Params:  encoded,
	})
}

func applyTransition(st catalog.State, req TransitionRequest) (catalog.State, bool) {
	switch req.Action {
	case ActionToggle:
		return st.ToggleFilter(catalog.FilterKind(req.Type), req.Value), true
	case ActionForceInclude:
		return st.ForceIncludeCategory(req.CategoryID), true
	case ActionReset:
		return st.Reset(), true
	case ActionClearSection:
		return st.ClearSection(catalog.FilterKind(req.Type)), true
	case ActionSetSort:
		return st.SetSort(catalog.SortOption(req.Sort)), true
	case ActionSetSource:
		return st.SetSource(req.Source), true
	case ActionSetView:
		next := st.Clone()
		next.View = req.View
		return next, true
	case ActionDeepLink:
		return st.ApplyDeepLink(req.Source, req.CategoryID, req.StoreName), true
	}
	return st, false
}
