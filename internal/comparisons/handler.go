package comparisons

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"plancompare-backend/internal/catalog"
	"plancompare-backend/internal/shared/server/middleware"
	"plancompare-backend/internal/shared/server/respond"
	"plancompare-backend/internal/shared/validate"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	Val *validate.Validator
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, val *validate.Validator) *Handler {
	return &Handler{Svc: svc, Val: val}
}

// RegisterRoutes attaches comparison routes. rg must carry the identity middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/comparisons", h.create)
	rg.GET("/comparisons", h.list)
	rg.GET("/comparisons/:id", h.get)
	rg.POST("/comparisons/scenarios", h.scenarios)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if !h.bind(c, &req) {
		return
	}
	cat, ok := h.category(c, req.Category)
	if !ok {
		return
	}

	cmp, err := h.Svc.Create(c.Request.Context(), CreateInput{
		UserID:   middleware.UserIDFromContext(c),
		Category: cat,
		Profile:  req.Profile.toProfile(),
		Limit:    req.Limit,
	})
	if err != nil {
		h.fail(c, err, "failed to create comparison")
		return
	}
	c.Set(middleware.ComparisonIDKey, cmp.ID.String())
	respond.Created(c, toComparisonResponse(cmp))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.ComparisonIDKey, id)

	cmp, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		h.fail(c, err, "failed to fetch comparison")
		return
	}
	c.Set(middleware.CategoryKey, string(cmp.Category))
	respond.OK(c, toComparisonResponse(cmp))
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = v
	}

	items, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit)
	if err != nil {
		h.fail(c, err, "failed to list comparisons")
		return
	}
	out := make([]ComparisonSummary, 0, len(items))
	for _, item := range items {
		out = append(out, toComparisonSummary(item))
	}
	respond.OK(c, gin.H{"comparisons": out})
}

func (h *Handler) scenarios(c *gin.Context) {
	var req ScenariosRequest
	if !h.bind(c, &req) {
		return
	}
	cat, ok := h.category(c, req.Category)
	if !ok {
		return
	}

	scenarios := make([]Scenario, 0, len(req.Scenarios))
	for _, sc := range req.Scenarios {
		scenarios = append(scenarios, Scenario{Name: sc.Name, Profile: sc.Profile.toProfile()})
	}
	results, err := h.Svc.Scenarios(c.Request.Context(), cat, scenarios)
	if err != nil {
		h.fail(c, err, "failed to evaluate scenarios")
		return
	}
	out := make([]ScenarioResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toScenarioResponse(r))
	}
	respond.OK(c, gin.H{"category": cat, "scenarios": out})
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return false
	}
	if err := h.Val.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request", validate.Details(err))
		return false
	}
	return true
}

func (h *Handler) category(c *gin.Context, raw string) (catalog.Category, bool) {
	cat, ok := catalog.ParseCategory(raw)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category", gin.H{"category": raw, "allowed": catalog.Categories})
		return "", false
	}
	c.Set(middleware.CategoryKey, string(cat))
	return cat, true
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "comparison not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
