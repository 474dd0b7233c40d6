package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"plancompare-backend/internal/shared/server/middleware"
	"plancompare-backend/internal/shared/server/respond"
	"plancompare-backend/internal/shared/validate"
)

const maxFeedSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	Val *validate.Validator
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, val *validate.Validator) *Handler {
	return &Handler{Svc: svc, Val: val}
}

// RegisterRoutes attaches the public catalog routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/plans", h.list)
	rg.GET("/catalog/plans/:id", h.get)
}

// RegisterImportRoutes attaches feed import routes. rg must carry the identity middleware.
func (h *Handler) RegisterImportRoutes(rg *gin.RouterGroup) {
	rg.POST("/catalog/feeds", h.upload)
	rg.POST("/catalog/imports", h.importFeed)
}

func (h *Handler) list(c *gin.Context) {
	var cat Category
	if raw := c.Query("category"); raw != "" {
		parsed, ok := ParseCategory(raw)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category", gin.H{"category": raw, "allowed": Categories})
			return
		}
		cat = parsed
		c.Set(middleware.CategoryKey, string(cat))
	}

	plans, err := h.Svc.ListPlans(c.Request.Context(), cat)
	if err != nil {
		h.fail(c, err, "failed to list plans")
		return
	}

	resp := PlanListResponse{Plans: make([]PlanResponse, 0, len(plans)), Count: len(plans)}
	for _, p := range plans {
		resp.Plans = append(resp.Plans, toPlanResponse(p))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	plan, err := h.Svc.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch plan")
		return
	}
	respond.OK(c, toPlanResponse(plan))
}

func (h *Handler) upload(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to import feeds", nil)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFeedSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	result, err := h.Svc.UploadFeed(c.Request.Context(), middleware.UserIDFromContext(c), fileHeader.Filename, file)
	if err != nil {
		h.fail(c, err, "failed to import feed")
		return
	}
	respond.Created(c, toImportResponse(result))
}

func (h *Handler) importFeed(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to import feeds", nil)
		return
	}

	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request", validate.Details(err))
		return
	}

	result, err := h.Svc.ImportFeed(c.Request.Context(), req.StorageKey)
	if err != nil {
		h.fail(c, err, "failed to import feed")
		return
	}
	respond.OK(c, toImportResponse(result))
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, ErrInvalidFeed):
		respond.Error(c, http.StatusUnprocessableEntity, "invalid_feed", err.Error(), nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
