package handler

import (
	"net/http"

	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlanTypeHandler exposes the plan type reference list
type PlanTypeHandler struct {
	planTypes *repository.PlanTypesRepo
}

// NewPlanTypeHandler creates a new plan type handler instance
func NewPlanTypeHandler(planTypes *repository.PlanTypesRepo) *PlanTypeHandler {
	return &PlanTypeHandler{planTypes: planTypes}
}

// ListPlanTypes handles retrieving all active plan types
func (h *PlanTypeHandler) ListPlanTypes(c echo.Context) error {
	log := logger.FromContext(c)

	planTypes, err := h.planTypes.FindAll()
	if err != nil {
		log.Error("Failed to list plan types", zap.Error(err))
		return writeError(c, err, "Failed to retrieve plan types")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"planTypes": planTypes,
		"total":     len(planTypes),
	})
}

// GetPlanType handles retrieving a single active plan type
func (h *PlanTypeHandler) GetPlanType(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "plan type ID")
	}

	planType, err := h.planTypes.FindByID(id)
	if err != nil {
		log.Error("Plan type not found", zap.Uint("plan_type_id", id), zap.Error(err))
		return writeError(c, err, "Failed to retrieve plan type")
	}

	return c.JSON(http.StatusOK, planType)
}
