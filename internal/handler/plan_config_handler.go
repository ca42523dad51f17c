package handler

import (
	"net/http"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlanConfigHandler exposes saved plan configurations
type PlanConfigHandler struct {
	configs *repository.PlanConfigsRepo
}

// NewPlanConfigHandler creates a new plan config handler instance
func NewPlanConfigHandler(configs *repository.PlanConfigsRepo) *PlanConfigHandler {
	return &PlanConfigHandler{configs: configs}
}

// GetPlanConfig handles retrieving the configuration saved for a plan,
// addressed by the planId query parameter
func (h *PlanConfigHandler) GetPlanConfig(c echo.Context) error {
	log := logger.FromContext(c)

	planID := queryInt(c, "planId")
	if planID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "planId query parameter is required"})
	}

	config, err := h.configs.FindByPlanID(uint(planID))
	if err != nil {
		log.Error("Failed to fetch plan config", zap.Int("plan_id", planID), zap.Error(err))
		return writeError(c, err, "Failed to retrieve plan configuration")
	}

	return c.JSON(http.StatusOK, config)
}

// CreatePlanConfig handles saving a plan configuration
func (h *PlanConfigHandler) CreatePlanConfig(c echo.Context) error {
	log := logger.FromContext(c)

	var req dto.CreatePlanConfigData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	config, err := h.configs.Create(&req)
	if err != nil {
		log.Error("Failed to create plan config", zap.String("plan_name", req.PlanName), zap.Error(err))
		return writeError(c, err, "Failed to save plan configuration")
	}

	log.Info("Plan config created successfully",
		zap.Uint("config_id", config.ID),
		zap.String("plan_name", config.PlanName))
	return c.JSON(http.StatusCreated, config)
}
