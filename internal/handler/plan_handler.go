package handler

import (
	"net/http"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/pkg/logger"
	"github.com/baladi39/hippo-portal/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlanHandler exposes plan CRUD, free-text search and the renewal views
type PlanHandler struct {
	plans    *repository.PlansRepo
	accounts *repository.AccountsRepo
	configs  *repository.PlanConfigsRepo
}

// NewPlanHandler creates a new plan handler instance
func NewPlanHandler(plans *repository.PlansRepo, accounts *repository.AccountsRepo, configs *repository.PlanConfigsRepo) *PlanHandler {
	return &PlanHandler{plans: plans, accounts: accounts, configs: configs}
}

// ListPlans handles retrieving plans with optional filtering
func (h *PlanHandler) ListPlans(c echo.Context) error {
	log := logger.FromContext(c)

	filters := &dto.PlanFilters{
		SearchTerm:        c.QueryParam("search"),
		AccountID:         uint(queryInt(c, "accountId")),
		Carrier:           c.QueryParam("carrier"),
		PlanType:          c.QueryParam("planType"),
		Status:            c.QueryParam("status"),
		EffectiveDateFrom: c.QueryParam("effectiveDateFrom"),
		EffectiveDateTo:   c.QueryParam("effectiveDateTo"),
		RenewalDateFrom:   c.QueryParam("renewalDateFrom"),
		RenewalDateTo:     c.QueryParam("renewalDateTo"),
		Offset:            queryIntPtr(c, "offset"),
		Limit:             queryInt(c, "limit"),
	}

	plans, total, err := h.plans.FindAll(filters)
	if err != nil {
		log.Error("Failed to list plans", zap.Error(err))
		return writeError(c, err, "Failed to retrieve plans")
	}

	prometheus.RecordPlanOperation("list")
	log.Info("Plans retrieved successfully", zap.Int("count", len(plans)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"plans": plans,
		"total": total,
	})
}

// SearchPlans handles the free-text plan search used by the plans page. The
// term also matches the joined account name.
func (h *PlanHandler) SearchPlans(c echo.Context) error {
	log := logger.FromContext(c)

	term := c.QueryParam("q")
	if term == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Search term is required"})
	}

	plans, total, err := h.accounts.SearchPlansWithAccounts(term)
	if err != nil {
		log.Error("Failed to search plans", zap.String("search_term", term), zap.Error(err))
		return writeError(c, err, "Failed to search plans")
	}

	prometheus.RecordPlanOperation("search")
	log.Info("Plan search completed", zap.String("search_term", term), zap.Int64("matches", total))
	return c.JSON(http.StatusOK, echo.Map{
		"plans": plans,
		"total": total,
	})
}

// GetUpcomingRenewals handles retrieving active plans renewing soon
func (h *PlanHandler) GetUpcomingRenewals(c echo.Context) error {
	log := logger.FromContext(c)

	days := queryInt(c, "days")
	plans, total, err := h.plans.GetUpcomingRenewals(days)
	if err != nil {
		log.Error("Failed to fetch upcoming renewals", zap.Int("days", days), zap.Error(err))
		return writeError(c, err, "Failed to retrieve upcoming renewals")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"plans": plans,
		"total": total,
	})
}

// GetPlan handles retrieving a single plan by ID
func (h *PlanHandler) GetPlan(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	plan, err := h.plans.FindByID(id)
	if err != nil {
		log.Error("Plan not found", zap.Uint("plan_id", id), zap.Error(err))
		return writeError(c, err, "Failed to retrieve plan")
	}

	prometheus.RecordPlanOperation("get")
	return c.JSON(http.StatusOK, plan)
}

// CreatePlan handles creating a new fully configured plan
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	log := logger.FromContext(c)

	var req dto.CreatePlanData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.plans.Create(&req)
	if err != nil {
		log.Error("Failed to create plan",
			zap.Uint("account_id", req.AccountID),
			zap.String("carrier", req.Carrier),
			zap.Error(err))
		return writeError(c, err, "Failed to create plan")
	}

	prometheus.RecordPlanOperation("create")
	log.Info("Plan created successfully",
		zap.Uint("plan_id", plan.PlanID),
		zap.String("carrier", plan.Carrier),
		zap.String("plan_type", plan.PlanType))
	return c.JSON(http.StatusCreated, plan)
}

// UpdatePlan handles a partial-field plan update
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	var req dto.UpdatePlanData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("plan_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	plan, err := h.plans.Update(id, &req)
	if err != nil {
		log.Error("Failed to update plan", zap.Uint("plan_id", id), zap.Error(err))
		return writeError(c, err, "Failed to update plan")
	}

	prometheus.RecordPlanOperation("update")
	log.Info("Plan updated successfully", zap.Uint("plan_id", id))
	return c.JSON(http.StatusOK, plan)
}

// UpdatePlanStatus handles a status-only plan transition
func (h *PlanHandler) UpdatePlanStatus(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("plan_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.plans.UpdateStatus(id, req.Status)
	if err != nil {
		log.Error("Failed to update plan status",
			zap.Uint("plan_id", id),
			zap.String("status", req.Status),
			zap.Error(err))
		return writeError(c, err, "Failed to update plan status")
	}

	prometheus.RecordPlanOperation("update_status")
	log.Info("Plan status updated", zap.Uint("plan_id", id), zap.String("status", req.Status))
	return c.JSON(http.StatusOK, plan)
}

// DeletePlan handles soft-deleting a plan
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	if err := h.plans.Delete(id); err != nil {
		log.Error("Failed to delete plan", zap.Uint("plan_id", id), zap.Error(err))
		return writeError(c, err, "Failed to delete plan")
	}

	prometheus.RecordPlanOperation("delete")
	log.Info("Plan deleted successfully", zap.Uint("plan_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Plan deleted successfully"})
}

// GetPlanConfig handles retrieving the configuration saved for a plan
func (h *PlanHandler) GetPlanConfig(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	config, err := h.configs.FindByPlanID(id)
	if err != nil {
		log.Error("Failed to fetch plan config", zap.Uint("plan_id", id), zap.Error(err))
		return writeError(c, err, "Failed to retrieve plan configuration")
	}

	return c.JSON(http.StatusOK, config)
}
