package handler

import (
	"net/http"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/internal/wizard"
	"github.com/baladi39/hippo-portal/pkg/logger"
	"github.com/baladi39/hippo-portal/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WizardHandler drives the linear plan wizard. Between pages all state
// travels in the query string; each endpoint parses the forwarded parameters
// back into a session, acts, and returns the re-serialized bag for the next
// page.
type WizardHandler struct {
	plans     *repository.PlansRepo
	planTypes *repository.PlanTypesRepo
}

// NewWizardHandler creates a new wizard handler instance
func NewWizardHandler(plans *repository.PlansRepo, planTypes *repository.PlanTypesRepo) *WizardHandler {
	return &WizardHandler{plans: plans, planTypes: planTypes}
}

// StartReplace handles entering the replacement flow for a plan: the
// original plan, the derived toggle defaults, the plan type options and the
// seeded session parameters for the first page.
func (h *WizardHandler) StartReplace(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "planId")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	plan, err := h.plans.FindByID(id)
	if err != nil {
		log.Error("Plan not found for replacement", zap.Uint("plan_id", id), zap.Error(err))
		return writeError(c, err, "Failed to load plan for replacement")
	}

	planTypes, err := h.planTypes.FindAll()
	if err != nil {
		log.Error("Failed to load plan types for wizard", zap.Error(err))
		return writeError(c, err, "Failed to load plan types")
	}

	defaults := wizard.ReplacementDefaults(plan)
	sess := &wizard.Session{
		Account:                 plan.AccountName,
		AccountID:               plan.AccountID,
		IsReplacement:           true,
		ReplaceID:               id,
		NonBrokered:             defaults.NonBrokered,
		IncludeSplits:           defaults.IncludeSplits,
		IncludeContributions:    defaults.IncludeContributions,
		IncludeEligibilityRules: defaults.IncludeEligibilityRules,
		Original:                wizard.SnapshotFromPlan(plan),
	}

	log.Info("Replacement wizard started",
		zap.Uint("plan_id", id),
		zap.String("plan_type", plan.PlanType))
	return c.JSON(http.StatusOK, echo.Map{
		"originalPlan": plan,
		"defaults":     defaults,
		"planTypes":    planTypes,
		"step":         wizard.InitialStep(true).String(),
		"params":       sess.Values().Encode(),
	})
}

// Validate handles the gate between two wizard pages. The step query
// parameter picks which gate applies; the rest of the query string is the
// session itself.
func (h *WizardHandler) Validate(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := wizard.Parse(c.QueryParams())
	if err != nil {
		log.Warn("Wizard session failed to parse", zap.Error(err))
		return writeError(c, err, "Failed to validate wizard state")
	}

	step := c.QueryParam("step")
	switch step {
	case "", "type":
		err = sess.ValidateTypeSelection()
	case "configure":
		err = sess.ValidateConfiguration()
	case "configure-full":
		err = sess.ValidateConfigurationFull()
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown wizard step: " + step})
	}
	if err != nil {
		return writeError(c, err, "Failed to validate wizard state")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid":  true,
		"params": sess.Values().Encode(),
	})
}

// Review handles the review page payload: the parsed session echoed back as
// a structured summary, gated on a complete configuration.
func (h *WizardHandler) Review(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := wizard.Parse(c.QueryParams())
	if err != nil {
		log.Warn("Wizard session failed to parse", zap.Error(err))
		return writeError(c, err, "Failed to load review")
	}
	if err := sess.ValidateTypeSelection(); err != nil {
		return writeError(c, err, "Failed to load review")
	}
	if err := sess.ValidateConfiguration(); err != nil {
		return writeError(c, err, "Failed to load review")
	}

	review := echo.Map{
		"account":   sess.Account,
		"accountId": sess.AccountID,
		"planType":  sess.SelectedPlanType(),
		"configuration": echo.Map{
			"planName":                  sess.PlanName,
			"carrier":                   sess.Carrier,
			"billingType":               sess.BillingType,
			"commissionsPaidBy":         sess.CommissionsPaidBy,
			"fundingType":               sess.FundingType,
			"policyGroupNumber":         sess.PolicyGroupNumber,
			"originalPlanEffectiveDate": sess.OriginalPlanEffectiveDate,
			"effectiveDate":             sess.EffectiveDate,
			"renewalDate":               sess.RenewalDate,
			"commissionStartDate":       sess.CommissionStartDate,
			"continuousPolicy":          sess.ContinuousPolicy,
			"priorPlan":                 sess.PriorPlan,
		},
		"params": sess.Values().Encode(),
	}
	if sess.IsReplacement {
		review["replacement"] = echo.Map{
			"originalPlan":            sess.Original,
			"nonBrokered":             sess.NonBrokered,
			"includeSplits":           sess.IncludeSplits,
			"includeContributions":    sess.IncludeContributions,
			"includeEligibilityRules": sess.IncludeEligibilityRules,
		}
	}
	return c.JSON(http.StatusOK, review)
}

// Save handles the final wizard step. A replacement flow creates the
// successor row for the original plan; the add-plan flow creates a fully
// configured plan from the session.
func (h *WizardHandler) Save(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := wizard.Parse(c.QueryParams())
	if err != nil {
		log.Warn("Wizard session failed to parse", zap.Error(err))
		return writeError(c, err, "Failed to save plan")
	}

	if sess.IsReplacement {
		return h.saveReplacement(c, sess)
	}
	return h.saveNewPlan(c, sess)
}

func (h *WizardHandler) saveReplacement(c echo.Context, sess *wizard.Session) error {
	log := logger.FromContext(c)

	config := &dto.ReplacePlanConfig{
		AccountID:               sess.AccountID,
		AccountName:             sess.Account,
		ReplacementPlanTypeName: sess.ReplaceType,
		NonBrokered:             sess.NonBrokered,
		IncludeSplits:           sess.IncludeSplits,
		IncludeContributions:    sess.IncludeContributions,
		IncludeEligibilityRules: sess.IncludeEligibilityRules,
	}
	if sess.Original != nil {
		config.OriginalPlanID = sess.Original.PlanID
	}

	plan, err := h.plans.CreateReplacementPlan(config)
	if err != nil {
		prometheus.RecordWizardSave("replacement", "error")
		log.Error("Failed to save replacement plan",
			zap.Uint("original_plan_id", config.OriginalPlanID),
			zap.Error(err))
		return writeError(c, err, "Failed to save replacement plan")
	}

	prometheus.RecordWizardSave("replacement", "success")
	log.Info("Replacement plan saved",
		zap.Uint("original_plan_id", config.OriginalPlanID),
		zap.Uint("plan_id", plan.PlanID))
	return c.JSON(http.StatusCreated, echo.Map{
		"plan": plan,
		"step": wizard.StepSaved.String(),
	})
}

func (h *WizardHandler) saveNewPlan(c echo.Context, sess *wizard.Session) error {
	log := logger.FromContext(c)

	if err := sess.ValidateTypeSelection(); err != nil {
		return writeError(c, err, "Failed to save plan")
	}
	if err := sess.ValidateConfiguration(); err != nil {
		return writeError(c, err, "Failed to save plan")
	}

	// The renewal field may be left blank on the short configure form; the
	// plan then renews one year from its effective date.
	renewalDate := sess.RenewalDate
	if renewalDate == "" {
		effective, err := time.Parse(dto.DateLayout, sess.EffectiveDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "effectiveDate must be YYYY-MM-DD"})
		}
		renewalDate = effective.AddDate(0, 0, 365).Format(dto.DateLayout)
	}

	data := &dto.CreatePlanData{
		AccountID:               sess.AccountID,
		Carrier:                 sess.Carrier,
		PlanType:                sess.SelectedPlanType(),
		CommissionPaidByCarrier: sess.CommissionsPaidBy,
		Billing:                 sess.BillingType,
		PolicyGroupNumber:       sess.PolicyGroupNumber,
		EffectiveDate:           sess.EffectiveDate,
		RenewalDate:             renewalDate,
		Status:                  model.PlanStatusActive,
	}

	plan, err := h.plans.Create(data)
	if err != nil {
		prometheus.RecordWizardSave("new", "error")
		log.Error("Failed to save new plan",
			zap.Uint("account_id", sess.AccountID),
			zap.String("plan_type", data.PlanType),
			zap.Error(err))
		return writeError(c, err, "Failed to save plan")
	}

	prometheus.RecordWizardSave("new", "success")
	log.Info("New plan saved",
		zap.Uint("plan_id", plan.PlanID),
		zap.String("plan_type", plan.PlanType))
	return c.JSON(http.StatusCreated, echo.Map{
		"plan": plan,
		"step": wizard.StepSaved.String(),
	})
}

// CancelReplace handles cancelling a replacement plan. This is an explicit
// action; abandoning the wizard mid-flow changes nothing.
func (h *WizardHandler) CancelReplace(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "planId")
	if !ok {
		return invalidIDResponse(c, "plan ID")
	}

	plan, err := h.plans.CancelPlanReplacement(id)
	if err != nil {
		log.Error("Failed to cancel plan replacement", zap.Uint("plan_id", id), zap.Error(err))
		return writeError(c, err, "Failed to cancel plan replacement")
	}

	log.Info("Plan replacement cancelled", zap.Uint("plan_id", id))
	return c.JSON(http.StatusOK, plan)
}
