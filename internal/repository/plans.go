package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"

	"go.uber.org/zap"
)

// replacementCarrierPlaceholder is written to a replacement plan's carrier
// column until the plan is configured.
const replacementCarrierPlaceholder = "TBD"

// replacementRenewalDays is the renewal horizon stamped on a freshly
// created replacement plan.
const replacementRenewalDays = 365

// PlansRepo handles plan reads/writes and the replacement lifecycle
type PlansRepo struct {
	plans PlanStore
	log   *zap.Logger
	now   func() time.Time
}

// NewPlansRepo creates a new plans repository instance
func NewPlansRepo(plans PlanStore, log *zap.Logger) *PlansRepo {
	return &PlansRepo{
		plans: plans,
		log:   log,
		now:   time.Now,
	}
}

// FindAll retrieves plans matching the optional filters
func (r *PlansRepo) FindAll(filters *dto.PlanFilters) ([]dto.PlanDto, int64, error) {
	plans, total, err := r.plans.FetchPlansWithAccounts(filters)
	if err != nil {
		r.log.Error("Failed to list plans", zap.Error(err))
		return nil, 0, err
	}
	return mapPlansToDtos(plans), total, nil
}

// FindByID retrieves a single plan without its account join
func (r *PlansRepo) FindByID(planID uint) (*dto.PlanDto, error) {
	plan, err := r.plans.FetchPlanByID(planID)
	if err != nil {
		r.log.Error("Failed to fetch plan", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, err
	}
	return mapPlanToDto(plan), nil
}

// FindByAccountID retrieves all plans for one account
func (r *PlansRepo) FindByAccountID(accountID uint) ([]dto.PlanDto, error) {
	plans, err := r.plans.FetchPlansByAccountID(accountID)
	if err != nil {
		r.log.Error("Failed to fetch account plans", zap.Uint("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return mapPlansToDtos(plans), nil
}

// Create inserts a new fully configured plan
func (r *PlansRepo) Create(data *dto.CreatePlanData) (*dto.PlanDto, error) {
	plan, err := planFromCreateData(data)
	if err != nil {
		return nil, err
	}
	if err := r.plans.CreatePlan(plan); err != nil {
		r.log.Error("Failed to create plan",
			zap.Uint("account_id", data.AccountID),
			zap.String("carrier", data.Carrier),
			zap.Error(err))
		return nil, err
	}
	return mapPlanToDto(plan), nil
}

// Update applies a partial-field patch to a plan
func (r *PlansRepo) Update(planID uint, data *dto.UpdatePlanData) (*dto.PlanDto, error) {
	updates := map[string]interface{}{}
	if data.Carrier != nil {
		updates["carrier"] = *data.Carrier
	}
	if data.PlanType != nil {
		updates["plan_type"] = *data.PlanType
	}
	if data.PlanTypeID != nil {
		updates["plan_type_id"] = *data.PlanTypeID
	}
	if data.CommissionPaidByCarrier != nil {
		updates["commission_paid_by_carrier"] = *data.CommissionPaidByCarrier
	}
	if data.Billing != nil {
		updates["billing"] = *data.Billing
	}
	if data.PolicyGroupNumber != nil {
		updates["policy_group_number"] = *data.PolicyGroupNumber
	}
	if data.EffectiveDate != nil {
		date, err := parseDate(*data.EffectiveDate, "effectiveDate")
		if err != nil {
			return nil, err
		}
		updates["effective_date"] = date
	}
	if data.RenewalDate != nil {
		date, err := parseDate(*data.RenewalDate, "renewalDate")
		if err != nil {
			return nil, err
		}
		updates["renewal_date"] = date
	}
	if data.CancellationDate != nil {
		date, err := parseDate(*data.CancellationDate, "cancellationDate")
		if err != nil {
			return nil, err
		}
		updates["cancellation_date"] = date
	}
	if data.Status != nil {
		updates["status"] = *data.Status
	}

	plan, err := r.plans.UpdatePlan(planID, updates)
	if err != nil {
		r.log.Error("Failed to update plan", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, err
	}
	return mapPlanToDto(plan), nil
}

// UpdateStatus sets a plan's status
func (r *PlansRepo) UpdateStatus(planID uint, status string) (*dto.PlanDto, error) {
	plan, err := r.plans.UpdatePlanStatus(planID, status)
	if err != nil {
		r.log.Error("Failed to update plan status",
			zap.Uint("plan_id", planID),
			zap.String("status", status),
			zap.Error(err))
		return nil, err
	}
	return mapPlanToDto(plan), nil
}

// Delete soft-deletes a plan
func (r *PlansRepo) Delete(planID uint) error {
	if err := r.plans.DeletePlan(planID); err != nil {
		r.log.Error("Failed to delete plan", zap.Uint("plan_id", planID), zap.Error(err))
		return err
	}
	return nil
}

// GetUpcomingRenewals retrieves active plans renewing within the next N
// days, soonest first
func (r *PlansRepo) GetUpcomingRenewals(days int) ([]dto.PlanDto, int64, error) {
	if days <= 0 {
		days = renewalWindowDays
	}
	today := r.now()
	filters := &dto.PlanFilters{
		Status:          model.PlanStatusActive,
		RenewalDateFrom: today.Format(dto.DateLayout),
		RenewalDateTo:   today.AddDate(0, 0, days).Format(dto.DateLayout),
	}

	plans, total, err := r.plans.FetchPlansWithAccounts(filters)
	if err != nil {
		r.log.Error("Failed to fetch upcoming renewals", zap.Int("days", days), zap.Error(err))
		return nil, 0, err
	}

	// Store order is effective date descending; renewals read soonest first.
	dtos := mapPlansToDtos(plans)
	sort.Slice(dtos, func(i, j int) bool {
		return dtos[i].RenewalDate < dtos[j].RenewalDate
	})
	return dtos, total, nil
}

// ValidateReplacementPlan checks a replacement payload before any write:
// required ids present and the original plan still exists.
func (r *PlansRepo) ValidateReplacementPlan(config *dto.ReplacePlanConfig) error {
	if config.OriginalPlanID == 0 {
		return fmt.Errorf("%w: original plan ID is required", ErrValidation)
	}
	if config.ReplacementPlanTypeName == "" {
		return fmt.Errorf("%w: replacement plan type is required", ErrValidation)
	}
	if config.AccountID == 0 {
		return fmt.Errorf("%w: account ID is required", ErrValidation)
	}

	if _, err := r.plans.FetchPlanByID(config.OriginalPlanID); err != nil {
		r.log.Error("Replacement validation failed to load original plan",
			zap.Uint("original_plan_id", config.OriginalPlanID),
			zap.Error(err))
		return err
	}
	return nil
}

// CreateReplacementPlan creates the successor row for a plan being
// replaced: validate, re-fetch the original to confirm it still exists,
// then insert a pending_configuration row with a placeholder carrier,
// today's effective date and a renewal 365 days out.
//
// TODO: the configure/review steps collect carrier, billing and date values
// that are never merged into this row; the intended precedence against the
// original plan's values is still undecided.
func (r *PlansRepo) CreateReplacementPlan(config *dto.ReplacePlanConfig) (*dto.PlanDto, error) {
	if err := r.ValidateReplacementPlan(config); err != nil {
		return nil, err
	}

	if _, err := r.plans.FetchPlanByID(config.OriginalPlanID); err != nil {
		r.log.Error("Original plan disappeared before replacement insert",
			zap.Uint("original_plan_id", config.OriginalPlanID),
			zap.Error(err))
		return nil, err
	}

	today := r.now()
	plan := &model.Plan{
		AccountID:     config.AccountID,
		Carrier:       replacementCarrierPlaceholder,
		PlanType:      config.ReplacementPlanTypeName,
		EffectiveDate: today,
		RenewalDate:   today.AddDate(0, 0, replacementRenewalDays),
		Status:        model.PlanStatusPendingConfiguration,
	}
	if config.ReplacementPlanTypeID != 0 {
		planTypeID := config.ReplacementPlanTypeID
		plan.PlanTypeID = &planTypeID
	}

	if err := r.plans.CreatePlan(plan); err != nil {
		r.log.Error("Failed to create replacement plan",
			zap.Uint("original_plan_id", config.OriginalPlanID),
			zap.Uint("account_id", config.AccountID),
			zap.Error(err))
		return nil, err
	}

	r.log.Info("Replacement plan created",
		zap.Uint("original_plan_id", config.OriginalPlanID),
		zap.Uint("replacement_plan_id", plan.PlanID),
		zap.String("plan_type", plan.PlanType))
	return mapPlanToDto(plan), nil
}

// CancelPlanReplacement sets a plan's status to cancelled. This is an
// independent operation; abandoning the wizard never calls it implicitly.
func (r *PlansRepo) CancelPlanReplacement(planID uint) (*dto.PlanDto, error) {
	return r.UpdateStatus(planID, model.PlanStatusCancelled)
}

func planFromCreateData(data *dto.CreatePlanData) (*model.Plan, error) {
	effectiveDate, err := parseDate(data.EffectiveDate, "effectiveDate")
	if err != nil {
		return nil, err
	}
	renewalDate, err := parseDate(data.RenewalDate, "renewalDate")
	if err != nil {
		return nil, err
	}

	plan := &model.Plan{
		AccountID:               data.AccountID,
		Carrier:                 data.Carrier,
		PlanType:                data.PlanType,
		PlanTypeID:              data.PlanTypeID,
		CommissionPaidByCarrier: data.CommissionPaidByCarrier,
		Billing:                 data.Billing,
		PolicyGroupNumber:       data.PolicyGroupNumber,
		EffectiveDate:           effectiveDate,
		RenewalDate:             renewalDate,
		Status:                  data.Status,
	}
	if data.CancellationDate != "" {
		cancellationDate, err := parseDate(data.CancellationDate, "cancellationDate")
		if err != nil {
			return nil, err
		}
		plan.CancellationDate = &cancellationDate
	}
	return plan, nil
}
