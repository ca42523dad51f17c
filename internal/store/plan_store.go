package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/prometheus"

	"gorm.io/gorm"
)

// PlanStore issues read/write calls against the plans table
type PlanStore struct {
	db *gorm.DB
}

// NewPlanStore creates a new plan store instance
func NewPlanStore(db *gorm.DB) *PlanStore {
	return &PlanStore{db: db}
}

// FetchPlansWithAccounts retrieves plans joined with their owning account,
// ordered by effective date descending, plus the total count before
// pagination. Filters are conjunctive.
func (s *PlanStore) FetchPlansWithAccounts(filters *dto.PlanFilters) ([]model.Plan, int64, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	query := s.db.Model(&model.Plan{}).Order("effective_date DESC")

	if filters != nil {
		if filters.SearchTerm != "" {
			term := "%" + filters.SearchTerm + "%"
			query = query.Where(
				"carrier ILIKE ? OR plan_type ILIKE ? OR policy_group_number ILIKE ?",
				term, term, term,
			)
		}
		if filters.AccountID != 0 {
			query = query.Where("account_id = ?", filters.AccountID)
		}
		if filters.Carrier != "" {
			query = query.Where("carrier = ?", filters.Carrier)
		}
		if filters.PlanType != "" {
			query = query.Where("plan_type = ?", filters.PlanType)
		}
		if filters.Status != "" {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.EffectiveDateFrom != "" {
			query = query.Where("effective_date >= ?", filters.EffectiveDateFrom)
		}
		if filters.EffectiveDateTo != "" {
			query = query.Where("effective_date <= ?", filters.EffectiveDateTo)
		}
		if filters.RenewalDateFrom != "" {
			query = query.Where("renewal_date >= ?", filters.RenewalDateFrom)
		}
		if filters.RenewalDateTo != "" {
			query = query.Where("renewal_date <= ?", filters.RenewalDateTo)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	if filters != nil && filters.Offset != nil {
		limit := filters.Limit
		if limit == 0 {
			limit = 50
		}
		query = query.Offset(*filters.Offset).Limit(limit)
	}

	var plans []model.Plan
	if err := query.Preload("Account").Find(&plans).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch plans: %w", err)
	}
	return plans, total, nil
}

// FetchPlanByID retrieves a single plan (without its account) or ErrNotFound
func (s *PlanStore) FetchPlanByID(planID uint) (*model.Plan, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var plan model.Plan
	err := s.db.First(&plan, "plan_id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plan %d: %w", planID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch plan %d: %w", planID, err)
	}
	return &plan, nil
}

// FetchPlansByAccountID retrieves all plans for one account, ordered by
// effective date descending
func (s *PlanStore) FetchPlansByAccountID(accountID uint) ([]model.Plan, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var plans []model.Plan
	err := s.db.Where("account_id = ?", accountID).
		Order("effective_date DESC").Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans for account %d: %w", accountID, err)
	}
	return plans, nil
}

// CreatePlan inserts a new plan row, stamping created_date
func (s *PlanStore) CreatePlan(plan *model.Plan) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	plan.CreatedDate = time.Now()
	if err := s.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// UpdatePlan applies the given column updates to a plan, stamping
// updated_date, and returns the refreshed row.
func (s *PlanStore) UpdatePlan(planID uint, updates map[string]interface{}) (*model.Plan, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	updates["updated_date"] = time.Now()
	result := s.db.Model(&model.Plan{}).Where("plan_id = ?", planID).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update plan %d: %w", planID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("plan %d: %w", planID, ErrNotFound)
	}
	return s.FetchPlanByID(planID)
}

// UpdatePlanStatus sets only the status column, stamping updated_date
func (s *PlanStore) UpdatePlanStatus(planID uint, status string) (*model.Plan, error) {
	return s.UpdatePlan(planID, map[string]interface{}{"status": status})
}

// DeletePlan soft-deletes a plan by setting its status to cancelled. The
// row is retained.
func (s *PlanStore) DeletePlan(planID uint) error {
	_, err := s.UpdatePlanStatus(planID, model.PlanStatusCancelled)
	return err
}
