package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/prometheus"

	"gorm.io/gorm"
)

// PlanTypeStore issues read calls against the plan_types reference table.
// Plan types have no create/update/delete path.
type PlanTypeStore struct {
	db *gorm.DB
}

// NewPlanTypeStore creates a new plan type store instance
func NewPlanTypeStore(db *gorm.DB) *PlanTypeStore {
	return &PlanTypeStore{db: db}
}

// FetchPlanTypes retrieves all active plan types ordered by name
func (s *PlanTypeStore) FetchPlanTypes() ([]model.PlanType, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var planTypes []model.PlanType
	err := s.db.Where("is_active = ?", true).
		Order("plan_type_name").Find(&planTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plan types: %w", err)
	}
	return planTypes, nil
}

// FetchPlanTypeByID retrieves a single active plan type or ErrNotFound
func (s *PlanTypeStore) FetchPlanTypeByID(planTypeID uint) (*model.PlanType, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var planType model.PlanType
	err := s.db.First(&planType, "plan_type_id = ? AND is_active = ?", planTypeID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plan type %d: %w", planTypeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch plan type %d: %w", planTypeID, err)
	}
	return &planType, nil
}
