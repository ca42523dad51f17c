package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/prometheus"

	"gorm.io/gorm"
)

// PlanConfigStore issues read/write calls against the plan_configs table
type PlanConfigStore struct {
	db *gorm.DB
}

// NewPlanConfigStore creates a new plan config store instance
func NewPlanConfigStore(db *gorm.DB) *PlanConfigStore {
	return &PlanConfigStore{db: db}
}

// CreatePlanConfig inserts a new plan configuration row
func (s *PlanConfigStore) CreatePlanConfig(config *model.PlanConfig) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := s.db.Create(config).Error; err != nil {
		return fmt.Errorf("failed to create plan config: %w", err)
	}
	return nil
}

// FetchPlanConfigByPlanID retrieves the configuration saved for a plan or
// ErrNotFound
func (s *PlanConfigStore) FetchPlanConfigByPlanID(planID uint) (*model.PlanConfig, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var config model.PlanConfig
	err := s.db.First(&config, "plan_id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plan config for plan %d: %w", planID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch plan config for plan %d: %w", planID, err)
	}
	return &config, nil
}
