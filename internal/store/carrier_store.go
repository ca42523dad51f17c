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

// CarrierStore issues read/write calls against the carriers table
type CarrierStore struct {
	db *gorm.DB
}

// NewCarrierStore creates a new carrier store instance
func NewCarrierStore(db *gorm.DB) *CarrierStore {
	return &CarrierStore{db: db}
}

// FetchCarriers retrieves carriers matching the optional filters, ordered by
// company name, plus the total count before pagination.
func (s *CarrierStore) FetchCarriers(filters *dto.CarrierFilters) ([]model.Carrier, int64, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	query := s.db.Model(&model.Carrier{}).Order("company_name")

	if filters != nil {
		if filters.SearchTerm != "" {
			query = query.Where("company_name ILIKE ?", "%"+filters.SearchTerm+"%")
		}
		if filters.IsActive != nil {
			query = query.Where("is_active = ?", *filters.IsActive)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count carriers: %w", err)
	}

	if filters != nil && filters.Offset != nil {
		limit := filters.Limit
		if limit == 0 {
			limit = 50
		}
		query = query.Offset(*filters.Offset).Limit(limit)
	}

	var carriers []model.Carrier
	if err := query.Find(&carriers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch carriers: %w", err)
	}
	return carriers, total, nil
}

// FetchCarrierByID retrieves a single carrier or ErrNotFound
func (s *CarrierStore) FetchCarrierByID(carrierID uint) (*model.Carrier, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var carrier model.Carrier
	err := s.db.First(&carrier, "carrier_id = ?", carrierID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("carrier %d: %w", carrierID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch carrier %d: %w", carrierID, err)
	}
	return &carrier, nil
}

// CreateCarrier inserts a new carrier row
func (s *CarrierStore) CreateCarrier(carrier *model.Carrier) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := s.db.Create(carrier).Error; err != nil {
		return fmt.Errorf("failed to create carrier: %w", err)
	}
	return nil
}

// UpdateCarrier applies the given column updates to a carrier, stamping
// updated_at, and returns the refreshed row.
func (s *CarrierStore) UpdateCarrier(carrierID uint, updates map[string]interface{}) (*model.Carrier, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	updates["updated_at"] = time.Now()
	result := s.db.Model(&model.Carrier{}).Where("carrier_id = ?", carrierID).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update carrier %d: %w", carrierID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("carrier %d: %w", carrierID, ErrNotFound)
	}
	return s.FetchCarrierByID(carrierID)
}

// DeleteCarrier soft-deletes a carrier by clearing its active flag. The
// record is retained.
func (s *CarrierStore) DeleteCarrier(carrierID uint) (*model.Carrier, error) {
	return s.UpdateCarrier(carrierID, map[string]interface{}{"is_active": false})
}
