package repository

import (
	"fmt"
	"strings"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"

	"go.uber.org/zap"
)

// CarriersRepo translates carrier rows into frontend DTOs
type CarriersRepo struct {
	carriers CarrierStore
	log      *zap.Logger
}

// NewCarriersRepo creates a new carriers repository instance
func NewCarriersRepo(carriers CarrierStore, log *zap.Logger) *CarriersRepo {
	return &CarriersRepo{carriers: carriers, log: log}
}

// FindAll retrieves carriers matching the optional filters
func (r *CarriersRepo) FindAll(filters *dto.CarrierFilters) ([]dto.CarrierDto, int64, error) {
	carriers, total, err := r.carriers.FetchCarriers(filters)
	if err != nil {
		r.log.Error("Failed to list carriers", zap.Error(err))
		return nil, 0, err
	}

	dtos := make([]dto.CarrierDto, 0, len(carriers))
	for i := range carriers {
		dtos = append(dtos, *mapCarrierToDto(&carriers[i]))
	}
	return dtos, total, nil
}

// FindByID retrieves a single carrier
func (r *CarriersRepo) FindByID(carrierID uint) (*dto.CarrierDto, error) {
	carrier, err := r.carriers.FetchCarrierByID(carrierID)
	if err != nil {
		r.log.Error("Failed to fetch carrier", zap.Uint("carrier_id", carrierID), zap.Error(err))
		return nil, err
	}
	return mapCarrierToDto(carrier), nil
}

// FindAllActive retrieves active carriers for selection menus
func (r *CarriersRepo) FindAllActive() ([]dto.CarrierDto, error) {
	active := true
	dtos, _, err := r.FindAll(&dto.CarrierFilters{IsActive: &active})
	return dtos, err
}

// Create inserts a new carrier. New carriers default to active.
func (r *CarriersRepo) Create(data *dto.CreateCarrierData) (*dto.CarrierDto, error) {
	if strings.TrimSpace(data.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	carrier := &model.Carrier{
		CompanyName: data.CompanyName,
		IsActive:    true,
	}
	if data.IsActive != nil {
		carrier.IsActive = *data.IsActive
	}

	if err := r.carriers.CreateCarrier(carrier); err != nil {
		r.log.Error("Failed to create carrier", zap.String("company_name", data.CompanyName), zap.Error(err))
		return nil, err
	}
	return mapCarrierToDto(carrier), nil
}

// Update applies a partial-field patch to a carrier
func (r *CarriersRepo) Update(carrierID uint, data *dto.UpdateCarrierData) (*dto.CarrierDto, error) {
	updates := map[string]interface{}{}
	if data.CompanyName != nil {
		updates["company_name"] = *data.CompanyName
	}
	if data.IsActive != nil {
		updates["is_active"] = *data.IsActive
	}

	carrier, err := r.carriers.UpdateCarrier(carrierID, updates)
	if err != nil {
		r.log.Error("Failed to update carrier", zap.Uint("carrier_id", carrierID), zap.Error(err))
		return nil, err
	}
	return mapCarrierToDto(carrier), nil
}

// Delete soft-deletes a carrier by clearing its active flag
func (r *CarriersRepo) Delete(carrierID uint) (*dto.CarrierDto, error) {
	carrier, err := r.carriers.DeleteCarrier(carrierID)
	if err != nil {
		r.log.Error("Failed to delete carrier", zap.Uint("carrier_id", carrierID), zap.Error(err))
		return nil, err
	}
	return mapCarrierToDto(carrier), nil
}
