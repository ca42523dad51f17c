package handler

import (
	"net/http"
	"strconv"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/pkg/logger"
	"github.com/baladi39/hippo-portal/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CarrierHandler exposes carrier reference-data CRUD
type CarrierHandler struct {
	carriers *repository.CarriersRepo
}

// NewCarrierHandler creates a new carrier handler instance
func NewCarrierHandler(carriers *repository.CarriersRepo) *CarrierHandler {
	return &CarrierHandler{carriers: carriers}
}

// ListCarriers handles retrieving carriers with optional filtering
func (h *CarrierHandler) ListCarriers(c echo.Context) error {
	log := logger.FromContext(c)

	filters := &dto.CarrierFilters{
		SearchTerm: c.QueryParam("search"),
		Offset:     queryIntPtr(c, "offset"),
		Limit:      queryInt(c, "limit"),
	}
	if raw := c.QueryParam("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid isActive parameter"})
		}
		filters.IsActive = &active
	}

	carriers, total, err := h.carriers.FindAll(filters)
	if err != nil {
		log.Error("Failed to list carriers", zap.Error(err))
		return writeError(c, err, "Failed to retrieve carriers")
	}

	prometheus.RecordCarrierOperation("list")
	log.Info("Carriers retrieved successfully", zap.Int("count", len(carriers)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"carriers": carriers,
		"total":    total,
	})
}

// GetCarrier handles retrieving a single carrier by ID
func (h *CarrierHandler) GetCarrier(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "carrier ID")
	}

	carrier, err := h.carriers.FindByID(id)
	if err != nil {
		log.Error("Carrier not found", zap.Uint("carrier_id", id), zap.Error(err))
		return writeError(c, err, "Failed to retrieve carrier")
	}

	prometheus.RecordCarrierOperation("get")
	return c.JSON(http.StatusOK, carrier)
}

// CreateCarrier handles creating a new carrier
func (h *CarrierHandler) CreateCarrier(c echo.Context) error {
	log := logger.FromContext(c)

	var req dto.CreateCarrierData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	carrier, err := h.carriers.Create(&req)
	if err != nil {
		log.Error("Failed to create carrier", zap.String("company_name", req.CompanyName), zap.Error(err))
		return writeError(c, err, "Failed to create carrier")
	}

	prometheus.RecordCarrierOperation("create")
	log.Info("Carrier created successfully",
		zap.Uint("carrier_id", carrier.CarrierID),
		zap.String("company_name", carrier.CompanyName))
	return c.JSON(http.StatusCreated, carrier)
}

// UpdateCarrier handles a partial-field carrier update
func (h *CarrierHandler) UpdateCarrier(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "carrier ID")
	}

	var req dto.UpdateCarrierData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("carrier_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	carrier, err := h.carriers.Update(id, &req)
	if err != nil {
		log.Error("Failed to update carrier", zap.Uint("carrier_id", id), zap.Error(err))
		return writeError(c, err, "Failed to update carrier")
	}

	prometheus.RecordCarrierOperation("update")
	log.Info("Carrier updated successfully", zap.Uint("carrier_id", id))
	return c.JSON(http.StatusOK, carrier)
}

// DeleteCarrier handles soft-deleting a carrier
func (h *CarrierHandler) DeleteCarrier(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "carrier ID")
	}

	carrier, err := h.carriers.Delete(id)
	if err != nil {
		log.Error("Failed to delete carrier", zap.Uint("carrier_id", id), zap.Error(err))
		return writeError(c, err, "Failed to delete carrier")
	}

	prometheus.RecordCarrierOperation("delete")
	log.Info("Carrier deactivated", zap.Uint("carrier_id", id))
	return c.JSON(http.StatusOK, carrier)
}
