package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/baladi39/hippo-portal/internal/repository"
	"github.com/baladi39/hippo-portal/internal/store"
	"github.com/baladi39/hippo-portal/internal/wizard"

	"github.com/labstack/echo/v4"
)

// writeError maps layer errors onto HTTP responses: missing rows become 404,
// validation and wizard-state problems become 400, everything else 500 with
// a generic message so internals never leak to the client.
func writeError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Record not found"})
	case errors.Is(err, repository.ErrValidation),
		errors.Is(err, wizard.ErrInvalidSession),
		errors.Is(err, wizard.ErrIncompleteStep):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
	}
}

// parseIDParam reads a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}

// invalidIDResponse is the shared 400 for unparseable path ids
func invalidIDResponse(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid " + name})
}

// queryInt reads an optional integer query parameter, zero when absent
func queryInt(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// queryIntPtr reads an optional integer query parameter as a pointer so the
// store can tell "absent" from "zero"
func queryIntPtr(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
