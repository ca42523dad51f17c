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

// AccountHandler exposes account CRUD, the joined account/plan views and the
// dashboard summary
type AccountHandler struct {
	accounts *repository.AccountsRepo
	plans    *repository.PlansRepo
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts *repository.AccountsRepo, plans *repository.PlansRepo) *AccountHandler {
	return &AccountHandler{accounts: accounts, plans: plans}
}

// ListAccounts handles retrieving all accounts with optional filtering
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	log := logger.FromContext(c)

	filters := &dto.AccountFilters{
		SearchTerm: c.QueryParam("search"),
		State:      c.QueryParam("state"),
		SBA:        queryInt(c, "sba"),
		Offset:     queryIntPtr(c, "offset"),
		Limit:      queryInt(c, "limit"),
	}

	accounts, total, err := h.accounts.FindAll(filters)
	if err != nil {
		log.Error("Failed to list accounts", zap.Error(err))
		return writeError(c, err, "Failed to retrieve accounts")
	}

	prometheus.RecordAccountOperation("list")
	log.Info("Accounts retrieved successfully", zap.Int("count", len(accounts)), zap.Int64("total", total))
	return c.JSON(http.StatusOK, echo.Map{
		"accounts": accounts,
		"total":    total,
	})
}

// GetAccount handles retrieving a single account by ID
func (h *AccountHandler) GetAccount(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "account ID")
	}

	account, err := h.accounts.FindByID(id)
	if err != nil {
		log.Error("Account not found", zap.Uint("account_id", id), zap.Error(err))
		return writeError(c, err, "Failed to retrieve account")
	}

	prometheus.RecordAccountOperation("get")
	return c.JSON(http.StatusOK, account)
}

// CreateAccount handles creating a new account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	log := logger.FromContext(c)

	var req dto.CreateAccountData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.Create(&req)
	if err != nil {
		log.Error("Failed to create account", zap.String("account", req.AccountName), zap.Error(err))
		return writeError(c, err, "Failed to create account")
	}

	prometheus.RecordAccountOperation("create")
	log.Info("Account created successfully",
		zap.Uint("account_id", account.AccountID),
		zap.String("account", account.AccountName))
	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount handles a partial-field account update
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "account ID")
	}

	var req dto.UpdateAccountData
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("account_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	account, err := h.accounts.Update(id, &req)
	if err != nil {
		log.Error("Failed to update account", zap.Uint("account_id", id), zap.Error(err))
		return writeError(c, err, "Failed to update account")
	}

	prometheus.RecordAccountOperation("update")
	log.Info("Account updated successfully", zap.Uint("account_id", id))
	return c.JSON(http.StatusOK, account)
}

// GetAccountPlans handles retrieving all plans belonging to one account
func (h *AccountHandler) GetAccountPlans(c echo.Context) error {
	log := logger.FromContext(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c, "account ID")
	}

	plans, err := h.plans.FindByAccountID(id)
	if err != nil {
		log.Error("Failed to fetch account plans", zap.Uint("account_id", id), zap.Error(err))
		return writeError(c, err, "Failed to retrieve account plans")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"plans": plans,
		"total": len(plans),
	})
}

// GetAccountDashboard handles the account detail page payload: the account
// together with its plans. Newer pages address the account by its id path
// segment; legacy pages pass the account name in the account query parameter
// instead.
func (h *AccountHandler) GetAccountDashboard(c echo.Context) error {
	log := logger.FromContext(c)

	var (
		account *dto.AccountDto
		err     error
	)
	if name := c.QueryParam("account"); name != "" {
		account, err = h.accounts.FindByName(name)
		if err != nil {
			log.Error("Account not found for dashboard", zap.String("account", name), zap.Error(err))
			return writeError(c, err, "Failed to retrieve account")
		}
	} else {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return invalidIDResponse(c, "account ID")
		}
		account, err = h.accounts.FindByID(id)
		if err != nil {
			log.Error("Account not found for dashboard", zap.Uint("account_id", id), zap.Error(err))
			return writeError(c, err, "Failed to retrieve account")
		}
	}

	plans, err := h.plans.FindByAccountID(account.AccountID)
	if err != nil {
		log.Error("Failed to fetch plans for account dashboard", zap.Uint("account_id", account.AccountID), zap.Error(err))
		return writeError(c, err, "Failed to retrieve account plans")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"account":    account,
		"plans":      plans,
		"totalPlans": len(plans),
	})
}

// ListAccountsWithPlans handles the joined accounts-with-plans view
func (h *AccountHandler) ListAccountsWithPlans(c echo.Context) error {
	log := logger.FromContext(c)

	accounts, err := h.accounts.FindAccountsWithPlans()
	if err != nil {
		log.Error("Failed to fetch accounts with plans", zap.Error(err))
		return writeError(c, err, "Failed to retrieve accounts with plans")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"accounts": accounts,
		"total":    len(accounts),
	})
}

// GetDashboardSummary handles the home dashboard aggregation
func (h *AccountHandler) GetDashboardSummary(c echo.Context) error {
	log := logger.FromContext(c)

	summary, err := h.accounts.GenerateDashboardSummary()
	if err != nil {
		log.Error("Failed to generate dashboard summary", zap.Error(err))
		return writeError(c, err, "Failed to generate dashboard summary")
	}

	return c.JSON(http.StatusOK, summary)
}
