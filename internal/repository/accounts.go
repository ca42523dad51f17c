package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/baladi39/hippo-portal/internal/dto"
	"github.com/baladi39/hippo-portal/internal/model"
	"github.com/baladi39/hippo-portal/internal/workitems"

	"go.uber.org/zap"
)

const (
	renewalWindowDays     = 30
	newBusinessWindowDays = 90
)

// AccountsRepo translates account and joined plan rows into frontend DTOs
// and derives the dashboard aggregates.
type AccountsRepo struct {
	accounts  AccountStore
	plans     PlanStore
	workItems workitems.Provider
	log       *zap.Logger
	now       func() time.Time
}

// NewAccountsRepo creates a new accounts repository instance
func NewAccountsRepo(accounts AccountStore, plans PlanStore, workItems workitems.Provider, log *zap.Logger) *AccountsRepo {
	return &AccountsRepo{
		accounts:  accounts,
		plans:     plans,
		workItems: workItems,
		log:       log,
		now:       time.Now,
	}
}

// FindAll retrieves accounts matching the optional filters
func (r *AccountsRepo) FindAll(filters *dto.AccountFilters) ([]dto.AccountDto, int64, error) {
	accounts, total, err := r.accounts.FetchAccounts(filters)
	if err != nil {
		r.log.Error("Failed to list accounts", zap.Error(err))
		return nil, 0, err
	}

	dtos := make([]dto.AccountDto, 0, len(accounts))
	for i := range accounts {
		dtos = append(dtos, *mapAccountToDto(&accounts[i]))
	}
	return dtos, total, nil
}

// FindByID retrieves a single account
func (r *AccountsRepo) FindByID(accountID uint) (*dto.AccountDto, error) {
	account, err := r.accounts.FetchAccountByID(accountID)
	if err != nil {
		r.log.Error("Failed to fetch account", zap.Uint("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return mapAccountToDto(account), nil
}

// FindByName retrieves a single account by its name. Kept for legacy pages
// that address accounts by name instead of id.
func (r *AccountsRepo) FindByName(name string) (*dto.AccountDto, error) {
	account, err := r.accounts.FetchAccountByName(name)
	if err != nil {
		r.log.Error("Failed to fetch account by name", zap.String("account", name), zap.Error(err))
		return nil, err
	}
	return mapAccountToDto(account), nil
}

// Create inserts a new account
func (r *AccountsRepo) Create(data *dto.CreateAccountData) (*dto.AccountDto, error) {
	if strings.TrimSpace(data.AccountName) == "" {
		return nil, fmt.Errorf("%w: account name is required", ErrValidation)
	}

	account := accountFromCreateData(data)
	if err := r.accounts.CreateAccount(account); err != nil {
		r.log.Error("Failed to create account", zap.String("account", data.AccountName), zap.Error(err))
		return nil, err
	}
	return mapAccountToDto(account), nil
}

// Update applies a partial-field patch to an account
func (r *AccountsRepo) Update(accountID uint, data *dto.UpdateAccountData) (*dto.AccountDto, error) {
	updates := map[string]interface{}{}
	if data.AccountName != nil {
		updates["account"] = *data.AccountName
	}
	if data.SBA != nil {
		updates["sba"] = *data.SBA
	}
	if data.State != nil {
		updates["state"] = *data.State
	}
	if data.CommissionBasis1 != nil {
		updates["commission_1_basis"] = *data.CommissionBasis1
	}
	if data.CommissionBasis2 != nil {
		updates["commission_2_basis"] = *data.CommissionBasis2
	}
	if data.FlatFee != nil {
		updates["flat_fee"] = *data.FlatFee
	}
	if data.Percentage != nil {
		updates["percentage"] = *data.Percentage
	}

	account, err := r.accounts.UpdateAccount(accountID, updates)
	if err != nil {
		r.log.Error("Failed to update account", zap.Uint("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return mapAccountToDto(account), nil
}

// FindAllPlansWithAccounts retrieves plans joined with their account
func (r *AccountsRepo) FindAllPlansWithAccounts(filters *dto.PlanFilters) ([]dto.PlanDto, int64, error) {
	plans, total, err := r.plans.FetchPlansWithAccounts(filters)
	if err != nil {
		r.log.Error("Failed to fetch plans with accounts", zap.Error(err))
		return nil, 0, err
	}
	return mapPlansToDtos(plans), total, nil
}

// SearchPlansWithAccounts performs the free-text plan search. The full
// joined set is fetched and matched in memory so the term also covers the
// account name, which the store-side filter cannot reach; the in-memory
// match supersedes the server-side one to keep results predictable.
func (r *AccountsRepo) SearchPlansWithAccounts(searchTerm string) ([]dto.PlanDto, int64, error) {
	plans, _, err := r.plans.FetchPlansWithAccounts(nil)
	if err != nil {
		r.log.Error("Failed to search plans", zap.String("search_term", searchTerm), zap.Error(err))
		return nil, 0, err
	}

	term := strings.ToLower(searchTerm)
	matched := make([]dto.PlanDto, 0)
	for i := range plans {
		plan := &plans[i]
		accountName := ""
		if plan.Account != nil {
			accountName = strings.ToLower(plan.Account.Account)
		}
		if strings.Contains(accountName, term) ||
			strings.Contains(strings.ToLower(plan.Carrier), term) ||
			strings.Contains(strings.ToLower(plan.PlanType), term) ||
			strings.Contains(strings.ToLower(plan.PolicyGroupNumber), term) {
			matched = append(matched, *mapPlanToDto(plan))
		}
	}
	return matched, int64(len(matched)), nil
}

// FindAccountsWithPlans joins accounts to their plans in memory after two
// independent fetches and counts each account's renewals due in the next
// thirty days.
func (r *AccountsRepo) FindAccountsWithPlans() ([]dto.AccountWithPlansDto, error) {
	accounts, _, err := r.accounts.FetchAccounts(nil)
	if err != nil {
		r.log.Error("Failed to fetch accounts for join", zap.Error(err))
		return nil, err
	}
	plans, _, err := r.plans.FetchPlansWithAccounts(nil)
	if err != nil {
		r.log.Error("Failed to fetch plans for join", zap.Error(err))
		return nil, err
	}

	today := r.now()
	windowEnd := today.AddDate(0, 0, renewalWindowDays)

	result := make([]dto.AccountWithPlansDto, 0, len(accounts))
	for i := range accounts {
		account := &accounts[i]

		accountPlans := make([]dto.PlanDto, 0)
		upcomingRenewals := 0
		for j := range plans {
			plan := &plans[j]
			if plan.AccountID != account.AccountID {
				continue
			}
			accountPlans = append(accountPlans, *mapPlanToDto(plan))
			if !plan.RenewalDate.Before(today) && !plan.RenewalDate.After(windowEnd) {
				upcomingRenewals++
			}
		}

		result = append(result, dto.AccountWithPlansDto{
			AccountID:               account.AccountID,
			AccountName:             account.Account,
			AccountOfficeDivision:   account.State,
			AccountPrimarySalesLead: fieldPlaceholder,
			AccountClassification:   fieldPlaceholder,
			Plans:                   accountPlans,
			TotalPlans:              len(accountPlans),
			UpcomingRenewals:        upcomingRenewals,
		})
	}
	return result, nil
}

// GenerateDashboardSummary scans the full plan collection once and buckets
// each plan into at most one of upForRenewal, expiredNoAction or
// newBusiness, in that precedence order. The products section mirrors the
// plans section until products are modeled separately.
func (r *AccountsRepo) GenerateDashboardSummary() (*dto.DashboardSummary, error) {
	plans, _, err := r.plans.FetchPlansWithAccounts(nil)
	if err != nil {
		r.log.Error("Failed to fetch plans for dashboard summary", zap.Error(err))
		return nil, err
	}

	today := r.now()
	renewalWindowEnd := today.AddDate(0, 0, renewalWindowDays)
	newBusinessStart := today.AddDate(0, 0, -newBusinessWindowDays)

	summary := &dto.DashboardSummary{}
	for i := range plans {
		plan := &plans[i]
		switch {
		case !plan.RenewalDate.Before(today) && !plan.RenewalDate.After(renewalWindowEnd):
			summary.Plans.UpForRenewal++
		case plan.RenewalDate.Before(today) && plan.Status == model.PlanStatusActive:
			summary.Plans.ExpiredNoAction++
		case !plan.EffectiveDate.Before(newBusinessStart) && !plan.EffectiveDate.After(today):
			summary.Plans.NewBusiness++
		}
	}

	summary.Products = summary.Plans
	summary.RecordAssignments = r.workItems.RecordAssignments()
	summary.Activities = r.workItems.Activities()
	summary.Requests = r.workItems.Requests()
	return summary, nil
}

func accountFromCreateData(data *dto.CreateAccountData) *model.Account {
	return &model.Account{
		Account:          data.AccountName,
		SBA:              data.SBA,
		State:            data.State,
		Commission1Basis: data.CommissionBasis1,
		Commission2Basis: data.CommissionBasis2,
		FlatFee:          data.FlatFee,
		Percentage:       data.Percentage,
	}
}
