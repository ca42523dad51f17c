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

// AccountStore issues read/write calls against the accounts table
type AccountStore struct {
	db *gorm.DB
}

// NewAccountStore creates a new account store instance
func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// FetchAccounts retrieves accounts matching the optional filters, plus the
// total count before pagination. Filters are conjunctive.
func (s *AccountStore) FetchAccounts(filters *dto.AccountFilters) ([]model.Account, int64, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	query := s.db.Model(&model.Account{}).Order("account")

	if filters != nil {
		if filters.SearchTerm != "" {
			term := "%" + filters.SearchTerm + "%"
			query = query.Where("account ILIKE ? OR state ILIKE ?", term, term)
		}
		if filters.State != "" {
			query = query.Where("state = ?", filters.State)
		}
		if filters.SBA != 0 {
			query = query.Where("sba = ?", filters.SBA)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	if filters != nil && filters.Offset != nil {
		limit := filters.Limit
		if limit == 0 {
			limit = 50
		}
		query = query.Offset(*filters.Offset).Limit(limit)
	}

	var accounts []model.Account
	if err := query.Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, total, nil
}

// FetchAccountByID retrieves a single account or ErrNotFound
func (s *AccountStore) FetchAccountByID(accountID uint) (*model.Account, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var account model.Account
	err := s.db.First(&account, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", accountID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch account %d: %w", accountID, err)
	}
	return &account, nil
}

// FetchAccountByName retrieves a single account by its name or ErrNotFound.
// Kept for legacy routes that still address accounts by name.
func (s *AccountStore) FetchAccountByName(name string) (*model.Account, error) {
	defer prometheus.TrackDBOperation("select")(time.Now())

	var account model.Account
	err := s.db.First(&account, "account = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch account %q: %w", name, err)
	}
	return &account, nil
}

// CreateAccount inserts a new account row, stamping created_date
func (s *AccountStore) CreateAccount(account *model.Account) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	account.CreatedDate = time.Now()
	if err := s.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// UpdateAccount applies the given column updates to an account, stamping
// updated_date, and returns the refreshed row.
func (s *AccountStore) UpdateAccount(accountID uint, updates map[string]interface{}) (*model.Account, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	updates["updated_date"] = time.Now()
	result := s.db.Model(&model.Account{}).Where("account_id = ?", accountID).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", accountID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("account %d: %w", accountID, ErrNotFound)
	}
	return s.FetchAccountByID(accountID)
}
