package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"helpcenter/internal/domain"
	"helpcenter/internal/repository"
	"helpcenter/internal/validator"
)

// AccountService implements the admin dashboard operations over accounts.
type AccountService struct {
	accounts  repository.AccountRepository
	validator *validator.Validator

	pageSize      int
	defaultLocale string
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts repository.AccountRepository, v *validator.Validator, pageSize int, defaultLocale string) *AccountService {
	return &AccountService{
		accounts:      accounts,
		validator:     v,
		pageSize:      pageSize,
		defaultLocale: defaultLocale,
	}
}

// List returns one page of accounts matching the search query over the
// dashboard's searchable fields.
func (s *AccountService) List(ctx context.Context, query string, page int) ([]domain.Account, domain.PageMeta, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize

	accounts, total, err := s.accounts.Search(ctx, query, s.pageSize, offset)
	if err != nil {
		return nil, domain.PageMeta{}, fmt.Errorf("search accounts: %w", err)
	}

	return accounts, domain.NewPageMeta(total, s.pageSize, page), nil
}

// Get fetches an account by id.
func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// Create validates and persists a new account. New accounts default to the
// active status.
func (s *AccountService) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.Locale == "" {
		account.Locale = s.defaultLocale
	}
	if account.Status == "" {
		account.Status = domain.AccountStatusActive
	}

	if err := s.validator.ValidateAccount(account); err != nil {
		return err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Update applies a partial update limited to the dashboard form attributes
// and re-validates the full record.
func (s *AccountService) Update(ctx context.Context, id string, patch domain.AccountPatch) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.Locale != nil {
		account.Locale = *patch.Locale
	}
	if patch.Status != nil {
		account.Status = *patch.Status
	}

	if err := s.validator.ValidateAccount(account); err != nil {
		return nil, err
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return account, nil
}
