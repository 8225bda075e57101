package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"helpcenter/internal/domain"
	"helpcenter/internal/repository"
	"helpcenter/internal/validator"
)

// PortalService resolves portals within an account and manages their
// categories.
type PortalService struct {
	portals    repository.PortalRepository
	categories repository.CategoryRepository
	validator  *validator.Validator

	defaultLocale string
}

// NewPortalService creates a new PortalService.
func NewPortalService(portals repository.PortalRepository, categories repository.CategoryRepository, v *validator.Validator, defaultLocale string) *PortalService {
	return &PortalService{
		portals:       portals,
		categories:    categories,
		validator:     v,
		defaultLocale: defaultLocale,
	}
}

// GetPortal resolves a portal by slug within an account. Resolution failure
// aborts a request before any article logic runs.
func (s *PortalService) GetPortal(ctx context.Context, accountID, slug string) (*domain.Portal, error) {
	return s.portals.GetBySlug(ctx, accountID, slug)
}

// CreatePortal persists a new portal.
func (s *PortalService) CreatePortal(ctx context.Context, portal *domain.Portal) error {
	if portal.ID == "" {
		portal.ID = uuid.New().String()
	}
	if portal.Slug == "" {
		portal.Slug = Slugify(portal.Name)
	}
	if err := s.portals.Create(ctx, portal); err != nil {
		return fmt.Errorf("create portal: %w", err)
	}
	return nil
}

// ListPortals returns all portals owned by an account.
func (s *PortalService) ListPortals(ctx context.Context, accountID string) ([]domain.Portal, error) {
	return s.portals.ListByAccount(ctx, accountID)
}

// ListCategories returns a portal's categories in position order.
func (s *PortalService) ListCategories(ctx context.Context, portalID string) ([]domain.Category, error) {
	return s.categories.ListByPortal(ctx, portalID)
}

// CreateCategory validates and persists a new category at the end of the
// portal's list.
func (s *PortalService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	if category.Locale == "" {
		category.Locale = s.defaultLocale
	}

	if err := s.validator.ValidateCategory(category); err != nil {
		return err
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category. Its articles stay, uncategorized.
func (s *PortalService) DeleteCategory(ctx context.Context, portalID, id string) error {
	return s.categories.Delete(ctx, portalID, id)
}
