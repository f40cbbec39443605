package supplier

import (
	"context"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/id"
	"storecatalog/internal/core/tx"
	"storecatalog/internal/domain"
)

// Service provides business logic for the Supplier catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Supplier]
	repo Repository
}

// NewService creates a new Supplier service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "supplier",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, sp *Supplier) error {
	if err := s.checkEmailFree(ctx, sp.Email, sp.ID); err != nil {
		return err
	}
	sp.Touch()
	return nil
}

func (s *Service) prepareForUpdate(ctx context.Context, sp *Supplier) error {
	if err := s.checkEmailFree(ctx, sp.Email, sp.ID); err != nil {
		return err
	}
	sp.Touch()
	return nil
}

// FindByEmail retrieves supplier by email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*Supplier, error) {
	return s.repo.FindByEmail(ctx, email)
}

// checkEmailFree fails with DuplicateConflict if another supplier uses email.
func (s *Service) checkEmailFree(ctx context.Context, email string, excludeID id.ID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Not found is OK; other errors must be propagated.
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return apperror.NewDuplicate("supplier", "email", email)
	}
	return nil
}
