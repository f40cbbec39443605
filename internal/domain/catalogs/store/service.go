package store

import (
	"context"

	"storecatalog/internal/core/tx"
	"storecatalog/internal/domain"
	"storecatalog/pkg/logger"
)

// Service provides business logic for the Store catalog.
type Service struct {
	*domain.CatalogService[*Store]
	repo Repository
}

// NewService creates a new Store service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Store]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "store",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.prepareForUpdate)
	base.Hooks().OnAfterCreate(logChange("store created"))
	base.Hooks().OnAfterUpdate(logChange("store updated"))
	base.Hooks().OnAfterDelete(logChange("store deleted"))

	return svc
}

// A preset timestamp survives create, so clones keep their source's value.
func (s *Service) prepareForCreate(_ context.Context, st *Store) error {
	st.TouchIfUnset()
	return nil
}

func (s *Service) prepareForUpdate(_ context.Context, st *Store) error {
	st.Touch()
	return nil
}

func logChange(msg string) domain.Hook[*Store] {
	return func(ctx context.Context, st *Store) error {
		logger.Info(ctx, msg, "store_id", st.ID, "name", st.Name)
		return nil
	}
}

// FindByLocation returns stores whose location contains substring.
func (s *Service) FindByLocation(ctx context.Context, substring string) ([]*Store, error) {
	return s.repo.FindByLocation(ctx, substring)
}
