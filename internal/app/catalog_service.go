package app

import (
	"context"

	"github.com/SinhaGautam/nothing-server-app/internal/domain"
)

type ProductLister interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
}

// CatalogService exposes the read-only storefront views of the catalog.
type CatalogService struct {
	repo ProductLister
}

func NewCatalogService(repo ProductLister) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListActive(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *CatalogService) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListFeatured(ctx)
}
