package usecase

import (
	"context"

	"go-quote-backend/internal/domain"
)

type CatalogUsecase interface {
	Categories(ctx context.Context) []domain.ServiceCategory
}

type catalogUsecase struct {
	catalog *domain.Catalog
}

func NewCatalogUsecase(catalog *domain.Catalog) CatalogUsecase {
	return &catalogUsecase{catalog: catalog}
}

func (u *catalogUsecase) Categories(ctx context.Context) []domain.ServiceCategory {
	return u.catalog.Categories()
}
