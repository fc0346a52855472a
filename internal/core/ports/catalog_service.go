package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// CatalogService is plain CRUD over books. Save rejects candidates that
// already carry an identity; Update without an identity delegates to Save.
type CatalogService interface {
	Save(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindAll(ctx context.Context) ([]*domain.Book, error)
	DeleteByID(ctx context.Context, id string) error
}
