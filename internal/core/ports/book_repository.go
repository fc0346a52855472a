package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// BookRepository defines persistence operations for catalog items.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindAll(ctx context.Context) ([]*domain.Book, error)
	// Replace overwrites the stored book wholesale (last writer wins).
	Replace(ctx context.Context, book *domain.Book) error
	DeleteByID(ctx context.Context, id string) error
}
