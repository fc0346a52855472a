package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// OrderRepository persists order aggregates. Create and Replace must write
// the order document and the LineRef entries on every referenced book as one
// unit: either the full order-plus-refs write is visible or none of it is.
// Delete must remove the book-side refs together with the order.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Replace(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
