package ports

import (
	"context"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// OrderService creates and looks up orders. The owner of a new order is the
// authenticated caller passed in explicitly; there is no ambient identity.
type OrderService interface {
	// Save persists a new order for the named caller: line back-references
	// and book reverse refs are linked, OrderDate is stamped with server
	// time regardless of any client-supplied value.
	Save(ctx context.Context, order *domain.Order, username string) (*domain.Order, error)
	// Replace overwrites an existing order wholesale (administrative path);
	// the replacement is re-linked and re-stamped like a fresh save.
	Replace(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	// FindByUsername returns the orders owned by the named user. A
	// nonexistent username yields an empty slice, not an error.
	FindByUsername(ctx context.Context, username string) ([]*domain.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
