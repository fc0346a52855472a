package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

// OrderService owns order placement and the order/line/book association
// invariant. The caller's identity is always passed in explicitly.
type OrderService struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, logger: logger}
}

// Save persists a new order owned by the named caller. The owner and the
// order date come from the server, never from the submitted payload: the
// order is re-assigned to the resolved user and OrderDate is stamped with
// the current time. LinkLines plus the repository's reverse-ref write keep
// both sides of the line/book association in step.
func (s *OrderService) Save(ctx context.Context, order *domain.Order, username string) (*domain.Order, error) {
	if order.ID != "" {
		return nil, domain.ErrIDAssigned
	}

	owner, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	order.ID = uuid.NewString()
	order.UserID = owner.ID
	order.Username = owner.Username
	order.OrderDate = time.Now().UTC()
	order.LinkLines(uuid.NewString)

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("username", username).
		Int("lines", len(order.Lines)).
		Msg("order created")

	return order, nil
}

// Replace overwrites a stored order wholesale. No field-level merge happens:
// the supplied representation is re-linked and re-stamped exactly like a
// fresh save, then swapped in for the old one.
func (s *OrderService) Replace(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == "" {
		return nil, domain.ErrOrderNotFound
	}

	order.OrderDate = time.Now().UTC()
	order.LinkLines(uuid.NewString)

	if err := s.orders.Replace(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Msg("order replaced")
	return order, nil
}

func (s *OrderService) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.FindAll(ctx)
}

// FindByUsername resolves the user first, then returns their orders. A
// nonexistent username silently yields an empty result rather than an error;
// that ambiguity is preserved behavior.
func (s *OrderService) FindByUsername(ctx context.Context, username string) ([]*domain.Order, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []*domain.Order{}, nil
		}
		return nil, err
	}
	return s.orders.FindByUserID(ctx, user.ID)
}

// DeleteByID removes the order together with its line collection and the
// reverse refs held by the referenced books.
func (s *OrderService) DeleteByID(ctx context.Context, id string) error {
	if err := s.orders.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
