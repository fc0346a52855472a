package handler

import (
	"time"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

type orderLineRequest struct {
	BookID    string  `json:"book_id"    validate:"required"`
	Quantity  int     `json:"quantity"   validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type createOrderRequest struct {
	ID string `json:"id,omitempty"`
	// OrderDate is accepted but ignored: the server stamps its own.
	OrderDate time.Time          `json:"order_date,omitempty"`
	Lines     []orderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// replaceOrderRequest is the administrative full-overwrite payload.
type replaceOrderRequest struct {
	ID       string             `json:"id" validate:"required"`
	UserID   string             `json:"user_id"`
	Username string             `json:"username"`
	Lines    []orderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type orderLineResponse struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	BookID    string  `json:"book_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Username  string              `json:"username"`
	OrderDate time.Time           `json:"order_date"`
	Lines     []orderLineResponse `json:"lines"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	lines := make([]orderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = orderLineResponse{
			ID:        l.ID,
			OrderID:   l.OrderID,
			BookID:    l.BookID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return orderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Username:  o.Username,
		OrderDate: o.OrderDate.UTC(),
		Lines:     lines,
	}
}

func toOrderLines(reqs []orderLineRequest) []domain.OrderLine {
	lines := make([]domain.OrderLine, len(reqs))
	for i, r := range reqs {
		lines[i] = domain.OrderLine{
			BookID:    r.BookID,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
		}
	}
	return lines
}
