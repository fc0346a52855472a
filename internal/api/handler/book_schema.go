package handler

import "github.com/bookstore/bookstore-api/internal/core/domain"

type bookRequest struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"  validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"  validate:"gte=0"`
}

type bookResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price,
	}
}
