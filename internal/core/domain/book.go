package domain

import "errors"

var ErrBookNotFound = errors.New("book not found")
var ErrIDAssigned = errors.New("id must not be set on create")

// LineRef is an entry in a book's reverse collection: it points back at an
// order line that references the book. Every OrderLine in a persisted order
// has a matching LineRef on its book, and vice versa.
type LineRef struct {
	LineID  string `json:"line_id" bson:"line_id"`
	OrderID string `json:"order_id" bson:"order_id"`
}

// Book is a catalog item. Mutation is restricted to ADMIN callers; reads are
// open to anyone.
type Book struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Author      string    `json:"author" bson:"author"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	OrderLines  []LineRef `json:"order_lines,omitempty" bson:"order_lines,omitempty"`
}
