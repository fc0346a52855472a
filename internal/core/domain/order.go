package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderLine associates one order with one book. The OrderID back-reference is
// assigned by LinkLines before the aggregate is persisted.
type OrderLine struct {
	ID        string  `json:"id" bson:"line_id"`
	OrderID   string  `json:"order_id" bson:"order_id"`
	BookID    string  `json:"book_id" bson:"book_id"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
}

// Order is the aggregate root for a purchase. It exclusively owns its line
// collection; lines are removed together with the order. The owner is always
// the authenticated caller at creation time and OrderDate is always stamped
// with server time, never taken from client input.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"user_id" bson:"user_id"`
	Username  string      `json:"username" bson:"username"`
	OrderDate time.Time   `json:"order_date" bson:"order_date"`
	Lines     []OrderLine `json:"lines" bson:"lines"`
}

// LinkLines establishes the order side of the bidirectional order/line/book
// association: every line gets an identity (via newID when it has none) and
// its OrderID back-reference set to this order. The book side, appending the
// matching LineRef to each referenced book, is the order repository's part
// of the same unit of work.
func (o *Order) LinkLines(newID func() string) {
	for i := range o.Lines {
		if o.Lines[i].ID == "" {
			o.Lines[i].ID = newID()
		}
		o.Lines[i].OrderID = o.ID
	}
}

// LineRefs returns the reverse-collection entries grouped by book id, ready
// to be appended to each book's order_lines.
func (o *Order) LineRefs() map[string][]LineRef {
	refs := make(map[string][]LineRef)
	for _, l := range o.Lines {
		refs[l.BookID] = append(refs[l.BookID], LineRef{LineID: l.ID, OrderID: o.ID})
	}
	return refs
}
