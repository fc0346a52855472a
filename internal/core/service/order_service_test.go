package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

type stubOrderRepo struct {
	created  []*domain.Order
	replaced []*domain.Order
	byID     map[string]*domain.Order
	byUserID map[string][]*domain.Order
	deleted  []string
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		byID:     make(map[string]*domain.Order),
		byUserID: make(map[string][]*domain.Order),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.created = append(r.created, order)
	r.byID[order.ID] = order
	r.byUserID[order.UserID] = append(r.byUserID[order.UserID], order)
	return nil
}

func (r *stubOrderRepo) Replace(_ context.Context, order *domain.Order) error {
	r.replaced = append(r.replaced, order)
	r.byID[order.ID] = order
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.byID[id]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Order, error) {
	return r.byUserID[userID], nil
}

func (r *stubOrderRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:       username + "-id",
		Username: username,
		Roles:    []string{domain.RoleUser},
	}
	if _, err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestOrderService_Save_StampsServerDate(t *testing.T) {
	users := newStubUserRepo()
	orders := newStubOrderRepo()
	seedUser(t, users, "alice")
	svc := NewOrderService(orders, users, zerolog.Nop())

	clientDate := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now().UTC()

	saved, err := svc.Save(context.Background(), &domain.Order{
		OrderDate: clientDate,
		Lines:     []domain.OrderLine{{BookID: "book-a", Quantity: 1}},
	}, "alice")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if saved.OrderDate.Equal(clientDate) {
		t.Fatalf("client-supplied order date was not overridden")
	}
	if saved.OrderDate.Before(before) || saved.OrderDate.After(time.Now().UTC()) {
		t.Fatalf("order date %v not stamped with server time", saved.OrderDate)
	}
}

func TestOrderService_Save_LinksAllLines(t *testing.T) {
	users := newStubUserRepo()
	orders := newStubOrderRepo()
	owner := seedUser(t, users, "alice")
	svc := NewOrderService(orders, users, zerolog.Nop())

	saved, err := svc.Save(context.Background(), &domain.Order{
		Lines: []domain.OrderLine{
			{BookID: "book-a", Quantity: 1},
			{BookID: "book-b", Quantity: 2},
			{BookID: "book-a", Quantity: 3},
		},
	}, "alice")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if saved.UserID != owner.ID || saved.Username != "alice" {
		t.Fatalf("owner not taken from resolved caller: %+v", saved)
	}
	for i, l := range saved.Lines {
		if l.OrderID != saved.ID {
			t.Fatalf("line %d back-reference missing: %q", i, l.OrderID)
		}
		if l.ID == "" {
			t.Fatalf("line %d has no identity", i)
		}
	}

	refs := saved.LineRefs()
	total := 0
	for bookID, list := range refs {
		for _, ref := range list {
			if ref.OrderID != saved.ID {
				t.Fatalf("book %s ref points at wrong order: %+v", bookID, ref)
			}
			total++
		}
	}
	if total != len(saved.Lines) {
		t.Fatalf("expected a reverse ref per line, got %d of %d", total, len(saved.Lines))
	}
}

func TestOrderService_Save_RejectsPreassignedID(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "alice")
	svc := NewOrderService(newStubOrderRepo(), users, zerolog.Nop())

	_, err := svc.Save(context.Background(), &domain.Order{
		ID:    "client-chosen",
		Lines: []domain.OrderLine{{BookID: "book-a", Quantity: 1}},
	}, "alice")
	if err != domain.ErrIDAssigned {
		t.Fatalf("expected ErrIDAssigned, got %v", err)
	}
}

func TestOrderService_Save_UnknownCaller(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubUserRepo(), zerolog.Nop())

	_, err := svc.Save(context.Background(), &domain.Order{
		Lines: []domain.OrderLine{{BookID: "book-a", Quantity: 1}},
	}, "ghost")
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOrderService_FindByUsername_GhostUserIsEmpty(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubUserRepo(), zerolog.Nop())

	orders, err := svc.FindByUsername(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("expected silent empty result, got error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty slice, got %d orders", len(orders))
	}
}

func TestOrderService_FindByUsername_ReturnsOwnOrders(t *testing.T) {
	users := newStubUserRepo()
	orders := newStubOrderRepo()
	seedUser(t, users, "alice")
	seedUser(t, users, "bob")
	svc := NewOrderService(orders, users, zerolog.Nop())

	if _, err := svc.Save(context.Background(), &domain.Order{Lines: []domain.OrderLine{{BookID: "b1", Quantity: 1}}}, "alice"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Save(context.Background(), &domain.Order{Lines: []domain.OrderLine{{BookID: "b2", Quantity: 1}}}, "bob"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if len(got) != 1 || got[0].Username != "alice" {
		t.Fatalf("expected exactly alice's order, got %+v", got)
	}
}

func TestOrderService_Replace_RequiresID(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Replace(context.Background(), &domain.Order{}); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
