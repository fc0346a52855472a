package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

const collectionOrders = "orders"

// OrderRepository persists order aggregates. The order document and the
// LineRef entries on referenced books are written inside one session
// transaction, so the bidirectional association is never visible half-built.
type OrderRepository struct {
	orders *mongo.Collection
	books  *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		orders: db.Collection(collectionOrders),
		books:  db.Collection(collectionBooks),
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.orders.InsertOne(sc, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return r.pushLineRefs(sc, order)
	})
}

// Replace swaps in the supplied aggregate for the stored one: the old book
// refs for this order are withdrawn, the order document replaced, and the
// new refs appended, all in one transaction.
func (r *OrderRepository) Replace(ctx context.Context, order *domain.Order) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if err := r.pullLineRefs(sc, order.ID); err != nil {
			return err
		}

		opts := options.Replace().SetUpsert(true)
		if _, err := r.orders.ReplaceOne(sc, bson.M{"_id": order.ID}, order, opts); err != nil {
			return fmt.Errorf("replace order: %w", err)
		}
		return r.pushLineRefs(sc, order)
	})
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// DeleteByID removes the order and withdraws its refs from every book that
// held one, keeping the reverse collections consistent.
func (r *OrderRepository) DeleteByID(ctx context.Context, id string) error {
	return r.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.orders.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if res.DeletedCount == 0 {
			return domain.ErrOrderNotFound
		}
		return r.pullLineRefs(sc, id)
	})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.orders.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) pushLineRefs(sc mongo.SessionContext, order *domain.Order) error {
	for bookID, refs := range order.LineRefs() {
		res, err := r.books.UpdateOne(sc,
			bson.M{"_id": bookID},
			bson.M{"$push": bson.M{"order_lines": bson.M{"$each": refs}}},
		)
		if err != nil {
			return fmt.Errorf("append line refs: %w", err)
		}
		if res.MatchedCount == 0 {
			return domain.ErrBookNotFound
		}
	}
	return nil
}

func (r *OrderRepository) pullLineRefs(sc mongo.SessionContext, orderID string) error {
	_, err := r.books.UpdateMany(sc,
		bson.M{"order_lines.order_id": orderID},
		bson.M{"$pull": bson.M{"order_lines": bson.M{"order_id": orderID}}},
	)
	if err != nil {
		return fmt.Errorf("withdraw line refs: %w", err)
	}
	return nil
}

func (r *OrderRepository) inTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.orders.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// EnsureIndexes creates the lookup indexes used by the order queries.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "username", Value: 1}}},
	})
	return err
}
