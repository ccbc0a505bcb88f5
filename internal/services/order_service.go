package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/repository"

	"github.com/jackc/pgx/v5"
)

var ErrCartEmpty = errors.New("Cart Khali Hai!")

// OrderStore is the persistence surface for placed orders.
type OrderStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, userID int64, totalAmount int, itemDetails string) (*model.OrderEntity, error)
	ListByUser(ctx context.Context, userID int64) ([]model.OrderEntity, error)
}

type OrderService struct {
	DB     repository.DB
	Carts  CartStore
	Orders OrderStore
}

func NewOrderService(db repository.DB, cs CartStore, os OrderStore) *OrderService {
	return &OrderService{DB: db, Carts: cs, Orders: os}
}

// Place snapshots the user's cart into a single order row and empties the
// cart. The total is client-supplied and not recomputed from the cart. Read,
// insert and delete share one transaction: a failure in any step leaves both
// the cart and the orders table untouched.
func (s *OrderService) Place(ctx context.Context, userID int64, totalAmount int) (*model.OrderEntity, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	items, err := s.Carts.ListByUserTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	// "Milk x2, Bread x1" in the store's return order
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.ItemName, it.Quantity))
	}

	order, err := s.Orders.CreateTx(ctx, tx, userID, totalAmount, strings.Join(parts, ", "))
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	if _, err := s.Carts.ClearByUserTx(ctx, tx, userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return order, nil
}

// History returns the user's placed orders, newest first.
func (s *OrderService) History(ctx context.Context, userID int64) ([]model.OrderEntity, error) {
	return s.Orders.ListByUser(ctx, userID)
}
