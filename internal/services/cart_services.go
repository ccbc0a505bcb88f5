package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/repository"

	"github.com/jackc/pgx/v5"
)

var (
	ErrCartUserNotFound = errors.New("User not found")
	ErrItemNameMissing  = errors.New("Item name missing in request")
)

// CartStore is the persistence surface for cart lines. The Tx variants run
// against a caller-owned transaction.
type CartStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
	Upsert(ctx context.Context, item model.CartItem) (model.CartItem, bool, error)
	ListByUserTx(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartItem, error)
	ClearByUserTx(ctx context.Context, tx pgx.Tx, userID int64) (int64, error)
}

type CartService struct {
	DB    repository.DB
	Users UserStore
	Carts CartStore
}

func NewCartService(db repository.DB, us UserStore, cs CartStore) *CartService {
	return &CartService{DB: db, Users: us, Carts: cs}
}

// Get returns the user's cart lines. An unknown user and an empty cart both
// come back as an empty list.
func (s *CartService) Get(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return s.Carts.ListByUser(ctx, userID)
}

// Add merges an incoming line into the user's cart. A nil price defaults to 0
// and a nil quantity to 1; adding an item already in the cart sums the
// quantities on the existing line. The returned flag is true when a new line
// was created rather than merged.
func (s *CartService) Add(ctx context.Context, userID int64, itemName, imageURL string, itemPrice, quantity *int) (model.CartItem, bool, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return model.CartItem{}, false, ErrCartUserNotFound
	}
	if itemName == "" {
		return model.CartItem{}, false, ErrItemNameMissing
	}

	item := model.CartItem{
		UserID:    userID,
		ItemName:  itemName,
		ImageURL:  imageURL,
		ItemPrice: 0,
		Quantity:  1,
	}
	if itemPrice != nil {
		item.ItemPrice = *itemPrice
	}
	if quantity != nil {
		item.Quantity = *quantity
	}
	return s.Carts.Upsert(ctx, item)
}

// Clear removes every cart line the user owns in one all-or-nothing
// transaction and returns the number of rows removed.
func (s *CartService) Clear(ctx context.Context, userID int64) (int64, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	removed, err := s.Carts.ClearByUserTx(ctx, tx, userID)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return removed, nil
}
