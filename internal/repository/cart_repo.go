package repository

import (
	"context"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"

	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	DB DB
}

func NewCartRepository(db DB) *CartRepository {
	return &CartRepository{DB: db}
}

const selectCartByUser = `SELECT id, user_id, item_name, item_price, image_url, quantity FROM cart_items WHERE user_id=$1 ORDER BY id`

// ListByUser returns the user's cart lines in insertion (primary key) order.
// An unknown user simply has no lines.
func (r *CartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	rows, err := r.DB.Query(ctx, selectCartByUser, userID)
	if err != nil {
		return nil, err
	}
	return scanCartItems(rows)
}

// ListByUserTx reads the cart inside an open transaction.
func (r *CartRepository) ListByUserTx(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartItem, error) {
	rows, err := tx.Query(ctx, selectCartByUser, userID)
	if err != nil {
		return nil, err
	}
	return scanCartItems(rows)
}

// Upsert inserts a cart line or, when the (user_id, item_name) pair already
// exists, adds the incoming quantity to the stored one. The single statement
// rides on the unique index, so two concurrent adds for the same pair merge
// instead of racing into duplicate rows. The returned flag is true when a new
// row was inserted.
func (r *CartRepository) Upsert(ctx context.Context, item model.CartItem) (model.CartItem, bool, error) {
	query := `
		INSERT INTO cart_items (user_id, item_name, item_price, image_url, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, item_name)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, quantity, (xmax = 0)
	`
	var inserted bool
	if err := r.DB.QueryRow(ctx, query, item.UserID, item.ItemName, item.ItemPrice, item.ImageURL, item.Quantity).
		Scan(&item.ID, &item.Quantity, &inserted); err != nil {
		return model.CartItem{}, false, err
	}
	return item, inserted, nil
}

// ClearByUserTx deletes all of the user's lines inside an open transaction
// and returns the number of rows removed. Zero matches is not an error.
func (r *CartRepository) ClearByUserTx(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanCartItems(rows pgx.Rows) ([]model.CartItem, error) {
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemName, &it.ItemPrice, &it.ImageURL, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
