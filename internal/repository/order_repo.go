package repository

import (
	"context"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	DB DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateTx inserts the order snapshot inside an open transaction. The order
// date is assigned by the database at insert time.
func (r *OrderRepository) CreateTx(ctx context.Context, tx pgx.Tx, userID int64, totalAmount int, itemDetails string) (*model.OrderEntity, error) {
	o := model.OrderEntity{
		UserID:      userID,
		TotalAmount: totalAmount,
		ItemDetails: itemDetails,
	}
	query := `INSERT INTO orders (user_id, total_amount, item_details) VALUES ($1, $2, $3) RETURNING id, order_date`
	if err := tx.QueryRow(ctx, query, userID, totalAmount, itemDetails).Scan(&o.ID, &o.OrderDate); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByUser returns the user's placed orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.OrderEntity, error) {
	query := `SELECT id, user_id, total_amount, item_details, order_date FROM orders WHERE user_id=$1 ORDER BY id DESC`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.OrderEntity{}
	for rows.Next() {
		var o model.OrderEntity
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.ItemDetails, &o.OrderDate); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
