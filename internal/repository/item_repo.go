package repository

import (
	"context"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"

	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	DB DB
}

func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

// Create inserts a catalog item and returns it with the assigned id.
func (r *ItemRepository) Create(ctx context.Context, item model.InternetItem) (*model.InternetItem, error) {
	query := `INSERT INTO internet_items (item_name, item_category, item_quantity, item_price, image_url) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, item.ItemName, item.ItemCategory, item.ItemQuantity, item.ItemPrice, item.ImageURL).Scan(&item.ID); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]model.InternetItem, error) {
	query := `SELECT id, item_name, item_category, item_quantity, item_price, image_url FROM internet_items ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

// ListByCategory filters case-insensitively on the category column.
func (r *ItemRepository) ListByCategory(ctx context.Context, category string) ([]model.InternetItem, error) {
	query := `SELECT id, item_name, item_category, item_quantity, item_price, image_url FROM internet_items WHERE LOWER(item_category)=LOWER($1) ORDER BY id`
	rows, err := r.DB.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]model.InternetItem, error) {
	defer rows.Close()

	items := []model.InternetItem{}
	for rows.Next() {
		var it model.InternetItem
		if err := rows.Scan(&it.ID, &it.ItemName, &it.ItemCategory, &it.ItemQuantity, &it.ItemPrice, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
