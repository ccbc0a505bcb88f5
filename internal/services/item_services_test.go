package services_test

import (
	"context"
	"testing"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/repository"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemService(t *testing.T) (*services.ItemService, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return services.NewItemService(repository.NewItemRepository(mock)), mock
}

func itemColumns() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "item_name", "item_category", "item_quantity", "item_price", "image_url"})
}

func TestItemList(t *testing.T) {
	ctx := context.Background()

	t.Run("no filter returns everything", func(t *testing.T) {
		svc, mock := newItemService(t)
		mock.ExpectQuery("SELECT id, item_name, item_category, item_quantity, item_price, image_url FROM internet_items ORDER BY id").
			WillReturnRows(itemColumns().
				AddRow(int64(1), "Milk", "Dairy", "1L", 30, "").
				AddRow(int64(2), "Apple", "Fruits", "1kg", 80, ""))

		items, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("category filter is passed to the store", func(t *testing.T) {
		svc, mock := newItemService(t)
		mock.ExpectQuery(`WHERE LOWER\(item_category\)=LOWER\(\$1\)`).
			WithArgs("fruits").
			WillReturnRows(itemColumns().AddRow(int64(2), "Apple", "Fruits", "1kg", 80, ""))

		items, err := svc.List(ctx, "fruits")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Apple", items[0].ItemName)
	})
}

func TestItemAdd(t *testing.T) {
	svc, mock := newItemService(t)
	mock.ExpectQuery("INSERT INTO internet_items").
		WithArgs("Milk", "Dairy", "500ml", 25, "https://img/milk.png").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	item, err := svc.Add(context.Background(), model.InternetItem{
		ItemName:     "Milk",
		ItemCategory: "Dairy",
		ItemQuantity: "500ml",
		ItemPrice:    25,
		ImageURL:     "https://img/milk.png",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
