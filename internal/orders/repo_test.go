package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hashimadil/storefront-backend/pkg/db/models"
	"github.com/hashimadil/storefront-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT,
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_address TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  total_amount TEXT NOT NULL,
  payment_ref TEXT,
  created_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT,
  size_label TEXT,
  quantity INTEGER NOT NULL,
  price_at_purchase TEXT NOT NULL
);`
	require.NoError(t, db.Exec(ordersTable).Error)
	require.NoError(t, db.Exec(orderItems).Error)

	return db
}

func seedOrder(t *testing.T, repo Repository) *models.Order {
	t.Helper()

	ctx := context.Background()
	order := &models.Order{
		ID:              uuid.New(),
		CustomerName:    "Adil",
		CustomerEmail:   "adil@example.com",
		CustomerPhone:   "+100000000",
		CustomerAddress: "1 Main St",
		Status:          enums.OrderStatusPending,
		TotalAmount:     decimal.RequireFromString("90.00"),
	}
	_, err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: "p1", SizeLabel: "M", Quantity: 2, PriceAtPurchase: decimal.RequireFromString("45.00")},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, items))
	return order
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	order := seedOrder(t, repo)

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Len(t, found.Items, 1)
	assert.Equal(t, "p1", found.Items[0].ProductID)
}

func TestRepositoryDeleteCascadesItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	order := seedOrder(t, repo)

	affected, err := repo.Delete(context.Background(), order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepositoryUpdateStatusReportsMissingRow(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	affected, err := repo.UpdateStatus(context.Background(), uuid.New(), enums.OrderStatusPaid)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	order := seedOrder(t, repo)
	affected, err = repo.UpdateStatus(context.Background(), order.ID, enums.OrderStatusPaid)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPaid, found.Status)
}
