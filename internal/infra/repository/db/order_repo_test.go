package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	"github.com/RoyceAzure/lab/productmgt/internal/pkg/util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestOrder(productID uint) *model.Order {
	price := decimal.RequireFromString("49.90")
	qty := 2
	order := &model.Order{
		OrderNumber:   util.GenerateOrderNumber(),
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		Status:        model.OrderStatusPending,
		OrderItems: []model.OrderItem{
			{
				ProductID: productID,
				Quantity:  qty,
				UnitPrice: price,
				Subtotal:  price.Mul(decimal.NewFromInt(int64(qty))),
			},
		},
	}
	order.TotalAmount = order.CalculateTotal()
	return order
}

func TestCreateOrderAndGetByID(t *testing.T) {
	dao := setupTestDB(t)
	repo := NewOrderRepo(dao)
	ctx := context.Background()

	category := createTestCategory(t, dao, "electronics")
	product := createTestProduct(t, dao, category.ID, "keyboard", "49.90", 50)

	order := buildTestOrder(product.ID)
	require.NoError(t, repo.CreateOrder(ctx, order))
	require.NotZero(t, order.ID)

	// 明細要一併寫入並帶回
	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("99.80")))
	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, product.ID, got.OrderItems[0].ProductID)
	assert.Equal(t, order.ID, got.OrderItems[0].OrderID)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	dao := setupTestDB(t)
	repo := NewOrderRepo(dao)

	_, err := repo.GetOrderByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateOrderNumberConflict(t *testing.T) {
	dao := setupTestDB(t)
	repo := NewOrderRepo(dao)
	ctx := context.Background()

	category := createTestCategory(t, dao, "electronics")
	product := createTestProduct(t, dao, category.ID, "keyboard", "49.90", 50)

	first := buildTestOrder(product.ID)
	require.NoError(t, repo.CreateOrder(ctx, first))

	second := buildTestOrder(product.ID)
	second.OrderNumber = first.OrderNumber
	err := repo.CreateOrder(ctx, second)
	assert.ErrorIs(t, err, ErrOrderNumberConflict)
}

func TestGetOrdersByStatus(t *testing.T) {
	dao := setupTestDB(t)
	repo := NewOrderRepo(dao)
	ctx := context.Background()

	category := createTestCategory(t, dao, "electronics")
	product := createTestProduct(t, dao, category.ID, "keyboard", "49.90", 50)

	// 查無資料回傳空列表
	orders, err := repo.GetOrdersByStatus(ctx, model.OrderStatusShipped)
	require.NoError(t, err)
	assert.Empty(t, orders)

	order := buildTestOrder(product.ID)
	require.NoError(t, repo.CreateOrder(ctx, order))

	orders, err = repo.GetOrdersByStatus(ctx, model.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].OrderItems, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	dao := setupTestDB(t)
	repo := NewOrderRepo(dao)
	ctx := context.Background()

	category := createTestCategory(t, dao, "electronics")
	product := createTestProduct(t, dao, category.ID, "keyboard", "49.90", 50)

	order := buildTestOrder(product.ID)
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, model.OrderStatusConfirmed))
	got, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, got.Status)
}

func TestGetAllOrders(t *testing.T) {
	dao := setupTestDB(t)
	repo := NewOrderRepo(dao)
	ctx := context.Background()

	category := createTestCategory(t, dao, "electronics")
	product := createTestProduct(t, dao, category.ID, "keyboard", "49.90", 50)

	require.NoError(t, repo.CreateOrder(ctx, buildTestOrder(product.ID)))
	require.NoError(t, repo.CreateOrder(ctx, buildTestOrder(product.ID)))

	orders, err := repo.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
