package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/productmgt/internal/api"
	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	"github.com/RoyceAzure/lab/productmgt/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderService struct {
	placeOrderFn func(ctx context.Context, customerName, customerEmail string, items []service.OrderItemRequest) (*model.Order, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, customerName, customerEmail string, items []service.OrderItemRequest) (*model.Order, error) {
	return s.placeOrderFn(ctx, customerName, customerEmail, items)
}

func (s *stubOrderService) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	return nil, &service.NotFoundError{Resource: "order", ID: orderID}
}

func (s *stubOrderService) GetOrdersByStatus(ctx context.Context, status uint) ([]model.Order, error) {
	return []model.Order{}, nil
}

func (s *stubOrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return []model.Order{}, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var resp api.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateOrderHandlerSuccess(t *testing.T) {
	svc := &stubOrderService{
		placeOrderFn: func(ctx context.Context, customerName, customerEmail string, items []service.OrderItemRequest) (*model.Order, error) {
			require.Equal(t, "Alice", customerName)
			require.Len(t, items, 1)
			order := &model.Order{
				OrderNumber: "ORD-20250101120000-ABCDEF01",
				Status:      model.OrderStatusPending,
				TotalAmount: decimal.RequireFromString("30.00"),
			}
			order.ID = 1
			return order, nil
		},
	}
	h := NewOrderHandler(svc, validator.New())

	body := `{"customer_name":"Alice","customer_email":"alice@example.com","items":[{"product_id":1,"quantity":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestCreateOrderHandlerInvalidBody(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, validator.New())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.CreateOrder(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandlerValidationFailure(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{}, validator.New())

	tests := []struct {
		name string
		body string
	}{
		{"missing customer name", `{"customer_email":"a@b.com","items":[{"product_id":1,"quantity":1}]}`},
		{"bad email", `{"customer_name":"Alice","customer_email":"not-an-email","items":[{"product_id":1,"quantity":1}]}`},
		{"empty items", `{"customer_name":"Alice","customer_email":"a@b.com","items":[]}`},
		{"zero quantity", `{"customer_name":"Alice","customer_email":"a@b.com","items":[{"product_id":1,"quantity":0}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.CreateOrder(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Errors)
		})
	}
}

func TestCreateOrderHandlerServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"insufficient stock", &service.InsufficientStockError{ProductID: 1, ProductName: "keyboard", Available: 2, Requested: 5}, http.StatusConflict},
		{"product not found", &service.NotFoundError{Resource: "product", ID: 9}, http.StatusNotFound},
		{"validation", &service.ValidationError{Field: "items", Message: "bad"}, http.StatusBadRequest},
		{"transaction", &service.TransactionError{Op: "commit", Err: assert.AnError}, http.StatusInternalServerError},
	}

	body := `{"customer_name":"Alice","customer_email":"alice@example.com","items":[{"product_id":1,"quantity":3}]}`
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubOrderService{
				placeOrderFn: func(ctx context.Context, customerName, customerEmail string, items []service.OrderItemRequest) (*model.Order, error) {
					return nil, tc.err
				},
			}
			h := NewOrderHandler(svc, validator.New())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.CreateOrder(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
