package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/productmgt/internal/api"
	"github.com/RoyceAzure/lab/productmgt/internal/api/dto"
	"github.com/RoyceAzure/lab/productmgt/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.IOrderService
	validate     *validator.Validate
}

func NewOrderHandler(orderService service.IOrderService, validate *validator.Validate) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
		validate:     validate,
	}
}

// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "request validation failed", validationMessages(err)...)
		return
	}

	items := make([]service.OrderItemRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req.CustomerName, req.CustomerEmail, items)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, order, "Order created successfully")
}

// GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, order, "Order retrieved successfully")
}

// GET /api/v1/orders
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, orders, "Orders retrieved successfully")
}

// GET /api/v1/orders/status/{status}
// 查無資料回傳空列表
func (h *OrderHandler) GetOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := strconv.ParseUint(chi.URLParam(r, "status"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order status")
		return
	}

	orders, err := h.orderService.GetOrdersByStatus(r.Context(), uint(status))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, orders, "Orders retrieved successfully")
}

func validationMessages(err error) []string {
	var validationErrs validator.ValidationErrors
	msgs := []string{}
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			msgs = append(msgs, fieldErr.Error())
		}
	}
	return msgs
}
