package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/productmgt/internal/api"
	"github.com/RoyceAzure/lab/productmgt/internal/service"
)

// writeServiceError 把 service 層錯誤對應到 HTTP 狀態碼
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var stockErr *service.InsufficientStockError
	var txErr *service.TransactionError

	switch {
	case errors.As(err, &validationErr):
		api.ErrorJSON(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		api.ErrorJSON(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &stockErr):
		api.ErrorJSON(w, http.StatusConflict, stockErr.Error())
	case errors.As(err, &txErr):
		api.ErrorJSON(w, http.StatusInternalServerError, "order placement failed, please retry")
	default:
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
