package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/productmgt/internal/api"
	"github.com/RoyceAzure/lab/productmgt/internal/api/dto"
	"github.com/RoyceAzure/lab/productmgt/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.IProductService
	validate       *validator.Validate
}

func NewProductHandler(productService service.IProductService, validate *validator.Validate) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		validate:       validate,
	}
}

// POST /api/v1/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "request validation failed", validationMessages(err)...)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req.Name, req.Description, req.Price, req.Stock, req.CategoryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, product, "Product created successfully")
}

// GET /api/v1/products/{id}
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, product, "Product retrieved successfully")
}

// GET /api/v1/products
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, products, "Products retrieved successfully")
}

// GET /api/v1/products/in-stock
func (h *ProductHandler) GetProductsInStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetProductsInStock(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, products, "Products retrieved successfully")
}

// GET /api/v1/products/category/{categoryId}
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseUint(chi.URLParam(r, "categoryId"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}

	products, err := h.productService.GetProductsByCategory(r.Context(), uint(categoryID))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, products, "Products retrieved successfully")
}

// PUT /api/v1/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "request validation failed", validationMessages(err)...)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), uint(id))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.IsActive = req.IsActive

	updated, err := h.productService.UpdateProduct(r.Context(), product)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, updated, "Product updated successfully")
}

// DELETE /api/v1/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), uint(id)); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, nil, "Product deleted successfully")
}
