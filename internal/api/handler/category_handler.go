package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/productmgt/internal/api"
	"github.com/RoyceAzure/lab/productmgt/internal/api/dto"
	"github.com/RoyceAzure/lab/productmgt/internal/service"
	"github.com/go-playground/validator/v10"
)

type CategoryHandler struct {
	categoryService service.ICategoryService
	validate        *validator.Validate
}

func NewCategoryHandler(categoryService service.ICategoryService, validate *validator.Validate) *CategoryHandler {
	if categoryService == nil {
		panic("categoryService cannot be nil")
	}
	return &CategoryHandler{
		categoryService: categoryService,
		validate:        validate,
	}
}

// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "request validation failed", validationMessages(err)...)
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, category, "Category created successfully")
}

// GET /api/v1/categories
func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetAllCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, categories, "Categories retrieved successfully")
}
