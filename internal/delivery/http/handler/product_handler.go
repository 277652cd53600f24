package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"
	"go-product-catalog/internal/usecase"
	"go-product-catalog/pkg/response"
	"go-product-catalog/pkg/validator"

	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", product)
}

// List handles GET /products with optional exact-match filters
// ?name=, ?category= and ?available=.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		products *dto.ProductListResponse
		err      error
	)
	switch {
	case query.Get("name") != "":
		products, err = h.productUsecase.GetByName(r.Context(), query.Get("name"))
	case query.Get("category") != "":
		products, err = h.productUsecase.GetByCategory(r.Context(), query.Get("category"))
	case query.Get("available") != "":
		var available bool
		available, err = strconv.ParseBool(query.Get("available"))
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid available filter", nil)
			return
		}
		products, err = h.productUsecase.GetByAvailability(r.Context(), available)
	default:
		products, err = h.productUsecase.GetAll(r.Context())
	}
	if err != nil {
		h.writeError(w, err, "Failed to list products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// GetByID handles GET /products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", product)
}

// Update handles PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /products/{id}. Deleting an absent product still
// answers 204.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return 0, false
	}
	return uint(id), true
}

func (h *ProductHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, repository.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
