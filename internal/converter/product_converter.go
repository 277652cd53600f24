package converter

import (
	"fmt"

	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its external flat form,
// with the category rendered by name.
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Available:   product.Available,
		Category:    product.Category.String(),
	}
}

// ProductsToResponses converts a slice of Product entities to response DTOs.
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToResponse(&product)
	}
	return responses
}

// ProductFromCreateRequest builds an unpersisted Product from the external
// representation. An unknown category name is an entity.ErrValidation.
func ProductFromCreateRequest(req *dto.CreateProductRequest) (*entity.Product, error) {
	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	if req.Price == nil {
		return nil, fmt.Errorf("%w: price is required", entity.ErrValidation)
	}
	if req.Available == nil {
		return nil, fmt.Errorf("%w: available is required", entity.ErrValidation)
	}
	return &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Available:   *req.Available,
		Category:    category,
	}, nil
}

// ApplyUpdateRequest overwrites the mutable fields of product from the
// external representation, leaving the id untouched.
func ApplyUpdateRequest(product *entity.Product, req *dto.UpdateProductRequest) error {
	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		return err
	}
	if req.Price == nil {
		return fmt.Errorf("%w: price is required", entity.ErrValidation)
	}
	if req.Available == nil {
		return fmt.Errorf("%w: available is required", entity.ErrValidation)
	}
	product.Name = req.Name
	product.Description = req.Description
	product.Price = *req.Price
	product.Available = *req.Available
	product.Category = category
	return nil
}
