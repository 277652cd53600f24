package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs
//
// Available is a pointer so a missing key is distinguishable from false;
// the validator rejects the missing case.

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Available   *bool            `json:"available" validate:"required"`
	Category    string           `json:"category" validate:"required"`
}

type UpdateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Available   *bool            `json:"available" validate:"required"`
	Category    string           `json:"category" validate:"required"`
}

// Response DTOs
//
// Price keeps its decimal type end-to-end; shopspring marshals it as a
// quoted decimal string, so the exact value survives the wire.

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    string          `json:"category"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
