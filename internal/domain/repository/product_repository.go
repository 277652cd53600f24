package repository

import (
	"context"
	"errors"

	"go-product-catalog/internal/domain/entity"
)

// ErrProductNotFound is returned by Update when the target row does not
// exist. Lookups represent absence as a nil result instead.
var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	FindByName(ctx context.Context, name string) ([]entity.Product, error)
	FindByAvailability(ctx context.Context, available bool) ([]entity.Product, error)
	FindByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, product *entity.Product) error
}
