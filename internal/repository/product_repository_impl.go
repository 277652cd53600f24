package repository

import (
	"context"
	"errors"
	"fmt"

	"go-product-catalog/internal/domain/entity"
	domainRepo "go-product-catalog/internal/domain/repository"

	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product and assigns its surrogate key. The input
// must not carry an ID yet.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID != 0 {
		return fmt.Errorf("%w: id must not be set before create", entity.ErrValidation)
	}
	if err := product.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByAvailability(ctx context.Context, available bool) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Where("available = ?", available).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update overwrites every mutable field of the row matching product.ID.
// It never creates a row: a missing or unassigned id is ErrProductNotFound.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if product.ID == 0 {
		return domainRepo.ErrProductNotFound
	}
	res := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "available", "category").
		Updates(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainRepo.ErrProductNotFound
	}
	return nil
}

// Delete removes the row for product.ID. Deleting an absent row is a no-op.
func (r *productRepository) Delete(ctx context.Context, product *entity.Product) error {
	if product.ID == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id = ?", product.ID).Delete(&entity.Product{}).Error
}
