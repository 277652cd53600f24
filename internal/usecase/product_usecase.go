package usecase

import (
	"context"

	"go-product-catalog/internal/converter"
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context) (*dto.ProductListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	GetByName(ctx context.Context, name string) (*dto.ProductListResponse, error)
	GetByAvailability(ctx context.Context, available bool) (*dto.ProductListResponse, error)
	GetByCategory(ctx context.Context, category string) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := converter.ProductFromCreateRequest(req)
	if err != nil {
		return nil, err
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}
	u.log.Infof("Created product %s", product)

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}
	return &dto.ProductListResponse{Products: converter.ProductsToResponses(products)}, nil
}

func (u *productUsecase) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, repository.ErrProductNotFound
	}
	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetByName(ctx context.Context, name string) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to find products by name %q: %+v", name, err)
		return nil, err
	}
	return &dto.ProductListResponse{Products: converter.ProductsToResponses(products)}, nil
}

func (u *productUsecase) GetByAvailability(ctx context.Context, available bool) (*dto.ProductListResponse, error) {
	products, err := u.productRepo.FindByAvailability(ctx, available)
	if err != nil {
		u.log.Warnf("Failed to find products by availability: %+v", err)
		return nil, err
	}
	return &dto.ProductListResponse{Products: converter.ProductsToResponses(products)}, nil
}

func (u *productUsecase) GetByCategory(ctx context.Context, categoryName string) (*dto.ProductListResponse, error) {
	category, err := entity.ParseCategory(categoryName)
	if err != nil {
		return nil, err
	}
	products, err := u.productRepo.FindByCategory(ctx, category)
	if err != nil {
		u.log.Warnf("Failed to find products by category %s: %+v", category, err)
		return nil, err
	}
	return &dto.ProductListResponse{Products: converter.ProductsToResponses(products)}, nil
}

func (u *productUsecase) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %d: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, repository.ErrProductNotFound
	}

	if err := converter.ApplyUpdateRequest(product, req); err != nil {
		return nil, err
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		u.log.Warnf("Failed to update product %d: %+v", id, err)
		return nil, err
	}
	u.log.Infof("Updated product %s", product)

	return converter.ProductToResponse(product), nil
}

// Delete is idempotent: removing an absent product is not an error.
func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.productRepo.Delete(ctx, &entity.Product{ID: id}); err != nil {
		u.log.Warnf("Failed to delete product %d: %+v", id, err)
		return err
	}
	return nil
}
