package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	evt_model "github.com/RoyceAzure/lab/productmgt/internal/domain/model/event"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/producer"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type IProductService interface {
	CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock uint, categoryID uint) (*model.Product, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	GetProductsInStock(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
}

type ProductService struct {
	productRepo  db.IProductRepository
	categoryRepo db.ICategoryRepository
	producer     producer.Producer
	eventTopic   string
}

func NewProductService(productRepo db.IProductRepository, categoryRepo db.ICategoryRepository, eventProducer producer.Producer, eventTopic string) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		producer:     eventProducer,
		eventTopic:   eventTopic,
	}
}

// CreateProduct 創建商品
// 分類必須存在
func (s *ProductService) CreateProduct(ctx context.Context, name, description string, price decimal.Decimal, stock uint, categoryID uint) (*model.Product, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "product name is required"}
	}
	if price.IsNegative() {
		return nil, &ValidationError{Field: "price", Message: "price must not be negative"}
	}

	if _, err := s.categoryRepo.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, db.ErrCategoryNotFound) {
			return nil, &NotFoundError{Resource: "category", ID: categoryID}
		}
		return nil, err
	}

	product := &model.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		IsActive:    true,
	}
	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	// 發佈失敗不影響已建立的商品
	evt := evt_model.NewProductCreatedEvent(product.ID, product.Name, product.Price)
	if err := s.producer.Publish(ctx, s.eventTopic, evt); err != nil {
		log.Warn().Err(err).Uint("product_id", product.ID).Msg("product created but event publish failed")
	}

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, &NotFoundError{Resource: "product", ID: productID}
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	return s.productRepo.GetProductsByCategory(ctx, categoryID)
}

func (s *ProductService) GetProductsInStock(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetProductsInStock(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, product.ID)
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.DeleteProduct(ctx, productID)
}

var _ IProductService = (*ProductService)(nil)
