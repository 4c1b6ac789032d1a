package redis_decorator

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
商品讀取路徑的 cache-aside 裝飾器
只攔截單筆查詢，列表查詢與扣庫存直接透傳 DB
快取失效失敗只記 log，靠 TTL 兜底
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	cache redis_repo.IProductCacheRepository
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, cache redis_repo.IProductCacheRepository) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, cache: cache}
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := p.cache.GetProduct(ctx, productID)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, redis_repo.ErrCacheMiss) {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache read failed, fallback to db")
	}

	product, err = p.IProductRepository.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := p.cache.SetProduct(ctx, product); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache write failed")
	}
	return product, nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := p.IProductRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}
	p.invalidate(ctx, product.ID)
	return nil
}

func (p *CacheAsideProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	if err := p.IProductRepository.DeleteProduct(ctx, id); err != nil {
		return err
	}
	p.invalidate(ctx, id)
	return nil
}

func (p *CacheAsideProductRepo) DeductStock(ctx context.Context, productID uint, quantity int) (int, error) {
	stock, err := p.IProductRepository.DeductStock(ctx, productID, quantity)
	if err != nil {
		return stock, err
	}
	p.invalidate(ctx, productID)
	return stock, nil
}

func (p *CacheAsideProductRepo) invalidate(ctx context.Context, productID uint) {
	if err := p.cache.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("product cache invalidate failed")
	}
}

var _ db.IProductRepository = (*CacheAsideProductRepo)(nil)
