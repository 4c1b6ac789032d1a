package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type ProductCacheError error

var (
	ErrCacheMiss ProductCacheError = errors.New("product cache miss")
)

// IProductCacheRepository 商品快取操作介面
type IProductCacheRepository interface {
	// GetProduct 取得快取商品，不存在回傳 ErrCacheMiss
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)

	// SetProduct 寫入快取商品
	SetProduct(ctx context.Context, product *model.Product) error

	// DeleteProduct 移除快取商品
	DeleteProduct(ctx context.Context, productID uint) error
}

/*	redis 只做商品讀取路徑的快取
	DB 才是真相來源，下單流程一律直接走 DB*/

type ProductCacheRepo struct {
	productCache *redis.Client
	ttl          time.Duration
}

func NewProductCacheRepo(productCache *redis.Client, ttl time.Duration) *ProductCacheRepo {
	return &ProductCacheRepo{productCache: productCache, ttl: ttl}
}

func generateProductKey(productID uint) string {
	return fmt.Sprintf("product:%d", productID)
}

// 錯誤:
//   - ErrCacheMiss: 快取不存在
//   - err: 其他錯誤
func (s *ProductCacheRepo) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	data, err := s.productCache.Get(ctx, generateProductKey(productID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductCacheRepo) SetProduct(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return s.productCache.Set(ctx, generateProductKey(product.ID), data, s.ttl).Err()
}

func (s *ProductCacheRepo) DeleteProduct(ctx context.Context, productID uint) error {
	return s.productCache.Del(ctx, generateProductKey(productID)).Err()
}

var _ IProductCacheRepository = (*ProductCacheRepo)(nil)
