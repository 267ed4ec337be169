package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const productListKey = "flowershop:products"

// RedisService caches the product listing. The cache is best-effort: a
// miss or a redis error just falls through to the repository.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{rdb: rdb, ctx: ctx}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// CachedProductList returns the cached listing payload, or ok=false on miss
// or error.
func (s *RedisService) CachedProductList() ([]byte, bool) {
	payload, err := s.rdb.Get(s.ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// StoreProductList caches the listing payload for a short window.
func (s *RedisService) StoreProductList(payload []byte) {
	s.rdb.Set(s.ctx, productListKey, payload, 30*time.Second)
}

// InvalidateProductList drops the cached listing. Called after every product
// mutation and every ticket commit.
func (s *RedisService) InvalidateProductList() {
	s.rdb.Del(s.ctx, productListKey)
}
