// internal/services/cache_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	productCacheKeyPrefix   = "catalog:product:"
	productVersionKeyPrefix = "catalog:product-version:"
)

var errStaleProductDetail = errors.New("product detail is stale")

// ProductCache is a read-through cache for denormalized product details. A nil
// *ProductCache, or one without a client, is a valid always-miss cache.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{
		client: client,
		ttl:    ttl,
	}
}

func ProductCacheKey(productID uint) string {
	return fmt.Sprintf("%s%d", productCacheKeyPrefix, productID)
}

func productVersionKey(productID uint) string {
	return fmt.Sprintf("%s%d", productVersionKeyPrefix, productID)
}

func (c *ProductCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *ProductCache) Get(ctx context.Context, productID uint) (*ProductDetail, bool) {
	if !c.enabled() {
		return nil, false
	}

	data, err := c.client.Get(ctx, ProductCacheKey(productID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("product_id", productID).Warn("Product cache read failed")
		}
		return nil, false
	}

	var detail ProductDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		logrus.WithError(err).WithField("product_id", productID).Warn("Discarding undecodable cached product")
		return nil, false
	}
	return &detail, true
}

// Version returns the invalidation counter of a product. A detail read from
// the database after Version may only be cached through Set with that value.
// ok is false when the counter cannot be read, in which case nothing should
// be cached.
func (c *ProductCache) Version(ctx context.Context, productID uint) (version int64, ok bool) {
	if !c.enabled() {
		return 0, false
	}

	version, err := c.client.Get(ctx, productVersionKey(productID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		logrus.WithError(err).WithField("product_id", productID).Warn("Product cache version read failed")
		return 0, false
	}
	return version, true
}

// Set stores detail unless the product was invalidated after version was
// read. The check and the write run in one WATCH transaction on the version key.
func (c *ProductCache) Set(ctx context.Context, detail *ProductDetail, version int64) {
	if !c.enabled() || detail == nil {
		return
	}

	data, err := json.Marshal(detail)
	if err != nil {
		logrus.WithError(err).WithField("product_id", detail.ID).Warn("Failed to encode product for cache")
		return
	}

	versionKey := productVersionKey(detail.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleProductDetail
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ProductCacheKey(detail.ID), data, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleProductDetail), errors.Is(err, redis.TxFailedErr):
		logrus.WithField("product_id", detail.ID).Debug("Skipped caching product invalidated during read")
	default:
		logrus.WithError(err).WithField("product_id", detail.ID).Warn("Product cache write failed")
	}
}

// Invalidate drops cached details and bumps their versions so reads already
// in flight do not cache what they loaded. Failures are logged only; entries
// still expire after the TTL.
func (c *ProductCache) Invalidate(ctx context.Context, productIDs ...uint) {
	if !c.enabled() || len(productIDs) == 0 {
		return
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range productIDs {
			pipe.Incr(ctx, productVersionKey(id))
			pipe.Del(ctx, ProductCacheKey(id))
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithField("product_ids", productIDs).Warn("Product cache invalidation failed")
	}
}
