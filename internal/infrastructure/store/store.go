package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
)

const (
	postListPattern = "posts:list:*"
	postListGenKey  = "posts:listgen"
)

// PostCacheStore keeps rendered post listing pages in Redis.
type PostCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IPostCache = (*PostCacheStore)(nil)

func NewPostCacheStore(rdb *redis.Client, listTTL time.Duration) *PostCacheStore {
	if listTTL <= 0 {
		listTTL = 5 * time.Minute
	}
	return &PostCacheStore{
		rdb:     rdb,
		listTTL: listTTL,
	}
}

// ListGeneration returns the current listing generation, 0 before the first invalidation.
func (c *PostCacheStore) ListGeneration(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, postListGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// GetPostsPage returns found=false on a miss or an unreadable entry.
func (c *PostCacheStore) GetPostsPage(ctx context.Context, key string) (*contract.CachedPostsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedPostsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *PostCacheStore) SetPostsPage(ctx context.Context, key string, page *contract.CachedPostsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidatePostLists advances the generation, so a page computed before
// this call is written under a key no reader asks for, then drops every
// cached listing page.
func (c *PostCacheStore) InvalidatePostLists(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, postListGenKey).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, postListPattern, 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
