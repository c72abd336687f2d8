package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"posts-api/models"
)

// PostCacheTTL bounds how long a post stays cached. Posts are never updated,
// so a cached entry cannot go stale.
const PostCacheTTL = 7 * 24 * time.Hour

// PostCache is a Redis read-through cache for single posts. A nil *PostCache
// is valid and always misses.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{client: client, ttl: ttl}
}

func postKey(id string) string {
	return "post:" + id
}

// Get returns the cached post for id. A miss is reported as (nil, nil).
func (c *PostCache) Get(ctx context.Context, id string) (*models.Post, error) {
	if c == nil {
		return nil, nil
	}

	cached, err := c.client.Get(ctx, postKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error fetching post %s from Redis cache", id)
	}

	var post models.Post
	if err := json.Unmarshal(cached, &post); err != nil {
		return nil, errors.Wrap(err, "error unmarshalling cached post data")
	}
	return &post, nil
}

func (c *PostCache) Set(ctx context.Context, post models.Post) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(post)
	if err != nil {
		return errors.Wrap(err, "error marshalling post for cache")
	}
	if err := c.client.Set(ctx, postKey(post.ID), data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "error caching post %s", post.ID)
	}
	return nil
}

func (c *PostCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
