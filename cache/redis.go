package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/campusfeed/campusfeed-be/model"
	"github.com/redis/go-redis/v9"
)

const defaultOpTimeout = 2 * time.Second

// RedisCache dials a short-lived client per logical operation and releases
// it on every exit path, so no connection is held across unrelated I/O.
type RedisCache struct {
	opts    *redis.Options
	timeout time.Duration
}

// NewRedisCache accepts either a redis:// URL or a plain host:port address.
func NewRedisCache(addr string) (*RedisCache, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}
	return &RedisCache{opts: opts, timeout: defaultOpTimeout}, nil
}

func (rc *RedisCache) withClient(ctx context.Context, op string, fn func(ctx context.Context, client *redis.Client) error) error {
	client := redis.NewClient(rc.opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, rc.timeout)
	defer cancel()

	if err := fn(ctx, client); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

func (rc *RedisCache) LatestPostId(ctx context.Context) (int64, bool, error) {
	var raw string
	err := rc.withClient(ctx, "get latest post id", func(ctx context.Context, client *redis.Client) error {
		val, err := client.Get(ctx, LatestPostIdKey).Result()
		if err != nil {
			return err
		}
		raw = val
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// An unparseable marker is treated the same as an absent one.
		return 0, false, nil
	}
	return id, true, nil
}

func (rc *RedisCache) SetLatestPostId(ctx context.Context, id int64) error {
	return rc.withClient(ctx, "set latest post id", func(ctx context.Context, client *redis.Client) error {
		return client.Set(ctx, LatestPostIdKey, strconv.FormatInt(id, 10), 0).Err()
	})
}

func (rc *RedisCache) GetPost(ctx context.Context, postId int64) (*model.EnrichedPost, bool, error) {
	var raw string
	err := rc.withClient(ctx, "get post", func(ctx context.Context, client *redis.Client) error {
		val, err := client.Get(ctx, PostKey(postId)).Result()
		if err != nil {
			return err
		}
		raw = val
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var post model.EnrichedPost
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		return nil, false, &Error{Op: "decode post", Err: err}
	}
	return &post, true, nil
}

func (rc *RedisCache) SetPost(ctx context.Context, post *model.EnrichedPost) error {
	encoded, err := json.Marshal(post)
	if err != nil {
		return &Error{Op: "encode post", Err: err}
	}
	return rc.withClient(ctx, "set post", func(ctx context.Context, client *redis.Client) error {
		return client.Set(ctx, PostKey(post.Id), encoded, 0).Err()
	})
}

func (rc *RedisCache) DeletePost(ctx context.Context, postId int64) error {
	return rc.withClient(ctx, "delete post", func(ctx context.Context, client *redis.Client) error {
		return client.Del(ctx, PostKey(postId)).Err()
	})
}
