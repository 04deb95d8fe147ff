// Package cache holds the bounded recent-posts cache. The cache is a
// best-effort accelerator: it may always be stale and is never the sole
// source for a correctness-sensitive read.
package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/campusfeed/campusfeed-be/model"
)

const (
	// LatestPostIdKey is the sentinel slot holding the newest post id as a
	// decimal string.
	LatestPostIdKey = "latestPostId"

	// RecencyWindow bounds the cache to the N most-recently-created posts by
	// id. Eviction arithmetic assumes post ids have no gaps; that is the
	// established behavior and is kept as-is.
	RecencyWindow = 10
)

// RecencyCache is the external contract of the recent-posts store. Entries
// are either the latest-id marker or a serialized EnrichedPost snapshot,
// keyed by the decimal post id.
type RecencyCache interface {
	// LatestPostId returns the marker value. found is false when the marker
	// is absent or not parseable as an id.
	LatestPostId(ctx context.Context) (id int64, found bool, err error)
	SetLatestPostId(ctx context.Context, id int64) error
	GetPost(ctx context.Context, postId int64) (post *model.EnrichedPost, found bool, err error)
	SetPost(ctx context.Context, post *model.EnrichedPost) error
	DeletePost(ctx context.Context, postId int64) error
}

// Error wraps a failed cache operation. Cache errors are a side-channel
// concern: callers log them and never fail the enclosing primary operation.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cache %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func PostKey(postId int64) string {
	return strconv.FormatInt(postId, 10)
}
