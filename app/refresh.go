package app

import (
	"context"
	"log/slog"

	"github.com/campusfeed/campusfeed-be/cache"
	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
)

// CacheRefresher keeps the recency cache coherent with the store. Every
// failure in here is logged and swallowed: the cache is a side channel and
// must never fail the primary operation that triggered the refresh.
type CacheRefresher struct {
	db     db2.FeedDatabase
	cache  cache.RecencyCache
	logger *slog.Logger
}

func NewCacheRefresher(db db2.FeedDatabase, recencyCache cache.RecencyCache, logger *slog.Logger) *CacheRefresher {
	return &CacheRefresher{db: db, cache: recencyCache, logger: logger}
}

// PostFetchedAsNewest records post as the newest entry: it updates the
// latest-id marker, stores the snapshot, and evicts the entry that just fell
// out of the recency window.
func (cr *CacheRefresher) PostFetchedAsNewest(ctx context.Context, post *model.EnrichedPost) {
	if err := cr.cache.SetLatestPostId(ctx, post.Id); err != nil {
		cr.logger.Warn("failed to update latest post id marker", "postId", post.Id, "error", err)
		return
	}
	if err := cr.cache.SetPost(ctx, post); err != nil {
		cr.logger.Warn("failed to cache newest post", "postId", post.Id, "error", err)
		return
	}

	oldestRetainedId := post.Id - cache.RecencyWindow
	_, found, err := cr.cache.GetPost(ctx, oldestRetainedId)
	if err != nil {
		cr.logger.Warn("failed to check eviction candidate", "postId", oldestRetainedId, "error", err)
		return
	}
	if !found {
		return
	}
	if err := cr.cache.DeletePost(ctx, oldestRetainedId); err != nil {
		cr.logger.Warn("failed to evict post outside recency window", "postId", oldestRetainedId, "error", err)
	}
}

// PostLiked refreshes the cached enriched view of the liked post when it is
// still inside the recency window. An absent or unparseable marker skips the
// refresh without failing the mutation.
func (cr *CacheRefresher) PostLiked(ctx context.Context, postId int64) {
	latestPostId, found, err := cr.cache.LatestPostId(ctx)
	if err != nil {
		cr.logger.Warn("failed to read latest post id marker", "error", err)
		return
	}
	if !found {
		return
	}
	if postId <= latestPostId-cache.RecencyWindow {
		return
	}

	post, err := cr.db.GetEnrichedPostById(ctx, postId)
	if err != nil {
		cr.logger.Warn("failed to re-fetch enriched post for cache refresh", "postId", postId, "error", err)
		return
	}
	if post == nil {
		return
	}
	if err := cr.cache.SetPost(ctx, post); err != nil {
		cr.logger.Warn("failed to refresh cached post", "postId", postId, "error", err)
	}
}
