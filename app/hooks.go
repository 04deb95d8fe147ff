package app

import (
	"context"

	"github.com/campusfeed/campusfeed-be/model"
)

// PostEvents receives post-commit notifications from the primary read/write
// paths. Subscribers absorb their own failures; the primary operation's
// success is never coupled to a subscriber's.
type PostEvents interface {
	// PostFetchedAsNewest fires when a feed request returned the single most
	// recent post (page size 1, page 1).
	PostFetchedAsNewest(ctx context.Context, post *model.EnrichedPost)

	// PostLiked fires after a like or unlike mutation committed.
	PostLiked(ctx context.Context, postId int64)
}
