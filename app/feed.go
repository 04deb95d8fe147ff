package app

import (
	"context"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
)

// FeedService executes enriched feed queries and notifies the post-commit
// hook when a request fetched the single most recent post.
type FeedService struct {
	db     db2.FeedDatabase
	events PostEvents
}

func NewFeedService(db db2.FeedDatabase, events PostEvents) *FeedService {
	return &FeedService{db: db, events: events}
}

// GetFeed returns one page of enriched posts. The store query runs in
// inverted physical order, so an ascending page is reversed in memory here
// before delivery.
func (fs *FeedService) GetFeed(ctx context.Context, query *db2.FeedQuery) ([]*model.EnrichedPost, error) {
	posts, err := fs.db.GetEnrichedPosts(ctx, query)
	if err != nil {
		return nil, err
	}

	if query.SortOrder == db2.SortOrderAsc {
		reversePosts(posts)
	}

	if query.PageSizeOrDefault() == 1 && query.PageNumberOrDefault() == 1 &&
		len(posts) > 0 && fs.events != nil {
		fs.events.PostFetchedAsNewest(ctx, posts[0])
	}
	return posts, nil
}

func reversePosts(posts []*model.EnrichedPost) {
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
}
