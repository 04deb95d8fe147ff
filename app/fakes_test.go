package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/campusfeed/campusfeed-be/cache"
	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func enriched(id int64) *model.EnrichedPost {
	return &model.EnrichedPost{Post: model.Post{Id: id}}
}

type fakeFeedDB struct {
	posts     []*model.EnrichedPost
	queryErr  error
	lastQuery *db2.FeedQuery

	byId      map[int64]*model.EnrichedPost
	byIdErr   error
	byIdCalls int

	likeResult *model.MutationResult
	likeErr    error
	likeCalls  []*db2.LikeMutation
}

func (f *fakeFeedDB) GetEnrichedPosts(ctx context.Context, query *db2.FeedQuery) ([]*model.EnrichedPost, error) {
	f.lastQuery = query
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.posts, nil
}

func (f *fakeFeedDB) GetEnrichedPostById(ctx context.Context, postId int64) (*model.EnrichedPost, error) {
	f.byIdCalls++
	if f.byIdErr != nil {
		return nil, f.byIdErr
	}
	return f.byId[postId], nil
}

func (f *fakeFeedDB) ApplyLike(ctx context.Context, mutation *db2.LikeMutation) (*model.MutationResult, error) {
	f.likeCalls = append(f.likeCalls, mutation)
	if f.likeErr != nil {
		return nil, f.likeErr
	}
	return f.likeResult, nil
}

func (f *fakeFeedDB) GetLikedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	return nil, nil
}

// memoryCache is an in-process stand-in for the redis-backed recency cache.
type memoryCache struct {
	latest    int64
	hasLatest bool
	posts     map[int64]*model.EnrichedPost
}

func newMemoryCache() *memoryCache {
	return &memoryCache{posts: make(map[int64]*model.EnrichedPost)}
}

func (m *memoryCache) LatestPostId(ctx context.Context) (int64, bool, error) {
	return m.latest, m.hasLatest, nil
}

func (m *memoryCache) SetLatestPostId(ctx context.Context, id int64) error {
	m.latest = id
	m.hasLatest = true
	return nil
}

func (m *memoryCache) GetPost(ctx context.Context, postId int64) (*model.EnrichedPost, bool, error) {
	post, found := m.posts[postId]
	return post, found, nil
}

func (m *memoryCache) SetPost(ctx context.Context, post *model.EnrichedPost) error {
	m.posts[post.Id] = post
	return nil
}

func (m *memoryCache) DeletePost(ctx context.Context, postId int64) error {
	delete(m.posts, postId)
	return nil
}

// failingCache errors on every operation, as if the backend were down.
type failingCache struct{}

func (failingCache) LatestPostId(ctx context.Context) (int64, bool, error) {
	return 0, false, &cache.Error{Op: "get latest post id", Err: context.DeadlineExceeded}
}

func (failingCache) SetLatestPostId(ctx context.Context, id int64) error {
	return &cache.Error{Op: "set latest post id", Err: context.DeadlineExceeded}
}

func (failingCache) GetPost(ctx context.Context, postId int64) (*model.EnrichedPost, bool, error) {
	return nil, false, &cache.Error{Op: "get post", Err: context.DeadlineExceeded}
}

func (failingCache) SetPost(ctx context.Context, post *model.EnrichedPost) error {
	return &cache.Error{Op: "set post", Err: context.DeadlineExceeded}
}

func (failingCache) DeletePost(ctx context.Context, postId int64) error {
	return &cache.Error{Op: "delete post", Err: context.DeadlineExceeded}
}

type recordingEvents struct {
	newest []*model.EnrichedPost
	liked  []int64
}

func (r *recordingEvents) PostFetchedAsNewest(ctx context.Context, post *model.EnrichedPost) {
	r.newest = append(r.newest, post)
}

func (r *recordingEvents) PostLiked(ctx context.Context, postId int64) {
	r.liked = append(r.liked, postId)
}
