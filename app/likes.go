package app

import (
	"context"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
)

// LikeService applies like/unlike mutations and notifies the post-commit
// hook so the cached enriched view can be refreshed.
type LikeService struct {
	db     db2.FeedDatabase
	events PostEvents
}

func NewLikeService(db db2.FeedDatabase, events PostEvents) *LikeService {
	return &LikeService{db: db, events: events}
}

func (ls *LikeService) ApplyLike(ctx context.Context, mutation *db2.LikeMutation) (*model.MutationResult, error) {
	if mutation.PostId <= 0 || mutation.LikingUserId <= 0 {
		return nil, &db2.ValidationError{Message: "postid and like_userid must be positive"}
	}
	result, err := ls.db.ApplyLike(ctx, mutation)
	if err != nil {
		return nil, err
	}
	if ls.events != nil {
		ls.events.PostLiked(ctx, mutation.PostId)
	}
	return result, nil
}
