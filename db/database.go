package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusfeed/campusfeed-be/model"

	_ "github.com/go-sql-driver/mysql"
)

const (
	DefaultPageSize   = 10
	DefaultPageNumber = 1
)

type Database interface {
	FeedDatabase
	PostDatabase
	CommentDatabase
	GetSQLDB() *sql.DB
	Close() error
}

// FeedQuery is the flat set of optional feed filters. Pointer fields encode
// presence: a nil pointer means "unset" while a pointer to a zero value is a
// real filter (active=false must return only inactive posts).
type FeedQuery struct {
	PostId       *int64
	AuthorUserId *int64
	InterestId   *int64
	Visibility   *bool
	Active       *bool
	CreatedAfter *time.Time
	UpdatedAfter *time.Time
	SortField    string
	SortOrder    string
	PageSize     int
	PageNumber   int
}

const SortOrderAsc = "asc"

func (q *FeedQuery) PageSizeOrDefault() int {
	if q.PageSize <= 0 {
		return DefaultPageSize
	}
	return q.PageSize
}

func (q *FeedQuery) PageNumberOrDefault() int {
	if q.PageNumber <= 0 {
		return DefaultPageNumber
	}
	return q.PageNumber
}

// LikeMutation applies exactly one store write: an insert when Add is true,
// a delete of the matching (post, user) row otherwise. LikeTimestamp is only
// used on add.
type LikeMutation struct {
	PostId        int64
	LikingUserId  int64
	LikeTimestamp time.Time
	Add           bool
}

type CreatePost struct {
	AuthorUserId int64
	Header       string
	Description  string
	InterestId   int64
}

type CreateComment struct {
	PostId           int64
	CommentingUserId int64
	Text             string
}

type FeedDatabase interface {
	GetEnrichedPosts(ctx context.Context, query *FeedQuery) ([]*model.EnrichedPost, error)
	GetEnrichedPostById(ctx context.Context, postId int64) (*model.EnrichedPost, error)
	ApplyLike(ctx context.Context, mutation *LikeMutation) (*model.MutationResult, error)
	GetLikedPostIds(ctx context.Context, userId int64) ([]int64, error)
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	GetInterests(ctx context.Context) ([]*model.Interest, error)
	GetUserMetrics(ctx context.Context, userId int64) (*model.UserMetrics, error)
}

type CommentDatabase interface {
	GetCommentsForPost(ctx context.Context, postId int64) ([]*model.CommentWithEmail, error)
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	GetUserEmail(ctx context.Context, userId int64) (string, error)
}
