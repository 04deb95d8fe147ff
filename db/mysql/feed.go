package mysql

import (
	"context"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
	"github.com/upper/db/v4"
)

type FeedDB struct {
	sess db.Session
}

func getFeedDB(sess db.Session) *FeedDB {
	return &FeedDB{sess}
}

var enrichedPostColumns = []interface{}{
	"p.postid",
	"p.userid",
	"p.create_timestamp",
	"p.last_update_timestamp",
	"p.interestid",
	"p.header",
	"p.description",
	"p.visibility",
	"p.active",
	db.Raw("COUNT(DISTINCT l.like_userid) AS number_of_likes"),
	"u.firstname",
	"u.lastname",
	"u.email",
	"u.universityid",
	"un.university",
	"c.interest",
}

// Grouped by post identity plus every joined scalar column so the distinct
// like count aggregates per post.
var enrichedPostGroupBy = []interface{}{
	"p.postid",
	"u.firstname",
	"u.lastname",
	"u.universityid",
	"un.university",
	"c.interest",
}

// GetEnrichedPosts runs the multi-join feed query in the physical order
// chosen by the statement builder. Rows come back in that physical order;
// reversal for ascending pages is the feed service's job.
func (fdb *FeedDB) GetEnrichedPosts(ctx context.Context, query *db2.FeedQuery) ([]*model.EnrichedPost, error) {
	stmt := buildFeedStatement(query)

	sel := fdb.sess.SQL().
		Select(enrichedPostColumns...).
		From("posts AS p").
		LeftJoin("likes AS l").On("p.postid = l.postid").
		Join("users AS u").On("p.userid = u.userid").
		Join("universities AS un").On("u.universityid = un.universityid").
		Join("interest AS c").On("p.interestid = c.interestid")
	if len(stmt.predicates) > 0 {
		sel = sel.Where(db.Raw(stmt.predicates[0].clause, stmt.predicates[0].args...))
		for _, pred := range stmt.predicates[1:] {
			sel = sel.And(db.Raw(pred.clause, pred.args...))
		}
	}
	sel = sel.
		GroupBy(enrichedPostGroupBy...).
		OrderBy(stmt.orderBy).
		Offset(stmt.offset).
		Limit(stmt.limit)

	var posts []*model.EnrichedPost
	if err := sel.IteratorContext(ctx).All(&posts); err != nil {
		return nil, &db2.QueryError{Err: err}
	}
	return posts, nil
}

// GetEnrichedPostById fetches the enriched form of a single post, with the
// same joins and grouping as the feed query. Returns nil when absent.
func (fdb *FeedDB) GetEnrichedPostById(ctx context.Context, postId int64) (*model.EnrichedPost, error) {
	id := postId
	posts, err := fdb.GetEnrichedPosts(ctx, &db2.FeedQuery{
		PostId:     &id,
		PageSize:   1,
		PageNumber: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return posts[0], nil
}

// ApplyLike performs exactly one store mutation. Double-inserting a like is
// caught by the table's uniqueness constraint; deleting an absent like
// affects zero rows and is a no-op.
func (fdb *FeedDB) ApplyLike(ctx context.Context, mutation *db2.LikeMutation) (*model.MutationResult, error) {
	if mutation.Add {
		res, err := fdb.sess.SQL().
			InsertInto("likes").
			Columns("postid", "like_userid", "like_timestamp").
			Values(mutation.PostId, mutation.LikingUserId, mutation.LikeTimestamp).
			ExecContext(ctx)
		if err != nil {
			return nil, &db2.MutationError{Err: err}
		}
		return buildMutationResult(res)
	}

	res, err := fdb.sess.SQL().
		DeleteFrom("likes").
		Where("postid = ? AND like_userid = ?", mutation.PostId, mutation.LikingUserId).
		ExecContext(ctx)
	if err != nil {
		return nil, &db2.MutationError{Err: err}
	}
	return buildMutationResult(res)
}

func (fdb *FeedDB) GetLikedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	var rows []struct {
		PostId int64 `db:"postid"`
	}
	if err := fdb.sess.SQL().
		Select("postid").
		From("likes").
		Where("like_userid = ?", userId).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, &db2.QueryError{Err: err}
	}
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.PostId
	}
	return ids, nil
}
