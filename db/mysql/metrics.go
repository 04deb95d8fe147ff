package mysql

import (
	"context"
	"database/sql"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/campusfeed/campusfeed-be/model"
)

// MetricsDB runs the fixed aggregate query directly on the pool; there is
// nothing dynamic to build here.
type MetricsDB struct {
	sqlDB *sql.DB
}

func getMetricsDB(sqlDB *sql.DB) *MetricsDB {
	return &MetricsDB{sqlDB}
}

const userMetricsQuery = `WITH POSTS AS (
		SELECT postid
		FROM posts
		WHERE userid = ?
	),
	TOTAL_POSTS AS (
		SELECT COUNT(postid) AS totalpost FROM POSTS
	),
	LIKES AS (
		SELECT COUNT(postid) AS likescount
		FROM likes
		WHERE postid IN (SELECT postid FROM POSTS)
	),
	COMMENTS AS (
		SELECT COUNT(commentid) AS commentscount
		FROM comments
		WHERE postid IN (SELECT postid FROM POSTS)
	)
	SELECT
		COALESCE(P.totalpost, 0) AS postscount,
		COALESCE(L.likescount, 0) AS likescount,
		COALESCE(C.commentscount, 0) AS commentscount
	FROM TOTAL_POSTS P
	LEFT JOIN LIKES L ON 1=1
	LEFT JOIN COMMENTS C ON 1=1`

// GetUserMetrics totals a user's posts and the likes and comments received
// across them.
func (mdb *MetricsDB) GetUserMetrics(ctx context.Context, userId int64) (*model.UserMetrics, error) {
	var metrics model.UserMetrics
	if err := mdb.sqlDB.QueryRowContext(ctx, userMetricsQuery, userId).
		Scan(&metrics.PostsCount, &metrics.LikesCount, &metrics.CommentsCount); err != nil {
		return nil, &db2.QueryError{Err: err}
	}
	return &metrics, nil
}
