package model

// MutationResult reports the outcome of a single store write.
type MutationResult struct {
	RowsAffected int64 `json:"affectedRows"`
	InsertId     int64 `json:"insertId"`
}

// UserMetrics aggregates a user's footprint across their posts.
type UserMetrics struct {
	PostsCount    int64 `db:"postscount" json:"postscount"`
	LikesCount    int64 `db:"likescount" json:"likescount"`
	CommentsCount int64 `db:"commentscount" json:"commentscount"`
}
