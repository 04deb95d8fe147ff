package model

import (
	"time"
)

// Comment rows are append-only: never mutated or deleted by this service.
type Comment struct {
	Id               int64     `db:"commentid" json:"commentid"`
	PostId           int64     `db:"postid" json:"postid"`
	CommentingUserId int64     `db:"comment_userid" json:"comment_userid"`
	CommentTimestamp time.Time `db:"comment_timestamp" json:"comment_timestamp"`
	Text             string    `db:"comment" json:"comment"`
}

// CommentWithEmail joins a comment with its author's email for display.
type CommentWithEmail struct {
	Comment `db:",inline"`
	Email   string `db:"email" json:"email"`
}
