package model

import (
	"time"
)

// Post mirrors a row of the posts table. Post ids are store-assigned and
// strictly increase with creation order, so recency comparisons are done on
// the id, never on timestamps.
type Post struct {
	Id           int64     `db:"postid" json:"postid"`
	AuthorUserId int64     `db:"userid" json:"userid"`
	CreatedAt    time.Time `db:"create_timestamp" json:"create_timestamp"`
	UpdatedAt    time.Time `db:"last_update_timestamp" json:"last_update_timestamp"`
	InterestId   int64     `db:"interestid" json:"interestid"`
	Header       string    `db:"header" json:"header"`
	Description  string    `db:"description" json:"description"`
	Visibility   bool      `db:"visibility" json:"visibility"`
	Active       bool      `db:"active" json:"active"`
}

// EnrichedPost is the read-only feed projection: a post joined with its
// distinct like count, the author's name/email/university, and the interest
// label. It is never persisted outside of its cache snapshot and must be
// recomputed whenever any joined attribute changes.
type EnrichedPost struct {
	Post          `db:",inline"`
	NumberOfLikes int    `db:"number_of_likes" json:"number_of_likes"`
	FirstName     string `db:"firstname" json:"firstname"`
	LastName      string `db:"lastname" json:"lastname"`
	Email         string `db:"email" json:"email"`
	UniversityId  int64  `db:"universityid" json:"universityid"`
	University    string `db:"university" json:"university"`
	Interest      string `db:"interest" json:"interest"`
}

type Interest struct {
	Id    int64  `db:"interestid" json:"interestid"`
	Label string `db:"interest" json:"interest"`
}
