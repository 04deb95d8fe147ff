package mysql

import (
	"testing"
	"time"

	db2 "github.com/campusfeed/campusfeed-be/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestBuildFeedStatementDefaults(t *testing.T) {
	stmt := buildFeedStatement(&db2.FeedQuery{})

	assert.Empty(t, stmt.predicates)
	assert.Equal(t, "p.postid ASC", stmt.orderBy)
	assert.Equal(t, 0, stmt.offset)
	assert.Equal(t, 10, stmt.limit)
}

func TestBuildFeedStatementAccumulatesPredicatesInOrder(t *testing.T) {
	createdAfter := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stmt := buildFeedStatement(&db2.FeedQuery{
		PostId:       int64Ptr(7),
		AuthorUserId: int64Ptr(11),
		InterestId:   int64Ptr(2),
		Visibility:   boolPtr(true),
		Active:       boolPtr(true),
		CreatedAfter: &createdAfter,
	})

	require.Len(t, stmt.predicates, 6)
	assert.Equal(t, "p.postid = ?", stmt.predicates[0].clause)
	assert.Equal(t, []interface{}{int64(7)}, stmt.predicates[0].args)
	assert.Equal(t, "p.userid = ?", stmt.predicates[1].clause)
	assert.Equal(t, []interface{}{int64(11)}, stmt.predicates[1].args)
	assert.Equal(t, "p.interestid = ?", stmt.predicates[2].clause)
	assert.Equal(t, "p.visibility = ?", stmt.predicates[3].clause)
	assert.Equal(t, "p.active = ?", stmt.predicates[4].clause)
	assert.Equal(t, "p.create_timestamp >= ?", stmt.predicates[5].clause)
	assert.Equal(t, []interface{}{createdAfter}, stmt.predicates[5].args)
}

func TestBuildFeedStatementFalsyFiltersStillApply(t *testing.T) {
	stmt := buildFeedStatement(&db2.FeedQuery{
		Visibility: boolPtr(false),
		Active:     boolPtr(false),
	})

	require.Len(t, stmt.predicates, 2)
	assert.Equal(t, "p.visibility = ?", stmt.predicates[0].clause)
	assert.Equal(t, []interface{}{false}, stmt.predicates[0].args)
	assert.Equal(t, "p.active = ?", stmt.predicates[1].clause)
	assert.Equal(t, []interface{}{false}, stmt.predicates[1].args)
}

func TestBuildFeedStatementUnsetBoolsEmitNoPredicate(t *testing.T) {
	stmt := buildFeedStatement(&db2.FeedQuery{})
	assert.Empty(t, stmt.predicates)
}

func TestBuildFeedStatementSortFieldFallback(t *testing.T) {
	for _, sortField := range []string{"", "header", "description", "postid; DROP TABLE posts"} {
		stmt := buildFeedStatement(&db2.FeedQuery{SortField: sortField})
		assert.Equal(t, "p.postid ASC", stmt.orderBy, "sortField=%q", sortField)
	}

	stmt := buildFeedStatement(&db2.FeedQuery{SortField: "create_timestamp"})
	assert.Equal(t, "p.create_timestamp ASC", stmt.orderBy)

	stmt = buildFeedStatement(&db2.FeedQuery{SortField: "last_update_timestamp"})
	assert.Equal(t, "p.last_update_timestamp ASC", stmt.orderBy)
}

func TestBuildFeedStatementInvertsPhysicalOrder(t *testing.T) {
	// An ascending page is selected descending; the feed service reverses it
	// in memory. Every other sort order value selects ascending.
	stmt := buildFeedStatement(&db2.FeedQuery{SortOrder: "asc"})
	assert.Equal(t, "p.postid DESC", stmt.orderBy)

	for _, sortOrder := range []string{"", "desc", "DESC", "anything"} {
		stmt := buildFeedStatement(&db2.FeedQuery{SortOrder: sortOrder})
		assert.Equal(t, "p.postid ASC", stmt.orderBy, "sortOrder=%q", sortOrder)
	}
}

func TestBuildFeedStatementPageWindow(t *testing.T) {
	stmt := buildFeedStatement(&db2.FeedQuery{PageSize: 5, PageNumber: 3})
	assert.Equal(t, 10, stmt.offset)
	assert.Equal(t, 5, stmt.limit)

	stmt = buildFeedStatement(&db2.FeedQuery{PageSize: 1, PageNumber: 1})
	assert.Equal(t, 0, stmt.offset)
	assert.Equal(t, 1, stmt.limit)

	// Zero values fall back to the defaults.
	stmt = buildFeedStatement(&db2.FeedQuery{PageSize: 0, PageNumber: 0})
	assert.Equal(t, 0, stmt.offset)
	assert.Equal(t, 10, stmt.limit)
}
