package mysql

import (
	"fmt"

	db2 "github.com/campusfeed/campusfeed-be/db"
)

// predicate is one typed filter clause with its ordered parameters.
type predicate struct {
	clause string
	args   []interface{}
}

// feedStatement is the typed form of a feed query: accumulated predicate
// clauses with a matching ordered parameter list, the physical sort, and the
// page window.
type feedStatement struct {
	predicates []predicate
	orderBy    string
	offset     int
	limit      int
}

var feedSortFields = map[string]string{
	"postid":                "p.postid",
	"create_timestamp":      "p.create_timestamp",
	"last_update_timestamp": "p.last_update_timestamp",
}

const defaultFeedSortField = "p.postid"

// buildFeedStatement translates a FeedQuery into predicate clauses. Presence
// is decided per field: a pointer to false still emits its clause, so
// active=0 filters to inactive posts instead of being dropped.
func buildFeedStatement(query *db2.FeedQuery) *feedStatement {
	stmt := &feedStatement{}

	if query.PostId != nil {
		stmt.and("p.postid = ?", *query.PostId)
	}
	if query.AuthorUserId != nil {
		stmt.and("p.userid = ?", *query.AuthorUserId)
	}
	if query.InterestId != nil {
		stmt.and("p.interestid = ?", *query.InterestId)
	}
	if query.Visibility != nil {
		stmt.and("p.visibility = ?", *query.Visibility)
	}
	if query.Active != nil {
		stmt.and("p.active = ?", *query.Active)
	}
	if query.CreatedAfter != nil {
		stmt.and("p.create_timestamp >= ?", *query.CreatedAfter)
	}
	if query.UpdatedAfter != nil {
		stmt.and("p.last_update_timestamp >= ?", *query.UpdatedAfter)
	}

	sortField, ok := feedSortFields[query.SortField]
	if !ok {
		sortField = defaultFeedSortField
	}

	// The physical order is inverted: an ascending page is selected DESC and
	// reversed in memory by the feed service, which yields the last N rows
	// without a count query. Exact only from page 1; consumers depend on
	// these exact semantics, so keep them.
	direction := "ASC"
	if query.SortOrder == db2.SortOrderAsc {
		direction = "DESC"
	}
	stmt.orderBy = fmt.Sprintf("%s %s", sortField, direction)

	stmt.limit = query.PageSizeOrDefault()
	stmt.offset = (query.PageNumberOrDefault() - 1) * stmt.limit
	return stmt
}

func (fs *feedStatement) and(clause string, args ...interface{}) {
	fs.predicates = append(fs.predicates, predicate{clause: clause, args: args})
}
