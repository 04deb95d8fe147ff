package db

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// QueryError wraps a read against the store that failed. It always propagates
// to the boundary; only cache side effects are ever swallowed.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("store query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// MutationError wraps a write against the store that failed.
type MutationError struct {
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("store mutation failed: %v", e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// ValidationError signals a missing or malformed caller input. Surfaced as a
// 4xx and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const mysqlDupEntryCode = 1062

// IsDupKeyErr reports whether err is a MySQL duplicate-key violation, e.g. a
// like inserted twice for the same (postid, like_userid) pair.
func IsDupKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == mysqlDupEntryCode
}
