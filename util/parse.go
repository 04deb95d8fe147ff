package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const sqlDatetimeLayout = "2006-01-02 15:04:05"

// ParseTime accepts RFC3339 or the bare SQL datetime layout clients
// historically sent.
func ParseTime(val string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	return time.Parse(sqlDatetimeLayout, val)
}

// OptionalInt64Query returns nil when the parameter is absent. Presence with
// an unparseable value is an error, never silently ignored.
func OptionalInt64Query(c *gin.Context, name string) (*int64, *HTTPError) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, nil
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, BuildValidationHTTPErr(fmt.Sprintf("%v must be an integer", name))
	}
	return &val, nil
}

// OptionalBoolQuery distinguishes absent from present-and-false: ?active=0
// yields a pointer to false, which still filters.
func OptionalBoolQuery(c *gin.Context, name string) (*bool, *HTTPError) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, BuildValidationHTTPErr(fmt.Sprintf("%v must be a boolean", name))
	}
	return &val, nil
}

func OptionalTimeQuery(c *gin.Context, name string) (*time.Time, *HTTPError) {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil, nil
	}
	val, err := ParseTime(raw)
	if err != nil {
		return nil, BuildValidationHTTPErr(fmt.Sprintf("%v must be a timestamp", name))
	}
	return &val, nil
}
