package util

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var DbHTTPErr = HTTPError{
	Message: "database error",
	Status:  http.StatusInternalServerError,
}

// BuildDbHTTPErr logs the store failure with full detail server-side and
// returns the generic 500 for the caller.
func BuildDbHTTPErr(err error) *HTTPError {
	slog.Error("database error occurred", "error", err)
	return &DbHTTPErr
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	}
}

func BuildMissingParamHTTPErr(param string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("missing required %v parameter", param),
	}
}

func BuildValidationHTTPErr(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func BuildConflictHTTPErr(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

type HandlerOpts struct{}

type Handler func(c *gin.Context) (interface{}, *HTTPError)

// HandlerWrapper adapts a data-or-error handler to gin, wrapping results in
// the standard success envelope.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

/*
	HandleHTTPErrorRes handles creating the appropriate response for the HTTP error.
	break the route after calling this function
*/
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.JSON(err.Status, gin.H{
		"success": false,
		"message": err.Message,
	})
}
