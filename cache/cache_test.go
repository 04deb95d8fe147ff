package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostKey(t *testing.T) {
	assert.Equal(t, "42", PostKey(42))
	assert.Equal(t, "9007199254740993", PostKey(9007199254740993))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	wrapped := &Error{Op: "set post", Err: cause}

	assert.Equal(t, "cache set post failed: dial tcp: connection refused", wrapped.Error())
	assert.True(t, errors.Is(wrapped, cause))
}

func TestNewRedisCacheAcceptsURLAndHostPort(t *testing.T) {
	fromURL, err := NewRedisCache("redis://localhost:6379/1")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", fromURL.opts.Addr)
	assert.Equal(t, 1, fromURL.opts.DB)

	fromAddr, err := NewRedisCache("cache.internal:6380")
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", fromAddr.opts.Addr)

	_, err = NewRedisCache("http://not-redis")
	assert.Error(t, err)
}
