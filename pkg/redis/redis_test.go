package redis

import (
	"fmt"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Port: 6379})
	assert.ErrorIs(t, err, ErrHostRequired)

	_, err = New(Config{Host: "localhost", Port: 0})
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestConfigAddr(t *testing.T) {
	assert.Equal(t, "redis:6380", Config{Host: "redis", Port: 6380}.Addr())
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(goredis.Nil))
	assert.True(t, IsNil(fmt.Errorf("get: %w", goredis.Nil)))
	assert.False(t, IsNil(assert.AnError))
}
