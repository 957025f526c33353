package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGetInvalidate(t *testing.T) {
	c := New[string, []int]("test", 0, 0)

	_, ok := c.Get("2025-01-01")
	assert.False(t, ok)

	c.Set("2025-01-01", []int{1, 2})
	v, ok := c.Get("2025-01-01")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	assert.True(t, c.Invalidate("2025-01-01"))
	assert.False(t, c.Invalidate("2025-01-01"))
	_, ok = c.Get("2025-01-01")
	assert.False(t, ok)
}

func TestCache_SeasonKeysAreDistinct(t *testing.T) {
	c := New[SeasonKey, string]("standings", 0, 0)
	c.Set(SeasonKey{Season: 2024, Postseason: true}, "playoffs")
	c.Set(SeasonKey{Season: 2024, Postseason: false}, "regular")

	v, _ := c.Get(SeasonKey{Season: 2024, Postseason: true})
	assert.Equal(t, "playoffs", v)
	v, _ = c.Get(SeasonKey{Season: 2024})
	assert.Equal(t, "regular", v)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "2024-true", SeasonKey{Season: 2024, Postseason: true}.String())
}

func TestCache_UnboundedWithoutSize(t *testing.T) {
	c := New[int, int]("unbounded", 0, 0)
	for i := 0; i < 1000; i++ {
		c.Set(i, i)
	}
	assert.Equal(t, 1000, c.Len())

	c.Purge()
	assert.Zero(t, c.Len())
}

func TestCache_ExpiresWithTTL(t *testing.T) {
	c := New[string, int]("ttl", 0, 20*time.Millisecond)
	c.Set("k", 1)

	assert.Eventually(t, func() bool {
		_, ok := c.Peek("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
