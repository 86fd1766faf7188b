package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.Set("a", CachedTexture{W: 1})
	c.Set("b", CachedTexture{W: 2})

	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", CachedTexture{W: 3})
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int32(1), got.W)
}

func TestTextureCacheReplaceKeepsSize(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.Set("a", CachedTexture{W: 1})
	c.Set("a", CachedTexture{W: 5})

	got, _ := c.Get("a")
	assert.Equal(t, int32(5), got.W)
	assert.Equal(t, 1, c.Len())

	c.Destroy()
	assert.Equal(t, 0, c.Len())
}
