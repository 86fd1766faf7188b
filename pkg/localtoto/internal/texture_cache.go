package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 256

// CachedTexture is a texture with its size.
type CachedTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps rendered text and icons between frames, evicting the
// least recently used entry when full.
type TextureCache struct {
	textures map[string]CachedTexture
	order    []string
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]CachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) (CachedTexture, bool) {
	t, ok := c.textures[key]
	if ok {
		c.moveToEnd(key)
	}
	return t, ok
}

func (c *TextureCache) Set(key string, t CachedTexture) {
	if old, ok := c.textures[key]; ok {
		if old.Texture != t.Texture && old.Texture != nil {
			old.Texture.Destroy()
		}
		c.textures[key] = t
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = t
	c.order = append(c.order, key)
}

// Text returns the texture of text drawn in size and color, rendering it on a miss.
func (c *TextureCache) Text(renderer *sdl.Renderer, text string, size FontSize, color sdl.Color) (CachedTexture, error) {
	key := fmt.Sprintf("t|%d|%02x%02x%02x%02x|%s", size, color.R, color.G, color.B, color.A, text)
	if t, ok := c.Get(key); ok {
		return t, nil
	}

	font := Font(size)
	if font == nil {
		return CachedTexture{}, fmt.Errorf("font %d not loaded", size)
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("text texture: %w", err)
	}

	t := CachedTexture{Texture: texture, W: surface.W, H: surface.H}
	c.Set(key, t)
	return t, nil
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, ok := c.textures[oldest]; ok {
		if t.Texture != nil {
			t.Texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		if t.Texture != nil {
			t.Texture.Destroy()
		}
	}
	c.textures = make(map[string]CachedTexture)
	c.order = c.order[:0]
}
