package internal

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed icons/*.svg
var iconFiles embed.FS

// ErrNoIcon is returned for icon names without an embedded SVG.
var ErrNoIcon = errors.New("no such icon")

// RasterizeIcon draws the named icon into a size×size image. Dark strokes and
// fills take tint; light ones stay white. Alpha is straight, not premultiplied.
func RasterizeIcon(name string, size int, tint color.RGBA) (*image.RGBA, error) {
	data, err := iconFiles.ReadFile("icons/" + name + ".svg")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoIcon, name)
		}
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse icon %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 {
			continue
		}
		// Pixels are premultiplied; compare the red channel against half the alpha.
		if img.Pix[i] < a/2 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = tint.R, tint.G, tint.B
		} else {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0xFF, 0xFF, 0xFF
		}
	}
	return img, nil
}

// Icon returns the texture of an icon, rasterizing it on a miss.
func (c *TextureCache) Icon(renderer *sdl.Renderer, name string, size int, tint sdl.Color) (CachedTexture, error) {
	key := fmt.Sprintf("i|%d|%02x%02x%02x|%s", size, tint.R, tint.G, tint.B, name)
	if t, ok := c.Get(key); ok {
		return t, nil
	}

	img, err := RasterizeIcon(name, size, color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: 0xFF})
	if err != nil {
		return CachedTexture{}, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(size), int32(size), 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	t := CachedTexture{Texture: texture, W: int32(size), H: int32(size)}
	c.Set(key, t)
	return t, nil
}
