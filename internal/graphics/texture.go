package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"

	"voxview/internal/atlas"
)

// tilePixels is the edge length of one atlas tile in texels.
const tilePixels = 16

// Texture wraps a GL texture object.
type Texture struct {
	ID uint32
}

// LoadAtlasTexture reads an atlas image from disk, rescales it to the
// layout's canonical tile grid and uploads it. The caller decides whether a
// missing file falls back to the built-in atlas.
func LoadAtlasTexture(layout atlas.Layout, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening atlas image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding atlas image %s: %w", path, err)
	}

	side := layout.GridSize() * tilePixels
	rgba := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return uploadAtlas(rgba), nil
}

// fallbackColors are the base tints of the built-in atlas, indexed by tile.
var fallbackColors = []color.RGBA{
	{0x6a, 0xbe, 0x30, 0xff}, // grass top
	{0x8f, 0x99, 0x3a, 0xff}, // grass side
	{0x9b, 0x6a, 0x3c, 0xff}, // dirt
	{0x8a, 0x8a, 0x8a, 0xff}, // stone
}

// NewFallbackAtlasTexture bakes a procedural atlas with a checkered tint
// per tile, so the renderer works without any image assets on disk.
func NewFallbackAtlasTexture(layout atlas.Layout) *Texture {
	g := layout.GridSize()
	img := image.NewRGBA(image.Rect(0, 0, g*tilePixels, g*tilePixels))

	for tile := 0; tile < layout.TileCount(); tile++ {
		base := fallbackColors[tile%len(fallbackColors)]
		dim := color.RGBA{
			R: uint8(int(base.R) * 220 / 255),
			G: uint8(int(base.G) * 220 / 255),
			B: uint8(int(base.B) * 220 / 255),
			A: 0xff,
		}
		ox := (tile % g) * tilePixels
		oy := (tile / g) * tilePixels
		for y := range tilePixels {
			for x := range tilePixels {
				c := base
				if ((x/2)+(y/2))%2 == 1 {
					c = dim
				}
				img.SetRGBA(ox+x, oy+y, c)
			}
		}
	}

	return uploadAtlas(img)
}

// uploadAtlas creates the GL texture for a composited atlas image. Block
// tiles sample as crisp texels: nearest filtering, edges clamped, no
// mipmaps.
func uploadAtlas(img *image.RGBA) *Texture {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	bounds := img.Bounds()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &Texture{ID: texture}
}

// Bind makes the texture current on the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture object.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
