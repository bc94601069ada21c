package material

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
)

// sentinelColor marks out-of-range texture lookups so they show up on screen
// instead of failing the frame
var sentinelColor = core.ColorFromHex(0xFF00FF)

// Texture is an immutable grid of colors sampled once at load time.
// Textures are shared read-only between materials and never mutated.
type Texture struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewTexture creates a texture from a row-major pixel grid
func NewTexture(width, height int, pixels []core.Color) *Texture {
	return &Texture{Width: width, Height: height, pixels: pixels}
}

// BlackTexture returns the 1x1 black fallback used when an asset fails to load
func BlackTexture() *Texture {
	return NewTexture(1, 1, []core.Color{core.Black()})
}

// LoadTexture decodes a PNG or JPEG image into a texture. Load failures are
// not fatal: they are logged and a 1x1 black texture is substituted, so a
// missing asset degrades the frame instead of failing it.
func LoadTexture(filename string, logger core.Logger) *Texture {
	file, err := os.Open(filename)
	if err != nil {
		logger.Printf("texture: failed to open %s: %v (substituting black)\n", filename, err)
		return BlackTexture()
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		logger.Printf("texture: failed to decode %s: %v (substituting black)\n", filename, err)
		return BlackTexture()
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 255]
			pixels[y*width+x] = core.Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}
		}
	}

	return NewTexture(width, height, pixels)
}

// At returns the color at integer pixel coordinates. Out-of-range queries
// return the magenta sentinel rather than indexing out of bounds.
func (t *Texture) At(x, y int) core.Color {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return sentinelColor
	}
	return t.pixels[y*t.Width+x]
}

// AtUV samples the texture at normalized coordinates with nearest-neighbor
// filtering. Row 0 corresponds to v=0.
func (t *Texture) AtUV(u, v float64) core.Color {
	x := int(u * float64(t.Width-1))
	y := int(v * float64(t.Height-1))
	return t.At(x, y)
}
