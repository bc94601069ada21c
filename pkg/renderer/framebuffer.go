package renderer

import (
	"image"
	"image/color"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
)

// Framebuffer is a width x height pixel store of packed 0xRRGGBB values.
// The renderer only writes pixels; readers export the buffer for display or
// encoding after a render completes.
type Framebuffer struct {
	Width      int
	Height     int
	buffer     []uint32
	background uint32
}

// NewFramebuffer creates a framebuffer cleared to black
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		buffer: make([]uint32, width*height),
	}
}

// SetBackground sets the color used by Clear
func (fb *Framebuffer) SetBackground(c core.Color) {
	fb.background = c.Hex()
}

// Clear fills the buffer with the background color
func (fb *Framebuffer) Clear() {
	for i := range fb.buffer {
		fb.buffer[i] = fb.background
	}
}

// SetPixel writes a color at (x, y). Out-of-range writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c core.Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.buffer[y*fb.Width+x] = c.Hex()
}

// Pixel returns the packed color at (x, y), or black when out of range
func (fb *Framebuffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0x000000
	}
	return fb.buffer[y*fb.Width+x]
}

// WriteRGBA unpacks the buffer into dst as 4 bytes per pixel, the layout
// expected by display surfaces. dst must hold Width*Height*4 bytes.
func (fb *Framebuffer) WriteRGBA(dst []byte) {
	for i, packed := range fb.buffer {
		dst[4*i+0] = uint8(packed >> 16)
		dst[4*i+1] = uint8(packed >> 8)
		dst[4*i+2] = uint8(packed)
		dst[4*i+3] = 0xFF
	}
}

// Image copies the buffer into an image.RGBA for encoding
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			packed := fb.buffer[y*fb.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(packed >> 16),
				G: uint8(packed >> 8),
				B: uint8(packed),
				A: 255,
			})
		}
	}
	return img
}
