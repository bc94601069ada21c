package renderer

import (
	"testing"

	"github.com/jmorales/go-diorama-raytracer/pkg/core"
)

func TestFramebuffer_SetAndGetPixel(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	fb.SetPixel(2, 1, core.NewColor(0x12, 0x34, 0x56))
	if got := fb.Pixel(2, 1); got != 0x123456 {
		t.Errorf("Expected 0x123456, got 0x%06X", got)
	}
	if got := fb.Pixel(0, 0); got != 0x000000 {
		t.Errorf("Untouched pixel should be black, got 0x%06X", got)
	}
}

func TestFramebuffer_OutOfRangeIsSafe(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	// Writes outside the buffer are dropped, reads return black
	fb.SetPixel(-1, 0, core.NewColor(255, 255, 255))
	fb.SetPixel(0, -1, core.NewColor(255, 255, 255))
	fb.SetPixel(2, 0, core.NewColor(255, 255, 255))
	fb.SetPixel(0, 2, core.NewColor(255, 255, 255))

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if fb.Pixel(x, y) != 0 {
				t.Errorf("Out-of-range write leaked into (%d,%d)", x, y)
			}
		}
	}
	if fb.Pixel(5, 5) != 0x000000 {
		t.Error("Out-of-range read should return black")
	}
}

func TestFramebuffer_Clear(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetBackground(core.NewColor(10, 20, 30))
	fb.SetPixel(1, 1, core.NewColor(255, 255, 255))

	fb.Clear()

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := fb.Pixel(x, y); got != 0x0A141E {
				t.Errorf("Expected background 0x0A141E at (%d,%d), got 0x%06X", x, y, got)
			}
		}
	}
}

func TestFramebuffer_WriteRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.SetPixel(0, 0, core.NewColor(1, 2, 3))
	fb.SetPixel(1, 0, core.NewColor(4, 5, 6))

	dst := make([]byte, 8)
	fb.WriteRGBA(dst)

	expected := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	for i := range expected {
		if dst[i] != expected[i] {
			t.Fatalf("Byte %d: expected %d, got %d", i, expected[i], dst[i])
		}
	}
}

func TestFramebuffer_Image(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(1, 0, core.NewColor(100, 150, 200))

	img := fb.Image()
	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 100 || g>>8 != 150 || b>>8 != 200 || a>>8 != 255 {
		t.Errorf("Expected (100,150,200,255), got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}
