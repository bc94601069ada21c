package core

// Color is an 8-bit-per-channel RGB color. All arithmetic saturates into
// [0, 255]; channels never wrap.
type Color struct {
	R, G, B uint8
}

// NewColor creates a color, clamping each channel into [0, 255]
func NewColor(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// ColorFromHex unpacks a 0xRRGGBB value into a Color
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// Add returns the channel-wise sum of two colors, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: clampChannel(int(c.R) + int(other.R)),
		G: clampChannel(int(c.G) + int(other.G)),
		B: clampChannel(int(c.B) + int(other.B)),
	}
}

// Scale returns the color multiplied by a scalar, saturating at the
// channel bounds
func (c Color) Scale(scalar float64) Color {
	return Color{
		R: clampChannel(int(float64(c.R) * scalar)),
		G: clampChannel(int(float64(c.G) * scalar)),
		B: clampChannel(int(float64(c.B) * scalar)),
	}
}

// Hex packs the color into a 0xRRGGBB value
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func clampChannel(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}
