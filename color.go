package orbital

import (
	"fmt"
	imgcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// A Color represents a color in linear space, containing R, G, B, and A components, each expected to range from 0 to 1.
// Materials and lighting work in linear space; colors are converted to sRGB only when written out to the screen.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided linear R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex parses an sRGB hex string ("#00ff83", "#fff") and returns the opaque linear Color it represents.
func NewColorFromHex(hex string) (Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.LinearRgb()
	return NewColor(float32(r), float32(g), float32(b), 1), nil
}

// NewColorFromRGB255 converts 0-255 sRGB channel values (as in a CSS "rgb(r, g, b)" string) to an opaque linear Color.
func NewColorFromRGB255(r, g, b uint8) Color {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := c.LinearRgb()
	return NewColor(float32(lr), float32(lg), float32(lb), 1)
}

func (color Color) Clone() Color {
	return NewColor(color.R, color.G, color.B, color.A)
}

// Multiply returns the Color multiplied component-wise by the other Color.
func (color Color) Multiply(other Color) Color {
	return NewColor(color.R*other.R, color.G*other.G, color.B*other.B, color.A*other.A)
}

// AddRGB returns the Color with value added to its R, G, and B components.
func (color Color) AddRGB(value float32) Color {
	c := color
	c.R += value
	c.G += value
	c.B += value
	return c
}

// SRGB returns the Color converted from linear space to clamped sRGB, ready for display.
func (color Color) SRGB() Color {
	c := colorful.LinearRgb(float64(color.R), float64(color.G), float64(color.B)).Clamped()
	return NewColor(float32(c.R), float32(c.G), float32(c.B), color.A)
}

// RGB255 returns the Color's sRGB channels as 0-255 values.
func (color Color) RGB255() (uint8, uint8, uint8) {
	return colorful.LinearRgb(float64(color.R), float64(color.G), float64(color.B)).Clamped().RGB255()
}

func (color Color) RGBA64() (float64, float64, float64, float64) {
	return float64(color.R), float64(color.G), float64(color.B), float64(color.A)
}

// Hex returns the Color as an sRGB hex string, like "#00ff83".
func (color Color) Hex() string {
	return colorful.LinearRgb(float64(color.R), float64(color.G), float64(color.B)).Clamped().Hex()
}

// ToRGBA64 converts the Color to a non-premultiplied sRGB image/color.NRGBA64, for use with the image packages.
func (color Color) ToRGBA64() imgcolor.NRGBA64 {
	r, g, b := color.RGB255()
	a := uint16(clamp(float64(color.A), 0, 1) * 0xffff)
	return imgcolor.NRGBA64{R: uint16(r) * 0x101, G: uint16(g) * 0x101, B: uint16(b) * 0x101, A: a}
}

func (color Color) String() string {
	r, g, b := color.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}
