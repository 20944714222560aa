package core

import (
	"image/color"
	"math"
)

// maxChannel keeps a channel below 1 so that scaling by 256 never overflows a byte
const maxChannel = 0.999

// Color is a linear RGB triple. Values are unbounded while samples accumulate;
// they are only scaled, gamma corrected and clamped by ToPixel.
type Color struct {
	R, G, B float64
}

// Pixel is a finished 8-bit RGB value
type Pixel struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all three channels set to v
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns full intensity in all channels
func White() Color {
	return Gray(1)
}

// ColorFromVec3 reinterprets a vector as a color triple
func ColorFromVec3(v Vec3) Color {
	return Color{R: v.X, G: v.Y, B: v.Z}
}

// ColorFromStd converts an 8-bit sRGB-ish color (e.g. a named color) to a linear-ish
// albedo by squaring each normalized channel, the inverse of the square-root output curve
func ColorFromStd(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	toLinear := func(v uint32) float64 {
		f := float64(v) / 65535.0
		return f * f
	}
	return Color{R: toLinear(r), G: toLinear(g), B: toLinear(b)}
}

// RandomColor returns a color with each channel uniform in [0, 1)
func RandomColor(sampler Sampler) Color {
	return ColorFromVec3(sampler.Get3D())
}

// RandomColorRange returns a color with each channel uniform in [min, max)
func RandomColorRange(sampler Sampler, minVal, maxVal float64) Color {
	return Color{
		R: RandomRange(sampler, minVal, maxVal),
		G: RandomRange(sampler, minVal, maxVal),
		B: RandomRange(sampler, minVal, maxVal),
	}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the channel-wise product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Luminance returns the perceptual luminance of an RGB color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsBlack reports whether every channel is exactly zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// ToPixel converts an accumulated sum of samples to output bytes: the sum is divided by
// the sample count, gamma corrected with a square-root curve and clamped to [0, 0.999]
func (c Color) ToPixel(samples int) Pixel {
	scale := 1.0
	if samples > 0 {
		scale = 1.0 / float64(samples)
	}
	return Pixel{
		R: channelToByte(c.R * scale),
		G: channelToByte(c.G * scale),
		B: channelToByte(c.B * scale),
	}
}

func channelToByte(v float64) uint8 {
	// NaN and negative channels come out black
	if !(v > 0) {
		return 0
	}
	gamma := math.Sqrt(v)
	return uint8(256 * math.Min(gamma, maxChannel))
}

// RGBA converts the pixel to an opaque image/color value
func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}
