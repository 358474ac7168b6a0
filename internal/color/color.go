// Package color provides the RGB and LAB value types and the sRGB/D65
// conversions between them.
//
// Conversions use the CIE 1976 pipeline: sRGB → linear RGB → XYZ → L*a*b*,
// with the D65 reference white. The coefficients below are part of the
// interchange contract: stored project samples and API responses computed
// with them must compare equal across versions, so they are fixed to these
// exact values.
package color

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// RGB represents a device-dependent sRGB color with 8-bit channels.
// The uint8 channels make out-of-range values unrepresentable.
type RGB struct {
	R, G, B uint8
}

// New constructs an RGB from untrusted integer channel values,
// rejecting anything outside [0, 255].
func New(r, g, b int) (RGB, error) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("channel value %d out of range [0, 255]", v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// FromStdColor converts a standard library color to RGB, dropping alpha.
func FromStdColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToStdColor converts RGB to an opaque standard library color.
func (c RGB) ToStdColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color as a "#RRGGBB" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a hex color string like "#000", "#000000", "#FF00FF".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		_, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r = r*16 + r
		g = g*16 + g
		b = b*16 + b
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q: must be 3 or 6 hex digits", s)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// LAB represents a color in the CIELAB color space (D65 illuminant).
// L is nominally in [0, 100] but is never clamped here; arithmetic on LAB
// values may transiently leave the nominal ranges. Only ToRGB clamps.
type LAB struct {
	L, A, B float64
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// ToLAB converts an RGB color to CIELAB. Total over all RGB inputs.
func (c RGB) ToLAB() LAB {
	// RGB to linear sRGB
	rLin := srgbToLinear(float64(c.R) / 255.0)
	gLin := srgbToLinear(float64(c.G) / 255.0)
	bLin := srgbToLinear(float64(c.B) / 255.0)

	// Linear sRGB to XYZ
	x := 0.4124*rLin + 0.3576*gLin + 0.1805*bLin
	y := 0.2126*rLin + 0.7152*gLin + 0.0722*bLin
	z := 0.0193*rLin + 0.1192*gLin + 0.9505*bLin

	// XYZ to LAB
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	l := 116.0*fy - 16.0
	a := 500.0 * (fx - fy)
	b := 200.0 * (fy - fz)

	return LAB{L: l, A: a, B: b}
}

// ToRGB converts a CIELAB color back to sRGB. Out-of-gamut LAB values
// (extreme a/b) algebraically land outside [0, 255] per channel; they are
// clamped to the nearest representable color rather than reported as errors.
func (c LAB) ToRGB() RGB {
	fy := (c.L + 16.0) / 116.0
	fx := fy + c.A/500.0
	fz := fy - c.B/200.0

	x := labFInv(fx) * whiteX
	y := labFInv(fy) * whiteY
	z := labFInv(fz) * whiteZ

	// XYZ to linear sRGB, hand-tuned inverse of the forward matrix
	rLin := 3.2406*x - 1.5372*y - 0.4986*z
	gLin := -0.9689*x + 1.8758*y + 0.0415*z
	bLin := 0.0557*x - 0.2040*y + 1.0570*z

	return RGB{
		R: clampChannel(linearToSrgb(rLin) * 255.0),
		G: clampChannel(linearToSrgb(gLin) * 255.0),
		B: clampChannel(linearToSrgb(bLin) * 255.0),
	}
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSrgb(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3.0*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3.0 * delta * delta * (t - 4.0/29.0)
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// DeltaE computes the CIE76 color difference: the Euclidean distance
// between two LAB colors. Symmetric, non-negative, zero iff equal.
func DeltaE(a, b LAB) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DistanceRGB computes the Euclidean distance in RGB space between two colors.
func DistanceRGB(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// WeightedMean computes the weighted mean of a set of colors.
// weights[i] corresponds to colors[i]. If weights is nil, equal weights are used.
func WeightedMean(colors []RGB, weights []int) RGB {
	if len(colors) == 0 {
		return RGB{}
	}
	var totalR, totalG, totalB float64
	var totalW float64
	for i, c := range colors {
		w := 1.0
		if weights != nil {
			w = float64(weights[i])
		}
		totalR += float64(c.R) * w
		totalG += float64(c.G) * w
		totalB += float64(c.B) * w
		totalW += w
	}
	if totalW == 0 {
		return RGB{}
	}
	return RGB{
		R: uint8(math.Round(totalR / totalW)),
		G: uint8(math.Round(totalG / totalW)),
		B: uint8(math.Round(totalB / totalW)),
	}
}

// IsLight returns true if the color is perceptually light (luminance > 0.5).
// Used to pick a readable text color when drawing on top of a swatch.
func (c RGB) IsLight() bool {
	rLin := srgbToLinear(float64(c.R) / 255.0)
	gLin := srgbToLinear(float64(c.G) / 255.0)
	bLin := srgbToLinear(float64(c.B) / 255.0)
	luminance := 0.2126*rLin + 0.7152*gLin + 0.0722*bLin
	return luminance > 0.5
}
