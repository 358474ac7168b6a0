// Package tintmatch compares colors for paint and dye matching.
//
// A reference color and a sample are converted to CIELAB (sRGB, D65), their
// CIE76 ΔE difference is computed, and quadrant-based tint guidance describes
// how to move the sample toward the reference.
//
// Usage as a library:
//
//	ref, _ := tintmatch.ParseHex("#C84B3C")
//	sample, _ := tintmatch.ParseHex("#C0504A")
//	result := tintmatch.Compare(ref, sample)
//	fmt.Println(result.DeltaE, result.Recommendation)
//
// Colors can also come from photos of paint swatches:
//
//	sample, _ := tintmatch.LoadSwatch("mixed-batch.jpg")
package tintmatch

import (
	"github.com/tintlab/tintmatch/internal/color"
	"github.com/tintlab/tintmatch/internal/match"
	"github.com/tintlab/tintmatch/internal/swatch"
)

// Color is an sRGB color with 8-bit channels.
type Color = color.RGB

// Lab is a color in the CIELAB space (D65 illuminant).
type Lab = color.LAB

// Comparison is the result of comparing a sample against a reference.
type Comparison = match.Comparison

// NewColor constructs a Color from integer channels, rejecting values
// outside [0, 255].
func NewColor(r, g, b int) (Color, error) {
	return color.New(r, g, b)
}

// ParseHex parses a hex color string like "#C84B3C" or "#F0A".
func ParseHex(s string) (Color, error) {
	return color.ParseHex(s)
}

// RGBToLab converts an sRGB color to CIELAB.
func RGBToLab(c Color) Lab {
	return c.ToLAB()
}

// LabToRGB converts a CIELAB color to sRGB, clamping out-of-gamut values
// to the nearest representable color.
func LabToRGB(l Lab) Color {
	return l.ToRGB()
}

// DeltaE computes the CIE76 perceptual difference between two LAB colors.
func DeltaE(a, b Lab) float64 {
	return color.DeltaE(a, b)
}

// Compare converts both colors to LAB and reports their difference along
// with tint guidance for the sample.
func Compare(reference, sample Color) Comparison {
	return match.Compare(reference, sample)
}

// Recommend returns tint guidance for moving sample toward reference.
// Either argument may be nil, meaning that color is not available yet.
func Recommend(reference, sample *Lab) string {
	return match.Recommend(reference, sample)
}

// Judge maps a ΔE value onto its interpretation band
// (imperceptible, barely perceptible, noticeable, significant, mismatch).
func Judge(deltaE float64) string {
	return match.Judge(deltaE)
}

// LoadSwatch reads a photo of a paint swatch (PNG, JPEG, or WEBP) and
// extracts its dominant color.
func LoadSwatch(path string) (Color, error) {
	img, err := swatch.Load(path)
	if err != nil {
		return Color{}, err
	}
	return swatch.Dominant(img, swatch.DefaultTolerance), nil
}
