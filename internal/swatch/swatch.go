// Package swatch obtains a single sample color from a photo of a paint
// chip or fabric swatch. Supports PNG, JPEG, and WEBP input.
package swatch

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/tintlab/tintmatch/internal/color"
)

// Load reads an image file from disk. Supports PNG, JPEG, and WEBP.
// The path is normalized: ~ is expanded to the user's home directory,
// and relative paths are resolved to absolute.
func Load(path string) (image.Image, error) {
	path = ExpandPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return png.Decode(f)
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	case ".webp":
		// Decoded via the blank import of golang.org/x/image/webp
		img, _, err := image.Decode(f)
		return img, err
	default:
		return nil, fmt.Errorf("unsupported image format %q (supported: png, jpg, jpeg, webp)", ext)
	}
}

// SavePNG writes an image to disk as PNG.
// The path is normalized: ~ is expanded and relative paths are resolved.
func SavePNG(path string, img image.Image) error {
	path = ExpandPath(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// ExpandPath normalizes a file path by expanding ~ to the user's home
// directory and resolving relative paths to absolute.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~ and ~/ to home directory
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	// On Windows, also handle ~\
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "~\\") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	// Resolve relative paths to absolute
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return filepath.Clean(path)
}

// DefaultTolerance is the ΔE below which two pixel groups are considered
// the same paint color and merged during dominant-color extraction.
const DefaultTolerance = 10.0

// Average returns the plain pixel-weighted mean color of the image.
func Average(img image.Image) color.RGB {
	counts := countColors(img)
	colors := make([]color.RGB, 0, len(counts))
	weights := make([]int, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, c)
		weights = append(weights, n)
	}
	return color.WeightedMean(colors, weights)
}

// maxGroups bounds the number of color groups entering the quadratic
// merge loop. Photographs carry sensor noise, so pixels are first
// quantized to 4 bits per channel and only the heaviest bins survive.
const maxGroups = 64

// Dominant extracts the single most representative color of a swatch photo.
//
// Pixel colors are binned, then the two closest groups (in CIELAB) are
// repeatedly merged into their weighted mean until the closest remaining
// pair differs by more than tolerance ΔE. The heaviest surviving group wins.
// This keeps specular highlights and shadow edges from dragging the result
// the way a plain average would.
func Dominant(img image.Image, tolerance float64) color.RGB {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	counts := countColors(img)
	if len(counts) == 0 {
		return color.RGB{}
	}

	type group struct {
		color  color.RGB
		lab    color.LAB
		weight int
	}

	// Bin by quantized color; each bin keeps the weighted mean of the
	// exact pixel colors that fell into it.
	type bin struct {
		colors  []color.RGB
		weights []int
		total   int
	}
	bins := make(map[color.RGB]*bin)
	for c, n := range counts {
		q := color.RGB{R: c.R &^ 0x0F, G: c.G &^ 0x0F, B: c.B &^ 0x0F}
		b, ok := bins[q]
		if !ok {
			b = &bin{}
			bins[q] = b
		}
		b.colors = append(b.colors, c)
		b.weights = append(b.weights, n)
		b.total += n
	}

	groups := make([]group, 0, len(bins))
	for _, b := range bins {
		mean := color.WeightedMean(b.colors, b.weights)
		groups = append(groups, group{color: mean, lab: mean.ToLAB(), weight: b.total})
	}

	// Keep only the heaviest bins; stray noise bins carry no information
	// about the swatch color.
	if len(groups) > maxGroups {
		sort.Slice(groups, func(i, j int) bool { return groups[i].weight > groups[j].weight })
		groups = groups[:maxGroups]
	}

	// Iteratively merge the closest pair until all groups are far apart.
	for len(groups) > 1 {
		bestI, bestJ := -1, -1
		bestDist := math.MaxFloat64
		for i := 0; i < len(groups); i++ {
			for j := i + 1; j < len(groups); j++ {
				if d := color.DeltaE(groups[i].lab, groups[j].lab); d < bestDist {
					bestDist = d
					bestI, bestJ = i, j
				}
			}
		}
		if bestDist > tolerance {
			break
		}

		merged := color.WeightedMean(
			[]color.RGB{groups[bestI].color, groups[bestJ].color},
			[]int{groups[bestI].weight, groups[bestJ].weight},
		)
		groups[bestI] = group{
			color:  merged,
			lab:    merged.ToLAB(),
			weight: groups[bestI].weight + groups[bestJ].weight,
		}
		groups[bestJ] = groups[len(groups)-1]
		groups = groups[:len(groups)-1]
	}

	heaviest := groups[0]
	for _, g := range groups[1:] {
		if g.weight > heaviest.weight {
			heaviest = g
		}
	}
	return heaviest.color
}

// countColors tallies how many pixels carry each distinct color.
func countColors(img image.Image) map[color.RGB]int {
	counts := make(map[color.RGB]int)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[color.FromStdColor(img.At(x, y))]++
		}
	}
	return counts
}
