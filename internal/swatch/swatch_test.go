package swatch

import (
	"image"
	stdcolor "image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tintlab/tintmatch/internal/color"
)

// fill creates a w×h image painted with a single color.
func fill(w, h int, c color.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, stdcolor.RGBA{c.R, c.G, c.B, 255})
		}
	}
	return img
}

func TestAverage(t *testing.T) {
	t.Run("uniform image", func(t *testing.T) {
		c := color.RGB{R: 180, G: 40, B: 90}
		if got := Average(fill(8, 8, c)); got != c {
			t.Errorf("got %+v, want %+v", got, c)
		}
	})

	t.Run("two-tone image", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 1))
		img.SetRGBA(0, 0, stdcolor.RGBA{0, 0, 0, 255})
		img.SetRGBA(1, 0, stdcolor.RGBA{100, 100, 100, 255})
		got := Average(img)
		if got.R != 50 || got.G != 50 || got.B != 50 {
			t.Errorf("got %+v, want {50,50,50}", got)
		}
	})
}

func TestDominant(t *testing.T) {
	t.Run("uniform image", func(t *testing.T) {
		c := color.RGB{R: 32, G: 160, B: 64}
		if got := Dominant(fill(10, 10, c), 0); got != c {
			t.Errorf("got %+v, want %+v", got, c)
		}
	})

	t.Run("highlight does not drag the result", func(t *testing.T) {
		// 90% deep red swatch, 10% white specular highlight. A plain
		// average would wash the red out; Dominant must not.
		red := color.RGB{R: 176, G: 32, B: 32}
		img := fill(10, 10, red)
		for x := 0; x < 10; x++ {
			img.SetRGBA(x, 0, stdcolor.RGBA{255, 255, 255, 255})
		}

		got := Dominant(img, DefaultTolerance)
		if color.DeltaE(got.ToLAB(), red.ToLAB()) > 2 {
			t.Errorf("dominant %+v drifted too far from swatch color %+v", got, red)
		}

		avg := Average(img)
		if color.DeltaE(avg.ToLAB(), red.ToLAB()) < color.DeltaE(got.ToLAB(), red.ToLAB()) {
			t.Errorf("expected Dominant (%+v) closer to swatch than Average (%+v)", got, avg)
		}
	})

	t.Run("near shades merge into one group", func(t *testing.T) {
		// Two barely-different blues should merge and report their mean,
		// not whichever shade happens to have one more pixel.
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.SetRGBA(0, 0, stdcolor.RGBA{10, 10, 200, 255})
		img.SetRGBA(1, 0, stdcolor.RGBA{12, 12, 202, 255})
		img.SetRGBA(0, 1, stdcolor.RGBA{10, 10, 200, 255})
		img.SetRGBA(1, 1, stdcolor.RGBA{12, 12, 202, 255})

		got := Dominant(img, DefaultTolerance)
		want := color.RGB{R: 11, G: 11, B: 201}
		if got != want {
			t.Errorf("got %+v, want merged mean %+v", got, want)
		}
	})

	t.Run("empty image", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 0, 0))
		if got := Dominant(img, 0); got != (color.RGB{}) {
			t.Errorf("got %+v, want zero RGB", got)
		}
	})
}

func TestSaveAndLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.png")

	c := color.RGB{R: 40, G: 90, B: 150}
	if err := SavePNG(path, fill(4, 4, c)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Average(img); got != c {
		t.Errorf("loaded image averages to %+v, want %+v", got, c)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "swatch.bmp")
		if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "unsupported image format") {
			t.Fatalf("expected unsupported-format error, got %v", err)
		}
	})
}

func TestExpandPath(t *testing.T) {
	t.Run("empty stays empty", func(t *testing.T) {
		if got := ExpandPath(""); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		got := ExpandPath("some/relative.png")
		if !filepath.IsAbs(got) {
			t.Errorf("expected absolute path, got %q", got)
		}
	})

	t.Run("absolute unchanged", func(t *testing.T) {
		in := filepath.Join(t.TempDir(), "a.png")
		if got := ExpandPath(in); got != in {
			t.Errorf("got %q, want %q", got, in)
		}
	})
}
