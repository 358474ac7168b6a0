package tintmatch_test

import (
	"math"
	"strings"
	"testing"

	"github.com/tintlab/tintmatch"
)

func TestRedConversion(t *testing.T) {
	red, err := tintmatch.NewColor(255, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	lab := tintmatch.RGBToLab(red)
	if math.Abs(lab.L-53.24) > 1 || math.Abs(lab.A-80.09) > 1 || math.Abs(lab.B-67.20) > 1 {
		t.Errorf("got LAB(%.2f, %.2f, %.2f), want ~(53.24, 80.09, 67.20)", lab.L, lab.A, lab.B)
	}
}

func TestBlackWhiteDistance(t *testing.T) {
	black := tintmatch.RGBToLab(tintmatch.Color{R: 0, G: 0, B: 0})
	white := tintmatch.RGBToLab(tintmatch.Color{R: 255, G: 255, B: 255})
	if d := tintmatch.DeltaE(black, white); d <= 100 {
		t.Errorf("DeltaE(black, white) = %f, want > 100", d)
	}
}

func TestRecommendScenarios(t *testing.T) {
	t.Run("green sample against red reference", func(t *testing.T) {
		ref := &tintmatch.Lab{L: 50, A: 50, B: 0}
		sample := &tintmatch.Lab{L: 50, A: -50, B: 0}
		got := tintmatch.Recommend(ref, sample)
		if !strings.Contains(got, "Add Red") {
			t.Errorf("got %q, want it to contain \"Add Red\"", got)
		}
	})

	t.Run("identical colors", func(t *testing.T) {
		l := &tintmatch.Lab{L: 50, A: 20, B: -30}
		m := *l
		if got := tintmatch.Recommend(l, &m); got != "Colors are very close" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("missing reference", func(t *testing.T) {
		sample := &tintmatch.Lab{L: 50}
		if got := tintmatch.Recommend(nil, sample); got != "Need both colors to compare" {
			t.Errorf("got %q", got)
		}
	})
}

func TestOutOfGamutClamping(t *testing.T) {
	// uint8 channels guarantee the range; the conversion just has to be
	// total and deterministic for extreme chroma.
	c := tintmatch.LabToRGB(tintmatch.Lab{L: 50, A: 127, B: 0})
	if c != tintmatch.LabToRGB(tintmatch.Lab{L: 50, A: 127, B: 0}) {
		t.Error("conversion not deterministic")
	}
}

func TestCompare(t *testing.T) {
	ref, _ := tintmatch.ParseHex("#C84B3C")
	sample, _ := tintmatch.ParseHex("#C0504A")
	result := tintmatch.Compare(ref, sample)
	if result.DeltaE <= 0 {
		t.Errorf("DeltaE = %f, want > 0", result.DeltaE)
	}
	if result.Verdict == "" || result.Recommendation == "" {
		t.Errorf("incomplete result: %+v", result)
	}
	if tintmatch.Judge(result.DeltaE) != result.Verdict {
		t.Error("verdict disagrees with Judge")
	}
}
