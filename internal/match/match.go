// Package match turns a reference/sample LAB pair into a difference score,
// a verdict, and tint-adjustment guidance for pigment mixing.
package match

import (
	"strings"

	"github.com/tintlab/tintmatch/internal/color"
)

// Recommendation messages. The hint strings and the thresholds below are
// part of the observable contract; downstream consumers match on them.
const (
	MsgNeedBoth  = "Need both colors to compare"
	MsgVeryClose = "Colors are very close"
	MsgFineTune  = "Fine adjustments needed"

	HintAddRed    = "Add Red"
	HintAddGreen  = "Add Green"
	HintAddYellow = "Add Yellow"
	HintAddBlue   = "Add Blue"
)

const (
	// closeThreshold is the per-axis difference below which the colors
	// are reported as matching (the ΔE "imperceptible" cutoff).
	closeThreshold = 0.5

	// hintThreshold is the per-axis difference a tint hint must exceed
	// to be worth mentioning.
	hintThreshold = 5.0
)

// Recommend returns tint guidance for moving sample toward reference.
// Either input may be nil, meaning the color has not been provided yet;
// that is a normal state, not an error.
//
// Only the a and b axes are considered: lightness mismatches are not
// correctable by adding tint, so L is deliberately ignored.
func Recommend(reference, sample *color.LAB) string {
	if reference == nil || sample == nil {
		return MsgNeedBoth
	}

	dA := reference.A - sample.A
	dB := reference.B - sample.B

	if abs(dA) < closeThreshold && abs(dB) < closeThreshold {
		return MsgVeryClose
	}

	var hints []string
	switch {
	case dA > hintThreshold:
		hints = append(hints, HintAddRed) // sample too green
	case dA < -hintThreshold:
		hints = append(hints, HintAddGreen) // sample too red
	}
	switch {
	case dB > hintThreshold:
		hints = append(hints, HintAddYellow) // sample too blue
	case dB < -hintThreshold:
		hints = append(hints, HintAddBlue) // sample too yellow
	}

	if len(hints) == 0 {
		return MsgFineTune
	}
	return strings.Join(hints, ", ")
}

// Verdict strings for the ΔE interpretation bands.
const (
	VerdictImperceptible = "imperceptible"
	VerdictBarely        = "barely perceptible"
	VerdictNoticeable    = "noticeable"
	VerdictSignificant   = "significant"
	VerdictMismatch      = "mismatch"
)

// Judge maps a ΔE value onto the CIE76 interpretation bands.
func Judge(deltaE float64) string {
	switch {
	case deltaE < 1:
		return VerdictImperceptible
	case deltaE < 2:
		return VerdictBarely
	case deltaE < 5:
		return VerdictNoticeable
	case deltaE < 10:
		return VerdictSignificant
	default:
		return VerdictMismatch
	}
}

// Comparison is the full result of comparing a sample against a reference.
type Comparison struct {
	Reference      color.LAB
	Sample         color.LAB
	DeltaE         float64
	Verdict        string
	Recommendation string
}

// Compare converts both colors to LAB and reports their perceptual
// difference along with tint guidance for the sample.
func Compare(reference, sample color.RGB) Comparison {
	refLab := reference.ToLAB()
	sampleLab := sample.ToLAB()
	d := color.DeltaE(refLab, sampleLab)
	return Comparison{
		Reference:      refLab,
		Sample:         sampleLab,
		DeltaE:         d,
		Verdict:        Judge(d),
		Recommendation: Recommend(&refLab, &sampleLab),
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
