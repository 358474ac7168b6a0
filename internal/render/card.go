// Package render draws a comparison card: the reference and sample colors
// side by side with the ΔE value, verdict, and tint recommendation below.
package render

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/tintlab/tintmatch/internal/color"
	"github.com/tintlab/tintmatch/internal/match"
)

// Config holds card rendering configuration.
type Config struct {
	BlockWidth   int // width of each color block
	BlockHeight  int // height of the color blocks
	FooterHeight int // height of the text area under the blocks
	FontSize     int // approximate glyph height in pixels
}

// DefaultConfig returns sensible default rendering configuration.
func DefaultConfig() Config {
	return Config{
		BlockWidth:   200,
		BlockHeight:  160,
		FooterHeight: 80,
		FontSize:     14,
	}
}

// Card renders the comparison of reference and sample into a new image.
func Card(reference, sample color.RGB, cmp match.Comparison, font FontRenderer, cfg Config) *image.RGBA {
	totalW := cfg.BlockWidth * 2
	totalH := cfg.BlockHeight + cfg.FooterHeight

	out := image.NewRGBA(image.Rect(0, 0, totalW, totalH))

	// Fill footer with white
	for y := cfg.BlockHeight; y < totalH; y++ {
		for x := 0; x < totalW; x++ {
			out.SetRGBA(x, y, stdcolor.RGBA{255, 255, 255, 255})
		}
	}

	// Paint the two color blocks
	drawBlock(out, 0, 0, cfg.BlockWidth, cfg.BlockHeight, reference)
	drawBlock(out, cfg.BlockWidth, 0, cfg.BlockWidth, cfg.BlockHeight, sample)

	// Label each block in a color readable against its background
	font.DrawString(out, "REFERENCE", cfg.BlockWidth/2, cfg.BlockHeight-cfg.FontSize*2, textColor(reference), cfg.FontSize)
	font.DrawString(out, "SAMPLE", cfg.BlockWidth+cfg.BlockWidth/2, cfg.BlockHeight-cfg.FontSize*2, textColor(sample), cfg.FontSize)

	// Footer: ΔE + verdict on one line, the recommendation on the next
	summary := fmt.Sprintf("DE %.1f %s", cmp.DeltaE, cmp.Verdict)
	font.DrawString(out, summary, totalW/2, cfg.BlockHeight+cfg.FooterHeight/3, stdcolor.Black, cfg.FontSize)
	font.DrawString(out, cmp.Recommendation, totalW/2, cfg.BlockHeight+cfg.FooterHeight*2/3, stdcolor.Black, cfg.FontSize)

	return out
}

func drawBlock(img *image.RGBA, x0, y0, w, h int, c color.RGB) {
	std := c.ToStdColor()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			img.SetRGBA(x, y, std)
		}
	}
}

// textColor picks black or white, whichever reads better on c.
func textColor(c color.RGB) stdcolor.Color {
	if c.IsLight() {
		return stdcolor.Black
	}
	return stdcolor.White
}
