package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintlab/tintmatch/internal/color"
	"github.com/tintlab/tintmatch/internal/match"
	"github.com/tintlab/tintmatch/internal/render"
	"github.com/tintlab/tintmatch/internal/swatch"
)

var (
	compareCardPath  string
	compareTolerance float64
)

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <sample>",
	Short: "Compare a sample color against a reference",
	Long: `Compare a sample against a reference and print the ΔE difference,
a verdict, and tint guidance for moving the sample toward the reference.

Each argument is either a hex color ("#C84B3C") or the path of a swatch
photo (PNG, JPEG, WEBP), in which case the dominant color is extracted.`,
	Example: `  tintmatch compare "#C84B3C" "#C0504A"
  tintmatch compare target.png mixed-batch.jpg --card result.png`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := resolveColor(args[0])
		if err != nil {
			return fmt.Errorf("reference: %w", err)
		}
		sample, err := resolveColor(args[1])
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}

		cmp := match.Compare(ref, sample)

		fmt.Printf("Reference: %s  LAB(%.2f, %.2f, %.2f)\n", ref.Hex(), cmp.Reference.L, cmp.Reference.A, cmp.Reference.B)
		fmt.Printf("Sample:    %s  LAB(%.2f, %.2f, %.2f)\n", sample.Hex(), cmp.Sample.L, cmp.Sample.A, cmp.Sample.B)
		fmt.Printf("Delta E:   %.2f (%s)\n", cmp.DeltaE, cmp.Verdict)
		fmt.Printf("Guidance:  %s\n", cmp.Recommendation)

		if compareCardPath != "" {
			card := render.Card(ref, sample, cmp, render.NewBitmapFont(), render.DefaultConfig())
			if err := swatch.SavePNG(compareCardPath, card); err != nil {
				return fmt.Errorf("writing card: %w", err)
			}
			fmt.Printf("Card:      %s\n", compareCardPath)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareCardPath, "card", "", "write a comparison card PNG to this path")
	compareCmd.Flags().Float64Var(&compareTolerance, "tolerance", swatch.DefaultTolerance, "ΔE merge tolerance for swatch photo extraction")
	rootCmd.AddCommand(compareCmd)
}

// resolveColor interprets arg as a hex color first, then as a swatch photo.
func resolveColor(arg string) (color.RGB, error) {
	if c, err := color.ParseHex(arg); err == nil {
		return c, nil
	}
	img, err := swatch.Load(arg)
	if err != nil {
		return color.RGB{}, fmt.Errorf("%q is neither a hex color nor a readable image: %w", arg, err)
	}
	return swatch.Dominant(img, compareTolerance), nil
}
