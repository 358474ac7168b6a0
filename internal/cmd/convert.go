package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tintlab/tintmatch/internal/color"
)

var convertLabFlag string

var convertCmd = &cobra.Command{
	Use:   "convert [hex]",
	Short: "Convert a color between sRGB and CIELAB",
	Long: `Convert a hex color to CIELAB, or convert a LAB triplet back to sRGB
with --lab. Out-of-gamut LAB values are clamped to the nearest sRGB color.`,
	Example: `  tintmatch convert "#C84B3C"
  tintmatch convert --lab 53.2,80.1,67.2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if convertLabFlag != "" {
			lab, err := parseLabTriplet(convertLabFlag)
			if err != nil {
				return err
			}
			rgb := lab.ToRGB()
			fmt.Printf("RGB: %d, %d, %d\n", rgb.R, rgb.G, rgb.B)
			fmt.Printf("Hex: %s\n", rgb.Hex())
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("provide a hex color or --lab L,a,b")
		}
		rgb, err := color.ParseHex(args[0])
		if err != nil {
			return err
		}
		lab := rgb.ToLAB()
		fmt.Printf("L: %.2f\na: %.2f\nb: %.2f\n", lab.L, lab.A, lab.B)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertLabFlag, "lab", "", "LAB triplet to convert to sRGB, e.g. 53.2,80.1,67.2")
	rootCmd.AddCommand(convertCmd)
}

// parseLabTriplet parses "L,a,b" with optional spaces.
func parseLabTriplet(s string) (color.LAB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.LAB{}, fmt.Errorf("invalid LAB triplet %q: want L,a,b", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.LAB{}, fmt.Errorf("invalid LAB component %q: %w", p, err)
		}
		vals[i] = v
	}
	return color.LAB{L: vals[0], A: vals[1], B: vals[2]}, nil
}
