package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tintlab/tintmatch/internal/color"
	"github.com/tintlab/tintmatch/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage matching projects",
	Long: `A project stores a reference color and the history of samples measured
against it. Projects are kept as JSON files in the store directory.`,
}

var projectCreateReference string

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		var ref *color.RGB
		if projectCreateReference != "" {
			c, err := resolveColor(projectCreateReference)
			if err != nil {
				return fmt.Errorf("reference: %w", err)
			}
			ref = &c
		}

		p, err := store.Create(args[0], ref)
		if err != nil {
			return err
		}
		fmt.Printf("Created project %q\n", p.Name)
		if p.Reference != nil {
			fmt.Printf("Reference: %s\n", *p.Reference)
		}
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No projects yet")
			return nil
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a project and its sample history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		p, err := store.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Project: %s\n", p.Name)
		if p.Reference != nil {
			fmt.Printf("Reference: %s\n", *p.Reference)
		} else {
			fmt.Println("Reference: (not set)")
		}
		fmt.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
		if len(p.Samples) == 0 {
			fmt.Println("No samples yet")
			return nil
		}
		fmt.Printf("Samples (%d):\n", len(p.Samples))
		for i, s := range p.Samples {
			fmt.Printf("  %d. %s  dE=%.2f (%s)  %s\n", i+1, s.Hex, s.DeltaE, s.Verdict, s.Recommendation)
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted project %q\n", args[0])
		return nil
	},
}

var projectSampleCmd = &cobra.Command{
	Use:   "sample <name> <color>",
	Short: "Measure a sample against the project reference",
	Long: `Compare a sample (hex color or swatch photo) against the project's
reference color and append the result to the project history.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		c, err := resolveColor(args[1])
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}

		_, s, err := store.AddSample(args[0], c)
		if err != nil {
			return err
		}
		fmt.Printf("Sample:   %s\n", s.Hex)
		fmt.Printf("Delta E:  %.2f (%s)\n", s.DeltaE, s.Verdict)
		fmt.Printf("Guidance: %s\n", s.Recommendation)
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectCreateReference, "reference", "", "reference color (hex or swatch photo)")
	projectCmd.AddCommand(projectCreateCmd, projectListCmd, projectShowCmd, projectDeleteCmd, projectSampleCmd)
	rootCmd.AddCommand(projectCmd)
}

func openStore() (*project.Store, error) {
	dir, err := storeDir()
	if err != nil {
		return nil, err
	}
	return project.NewStore(dir)
}
