package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/borsuksoftware/conical-es/pkg/examples"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

// NewExamplesCommand creates the examples command
func NewExamplesCommand() *cobra.Command {
	var listOnly bool
	var force bool
	var dir string

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Write example criteria files to start from",
		Long: `Write example search criteria files that can be passed to --criteria-file.

Categories:
  basic         - One product, or one set of tags (default)
  release       - Several products collated into one evidence set
  dates         - Ref and run date windows with explicit formats
  all           - Every category

Files are written with an 'example-' prefix. Replace the product names, tags
and dates before use.`,
		Example: `  # Write the basic examples to the current directory
  conical-es examples

  # List every example without writing anything
  conical-es examples --list

  # Write the release examples into ./criteria, overwriting existing files
  conical-es examples release --dir criteria --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "basic"
			if len(args) > 0 {
				category = args[0]
			} else if listOnly {
				category = "all"
			}

			if !examples.ValidCategory(category) {
				return fmt.Errorf("%w: invalid category '%s'. Valid categories: %s",
					models.ErrConfiguration, category, strings.Join(examples.Categories, ", "))
			}

			if listOnly {
				return listExamples(cmd, category)
			}
			return installExamples(cmd, category, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available examples without writing them")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing example files")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write the examples to")

	return cmd
}

func listExamples(cmd *cobra.Command, category string) error {
	w := cmd.OutOrStdout()
	if category == "all" {
		fmt.Fprintf(w, "Available examples (all categories):\n\n")
	} else {
		fmt.Fprintf(w, "Available examples in category '%s':\n\n", category)
	}

	for _, ex := range examples.GetExamples(category) {
		if category == "all" {
			fmt.Fprintf(w, "[%s] %s (%s)\n", ex.Category, ex.Name, ex.Filename)
		} else {
			fmt.Fprintf(w, "%s (%s)\n", ex.Name, ex.Filename)
		}
		fmt.Fprintf(w, "   %s\n\n", ex.Description)
	}

	if category == "all" {
		fmt.Fprintf(w, "To write a category, run: conical-es examples <category>\n")
	} else {
		fmt.Fprintf(w, "To write these examples, run: conical-es examples %s\n", category)
	}
	return nil
}

func installExamples(cmd *cobra.Command, category, dir string, force bool) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Writing %s examples to %s...\n\n", category, dir)

	written, skipped := 0, 0
	for _, ex := range examples.GetExamples(category) {
		ok, err := examples.Install(dir, ex, force)
		if errors.Is(err, examples.ErrExists) {
			skipped++
			fmt.Fprintf(w, "   Skipped %s (already exists, use --force to overwrite)\n", ex.Filename)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to write example %s: %w", ex.Name, err)
		}
		if ok {
			written++
			fmt.Fprintf(w, "   ✓ Wrote %s\n", ex.Filename)
		}
	}

	fmt.Fprintf(w, "\n%d files written", written)
	if skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", skipped)
	}
	fmt.Fprintln(w)
	if written > 0 {
		fmt.Fprintf(w, "\nUse one with: conical-es search --criteria-file <file>\n")
	}
	return nil
}
