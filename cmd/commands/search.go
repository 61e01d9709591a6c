package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/borsuksoftware/conical-es/internal/cli"
	"github.com/borsuksoftware/conical-es/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Count   int            `json:"count" yaml:"count"`
	Results []search.Match `json:"results" yaml:"results"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	opts := &criteriaOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run search criteria and list the matching test run sets",
		Long: `Run each search criteria against the server, in index order, and list what
it matches. Nothing is created; use this to check criteria before running create.

Examples:
  # List the test run sets two criteria would pick up
  conical-es search --server https://conical.example.com \
    -c 0:prefix=ci -c 0:product=svcA -c 1:tag=smoke

  # Same, as JSON
  conical-es search --criteria-file criteria.yaml -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := validateOutput(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts)
		},
	}

	cli.AddConnectionFlags(cmd)
	opts.addFlags(cmd)
	addOutputFlag(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, opts *criteriaOptions) error {
	output, err := validateOutput(cmd)
	if err != nil {
		return err
	}

	table, expected, err := opts.table(cmd)
	if err != nil {
		return err
	}
	count := table.ExpectedCount(expected)
	if err := table.Validate(count); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	orch := search.NewOrchestrator(client,
		search.WithObserver(progressWriter(cmd, output)),
		search.WithLogger(logger))
	matches, err := orch.Run(cmd.Context(), table, count)
	if err != nil {
		return err
	}

	result := SearchResultOutput{Results: matches}
	for _, m := range matches {
		result.Count += len(m.RunSets)
	}

	switch output {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), output, result)
	default:
		return outputSearchText(cmd, result)
	}
}

func outputSearchText(cmd *cobra.Command, result SearchResultOutput) error {
	w := cmd.OutOrStdout()
	if result.Count == 0 {
		cli.PrintInfo(w, "No test run sets matched")
		return nil
	}

	for _, m := range result.Results {
		fmt.Fprintf(w, "\nCRITERIA #%d (prefix %s, %d matches)\n", m.Index, labelOf(m.Prefix), len(m.RunSets))
		if len(m.RunSets) == 0 {
			continue
		}

		table := cli.NewTableFormatter(w)
		table.Header("ID", "Product", "Name", "Status")
		for _, trs := range m.RunSets {
			table.Row(strconv.Itoa(trs.ID), trs.Product, cli.OrDash(cli.TruncateString(trs.Name, 40)), cli.OrDash(trs.Status))
		}
		table.Flush()
	}

	fmt.Fprintf(w, "\nTotal: %d test run sets\n", result.Count)
	return nil
}
