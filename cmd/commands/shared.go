package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/borsuksoftware/conical-es/internal/cli"
	"github.com/borsuksoftware/conical-es/pkg/conical"
	"github.com/borsuksoftware/conical-es/pkg/criteria"
)

var logger = zap.NewNop()

// SetLogger sets the logger handed to the client and the runner.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// criteriaOptions are the flags that describe the search criteria table.
type criteriaOptions struct {
	tokens       []string
	count        int
	criteriaFile string
}

func (o *criteriaOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.tokens, "search-criteria", "c", nil,
		"Search criteria value as IDX:NAME=VALUE (repeatable)")
	cmd.Flags().IntVar(&o.count, "search-criteria-count", 0,
		"The number of search criteria expected (default: highest index + 1)")
	cmd.Flags().StringVar(&o.criteriaFile, "criteria-file", "",
		"YAML file with search criteria, applied before --search-criteria")
}

// table builds the criteria table and the explicit expected count, if any.
func (o *criteriaOptions) table(cmd *cobra.Command) (*criteria.Table, *int, error) {
	table := criteria.NewTable()
	var expected *int

	if o.criteriaFile != "" {
		f, err := criteria.ReadFile(o.criteriaFile)
		if err != nil {
			return nil, nil, err
		}
		if err := f.ApplyTo(table); err != nil {
			return nil, nil, err
		}
		expected = f.Count
	}

	if err := table.ApplyTokens(o.tokens); err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("search-criteria-count") {
		count := o.count
		expected = &count
	}
	return table, expected, nil
}

// newClient creates the REST client from flags, environment and config file.
func newClient(cmd *cobra.Command) (*conical.Client, error) {
	settings, err := cli.LoadSettings(cmd)
	if err != nil {
		return nil, err
	}
	client, err := conical.NewClient(settings.Server, settings.Token,
		conical.WithTimeout(settings.Timeout),
		conical.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger.Debug("connecting", zap.String("server", client.BaseURL()))
	return client, nil
}

func validateOutput(cmd *cobra.Command) (string, error) {
	output, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(output); err != nil {
		return "", err
	}
	return output, nil
}

// progressWriter keeps stdout clean for machine readable output.
func progressWriter(cmd *cobra.Command, output string) *cli.Progress {
	if output == string(cli.FormatText) {
		return cli.NewProgress(cmd.OutOrStdout())
	}
	return cli.NewProgress(cmd.ErrOrStderr())
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")
}

func labelOf(prefix *string) string {
	if prefix == nil {
		return "-"
	}
	return fmt.Sprintf("%q", *prefix)
}
