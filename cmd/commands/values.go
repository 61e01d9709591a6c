package commands

import (
	"github.com/spf13/cobra"

	"github.com/borsuksoftware/conical-es/internal/cli"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

// ValuesOutput lists the accepted enumerated values
type ValuesOutput struct {
	Statuses                 []models.Status         `json:"statuses" yaml:"statuses"`
	MultipleSourceBehaviours []models.ConflictPolicy `json:"multipleSourceBehaviours" yaml:"multiple_source_behaviours"`
}

// NewValuesCommand creates the values command
func NewValuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values",
		Short: "List accepted test run set statuses and multiple source behaviours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := validateOutput(cmd)
			if err != nil {
				return err
			}

			out := ValuesOutput{
				Statuses:                 models.Statuses,
				MultipleSourceBehaviours: models.ConflictPolicies,
			}
			if output != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), output, out)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("Kind", "Value")
			for _, s := range out.Statuses {
				table.Row("status", string(s))
			}
			for i, p := range out.MultipleSourceBehaviours {
				value := string(p)
				if i == 0 {
					value += " (default)"
				}
				table.Row("multiple-source-behaviour", value)
			}
			table.Flush()
			return nil
		},
	}
	addOutputFlag(cmd)
	return cmd
}
