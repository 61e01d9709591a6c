package commands

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/borsuksoftware/conical-es/internal/cli"
	"github.com/borsuksoftware/conical-es/pkg/dates"
	"github.com/borsuksoftware/conical-es/pkg/evidence"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

// CreateResultOutput is the machine readable result of the create command
type CreateResultOutput struct {
	DryRun      bool                      `json:"dryRun" yaml:"dry_run"`
	EvidenceSet *models.EvidenceSet       `json:"evidenceSet,omitempty" yaml:"evidence_set,omitempty"`
	URL         string                    `json:"url,omitempty" yaml:"url,omitempty"`
	Request     models.EvidenceSetRequest `json:"request" yaml:"request"`
}

type createOptions struct {
	criteriaOptions

	product       string
	name          string
	description   string
	tags          []string
	refDate       string
	refDateFormat string
	links         []string
	behaviour     string
	dryRun        bool
	copyID        bool
}

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an evidence set from the results of one or more searches",
		Long: `Create an evidence set within a Conical product from arbitrary search criteria.

Each search criteria is identified by an index and is searched independently.
Every test run set it matches becomes a source of the new evidence set, labelled
with the criteria's prefix.

Search criteria names:
  prefix              The prefix applied to the matched test run sets
  product             A product to search (repeatable)
  status              A test run set status to search (repeatable)
  name                The name criteria
  description         The description criteria
  creator             The creator criteria
  tag                 A required tag (repeatable)
  minRefDate          Lower bound of the ref date (minRefDateFormat for a custom format)
  maxRefDate          Upper bound of the ref date (maxRefDateFormat)
  minRunDate          Lower bound of the run date (minRunDateFormat)
  maxRunDate          Upper bound of the run date (maxRunDateFormat)

Date formats use .NET style patterns such as dd/MM/yyyy; dates given with a
format and no offset are taken as UTC.

Multiple source behaviours:
  NotAllowed, UseBestResult, UseWorstResult, UseLastResult, UseFirstResult

Examples:
  # Collate a CI run and last night's smoke tests
  conical-es create --server https://conical.example.com --product release \
    --name "Release 1.2" \
    -c 0:prefix=ci -c 0:product=svcA \
    -c 1:prefix=nightly -c 1:tag=smoke \
    --multiple-source-behaviour UseBestResult

  # Preview the request without creating anything
  conical-es create --criteria-file criteria.yaml --product release --name rc --dry-run -o yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := validateOutput(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, opts)
		},
	}

	cli.AddConnectionFlags(cmd)
	opts.criteriaOptions.addFlags(cmd)
	addOutputFlag(cmd)

	cmd.Flags().StringVar(&opts.product, "product", "", "The name of the product to create the evidence set in")
	cmd.Flags().StringVar(&opts.name, "name", "", "The name of the evidence set")
	cmd.Flags().StringVar(&opts.description, "description", "", "The description of the evidence set")
	cmd.Flags().StringArrayVar(&opts.tags, "tag", nil, "A tag to add (repeatable)")
	cmd.Flags().StringVar(&opts.refDate, "ref-date", "", "The ref date of the evidence set")
	cmd.Flags().StringVar(&opts.refDateFormat, "ref-date-format", "", "The format used to parse --ref-date")
	cmd.Flags().StringArrayVar(&opts.links, "link", nil, "A link to attach as name|url|description (repeatable)")
	cmd.Flags().StringVar(&opts.behaviour, "multiple-source-behaviour", string(models.PolicyNotAllowed),
		"Behaviour when multiple test runs contribute to a single test")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Search and build the request but do not create the evidence set")
	cmd.Flags().BoolVar(&opts.copyID, "copy-id", false, "Copy the created evidence set id to the clipboard")

	return cmd
}

func runCreate(cmd *cobra.Command, opts *createOptions) error {
	output, err := validateOutput(cmd)
	if err != nil {
		return err
	}

	policy, err := models.ParseConflictPolicy(opts.behaviour)
	if err != nil {
		return err
	}
	links, err := cli.ParseLinks(opts.links)
	if err != nil {
		return err
	}
	table, expected, err := opts.table(cmd)
	if err != nil {
		return err
	}

	meta := evidence.Metadata{
		Product:        opts.product,
		Name:           opts.name,
		Description:    opts.description,
		Tags:           opts.tags,
		Links:          links,
		RefDate:        dates.Raw{Value: opts.refDate, Format: opts.refDateFormat},
		ConflictPolicy: policy,
	}
	// Catch missing metadata before the server address is even looked at.
	if err := meta.Validate(); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	progress := progressWriter(cmd, output)
	runner := evidence.NewRunner(client,
		evidence.WithObserver(progress),
		evidence.WithLogger(logger))

	result, err := runner.Run(cmd.Context(), evidence.Plan{
		Table:         table,
		ExpectedCount: expected,
		Metadata:      meta,
		DryRun:        opts.dryRun,
	})
	if err != nil {
		return err
	}

	out := CreateResultOutput{
		DryRun:      opts.dryRun,
		EvidenceSet: result.EvidenceSet,
		Request:     result.Request,
	}
	if result.EvidenceSet != nil {
		out.URL = client.EvidenceSetURL(*result.EvidenceSet)
		if opts.copyID {
			copyToClipboard(cmd, result.EvidenceSet.ID)
		}
	}

	switch output {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), output, out)
	default:
		return outputCreateText(cmd, out)
	}
}

func copyToClipboard(cmd *cobra.Command, id int) {
	if err := clipboard.WriteAll(strconv.Itoa(id)); err != nil {
		logger.Debug("clipboard unavailable", zap.Error(err))
		cli.PrintWarning(cmd.ErrOrStderr(), "Could not copy evidence set id to clipboard: %v", err)
		return
	}
	cli.PrintInfo(cmd.OutOrStdout(), "Evidence set id copied to clipboard")
}

func outputCreateText(cmd *cobra.Command, out CreateResultOutput) error {
	w := cmd.OutOrStdout()

	if !out.DryRun {
		cli.PrintResult(w, "URL: %s", out.URL)
		return nil
	}

	cli.PrintInfo(w, "Dry run - evidence set '%s' was not created", out.Request.Name)
	cli.PrintInfo(w, "Multiple source behaviour: %s", out.Request.ConflictPolicy)
	if len(out.Request.Tags) > 0 {
		cli.PrintInfo(w, "Tags: %s", strings.Join(out.Request.Tags, ", "))
	}

	table := cli.NewTableFormatter(w)
	table.Header("Prefix", "Product", "Test Run Set")
	for _, src := range out.Request.Sources {
		table.Row(labelOf(src.Prefix), src.Product, strconv.Itoa(src.TestRunSetID))
	}
	table.Flush()
	return nil
}
