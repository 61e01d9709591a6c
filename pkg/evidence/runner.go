package evidence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/borsuksoftware/conical-es/pkg/criteria"
	"github.com/borsuksoftware/conical-es/pkg/dates"
	"github.com/borsuksoftware/conical-es/pkg/models"
	"github.com/borsuksoftware/conical-es/pkg/search"
)

// State is the stage a Runner has reached.
type State string

const (
	StateIdle        State = "idle"
	StatePopulating  State = "populating"
	StateValidated   State = "validated"
	StateSearching   State = "searching"
	StateAggregating State = "aggregating"
	StateSubmitting  State = "submitting"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// Catalog is everything the runner needs from the server.
type Catalog interface {
	search.Searcher
	Creator
	LookupProduct(ctx context.Context, name string) (models.Product, error)
}

// Observer receives search progress plus the creation events.
type Observer interface {
	search.Observer
	CreatingEvidenceSet(sources int)
	EvidenceSetCreated(es models.EvidenceSet)
}

// NopObserver ignores every event.
type NopObserver struct {
	search.NopObserver
}

func (NopObserver) CreatingEvidenceSet(int) {}
func (NopObserver) EvidenceSetCreated(models.EvidenceSet) {}

// Plan is one invocation's input.
type Plan struct {
	Table         *criteria.Table
	ExpectedCount *int
	Metadata      Metadata
	// DryRun stops after the request is built.
	DryRun bool
}

// Result is what a run produced. EvidenceSet is nil for dry runs.
type Result struct {
	Matches     []search.Match
	Request     models.EvidenceSetRequest
	EvidenceSet *models.EvidenceSet
}

// Runner drives one plan from validation to submission. A Runner is single
// use.
type Runner struct {
	catalog  Catalog
	resolver *dates.Resolver
	observer Observer
	logger   *zap.Logger
	state    State
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithResolver sets the date resolver used for criteria and the ref date.
func WithResolver(r *dates.Resolver) RunnerOption {
	return func(rn *Runner) { rn.resolver = r }
}

// WithObserver sets the progress observer.
func WithObserver(obs Observer) RunnerOption {
	return func(rn *Runner) { rn.observer = obs }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(rn *Runner) { rn.logger = l }
}

// NewRunner creates a runner talking to catalog.
func NewRunner(catalog Catalog, opts ...RunnerOption) *Runner {
	r := &Runner{
		catalog:  catalog,
		resolver: dates.NewResolver(nil),
		observer: NopObserver{},
		logger:   zap.NewNop(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the stage the runner is in.
func (r *Runner) State() State {
	return r.state
}

func (r *Runner) enter(s State) {
	r.logger.Debug("state change", zap.String("from", string(r.state)), zap.String("to", string(s)))
	r.state = s
}

func (r *Runner) fail(err error) error {
	r.enter(StateFailed)
	return err
}

// Run validates the plan, searches every criteria record in order, and
// creates one evidence set from the combined matches. Configuration problems
// are reported before any call reaches the server.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Result, error) {
	if r.state != StateIdle {
		return nil, fmt.Errorf("runner already used (state %s)", r.state)
	}
	r.enter(StatePopulating)

	if plan.Table == nil {
		plan.Table = criteria.NewTable()
	}
	if err := plan.Metadata.Validate(); err != nil {
		return nil, r.fail(err)
	}
	if _, err := plan.Metadata.ResolveRefDate(r.resolver); err != nil {
		return nil, r.fail(err)
	}
	expected := plan.Table.ExpectedCount(plan.ExpectedCount)
	if err := plan.Table.Validate(expected); err != nil {
		return nil, r.fail(err)
	}
	r.enter(StateValidated)

	product, err := r.catalog.LookupProduct(ctx, plan.Metadata.Product)
	if err != nil {
		return nil, r.fail(fmt.Errorf("unable to access product '%s': %w", plan.Metadata.Product, err))
	}

	r.enter(StateSearching)
	orch := search.NewOrchestrator(r.catalog,
		search.WithResolver(r.resolver),
		search.WithObserver(r.observer),
		search.WithLogger(r.logger))
	matches, err := orch.Run(ctx, plan.Table, expected)
	if err != nil {
		return nil, r.fail(err)
	}

	r.enter(StateAggregating)
	sources := Flatten(matches)
	req, err := Build(r.resolver, plan.Metadata, sources)
	if err != nil {
		return nil, r.fail(err)
	}
	result := &Result{Matches: matches, Request: req}

	if plan.DryRun {
		r.enter(StateDone)
		return result, nil
	}

	r.enter(StateSubmitting)
	r.observer.CreatingEvidenceSet(len(sources))
	es, err := Submit(ctx, r.catalog, product, req)
	if err != nil {
		return nil, r.fail(err)
	}
	r.observer.EvidenceSetCreated(es)
	r.logger.Info("evidence set created",
		zap.Int("id", es.ID),
		zap.String("product", product.Name),
		zap.Int("sources", len(sources)))

	result.EvidenceSet = &es
	r.enter(StateDone)
	return result, nil
}
