// Package search runs each criteria record against the remote catalog, one
// index at a time, and collects the matches per record.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/borsuksoftware/conical-es/pkg/criteria"
	"github.com/borsuksoftware/conical-es/pkg/dates"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

// Searcher is the remote search capability.
type Searcher interface {
	SearchRunSets(ctx context.Context, query models.RunSetQuery) ([]models.RunSetSummary, error)
}

// Match pairs the label of one criteria record with what it matched, in the
// order the server returned them.
type Match struct {
	Index   int                    `json:"index" yaml:"index"`
	Prefix  *string                `json:"prefix" yaml:"prefix"`
	RunSets []models.RunSetSummary `json:"runSets" yaml:"run_sets"`
}

// CriteriaError attaches the criteria index to a failure raised by the
// remote search for that index.
type CriteriaError struct {
	Index int
	Err   error
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("search criteria #%d: %v", e.Index, e.Err)
}

func (e *CriteriaError) Unwrap() error { return e.Err }

// Orchestrator drains a criteria table in ascending index order.
type Orchestrator struct {
	searcher Searcher
	resolver *dates.Resolver
	observer Observer
	logger   *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithResolver sets the date resolver. The default resolves in time.Local.
func WithResolver(r *dates.Resolver) Option {
	return func(o *Orchestrator) { o.resolver = r }
}

// WithObserver sets the progress observer.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) { o.observer = obs }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// NewOrchestrator creates an orchestrator that searches through s.
func NewOrchestrator(s Searcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		searcher: s,
		resolver: dates.NewResolver(nil),
		observer: NopObserver{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run checks that indices [0, expected) are all present and then searches
// them one by one. The first failure stops the run; nothing after it is
// searched.
func (o *Orchestrator) Run(ctx context.Context, table *criteria.Table, expected int) ([]Match, error) {
	records, err := table.Records(expected)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(records))
	for idx, record := range records {
		// Date errors already name the field and index.
		query, err := o.Query(idx, record)
		if err != nil {
			return nil, err
		}

		o.observer.SearchStarted(idx)
		o.logger.Debug("searching test run sets",
			zap.Int("index", idx),
			zap.Strings("products", query.Products),
			zap.Strings("tags", query.Tags),
			zap.Int("statuses", len(query.Statuses)))

		runSets, err := o.searcher.SearchRunSets(ctx, query)
		if err != nil {
			return nil, &CriteriaError{Index: idx, Err: err}
		}

		o.observer.SearchCompleted(idx, len(runSets))
		matches = append(matches, Match{Index: idx, Prefix: record.Prefix, RunSets: runSets})
	}
	return matches, nil
}

// Query resolves the record's dates and builds the remote search filter.
// Offset-less dates given with a format are taken as UTC.
func (o *Orchestrator) Query(idx int, r *criteria.Record) (models.RunSetQuery, error) {
	q := models.RunSetQuery{
		Products:    r.Products.Values(),
		Statuses:    r.Statuses,
		Name:        r.Name,
		Description: r.Description,
		Creator:     r.Creator,
		Tags:        r.Tags.Values(),
	}

	var err error
	if q.MinRefDate, err = o.resolver.ResolveRaw(r.MinRefDate, dates.AssumeUTC, dateContext("min ref date", idx)); err != nil {
		return q, err
	}
	if q.MaxRefDate, err = o.resolver.ResolveRaw(r.MaxRefDate, dates.AssumeUTC, dateContext("max ref date", idx)); err != nil {
		return q, err
	}
	if q.MinRunDate, err = o.resolver.ResolveRaw(r.MinRunDate, dates.AssumeUTC, dateContext("min run date", idx)); err != nil {
		return q, err
	}
	if q.MaxRunDate, err = o.resolver.ResolveRaw(r.MaxRunDate, dates.AssumeUTC, dateContext("max run date", idx)); err != nil {
		return q, err
	}
	return q, nil
}

func dateContext(field string, idx int) string {
	return fmt.Sprintf("%s for search criteria idx #%d", field, idx)
}
