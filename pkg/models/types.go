package models

import "time"

// TestRunSelectionMode controls which tests of a source test run set are
// pulled into an evidence set.
type TestRunSelectionMode string

const (
	SelectionAll     TestRunSelectionMode = "All"
	SelectionInclude TestRunSelectionMode = "Include"
	SelectionExclude TestRunSelectionMode = "Exclude"
)

// RunSetSummary is a single test run set returned by a search.
type RunSetSummary struct {
	ID      int       `json:"id" yaml:"id"`
	Product string    `json:"product" yaml:"product"`
	Name    string    `json:"name,omitempty" yaml:"name,omitempty"`
	Status  string    `json:"status,omitempty" yaml:"status,omitempty"`
	RefDate time.Time `json:"refDate,omitempty" yaml:"ref_date,omitempty"`
	RunDate time.Time `json:"runDate,omitempty" yaml:"run_date,omitempty"`
}

// RunSetQuery is the filter forwarded to the remote search. Zero values mean
// "no constraint".
type RunSetQuery struct {
	Products    []string   `json:"products,omitempty"`
	Statuses    []Status   `json:"statuses,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Creator     string     `json:"creator,omitempty"`
	MinRefDate  *time.Time `json:"minRefDate,omitempty"`
	MaxRefDate  *time.Time `json:"maxRefDate,omitempty"`
	MinRunDate  *time.Time `json:"minRunDate,omitempty"`
	MaxRunDate  *time.Time `json:"maxRunDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// SourceReference points an evidence set at one test run set.
type SourceReference struct {
	Prefix        *string              `json:"prefix" yaml:"prefix"`
	Product       string               `json:"product" yaml:"product"`
	TestRunSetID  int                  `json:"testRunSetID" yaml:"test_run_set_id"`
	SelectionMode TestRunSelectionMode `json:"testRunSelectionMode" yaml:"selection_mode"`
	TestRunIDs    []int                `json:"testRunIDs" yaml:"test_run_ids,omitempty"`
}

// Label returns the prefix or "" when none was assigned.
func (s SourceReference) Label() string {
	if s.Prefix == nil {
		return ""
	}
	return *s.Prefix
}

// ExternalLink is a named link attached to an evidence set.
type ExternalLink struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// EvidenceSetRequest is everything needed to create one evidence set.
type EvidenceSetRequest struct {
	Name           string            `json:"name" yaml:"name"`
	Description    *string           `json:"description" yaml:"description,omitempty"`
	RefDate        *time.Time        `json:"refDate" yaml:"ref_date,omitempty"`
	Tags           []string          `json:"tags" yaml:"tags"`
	ExternalLinks  []ExternalLink    `json:"links" yaml:"links"`
	ConflictPolicy ConflictPolicy    `json:"multipleSourceTestRunsBehaviour" yaml:"multiple_source_behaviour"`
	Sources        []SourceReference `json:"sources" yaml:"sources"`
}

// EvidenceSet is the remote result of a successful creation.
type EvidenceSet struct {
	ID      int    `json:"id" yaml:"id"`
	Product string `json:"product" yaml:"product"`
	Name    string `json:"name" yaml:"name"`
}

// Product is a product on the server; evidence sets are created inside one.
type Product struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
