// Package criteria holds the search criteria supplied by the caller: a sparse
// table of records keyed by criteria index.
package criteria

import (
	"fmt"
	"slices"

	"github.com/borsuksoftware/conical-es/pkg/dates"
	"github.com/borsuksoftware/conical-es/pkg/models"
)

// Record is one independent set of search criteria.
type Record struct {
	Prefix      *string
	Products    models.FoldSet
	Statuses    []models.Status
	Name        string
	Description string
	Creator     string
	Tags        models.FoldSet

	MinRefDate dates.Raw
	MaxRefDate dates.Raw
	MinRunDate dates.Raw
	MaxRunDate dates.Raw
}

func (r *Record) addStatus(s models.Status) {
	if !slices.Contains(r.Statuses, s) {
		r.Statuses = append(r.Statuses, s)
	}
}

// Table maps criteria index to record. Indices may be inserted in any order
// and with gaps; completeness is only checked by Validate.
type Table struct {
	records map[int]*Record
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{records: make(map[int]*Record)}
}

func (t *Table) record(index int) (*Record, error) {
	if index < 0 {
		return nil, configErrorf("search criteria index %d must not be negative", index)
	}
	r, ok := t.records[index]
	if !ok {
		r = &Record{}
		t.records[index] = r
	}
	return r, nil
}

// Set overwrites a singular field. The last value wins.
func (t *Table) Set(index int, field Field, value string) error {
	if field.Accumulates() {
		return configErrorf("search criteria #%d: %s takes multiple values, use Add", index, field)
	}
	r, err := t.record(index)
	if err != nil {
		return err
	}

	switch field {
	case FieldPrefix:
		v := value
		r.Prefix = &v
	case FieldName:
		r.Name = value
	case FieldDescription:
		r.Description = value
	case FieldCreator:
		r.Creator = value
	case FieldMinRefDate:
		r.MinRefDate.Value = value
	case FieldMinRefDateFormat:
		r.MinRefDate.Format = value
	case FieldMaxRefDate:
		r.MaxRefDate.Value = value
	case FieldMaxRefDateFormat:
		r.MaxRefDate.Format = value
	case FieldMinRunDate:
		r.MinRunDate.Value = value
	case FieldMinRunDateFormat:
		r.MinRunDate.Format = value
	case FieldMaxRunDate:
		r.MaxRunDate.Value = value
	case FieldMaxRunDateFormat:
		r.MaxRunDate.Format = value
	default:
		return configErrorf("search criteria #%d: unsupported field %d", index, int(field))
	}
	return nil
}

// Add inserts value into a set-valued field. Statuses are checked against the
// known status values here so bad input fails before any search runs.
func (t *Table) Add(index int, field Field, value string) error {
	if !field.Accumulates() {
		return configErrorf("search criteria #%d: %s takes a single value, use Set", index, field)
	}

	// Parse before creating the record so a bad status leaves the table untouched.
	var status models.Status
	if field == FieldStatus {
		s, err := models.ParseStatus(value)
		if err != nil {
			return &UnknownValueError{Field: field, Value: value, Index: index, Err: err}
		}
		status = s
	}

	r, err := t.record(index)
	if err != nil {
		return err
	}

	switch field {
	case FieldProduct:
		r.Products.Add(value)
	case FieldTag:
		r.Tags.Add(value)
	case FieldStatus:
		r.addStatus(status)
	}
	return nil
}

// Apply routes a named value to Set or Add. Names are matched
// case-insensitively.
func (t *Table) Apply(index int, name, value string) error {
	field, ok := LookupField(name)
	if !ok {
		return &UnknownFieldError{Name: name, Index: index}
	}
	if field.Accumulates() {
		return t.Add(index, field, value)
	}
	return t.Set(index, field, value)
}

// Get returns the record stored at index.
func (t *Table) Get(index int) (*Record, bool) {
	r, ok := t.records[index]
	return r, ok
}

// Len returns the number of populated indices.
func (t *Table) Len() int {
	return len(t.records)
}

// Indices returns the populated indices in ascending order.
func (t *Table) Indices() []int {
	out := make([]int, 0, len(t.records))
	for idx := range t.records {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}

// DerivedCount is the expected count used when the caller gives none: zero
// for an empty table, otherwise one past the highest populated index. This is
// a count, not the highest index, so indices {0, 1} derive 2 and both are
// searched.
func (t *Table) DerivedCount() int {
	if len(t.records) == 0 {
		return 0
	}
	return slices.Max(t.Indices()) + 1
}

// ExpectedCount returns explicit when supplied and DerivedCount otherwise.
func (t *Table) ExpectedCount(explicit *int) int {
	if explicit != nil {
		return *explicit
	}
	return t.DerivedCount()
}

// Validate checks that every index in [0, expected) has a record and returns
// a *MissingCriteriaError for the lowest one that does not.
func (t *Table) Validate(expected int) error {
	if expected < 0 {
		return configErrorf("search criteria count %d must not be negative", expected)
	}
	for idx := 0; idx < expected; idx++ {
		if _, ok := t.records[idx]; !ok {
			return &MissingCriteriaError{Index: idx, Expected: expected}
		}
	}
	return nil
}

// Records validates expected and returns the records for [0, expected) in
// index order.
func (t *Table) Records(expected int) ([]*Record, error) {
	if err := t.Validate(expected); err != nil {
		return nil, err
	}
	out := make([]*Record, expected)
	for idx := range out {
		out[idx] = t.records[idx]
	}
	return out, nil
}

func (r *Record) String() string {
	label := "<none>"
	if r.Prefix != nil {
		label = *r.Prefix
	}
	return fmt.Sprintf("prefix=%s products=%v statuses=%v tags=%v", label, r.Products.Values(), r.Statuses, r.Tags.Values())
}
