// Package dates turns user supplied date strings into instants, either with
// a flexible parser or strictly against a caller supplied format.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Zone picks the location used for strict parses whose input carries no
// offset.
type Zone int

const (
	// AssumeUTC interprets offset-less strict parses as UTC.
	AssumeUTC Zone = iota
	// AssumeLocal interprets offset-less strict parses in the resolver's location.
	AssumeLocal
)

// Raw is a date that has been captured but not yet parsed. The zero value
// means the date is unset.
type Raw struct {
	Value  string `yaml:"value"`
	Format string `yaml:"format,omitempty"`
}

// IsSet reports whether a value was supplied.
func (r Raw) IsSet() bool {
	return r.Value != ""
}

// ParseError is returned when a raw value cannot be parsed.
type ParseError struct {
	Raw     string
	Format  string
	Context string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("unable to parse '%s' as a valid %s", e.Raw, e.Context)
	}
	return fmt.Sprintf("unable to parse '%s' using format '%s' as a valid %s", e.Raw, e.Format, e.Context)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Resolver parses dates. Flexible parses and AssumeLocal strict parses use
// Location; a nil Location means time.Local.
type Resolver struct {
	Location *time.Location
}

// NewResolver creates a resolver bound to loc.
func NewResolver(loc *time.Location) *Resolver {
	return &Resolver{Location: loc}
}

func (r *Resolver) location() *time.Location {
	if r == nil || r.Location == nil {
		return time.Local
	}
	return r.Location
}

// Resolve parses raw. With an empty format the flexible parser is used;
// otherwise raw must match format exactly. context names the field being
// parsed and ends up in the error message.
func (r *Resolver) Resolve(raw, format string, zone Zone, context string) (time.Time, error) {
	if format == "" {
		t, err := dateparse.ParseIn(strings.TrimSpace(raw), r.location())
		if err != nil {
			return time.Time{}, &ParseError{Raw: raw, Context: context, Err: err}
		}
		return t, nil
	}

	layout, err := Layout(format)
	if err != nil {
		return time.Time{}, &ParseError{Raw: raw, Format: format, Context: context, Err: err}
	}

	loc := time.UTC
	if zone == AssumeLocal {
		loc = r.location()
	}
	t, err := time.ParseInLocation(layout, raw, loc)
	if err != nil {
		return time.Time{}, &ParseError{Raw: raw, Format: format, Context: context, Err: err}
	}
	return t, nil
}

// ResolveRaw resolves d, returning nil for an unset date.
func (r *Resolver) ResolveRaw(d Raw, zone Zone, context string) (*time.Time, error) {
	if !d.IsSet() {
		return nil, nil
	}
	t, err := r.Resolve(d.Value, d.Format, zone, context)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
