package models

import (
	"errors"
	"strings"
)

var ErrEmptyTagName = errors.New("tag name cannot be empty")

// FoldSet is an insertion-ordered set of strings compared case-insensitively.
// The first spelling added wins.
type FoldSet struct {
	items []string
	seen  map[string]struct{}
}

// Add inserts s unless an equal-folding value is already present. It reports
// whether the set changed.
func (f *FoldSet) Add(s string) bool {
	if f.seen == nil {
		f.seen = make(map[string]struct{})
	}
	key := strings.ToLower(s)
	if _, ok := f.seen[key]; ok {
		return false
	}
	f.seen[key] = struct{}{}
	f.items = append(f.items, s)
	return true
}

// Contains reports whether s is present, ignoring case.
func (f *FoldSet) Contains(s string) bool {
	_, ok := f.seen[strings.ToLower(s)]
	return ok
}

// Len returns the number of distinct values.
func (f *FoldSet) Len() int {
	return len(f.items)
}

// Values returns a copy of the values in insertion order.
func (f *FoldSet) Values() []string {
	if len(f.items) == 0 {
		return nil
	}
	out := make([]string, len(f.items))
	copy(out, f.items)
	return out
}

// ValidateTagName rejects blank tag names.
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTagName
	}
	return nil
}
