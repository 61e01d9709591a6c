package criteria

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a criteria table.
//
//	count: 2
//	criteria:
//	  - prefix: ci
//	    products: [svcA]
//	  - index: 1
//	    prefix: nightly
//	    tags: [smoke]
//	    minRunDate: 01/02/2024
//	    minRunDateFormat: dd/MM/yyyy
type File struct {
	Count    *int        `yaml:"count,omitempty"`
	Criteria []FileEntry `yaml:"criteria"`
}

// FileEntry is one criteria record. Index defaults to the entry's position.
type FileEntry struct {
	Index       *int     `yaml:"index,omitempty"`
	Prefix      *string  `yaml:"prefix,omitempty"`
	Products    []string `yaml:"products,omitempty"`
	Statuses    []string `yaml:"statuses,omitempty"`
	Name        string   `yaml:"name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Creator     string   `yaml:"creator,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`

	MinRefDate       string `yaml:"minRefDate,omitempty"`
	MinRefDateFormat string `yaml:"minRefDateFormat,omitempty"`
	MaxRefDate       string `yaml:"maxRefDate,omitempty"`
	MaxRefDateFormat string `yaml:"maxRefDateFormat,omitempty"`
	MinRunDate       string `yaml:"minRunDate,omitempty"`
	MinRunDateFormat string `yaml:"minRunDateFormat,omitempty"`
	MaxRunDate       string `yaml:"maxRunDate,omitempty"`
	MaxRunDateFormat string `yaml:"maxRunDateFormat,omitempty"`
}

// ReadFile loads a criteria file from disk.
func ReadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file: %w", err)
	}
	return ParseFile(content)
}

// ParseFile decodes a criteria file. Unknown keys are rejected.
func ParseFile(content []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: failed to parse criteria file: %v", ErrConfiguration, err)
	}
	return &f, nil
}

// ApplyTo writes every entry into t through the same Set and Add operations
// the command line uses.
func (f *File) ApplyTo(t *Table) error {
	for pos, e := range f.Criteria {
		idx := pos
		if e.Index != nil {
			idx = *e.Index
		}

		if e.Prefix != nil {
			if err := t.Set(idx, FieldPrefix, *e.Prefix); err != nil {
				return err
			}
		}
		for _, p := range e.Products {
			if err := t.Add(idx, FieldProduct, p); err != nil {
				return err
			}
		}
		for _, s := range e.Statuses {
			if err := t.Add(idx, FieldStatus, s); err != nil {
				return err
			}
		}
		for _, tag := range e.Tags {
			if err := t.Add(idx, FieldTag, tag); err != nil {
				return err
			}
		}

		scalars := []struct {
			field Field
			value string
		}{
			{FieldName, e.Name},
			{FieldDescription, e.Description},
			{FieldCreator, e.Creator},
			{FieldMinRefDate, e.MinRefDate},
			{FieldMinRefDateFormat, e.MinRefDateFormat},
			{FieldMaxRefDate, e.MaxRefDate},
			{FieldMaxRefDateFormat, e.MaxRefDateFormat},
			{FieldMinRunDate, e.MinRunDate},
			{FieldMinRunDateFormat, e.MinRunDateFormat},
			{FieldMaxRunDate, e.MaxRunDate},
			{FieldMaxRunDateFormat, e.MaxRunDateFormat},
		}
		for _, s := range scalars {
			if s.value == "" {
				continue
			}
			if err := t.Set(idx, s.field, s.value); err != nil {
				return err
			}
		}

		// An entry with nothing but an index still occupies its slot.
		if _, err := t.record(idx); err != nil {
			return err
		}
	}
	return nil
}
