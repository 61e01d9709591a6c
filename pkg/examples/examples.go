package examples

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned by Install when the target file is already there and
// force is not set.
var ErrExists = errors.New("already exists")

// Example is a criteria file template that can be passed to --criteria-file
type Example struct {
	Category    string
	Name        string
	Filename    string
	Description string
	Content     string
}

// Categories lists the accepted categories, "all" last.
var Categories = []string{"basic", "release", "dates", "all"}

// ValidCategory reports whether category is one of Categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// GetExamples returns the examples for the given category
func GetExamples(category string) []Example {
	switch category {
	case "basic":
		return withCategory("basic", basicExamples())
	case "release":
		return withCategory("release", releaseExamples())
	case "dates":
		return withCategory("dates", dateExamples())
	case "all":
		var all []Example
		all = append(all, withCategory("basic", basicExamples())...)
		all = append(all, withCategory("release", releaseExamples())...)
		all = append(all, withCategory("dates", dateExamples())...)
		return all
	default:
		return []Example{}
	}
}

func withCategory(category string, examples []Example) []Example {
	for i := range examples {
		examples[i].Category = category
	}
	return examples
}

// Install writes ex into dir. It returns false without error when nothing
// was written.
func Install(dir string, ex Example, force bool) (bool, error) {
	path := filepath.Join(dir, ex.Filename)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, fmt.Errorf("criteria file %s %w", ex.Filename, ErrExists)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(ex.Content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
