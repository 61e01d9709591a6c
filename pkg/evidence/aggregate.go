// Package evidence turns search matches into a single evidence set creation
// request and submits it.
package evidence

import (
	"github.com/borsuksoftware/conical-es/pkg/models"
	"github.com/borsuksoftware/conical-es/pkg/search"
)

// Flatten emits one source per matched run set, keeping the order of the
// matches and of the run sets within each match. The match's prefix labels
// every source it produces. Duplicates are kept; resolving them is up to the
// server's conflict policy.
func Flatten(matches []search.Match) []models.SourceReference {
	total := 0
	for _, m := range matches {
		total += len(m.RunSets)
	}

	sources := make([]models.SourceReference, 0, total)
	for _, m := range matches {
		for _, trs := range m.RunSets {
			sources = append(sources, models.SourceReference{
				Prefix:        m.Prefix,
				Product:       trs.Product,
				TestRunSetID:  trs.ID,
				SelectionMode: models.SelectionAll,
			})
		}
	}
	return sources
}
