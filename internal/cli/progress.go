package cli

import (
	"fmt"
	"io"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

// Progress prints one line per search and per creation step. It satisfies
// evidence.Observer.
type Progress struct {
	w io.Writer
}

// NewProgress creates a progress printer writing to w
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// SearchStarted prints the criteria index about to be searched.
func (p *Progress) SearchStarted(index int) {
	if quiet {
		return
	}
	fmt.Fprintf(p.w, "Searching TRS set #%d\n", index)
}

// SearchCompleted prints how many test run sets the search matched.
func (p *Progress) SearchCompleted(index int, matches int) {
	if quiet {
		return
	}
	fmt.Fprintf(p.w, "%s\n", render(dimStyle, fmt.Sprintf(" => %d results", matches)))
}

// CreatingEvidenceSet announces the creation call.
func (p *Progress) CreatingEvidenceSet(sources int) {
	PrintInfo(p.w, "Creating evidence set from %d sources", sources)
}

// EvidenceSetCreated prints the created id. It is still printed in quiet
// mode, without decoration.
func (p *Progress) EvidenceSetCreated(es models.EvidenceSet) {
	if quiet {
		PrintResult(p.w, "Created - #%d", es.ID)
		return
	}
	PrintSuccess(p.w, "Created - #%d", es.ID)
}
