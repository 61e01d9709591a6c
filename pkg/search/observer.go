package search

// Observer receives progress as the orchestrator works through the table.
type Observer interface {
	SearchStarted(index int)
	SearchCompleted(index int, matches int)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) SearchStarted(int) {}
func (NopObserver) SearchCompleted(int, int) {}
