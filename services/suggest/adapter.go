package suggest

import (
	"context"
	"sync"

	"tradecall/models"
)

// Adapter binds a suggestion Source to a text input's lifecycle without the
// surrounding form knowing about the source. Enable and Disable are
// idempotent under rapid toggling: disabling clears any pending suggestions
// and invalidates in-flight lookups, and re-enabling never double-binds.
// Select invokes the callback exactly once per produced suggestion set,
// regardless of how many keystrokes preceded it.
//
// A nil or never-ready Source simply never produces suggestions; the input
// behaves as a plain text field.
type Adapter struct {
	mu         sync.Mutex
	source     Source
	onSelect   func(string)
	enabled    bool
	gen        uint64
	pending    []models.PlaceSuggestion
	selectable bool
}

// NewAdapter constructs a disabled adapter. Call Enable to attach it.
func NewAdapter(source Source, onSelect func(string)) *Adapter {
	return &Adapter{source: source, onSelect: onSelect}
}

// Enable attaches the adapter. Calling it on an enabled adapter is a no-op.
func (a *Adapter) Enable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled {
		return
	}
	a.enabled = true
}

// Disable detaches the adapter, clears pending suggestions and invalidates
// any lookup still in flight. Calling it on a disabled adapter is a no-op.
func (a *Adapter) Disable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return
	}
	a.enabled = false
	a.gen++
	a.pending = nil
	a.selectable = false
}

// Enabled reports whether the adapter is attached.
func (a *Adapter) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// Pending returns the suggestions currently offered for selection.
func (a *Adapter) Pending() []models.PlaceSuggestion {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.PlaceSuggestion, len(a.pending))
	copy(out, a.pending)
	return out
}

// Input feeds a keystroke's worth of text through the source. Results from
// lookups that were in flight when the adapter was disabled (or re-enabled)
// are discarded.
func (a *Adapter) Input(ctx context.Context, text string) ([]models.PlaceSuggestion, error) {
	a.mu.Lock()
	if !a.enabled || a.source == nil {
		a.mu.Unlock()
		return nil, nil
	}
	gen := a.gen
	source := a.source
	a.mu.Unlock()

	suggestions, err := source.Suggestions(ctx, text)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled || a.gen != gen {
		// The adapter was toggled while the lookup was in flight.
		return nil, nil
	}
	a.pending = suggestions
	a.selectable = len(suggestions) > 0
	return suggestions, nil
}

// Select picks a pending suggestion by position and invokes the callback with
// its formatted address. It reports whether the callback fired; at most one
// selection fires per suggestion set.
func (a *Adapter) Select(i int) bool {
	a.mu.Lock()
	if !a.enabled || !a.selectable || i < 0 || i >= len(a.pending) {
		a.mu.Unlock()
		return false
	}
	address := a.pending[i].Description
	a.pending = nil
	a.selectable = false
	cb := a.onSelect
	a.mu.Unlock()

	if cb != nil {
		cb(address)
	}
	return true
}
