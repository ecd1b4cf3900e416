package state

import (
	"namesearch/internal/domain"
)

// AppState contains all the application state.
//
// Query and Filtered are absent until the first input event and are then
// replaced together on every event. Only the root model's input handler
// writes them.
type AppState struct {
	// Seed is the fixed record list, never modified after construction
	Seed []domain.Record

	// Last raw text typed, as-is (not trimmed, not lower-cased)
	Query    string
	HasQuery bool

	// Last computed subset of Seed, possibly empty
	Filtered   []domain.Record
	IsFiltered bool
}

// NewAppState creates the initial state over a copy of seed
func NewAppState(seed []domain.Record) *AppState {
	owned := make([]domain.Record, len(seed))
	copy(owned, seed)
	return &AppState{
		Seed: owned,
	}
}

// Apply replaces both state cells wholesale with the outcome of one input event
func (s *AppState) Apply(query string, matches []domain.Record) {
	if matches == nil {
		matches = []domain.Record{}
	}
	s.Query = query
	s.HasQuery = true
	s.Filtered = matches
	s.IsFiltered = true
}

// Displayed returns the records to render: the filtered results when
// present (even if empty), otherwise the full seed list
func (s *AppState) Displayed() []domain.Record {
	if s.IsFiltered {
		return s.Filtered
	}
	return s.Seed
}
