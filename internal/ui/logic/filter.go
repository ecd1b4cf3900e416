package logic

import (
	"strings"

	"namesearch/internal/domain"
)

// RecordFilter handles the substring filter over a fixed record list
type RecordFilter struct {
	records []domain.Record
}

// NewRecordFilter creates a filter over records. The slice is copied.
func NewRecordFilter(records []domain.Record) *RecordFilter {
	owned := make([]domain.Record, len(records))
	copy(owned, records)
	return &RecordFilter{
		records: owned,
	}
}

// MatchesFilter checks if a record matches the typed query.
//
// Only the candidate name is lower-cased; the query is compared exactly as
// typed, so an upper-case query never matches. The containment check is on
// raw code points with no Unicode normalization.
func (rf *RecordFilter) MatchesFilter(record domain.Record, query string) bool {
	return strings.Contains(strings.ToLower(record.Name), query)
}

// Apply returns every record matching query, in list order.
// The result is never nil: no match is an empty list.
func (rf *RecordFilter) Apply(query string) []domain.Record {
	matches := make([]domain.Record, 0, len(rf.records))
	for _, record := range rf.records {
		if rf.MatchesFilter(record, query) {
			matches = append(matches, record)
		}
	}
	return matches
}
