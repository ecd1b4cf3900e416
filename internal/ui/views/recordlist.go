package views

import (
	"log/slog"
	"strings"

	"namesearch/internal/domain"
)

// Row is one rendered line of a RecordList. Key is the record ID and is
// the row's identity across redraws.
type Row struct {
	Key   int
	Label string
}

// RecordList renders an ordered list of records, one row per record.
// It neither filters nor sorts.
type RecordList struct {
	records []domain.Record
	styles  *Styles
	logger  *slog.Logger
}

// NewRecordList creates a list over records in the given order.
// Nil styles or logger select the defaults.
func NewRecordList(records []domain.Record, styles *Styles, logger *slog.Logger) RecordList {
	if styles == nil {
		styles = NewStyles()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return RecordList{
		records: records,
		styles:  styles,
		logger:  logger,
	}
}

// Rows returns the rows to draw, in input order
func (l RecordList) Rows() []Row {
	rows := make([]Row, 0, len(l.records))
	seen := make(map[int]bool, len(l.records))
	for _, r := range l.records {
		if seen[r.ID] {
			// The screen is redrawn in full, so a repeated key only matters for diagnostics
			l.logger.Warn("record list: duplicate row key", "key", r.ID)
		}
		seen[r.ID] = true
		rows = append(rows, Row{Key: r.ID, Label: r.String()})
	}
	return rows
}

// Len returns the number of rows
func (l RecordList) Len() int {
	return len(l.records)
}

// View renders the rows as plain text lines. An empty list renders nothing.
func (l RecordList) View() string {
	rows := l.Rows()
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, l.styles.Row.Render(row.Label))
	}
	return strings.Join(lines, "\n")
}
