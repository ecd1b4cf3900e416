package domain

// Record is a single searchable entry. ID is only used as a stable row key.
type Record struct {
	ID   int
	Name string
}

// String returns the display label of the record
func (r Record) String() string {
	return r.Name
}

// seed is the fixed record list every session starts with
var seed = [...]Record{
	{ID: 0, Name: "Alexis"},
	{ID: 1, Name: "Camille"},
	{ID: 2, Name: "Jérémy"},
}

// SeedRecords returns a fresh copy of the seed list
func SeedRecords() []Record {
	records := make([]Record, len(seed))
	copy(records, seed[:])
	return records
}
