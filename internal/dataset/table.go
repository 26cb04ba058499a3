package dataset

import "SpaceXLaunchDashboard/internal/models"

// Table is the in-memory launch dataset. It is never mutated after
// NewTable returns, so it can be shared freely between goroutines.
type Table struct {
	records    []models.LaunchRecord
	minPayload float64
	maxPayload float64
}

// NewTable copies records in their given order and computes the payload bounds.
func NewTable(records []models.LaunchRecord) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	t := &Table{
		records:    make([]models.LaunchRecord, len(records)),
		minPayload: records[0].PayloadMassKg,
		maxPayload: records[0].PayloadMassKg,
	}
	copy(t.records, records)
	for _, r := range t.records[1:] {
		t.minPayload = min(t.minPayload, r.PayloadMassKg)
		t.maxPayload = max(t.maxPayload, r.PayloadMassKg)
	}
	return t, nil
}

func (t *Table) Len() int {
	return len(t.records)
}

func (t *Table) At(i int) models.LaunchRecord {
	return t.records[i]
}

// Records returns a copy of all rows in load order.
func (t *Table) Records() []models.LaunchRecord {
	out := make([]models.LaunchRecord, len(t.records))
	copy(out, t.records)
	return out
}

func (t *Table) MinPayload() float64 {
	return t.minPayload
}

func (t *Table) MaxPayload() float64 {
	return t.maxPayload
}
