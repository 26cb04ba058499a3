package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"SpaceXLaunchDashboard/internal/models"
)

// Column headers of the launch CSV. Other columns are ignored.
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnClass           = "class"
)

var requiredColumns = []string{ColumnLaunchSite, ColumnPayloadMass, ColumnBoosterCategory, ColumnClass}

// ParseCSV reads launch rows from r. Every row must carry a finite payload
// and a 0/1 class; the first bad row aborts the parse with a *LoadError.
func ParseCSV(r io.Reader) ([]models.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Err: ErrNoRecords}
		}
		return nil, &LoadError{Row: 1, Err: fmt.Errorf("read header: %w", err)}
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		// Excel exports prefix the first header with a BOM.
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Column: col, Err: ErrMissingColumn}
		}
	}

	var records []models.LaunchRecord
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Row: row, Err: fmt.Errorf("%w: %v", ErrMalformedValue, err)}
		}

		rec, lerr := parseRow(fields, index)
		if lerr != nil {
			lerr.Row = row
			return nil, lerr
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(fields []string, index map[string]int) (models.LaunchRecord, *LoadError) {
	field := func(col string) string {
		return strings.TrimSpace(fields[index[col]])
	}

	payload, err := strconv.ParseFloat(field(ColumnPayloadMass), 64)
	if err != nil || math.IsNaN(payload) || math.IsInf(payload, 0) {
		return models.LaunchRecord{}, &LoadError{Column: ColumnPayloadMass, Err: fmt.Errorf("%w: %q", ErrMalformedValue, field(ColumnPayloadMass))}
	}

	class, err := parseClass(field(ColumnClass))
	if err != nil {
		return models.LaunchRecord{}, &LoadError{Column: ColumnClass, Err: err}
	}

	return models.LaunchRecord{
		LaunchSite:             field(ColumnLaunchSite),
		PayloadMassKg:          payload,
		BoosterVersionCategory: field(ColumnBoosterCategory),
		OutcomeClass:           class,
	}, nil
}

// parseClass accepts "0", "1" and their float spellings ("1.0").
func parseClass(s string) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || (v != 0 && v != 1) {
		return 0, fmt.Errorf("%w: class must be 0 or 1, got %q", ErrMalformedValue, s)
	}
	return int(v), nil
}
