package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"SpaceXLaunchDashboard/internal/models"
	"SpaceXLaunchDashboard/internal/storage"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "testdata/spacex_launch_dash.csv"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoad_Fixture(t *testing.T) {
	table, err := Load(context.Background(), fixturePath)
	require.NoError(t, err)

	assert.Equal(t, 56, table.Len())
	assert.Equal(t, 0.0, table.MinPayload())
	assert.Equal(t, 9600.0, table.MaxPayload())

	first := table.At(0)
	assert.Equal(t, models.LaunchRecord{
		LaunchSite:             "CCAFS LC-40",
		PayloadMassKg:          0,
		BoosterVersionCategory: "v1.0",
		OutcomeClass:           0,
	}, first)
	assert.Equal(t, 3696.65, table.At(31).PayloadMassKg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, le.Error(), "nope.csv")
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeFile(t, "launches.csv", "Launch Site,class,Booster Version Category\nKSC LC-39A,1,FT\n")

	_, err := Load(context.Background(), path)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Equal(t, ColumnPayloadMass, le.Column)
	assert.Equal(t, path, le.Path)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeFile(t, "launches.csv", "Launch Site,Payload Mass (kg),Booster Version Category,class\n")

	_, err := Load(context.Background(), path)

	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestLoad_SQLiteSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launches.db")
	store, err := storage.Open(path)
	require.NoError(t, err)
	records := []models.LaunchRecord{
		{LaunchSite: "KSC LC-39A", PayloadMassKg: 2490, BoosterVersionCategory: "FT", OutcomeClass: 1},
		{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 500, BoosterVersionCategory: "v1.1", OutcomeClass: 0},
	}
	require.NoError(t, store.ReplaceLaunches(context.Background(), records))
	require.NoError(t, store.Close())

	table, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, records, table.Records())
	assert.Equal(t, 500.0, table.MinPayload())
	assert.Equal(t, 2490.0, table.MaxPayload())
}

func TestLoad_SQLiteSourceIsNotModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "external.db")
	db, err := sqlx.Connect("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE launches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		launch_site TEXT NOT NULL,
		payload_mass_kg REAL NOT NULL,
		booster_version_category TEXT NOT NULL,
		class INTEGER NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO launches (launch_site, payload_mass_kg, booster_version_category, class)
		VALUES ('KSC LC-39A', 2490, 'FT', 1)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	table, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// =============================================================================
// ParseCSV Tests
// =============================================================================

func TestParseCSV_IgnoresExtraColumnsAndKeepsOrder(t *testing.T) {
	input := "Flight Number,class,Launch Site,Booster Version Category,Payload Mass (kg),Extra\n" +
		"1,1,B,FT,200,x\n" +
		"2,0,A,v1.1,100,y\n"

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "B", records[0].LaunchSite)
	assert.Equal(t, 1, records[0].OutcomeClass)
	assert.Equal(t, "A", records[1].LaunchSite)
	assert.Equal(t, 100.0, records[1].PayloadMassKg)
}

func TestParseCSV_ByteOrderMark(t *testing.T) {
	input := "\ufeffLaunch Site,Payload Mass (kg),Booster Version Category,class\nA,1,FT,1\n"

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseCSV_FloatClass(t *testing.T) {
	input := "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,1,FT,1.0\n"

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, records[0].OutcomeClass)
}

func TestParseCSV_MalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"non-numeric payload", "A,heavy,FT,1", ColumnPayloadMass},
		{"empty payload", "A,,FT,1", ColumnPayloadMass},
		{"NaN payload", "A,NaN,FT,1", ColumnPayloadMass},
		{"infinite payload", "A,Inf,FT,1", ColumnPayloadMass},
		{"negative infinite payload", "A,-Inf,FT,1", ColumnPayloadMass},
		{"class out of range", "A,100,FT,2", ColumnClass},
		{"non-numeric class", "A,100,FT,yes", ColumnClass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,1,FT,0\n" + tt.row + "\n"

			_, err := ParseCSV(strings.NewReader(input))

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.ErrorIs(t, err, ErrMalformedValue)
			assert.Equal(t, 3, le.Row)
			assert.Equal(t, tt.column, le.Column)
		})
	}
}

func TestParseCSV_RaggedRow(t *testing.T) {
	input := "Launch Site,Payload Mass (kg),Booster Version Category,class\nA,1,FT\n"

	_, err := ParseCSV(strings.NewReader(input))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 2, le.Row)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))

	assert.ErrorIs(t, err, ErrNoRecords)
}

// =============================================================================
// Table Tests
// =============================================================================

func TestNewTable_Bounds(t *testing.T) {
	table, err := NewTable([]models.LaunchRecord{
		{PayloadMassKg: 4000},
		{PayloadMassKg: 250.5},
		{PayloadMassKg: 9000},
	})
	require.NoError(t, err)

	assert.Equal(t, 250.5, table.MinPayload())
	assert.Equal(t, 9000.0, table.MaxPayload())
}

func TestNewTable_Empty(t *testing.T) {
	_, err := NewTable(nil)

	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestNewTable_IsolatedFromCaller(t *testing.T) {
	records := []models.LaunchRecord{{LaunchSite: "A", PayloadMassKg: 1}}
	table, err := NewTable(records)
	require.NoError(t, err)

	records[0].LaunchSite = "changed"
	out := table.Records()
	out[0].LaunchSite = "changed too"

	assert.Equal(t, "A", table.At(0).LaunchSite)
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Path: "launches.csv", Row: 4, Column: "class", Err: ErrMalformedValue}

	assert.Equal(t, `load dataset launches.csv: row 4, column "class": malformed value`, err.Error())
}
