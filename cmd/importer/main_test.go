package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"SpaceXLaunchDashboard/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "../../internal/dataset/testdata/spacex_launch_dash.csv"

func TestImporter_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "launches.db")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--csv", fixture, "--db", dbPath})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "imported 56 launches")

	fromCSV, err := dataset.Load(context.Background(), fixture)
	require.NoError(t, err)
	fromDB, err := dataset.Load(context.Background(), dbPath)
	require.NoError(t, err)
	assert.Equal(t, fromCSV.Records(), fromDB.Records())
}

func TestImporter_Reimport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "launches.db")

	for i := 0; i < 2; i++ {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--csv", fixture, "--db", dbPath})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
	}

	table, err := dataset.Load(context.Background(), dbPath)
	require.NoError(t, err)
	assert.Equal(t, 56, table.Len())
}

func TestImporter_BadCSV(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--csv", "missing.csv", "--db", filepath.Join(t.TempDir(), "x.db")})

	err := cmd.ExecuteContext(context.Background())
	var loadErr *dataset.LoadError
	assert.ErrorAs(t, err, &loadErr)
}
