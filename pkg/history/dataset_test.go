package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreservesOrderAndValues(t *testing.T) {
	path := writeCSV(t, "Engine rpm,Lub oil pressure,Engine Condition\n700,2.49,1\n876,2.94,0\n520,2.96,1\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	records := ds.Records()
	assert.Equal(t, 700.0, records[0]["Engine rpm"])
	assert.Equal(t, 2.94, records[1]["Lub oil pressure"])
	assert.Equal(t, 1.0, records[2]["Engine Condition"])
	assert.Equal(t, 876.0, records[1]["Engine rpm"])
}

func TestLoadKeepsNonNumericCellsAsStrings(t *testing.T) {
	path := writeCSV(t, "Engine rpm,Note\n700,ok\n")

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", ds.Records()[0]["Note"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := Load(path)
	require.Error(t, err)
}
