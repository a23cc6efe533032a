package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestReadCSV(t *testing.T) {
	p := writeFixture(t, "samples.csv",
		"Sample ID,Sample Type,A260 (Abs),A280 (Abs),A230 (Abs)\n"+
			"DNA_1,DNA,0.28,0.16,0.12\n"+
			"RNA_1,RNA,0.22,0.13\n") // short row gets padded

	tbl, err := Read(p, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "samples.csv", tbl.Name)
	require.Len(t, tbl.Headers, 5)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"DNA_1", "DNA", "0.28", "0.16", "0.12"}, tbl.Rows[0])
	assert.Equal(t, []string{"RNA_1", "RNA", "0.22", "0.13", ""}, tbl.Rows[1])
}

func TestReadTSVSniffsTab(t *testing.T) {
	p := writeFixture(t, "samples.tsv", "Sample ID\tA260\nS1\t0.2\n")
	tbl, err := Read(p, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sample ID", "A260"}, tbl.Headers)
	assert.Equal(t, []string{"S1", "0.2"}, tbl.Rows[0])
}

func TestReadDelimiterOverride(t *testing.T) {
	p := writeFixture(t, "semi.csv", "Sample ID;A260\nS1;0.2\n")
	tbl, err := Read(p, ReadOptions{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sample ID", "A260"}, tbl.Headers)
}

func TestReadEmptyFile(t *testing.T) {
	p := writeFixture(t, "empty.csv", "")
	tbl, err := Read(p, ReadOptions{})
	require.NoError(t, err)
	assert.Empty(t, tbl.Headers)
	assert.Empty(t, tbl.Rows)
}

func TestReadUnsupportedExtension(t *testing.T) {
	p := writeFixture(t, "samples.docx", "nope")
	_, err := Read(p, ReadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), ReadOptions{})
	assert.Error(t, err)
}
