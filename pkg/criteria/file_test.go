package criteria

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

const sampleFile = `count: 2
criteria:
  - prefix: ci
    products: [svcA, svcB]
    statuses: [Standard]
  - index: 1
    prefix: nightly
    tags: [smoke]
    minRunDate: 01/02/2024
    minRunDateFormat: dd/MM/yyyy
`

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0644))

	f, err := ReadFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Count)
	assert.Equal(t, 2, *f.Count)

	table := NewTable()
	require.NoError(t, f.ApplyTo(table))
	require.NoError(t, table.Validate(*f.Count))

	r0, _ := table.Get(0)
	assert.Equal(t, "ci", *r0.Prefix)
	assert.Equal(t, []string{"svcA", "svcB"}, r0.Products.Values())
	assert.Equal(t, []models.Status{models.StatusStandard}, r0.Statuses)

	r1, _ := table.Get(1)
	assert.Equal(t, "nightly", *r1.Prefix)
	assert.Equal(t, "01/02/2024", r1.MinRunDate.Value)
	assert.Equal(t, "dd/MM/yyyy", r1.MinRunDate.Format)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseFile_UnknownKey(t *testing.T) {
	_, err := ParseFile([]byte("criteria:\n  - colour: blue\n"))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestParseFile_Empty(t *testing.T) {
	f, err := ParseFile(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Criteria)
}

func TestApplyTo_BadStatus(t *testing.T) {
	f, err := ParseFile([]byte("criteria:\n  - statuses: [Running]\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, f.ApplyTo(NewTable()), ErrConfiguration)
}

func TestApplyTo_IndexOnlyEntry(t *testing.T) {
	f, err := ParseFile([]byte("criteria:\n  - index: 0\n"))
	require.NoError(t, err)

	table := NewTable()
	require.NoError(t, f.ApplyTo(table))
	assert.NoError(t, table.Validate(1))
}
