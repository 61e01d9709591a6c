package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borsuksoftware/conical-es/pkg/criteria"
)

func TestGetExamples(t *testing.T) {
	all := GetExamples("all")
	assert.Len(t, all, len(GetExamples("basic"))+len(GetExamples("release"))+len(GetExamples("dates")))
	assert.Empty(t, GetExamples("unknown"))

	for _, ex := range all {
		assert.NotEmpty(t, ex.Category, ex.Name)
		assert.True(t, ValidCategory(ex.Category))
	}
}

// Every example must load into a table that validates.
func TestExamplesAreValidCriteriaFiles(t *testing.T) {
	for _, ex := range GetExamples("all") {
		t.Run(ex.Filename, func(t *testing.T) {
			f, err := criteria.ParseFile([]byte(ex.Content))
			require.NoError(t, err)

			table := criteria.NewTable()
			require.NoError(t, f.ApplyTo(table))
			_, err = table.Records(table.ExpectedCount(f.Count))
			require.NoError(t, err)
		})
	}
}

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	ex := GetExamples("basic")[0]

	ok, err := Install(dir, ex, false)
	require.NoError(t, err)
	assert.True(t, ok)

	content, err := os.ReadFile(filepath.Join(dir, ex.Filename))
	require.NoError(t, err)
	assert.Equal(t, ex.Content, string(content))

	ok, err = Install(dir, ex, false)
	assert.ErrorIs(t, err, ErrExists)
	assert.False(t, ok)

	ok, err = Install(dir, ex, true)
	require.NoError(t, err)
	assert.True(t, ok)
}
