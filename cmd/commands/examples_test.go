package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamplesCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		existing []string
		wantErr  string
		contains []string
		excludes []string
		files    []string
	}{
		{
			name: "list all by default",
			args: []string{"--list"},
			contains: []string{
				"Available examples (all categories)",
				"[basic] Single Product",
				"[release] Release Candidate",
				"[dates] Run Date Window",
			},
		},
		{
			name:     "list one category",
			args:     []string{"release", "--list"},
			contains: []string{"Available examples in category 'release'", "example-release-candidate.yaml"},
			excludes: []string{"[basic]", "Single Product"},
		},
		{
			name:     "write basic by default",
			contains: []string{"Writing basic examples", "✓ Wrote example-single-product.yaml", "2 files written"},
			files:    []string{"example-single-product.yaml", "example-tagged-runs.yaml"},
		},
		{
			name:     "skip existing",
			args:     []string{"basic"},
			existing: []string{"example-tagged-runs.yaml"},
			contains: []string{"Skipped example-tagged-runs.yaml", "1 files written, 1 skipped"},
		},
		{
			name:     "force overwrites existing",
			args:     []string{"basic", "--force"},
			existing: []string{"example-tagged-runs.yaml"},
			contains: []string{"✓ Wrote example-tagged-runs.yaml", "2 files written"},
			excludes: []string{"Skipped"},
		},
		{
			name:    "invalid category",
			args:    []string{"everything"},
			wantErr: "invalid category 'everything'. Valid categories: basic, release, dates, all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.existing {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("criteria: []\n"), 0644))
			}

			args := append([]string{"--dir", dir}, tt.args...)
			output, err := execute(NewExamplesCommand(), args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
			for _, name := range tt.files {
				assert.FileExists(t, filepath.Join(dir, name))
			}
		})
	}
}

func TestExamplesCommand_WrittenFileDrivesSearch(t *testing.T) {
	fake, server := newFakeConical(t)
	dir := t.TempDir()

	_, err := execute(NewExamplesCommand(), "release", "--dir", dir)
	require.NoError(t, err)

	_, err = execute(NewSearchCommand(),
		"--server", server,
		"--criteria-file", filepath.Join(dir, "example-release-candidate.yaml"))
	require.NoError(t, err)

	require.Len(t, fake.searches, 3)
	assert.Equal(t, []string{"orders"}, fake.searches[0].Products)
	assert.Equal(t, []string{"smoke"}, fake.searches[2].Tags)
}
