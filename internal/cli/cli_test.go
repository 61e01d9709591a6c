package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

func withFlags(t *testing.T, q, nc bool) {
	t.Helper()
	SetGlobalFlags(q, nc)
	t.Cleanup(func() { SetGlobalFlags(false, false) })
}

func TestPrintHelpers_NoColor(t *testing.T) {
	withFlags(t, false, true)
	var buf bytes.Buffer

	PrintSuccess(&buf, "Created - #%d", 12)
	PrintInfo(&buf, "hello")
	PrintWarning(&buf, "careful")
	PrintError(&buf, "broken")

	assert.Equal(t, "OK: Created - #12\nINFO: hello\nWARNING: careful\nERROR: broken\n", buf.String())
}

func TestPrintHelpers_Quiet(t *testing.T) {
	withFlags(t, true, true)
	var buf bytes.Buffer

	PrintSuccess(&buf, "x")
	PrintInfo(&buf, "y")
	assert.Empty(t, buf.String())

	PrintError(&buf, "z")
	assert.Equal(t, "ERROR: z\n", buf.String())
}

func TestQuietKeepsResults(t *testing.T) {
	withFlags(t, true, true)
	var buf bytes.Buffer
	p := NewProgress(&buf)

	p.SearchStarted(0)
	p.SearchCompleted(0, 1)
	p.CreatingEvidenceSet(1)
	p.EvidenceSetCreated(models.EvidenceSet{ID: 42})
	PrintResult(&buf, "URL: %s", "https://conical/products/p/evidencesets/42")

	assert.Equal(t, "Created - #42\nURL: https://conical/products/p/evidencesets/42\n", buf.String())
}

func TestPrintError_Wraps(t *testing.T) {
	withFlags(t, false, true)
	var buf bytes.Buffer

	PrintError(&buf, "%s", strings.Repeat("word ", 50))
	assert.Greater(t, strings.Count(buf.String(), "\n"), 1)
}

func TestProgress(t *testing.T) {
	withFlags(t, false, true)
	var buf bytes.Buffer
	p := NewProgress(&buf)

	p.SearchStarted(0)
	p.SearchCompleted(0, 3)
	p.CreatingEvidenceSet(3)
	p.EvidenceSetCreated(models.EvidenceSet{ID: 99})

	out := buf.String()
	assert.Contains(t, out, "Searching TRS set #0\n")
	assert.Contains(t, out, " => 3 results\n")
	assert.Contains(t, out, "Creating evidence set from 3 sources")
	assert.Contains(t, out, "Created - #99")
}

func TestParseLink(t *testing.T) {
	link, err := ParseLink("build|https://ci.example.com/1|CI pipeline")
	require.NoError(t, err)
	assert.Equal(t, models.ExternalLink{Name: "build", URL: "https://ci.example.com/1", Description: "CI pipeline"}, link)

	link, err = ParseLink("docs|https://example.com")
	require.NoError(t, err)
	assert.Empty(t, link.Description)

	for _, bad := range []string{"", "only-name", "|https://x", "name|"} {
		_, err := ParseLink(bad)
		assert.ErrorIs(t, err, models.ErrConfiguration, bad)
	}

	links, err := ParseLinks([]string{"a|u1", "b|u2|d"})
	require.NoError(t, err)
	assert.Len(t, links, 2)
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.ErrorIs(t, ValidateOutputFormat("xml"), models.ErrConfiguration)
}

func TestOutputResults(t *testing.T) {
	data := map[string]int{"count": 2}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.JSONEq(t, `{"count":2}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "count: 2\n", buf.String())

	assert.Error(t, OutputResults(&buf, "xml", data))
}

func TestTruncateAndOrDash(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 5))
	assert.Equal(t, "ab...", TruncateString("abcdefgh", 5))
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "x", OrDash("x"))
}

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	AddConnectionFlags(cmd)
	return cmd
}

func TestLoadSettings_Precedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFileName),
		[]byte("server: https://file.example.com\ntoken: file-token\ntimeout: 10s\n"), 0644))

	cmd := newConfigCommand()
	settings, err := LoadSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", settings.Server)
	assert.Equal(t, "file-token", settings.Token)
	assert.Equal(t, 10*time.Second, settings.Timeout)

	t.Setenv("CONICAL_TOKEN", "env-token")
	settings, err = LoadSettings(newConfigCommand())
	require.NoError(t, err)
	assert.Equal(t, "env-token", settings.Token)

	cmd = newConfigCommand()
	require.NoError(t, cmd.Flags().Set("token", "flag-token"))
	require.NoError(t, cmd.Flags().Set("server", "https://flag.example.com"))
	settings, err = LoadSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, "flag-token", settings.Token)
	assert.Equal(t, "https://flag.example.com", settings.Server)
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings(newConfigCommand())
	require.NoError(t, err)
	assert.Empty(t, settings.Server)
	assert.Equal(t, models.DefaultSettings().Timeout, settings.Timeout)
}

func TestLoadSettings_ExplicitMissingFile(t *testing.T) {
	cmd := newConfigCommand()
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml")))

	_, err := LoadSettings(cmd)
	assert.ErrorIs(t, err, models.ErrConfiguration)
}
