package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/royalties/internal/export"
)

// runCLI runs the CLI with an empty config directory and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"-config-dir", t.TempDir()}, args...)
	err := run(full, &stdout, &stderr)
	return stdout.String(), err
}

func TestRun_Version(t *testing.T) {
	out, err := runCLI(t, "-version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestRun_MissingCommand(t *testing.T) {
	_, err := runCLI(t)
	assert.Error(t, err)
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runCLI(t, "publish")
	assert.ErrorContains(t, err, "unknown command")
}

func TestRun_ByDate(t *testing.T) {
	out, err := runCLI(t, "by-date", "01/01/2001")
	require.NoError(t, err)
	assert.Equal(t,
		"Contract with Name 1 for Title 2 on 01/01/2001 with 20% royalties\n"+
			"Contract with Name 2 for Title 4 on 01/01/2001 with 40% royalties\n",
		out)
}

func TestRun_ByDate_None(t *testing.T) {
	out, err := runCLI(t, "by-date", "12/12/2012")
	require.NoError(t, err)
	assert.Equal(t, "No contracts signed on 12/12/2012.\n", out)

	_, err = runCLI(t, "by-date")
	assert.Error(t, err)
}

func TestRun_Demo(t *testing.T) {
	out, err := runCLI(t, "demo")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Title 2 on 01/01/2001")
	assert.Contains(t, lines[1], "Title 4 on 01/01/2001")
	assert.Contains(t, lines[2], "Title 1 on 02/01/2001")
	assert.Contains(t, lines[3], "Title 3 on 03/01/2001")
}

func TestRun_Statement(t *testing.T) {
	out, err := runCLI(t, "statement")
	require.NoError(t, err)
	assert.Contains(t, out, "contracts=3 royalties=60%  [Title 1, Title 2, Title 3]")
	assert.Contains(t, out, "contracts=1 royalties=40%  [Title 4]")
}

func TestRun_Export(t *testing.T) {
	out, err := runCLI(t, "export")
	require.NoError(t, err)

	var snap export.RegistryExport
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	require.Len(t, snap.Contracts, 4)
	assert.Equal(t, "Name 2", snap.Contracts[3].Author)
}

func TestRun_Diagram(t *testing.T) {
	out, err := runCLI(t, "-store", "memory", "diagram")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, `A1 -->|"01/01/2001, 40%"| B3`)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "royalties.yml"), []byte("store: cassandra\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config-dir", dir, "demo"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "cassandra")
}

func TestRun_BadStoreFlag(t *testing.T) {
	_, err := runCLI(t, "-store", "cassandra", "diagram")
	assert.Error(t, err)
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config-dir", t.TempDir(), "-verbose", "demo"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "contract registered")
}
