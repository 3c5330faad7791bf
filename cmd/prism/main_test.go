// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prism"
)

var abConfig = filepath.Join("..", "..", "config", "testdata", "ab.toml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	log := logrus.New()
	cmd := newRootCmd(log)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), err
}

// TestSolve writes every table and both plots.
func TestSolve(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "solve", abConfig, "--out", dir, "--plot")
	require.NoError(t, err)
	assert.Contains(t, out, "converged in")

	for _, name := range []string{"gr.tsv", "sk.tsv", "cr.tsv", "hr.tsv", "pmf.tsv", "gr.png", "sk.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	data, err := os.ReadFile(filepath.Join(dir, "gr.tsv"))
	require.NoError(t, err)
	header, _, _ := strings.Cut(string(data), "\n")
	assert.Equal(t, "r\tA-A\tA-B\tB-B", header)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 513)
}

// TestCheck prints the assembled pairs without solving.
func TestCheck(t *testing.T) {
	out, err := run(t, "check", filepath.Join("..", "..", "config", "testdata", "ab.ini"))
	require.NoError(t, err)
	assert.Contains(t, out, "types: [A B]")
	assert.Contains(t, out, "B-B: Closure<PercusYevick>")
	assert.NotContains(t, out, "warning:")
}

// TestErrors covers bad arguments and configurations.
func TestErrors(t *testing.T) {
	_, err := run(t, "solve")
	assert.Error(t, err)

	_, err = run(t, "solve", "problem.yaml")
	assert.ErrorIs(t, err, prism.ErrConfiguration)

	_, err = run(t, "--log-level", "loud", "check", abConfig)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("[system]\ntypes = [\"A\"]\n[domain]\ndr = 0.1\nlength = 64\n"), 0o600))
	_, err = run(t, "check", path)
	assert.ErrorIs(t, err, prism.ErrConfiguration)
}
