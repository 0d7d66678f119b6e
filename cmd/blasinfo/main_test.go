package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBackendsCommand(t *testing.T) {
	out, _, err := execute(t, "backends")
	require.NoError(t, err)

	assert.Contains(t, out, "arch: ")
	assert.Contains(t, out, "Backend")
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "fma")
	assert.Equal(t, 1, strings.Count(out, "*"), "exactly one backend is selected")
}

func TestPlanCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"defaults", nil, []string{"1024x1", "path=vector", "a=1", "b=1"}},
		{"unrolled", []string{"--cols", "8", "--alpha", "2", "--beta", "0"}, []string{"path=unrolled", "unroll=8", "a=scalar", "b=0"}},
		{"wide left", []string{"--cols", "8", "--unroll-limit", "4"}, []string{"path=generic-left"}},
		{"right", []string{"--cols", "5", "--layout", "row-major"}, []string{"path=generic-right"}},
		{"stride", []string{"--rows", "10", "--cols", "3", "--layout", "stride"}, []string{"10x3", "path=generic-strided"}},
		{"coeffs", []string{"--cols", "3", "--coeffs", "--alpha", "0"}, []string{"a=vector", "b=vector"}},
		{"pinned", []string{"--backend", "generic", "--cols", "2"}, []string{"backend=generic"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"plan"}, tc.args...)...)
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestPlanCommandVerbose(t *testing.T) {
	_, stderr, err := execute(t, "-v", "plan", "--cols", "2")
	require.NoError(t, err)
	// Planning alone does not dispatch, so nothing is logged.
	assert.Empty(t, stderr)

	_, stderr, err = execute(t, "-v", "--backend", "generic", "bench", "--sizes", "64", "--duration", "1ms")
	require.NoError(t, err)
	assert.Contains(t, stderr, "blas1 dispatch")
}

func TestPlanCommandErrors(t *testing.T) {
	_, _, err := execute(t, "plan", "--layout", "diagonal")
	require.ErrorContains(t, err, "unknown layout")

	_, _, err = execute(t, "plan", "--rows", "-1")
	require.ErrorContains(t, err, "negative shape")

	_, _, err = execute(t, "--backend", "nope", "plan")
	require.ErrorContains(t, err, "unknown kernel backend")
}

func TestBenchCommand(t *testing.T) {
	out, _, err := execute(t, "bench", "--op", "rot", "--sizes", "32,16,32", "--workers", "0,2", "--duration", "1ms")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, "header plus two sizes for two spaces")
	assert.Contains(t, lines[1], "serial")
	assert.Contains(t, lines[3], "threads(2)")

	_, _, err = execute(t, "bench", "--op", "dot")
	require.ErrorContains(t, err, "unknown op")
}
