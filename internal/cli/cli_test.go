package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KelvyHsu/bake/kern"
	"github.com/KelvyHsu/bake/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGram_JSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "0\n1\n")

	out, err := run(t, "gram", "--format", "json", "-k", "gaussian", "-t", "1", p, p)
	require.NoError(t, err)

	var res struct {
		Kernel string      `json:"kernel"`
		Gram   [][]float64 `json:"gram"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "gaussian", res.Kernel)
	require.Len(t, res.Gram, 2)
	assert.Equal(t, 1.0, res.Gram[0][0])
	assert.InDelta(t, math.Exp(-0.5), res.Gram[0][1], 1e-15)
}

func TestGram_Diagonal(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.json", "[[0, 0], [5, 5], [9, 1]]")

	out, err := run(t, "gram", "--format", "json", "-k", "laplace", p)
	require.NoError(t, err)
	var res struct {
		Diag []float64 `json:"diag"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []float64{1, 1, 1}, res.Diag)
}

func TestGram_Table(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "0\n")
	q := writeFile(t, dir, "q.csv", "2\n")

	out, err := run(t, "gram", "-k", "matern3on2", "--precision", "5", p, q)
	require.NoError(t, err)
	assert.Equal(t, "0.40601", strings.TrimSpace(out))
}

func TestGram_Density(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "0\n")

	out, err := run(t, "gram", "--density", "-t", "2", "--precision", "4", p, p)
	require.NoError(t, err)
	assert.Equal(t, "0.1995", strings.TrimSpace(out))

	_, err = run(t, "gram", "--density", "-k", "laplace", p, p)
	assert.ErrorContains(t, err, "gaussian")

	_, err = run(t, "gram", "--density", p)
	assert.ErrorIs(t, err, ErrDensityNeedsPoints)
}

func TestGram_LeadingEmptyRow(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.json", "[[], [1], [2]]")

	_, err := run(t, "gram", "--format", "json", p)
	assert.ErrorIs(t, err, utils.ErrRaggedRows)
}

func TestPrecisionZero(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "0\n")

	out, err := run(t, "gram", "--precision", "0", p, p)
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	cfg := writeFile(t, dir, "config.yaml", "output:\n  precision: 0\n")
	out, err = run(t, "--config", cfg, "gram", p, p)
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))
}

func TestGram_ValidationAtBoundary(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "0,1\n")
	q := writeFile(t, dir, "q.csv", "0,1,2\n")

	_, err := run(t, "gram", p, q)
	assert.ErrorIs(t, err, kern.ErrDimensionMismatch)

	_, err = run(t, "gram", "-t", "1,2,3", p, p)
	assert.ErrorIs(t, err, kern.ErrThetaLength)

	_, err = run(t, "gram", "-t", "0", p, p)
	assert.ErrorIs(t, err, kern.ErrNonPositiveScale)

	// Opting out keeps the unguarded numerics.
	out, err := run(t, "gram", "--no-check", "--format", "json", "-t", "0", p, p)
	require.NoError(t, err)
	assert.Contains(t, out, `"NaN"`)

	_, err = run(t, "gram", "-k", "periodic", p, p)
	assert.ErrorIs(t, err, kern.ErrUnknownKernel)
}

func TestConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "kernel: laplace\ntheta: [2]\noutput:\n  precision: 3\n")
	p := writeFile(t, dir, "p.csv", "0\n")
	q := writeFile(t, dir, "q.csv", "2\n")

	out, err := run(t, "--config", cfg, "gram", p, q)
	require.NoError(t, err)
	assert.Equal(t, "0.368", strings.TrimSpace(out))

	// Flags win over the config file.
	out, err = run(t, "--config", cfg, "gram", "-k", "gaussian", "-t", "1", p, q)
	require.NoError(t, err)
	assert.Equal(t, "0.135", strings.TrimSpace(out))

	_, err = run(t, "--format", "xml", "kernels")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDist(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "1,2\n3,4\n")
	q := writeFile(t, dir, "q.csv", "0,0\n")

	out, err := run(t, "dist", "--format", "json", p, q)
	require.NoError(t, err)
	var entries []struct {
		I, J int
		Diff []float64
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, []float64{3, 4}, entries[1].Diff)

	out, err = run(t, "dist", "--precision", "1", p, q)
	require.NoError(t, err)
	assert.Contains(t, out, "D1")
	assert.Contains(t, out, "4.0")

	r := writeFile(t, dir, "r.csv", "0\n")
	_, err = run(t, "dist", p, r)
	assert.ErrorIs(t, err, kern.ErrDimensionMismatch)
}

func TestNorm(t *testing.T) {
	out, err := run(t, "norm", "-t", "2", "--precision", "4")
	require.NoError(t, err)
	assert.Equal(t, "5.0133", strings.TrimSpace(out))

	out, err = run(t, "norm", "-t", "1", "-m", "2", "--precision", "4")
	require.NoError(t, err)
	assert.Equal(t, "6.2832", strings.TrimSpace(out))

	_, err = run(t, "norm", "-t", "1,2", "-m", "3")
	assert.ErrorIs(t, err, kern.ErrThetaLength)

	_, err = run(t, "norm", "-t", "1", "-m", "-1")
	assert.ErrorIs(t, err, ErrNegativeDims)

	_, err = run(t, "--no-check", "norm", "-t", "1", "-m", "-1")
	assert.ErrorIs(t, err, ErrNegativeDims)
}

func TestKernels(t *testing.T) {
	out, err := run(t, "kernels")
	require.NoError(t, err)
	for _, name := range []string{"gaussian", "laplace", "matern3on2"} {
		assert.Contains(t, out, name)
	}
}

func TestSweep(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 1, 3})
	candidates := [][]float64{{0.5}, {1}, {2}, {4}}
	got, err := Sweep(context.Background(), kern.Gaussian, x, x, candidates, 2)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, s := range got {
		assert.Equal(t, candidates[i], s.Theta)
		assert.Equal(t, 1.0, s.Max)
		if i > 0 {
			assert.Greater(t, s.Mean, got[i-1].Mean)
			assert.Greater(t, s.Min, got[i-1].Min)
		}
	}
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	x := mat.NewDense(1, 1, []float64{0})
	_, err := Sweep(ctx, kern.Laplace, x, x, [][]float64{{1}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep_Command(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "p.csv", "0,0\n1,1\n")

	out, err := run(t, "sweep", "--format", "json", "-k", "matern32", "--thetas", "1;2,3", p, p)
	require.NoError(t, err)
	var res []struct {
		Theta []float64 `json:"theta"`
		Max   float64   `json:"max"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 2)
	assert.Equal(t, []float64{2, 3}, res[1].Theta)
	assert.Equal(t, 1.0, res[1].Max)

	_, err = run(t, "sweep", "--thetas", "1;x", p, p)
	assert.Error(t, err)
}

func TestParseCandidates(t *testing.T) {
	got, err := ParseCandidates("0.5; 1,2 ;")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5}, {1, 2}}, got)

	_, err = ParseCandidates(" ; ")
	assert.Error(t, err)
}
