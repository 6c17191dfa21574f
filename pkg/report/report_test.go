package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winequality/pkg/stats"
)

func TestHistogramWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.png")
	scores := []float64{4.8, 5.1, 5.4, 5.6, 5.6, 6.2, 6.9, 7.1}
	require.NoError(t, Histogram(scores, []float64{5, 7}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestHistogramEmpty(t *testing.T) {
	assert.Error(t, Histogram(nil, nil, filepath.Join(t.TempDir(), "x.png")))
}

func TestSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, stats.Summary{Count: 3, Mean: 5.5}, map[string]int{"Regular": 2, "Good": 1}, 1)

	out := buf.String()
	assert.Contains(t, out, "rows scored")
	assert.Contains(t, out, "Regular")
	assert.Contains(t, out, "5.5")
}

func TestArtifactsTable(t *testing.T) {
	var buf bytes.Buffer
	Artifacts(&buf, "median", []float64{7.9}, "standard", "linear")

	out := buf.String()
	assert.Contains(t, out, "fixed acidity")
	assert.Contains(t, out, "7.9")
	assert.Contains(t, out, "alcohol")
}
