package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCountsByOutcome(t *testing.T) {
	m := New()
	m.Observe("borrow", nil)
	m.Observe("borrow", nil)
	m.Observe("borrow", errors.New("book not available"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("borrow", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("borrow", OutcomeRejected)))
}

func TestFailureCounters(t *testing.T) {
	m := New()
	m.SaveFailed()
	m.LoadFailed()
	m.LoadFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SaveFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoadFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("add_book", nil)
		m.SaveFailed()
		m.LoadFailed()
	})
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Observe("add_member", nil)

	path := filepath.Join(t.TempDir(), "library.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `library_operations_total{operation="add_member",outcome="ok"} 1`)
	assert.Contains(t, string(data), "library_save_failures_total 0")
}
