package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewCacheMetrics(reg)
	require.NoError(t, err)

	m.Hits.Inc()
	m.Misses.Add(2)
	m.Entries.Set(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Hits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Misses))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Entries))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestNewCacheMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewCacheMetrics(reg)
	require.NoError(t, err)

	_, err = NewCacheMetrics(reg)
	assert.Error(t, err)
}

func TestNewOptimizerMetrics_NilRegisterer(t *testing.T) {
	m, err := NewOptimizerMetrics(nil)
	require.NoError(t, err)

	m.Searches.Inc()
	m.Score.Observe(0.01)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches))
}

func TestOptimizerMetrics_ObserveSearch(t *testing.T) {
	m, err := NewOptimizerMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.ObserveSearch(51, 0, true)
	m.ObserveSearch(0, 0, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Searches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Fallbacks))
}
