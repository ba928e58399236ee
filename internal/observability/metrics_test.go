package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordRequest(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/token", "POST", 200, 20*time.Millisecond)
	metrics.RecordRequest("/token", "POST", 200, 30*time.Millisecond)
	metrics.RecordRequest("/token", "POST", 401, 5*time.Millisecond)

	assert.Equal(t, int64(2), metrics.RequestCount("/token", "POST", 200))
	assert.Equal(t, int64(1), metrics.RequestCount("/token", "POST", 401))
	assert.Equal(t, int64(0), metrics.RequestCount("/token", "POST", 500))

	assert.Equal(t, 50*time.Millisecond, metrics.TotalDuration("/token", "POST", 200))
	assert.Equal(t, 5*time.Millisecond, metrics.TotalDuration("/token", "POST", 401))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var metrics *Metrics

	metrics.RecordRequest("/token", "POST", 200, time.Millisecond)
	metrics.RecordError("/token", "POST", "UNAUTHORIZED")
	assert.Equal(t, int64(0), metrics.RequestCount("/token", "POST", 200))
	assert.Equal(t, time.Duration(0), metrics.TotalDuration("/token", "POST", 200))
}
