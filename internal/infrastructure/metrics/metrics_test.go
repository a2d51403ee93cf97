package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBackend(t *testing.T) {
	before := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("test-backend", OutcomeHit))
	RecordBackend("test-backend", OutcomeHit, 0.2)
	after := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("test-backend", OutcomeHit))

	assert.Equal(t, before+1, after)
}

func TestRecordRun(t *testing.T) {
	before := testutil.ToFloat64(PipelineRunsTotal.WithLabelValues("partial"))
	RecordRun("partial", 3)
	assert.Equal(t, before+1, testutil.ToFloat64(PipelineRunsTotal.WithLabelValues("partial")))
}
