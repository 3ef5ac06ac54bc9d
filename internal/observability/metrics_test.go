package observability

import (
	"testing"
	"time"

	"github.com/danmuck/irctl/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("irctl-a", "GET", "/health", 200, 12*time.Millisecond)

	before := testutil.ToFloat64(codecDecodes.WithLabelValues("XMI", "header_mismatch"))
	RecordDecode("XMI", "header_mismatch")
	RecordDecode("XMI", "header_mismatch")
	assert.Equal(t, before+2, testutil.ToFloat64(codecDecodes.WithLabelValues("XMI", "header_mismatch")))

	before = testutil.ToFloat64(codecEncodes.WithLabelValues("XMI", "ok"))
	RecordEncode("XMI", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(codecEncodes.WithLabelValues("XMI", "ok")))
}
