package telemetry

import "testing"

func TestAcquireMetricsRecordsAndSnapshots(t *testing.T) {
	var metrics AcquireMetrics

	metrics.RecordArenaAlloc()
	metrics.RecordArenaAlloc()
	metrics.RecordReuse()
	metrics.RecordExhausted()

	allocs, reuses, exhausted := metrics.Snapshot()
	if allocs != 2 {
		t.Fatalf("expected 2 arena allocations, got %d", allocs)
	}
	if reuses != 1 {
		t.Fatalf("expected 1 reuse, got %d", reuses)
	}
	if exhausted != 1 {
		t.Fatalf("expected 1 exhaustion, got %d", exhausted)
	}
}

func TestAcquireMetricsReset(t *testing.T) {
	var metrics AcquireMetrics

	metrics.RecordArenaAlloc()
	metrics.RecordReuse()
	metrics.RecordExhausted()
	metrics.Reset()

	allocs, reuses, exhausted := metrics.Snapshot()
	if allocs != 0 || reuses != 0 || exhausted != 0 {
		t.Fatalf("expected metrics to reset to zero, got allocs=%d reuses=%d exhausted=%d", allocs, reuses, exhausted)
	}
}
