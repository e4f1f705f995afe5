package telemetry

import "sync/atomic"

// AcquireMetrics fasst Messwerte zur Knotenbeschaffung einer Queue zusammen.
type AcquireMetrics struct {
	arenaAllocs atomic.Uint64
	reuses      atomic.Uint64
	exhausted   atomic.Uint64
}

// RecordArenaAlloc vermerkt eine frische Slot-Zuteilung aus der Arena.
func (m *AcquireMetrics) RecordArenaAlloc() {
	m.arenaAllocs.Add(1)
}

// RecordReuse vermerkt die Wiederverwendung eines Knotens aus der Freelist.
func (m *AcquireMetrics) RecordReuse() {
	m.reuses.Add(1)
}

// RecordExhausted vermerkt eine fehlgeschlagene Beschaffung bei erschöpfter Arena.
func (m *AcquireMetrics) RecordExhausted() {
	m.exhausted.Add(1)
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *AcquireMetrics) Snapshot() (arenaAllocs, reuses, exhausted uint64) {
	return m.arenaAllocs.Load(), m.reuses.Load(), m.exhausted.Load()
}

// Reset setzt alle Zähler zurück.
func (m *AcquireMetrics) Reset() {
	m.arenaAllocs.Store(0)
	m.reuses.Store(0)
	m.exhausted.Store(0)
}
