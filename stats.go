package containers

import "sync/atomic"

// StatsCollector defines an interface for collecting recycling statistics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A single collector may be shared by several containers, including
// containers owned by different goroutines, so implementations must be safe
// for concurrent use.
type StatsCollector interface {
	// RecordConstruct is called when a value is built by a constructor
	// because no parked value was available.
	RecordConstruct()

	// RecordRecycle is called when a parked value is taken from the pool.
	RecordRecycle()

	// RecordPark is called after n values were reset and parked.
	RecordPark(n int)
}

// NoopStatsCollector is a no-op implementation of StatsCollector.
// Use this when stats collection is not needed.
type NoopStatsCollector struct{}

func (NoopStatsCollector) RecordConstruct() {}
func (NoopStatsCollector) RecordRecycle()   {}
func (NoopStatsCollector) RecordPark(int)   {}

// BasicStatsCollector provides simple in-memory stats collection.
// Useful for debugging and tuning pool sizes without external dependencies.
type BasicStatsCollector struct {
	Constructed atomic.Int64
	Recycled    atomic.Int64
	Parked      atomic.Int64
}

// RecordConstruct implements StatsCollector.
func (b *BasicStatsCollector) RecordConstruct() {
	b.Constructed.Add(1)
}

// RecordRecycle implements StatsCollector.
func (b *BasicStatsCollector) RecordRecycle() {
	b.Recycled.Add(1)
}

// RecordPark implements StatsCollector.
func (b *BasicStatsCollector) RecordPark(n int) {
	b.Parked.Add(int64(n))
}

// GetStats returns a snapshot of current stats.
func (b *BasicStatsCollector) GetStats() BasicStats {
	constructed := b.Constructed.Load()
	recycled := b.Recycled.Load()
	return BasicStats{
		Constructed:  constructed,
		Recycled:     recycled,
		Parked:       b.Parked.Load(),
		RecycleRatio: recycleRatio(constructed, recycled),
	}
}

// Reset zeroes all counters.
func (b *BasicStatsCollector) Reset() {
	b.Constructed.Store(0)
	b.Recycled.Store(0)
	b.Parked.Store(0)
}

func recycleRatio(constructed, recycled int64) float64 {
	total := constructed + recycled
	if total == 0 {
		return 0
	}
	return float64(recycled) / float64(total)
}

// BasicStats is a snapshot of BasicStatsCollector state.
type BasicStats struct {
	Constructed  int64
	Recycled     int64
	Parked       int64
	RecycleRatio float64 // Recycled / (Constructed + Recycled)
}
