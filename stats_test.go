package containers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicStatsCollector(t *testing.T) {
	var c BasicStatsCollector
	assert.Equal(t, BasicStats{}, c.GetStats())

	c.RecordConstruct()
	c.RecordRecycle()
	c.RecordRecycle()
	c.RecordRecycle()
	c.RecordPark(5)

	s := c.GetStats()
	assert.Equal(t, int64(1), s.Constructed)
	assert.Equal(t, int64(3), s.Recycled)
	assert.Equal(t, int64(5), s.Parked)
	assert.InDelta(t, 0.75, s.RecycleRatio, 1e-9)

	c.Reset()
	assert.Equal(t, BasicStats{}, c.GetStats())
}

func TestBasicStatsCollector_Concurrent(t *testing.T) {
	var c BasicStatsCollector

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				c.RecordConstruct()
				c.RecordPark(2)
			}
		}()
	}
	wg.Wait()

	s := c.GetStats()
	assert.Equal(t, int64(8000), s.Constructed)
	assert.Equal(t, int64(16000), s.Parked)
}

func TestNoopStatsCollector(t *testing.T) {
	var c StatsCollector = NoopStatsCollector{}
	c.RecordConstruct()
	c.RecordRecycle()
	c.RecordPark(1)
}
