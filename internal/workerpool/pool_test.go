package workerpool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapPreservesInputOrder(t *testing.T) {
	inputs := []int{5, 1, 4, 2, 3}

	got := Map(inputs, 3, func(n int) int {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10
	})

	assert.Equal(t, []int{50, 10, 40, 20, 30}, got)
}

func TestMapRespectsWorkerLimit(t *testing.T) {
	var running, peak atomic.Int32
	inputs := make([]int, 20)

	Map(inputs, 2, func(int) struct{} {
		cur := running.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)
		return struct{}{}
	})

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestMapEmpty(t *testing.T) {
	got := Map([]string{}, 4, func(s string) string { return s })
	assert.Empty(t, got)
}

func TestSize(t *testing.T) {
	assert.Equal(t, 3, Size(8, 3))
	assert.Equal(t, 2, Size(2, 10))
	assert.Equal(t, 1, Size(4, 0))
	assert.GreaterOrEqual(t, Size(0, 100), 1)
}
