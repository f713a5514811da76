package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteCoversFullRange(t *testing.T) {
	n := 1000
	hits := make([]int32, n)
	Execute(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d hit %d times", i, h)
	}
}

func TestExecuteSingleWorkerIsSynchronous(t *testing.T) {
	var order []int
	Execute(4, func(start, end int) {
		for i := start; i < end; i++ {
			order = append(order, i)
		}
	}, 1)
	require.Equal(t, []int{0, 1, 2, 3}, order)
}
