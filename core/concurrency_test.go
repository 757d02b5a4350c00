// Package core_test verifies thread-safety of core.Network under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/core"
)

// TestConcurrentAddConnection ensures that concurrent AddConnection calls
// are safe and every link appears.
func TestConcurrentAddConnection(t *testing.T) {
	n := core.NewNetwork()
	const num = 200
	require.NoError(t, n.AddStop("Hub", "Hub", "L"))
	for i := 0; i < num; i++ {
		require.NoError(t, n.AddStop(fmt.Sprintf("S%d", i), "spoke", "L"))
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- n.AddConnection("Hub", fmt.Sprintf("S%d", id), int64(id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	links, err := n.Links("Hub")
	require.NoError(t, err)
	require.Len(t, links, num)
	require.Equal(t, num, n.ConnectionCount())
}

// TestConcurrentReadsDuringWrites mixes readers and writers to verify no
// races or panics occur.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	n := buildTriangle(t)
	const rounds = 100

	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			sid := fmt.Sprintf("W%d", id)
			_ = n.AddStop(sid, sid, "W")
			_ = n.AddConnection(StopA, sid, 1)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = n.Links(StopA)
			_ = n.Stats()
			_, _ = n.PathCost([]string{StopA, StopB})
			_ = n.Stops()
		}()
	}
	wg.Wait()

	require.Equal(t, 3+rounds, n.StopCount())
}
