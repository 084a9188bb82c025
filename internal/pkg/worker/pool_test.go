package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestPools(t *testing.T) *Pools {
	t.Helper()

	pools, err := NewPools(context.Background(), PoolConfig{
		GeneralPoolSize: 4,
		ReindexPoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestSubmit_RunsTask(t *testing.T) {
	t.Parallel()

	pools := newTestPools(t)

	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		ran = true
		wg.Done()
	})
	require.NoError(t, err)
	wg.Wait()
	require.True(t, ran)
}

func TestSubmit_CancelledContextRejectedUpfront(t *testing.T) {
	t.Parallel()

	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run with a cancelled context")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmitDetached_UsesServiceContext(t *testing.T) {
	t.Parallel()

	pools := newTestPools(t)

	done := make(chan context.Context, 1)
	err := pools.SubmitDetached("reindex", func(ctx context.Context) {
		done <- ctx
	})
	require.NoError(t, err)

	select {
	case ctx := <-done:
		require.NoError(t, ctx.Err())
	case <-time.After(5 * time.Second):
		t.Fatal("detached task never ran")
	}
}

func TestMetrics_ReportsBothPools(t *testing.T) {
	t.Parallel()

	pools := newTestPools(t)
	m := pools.Metrics()

	general, ok := m["general"].(map[string]int)
	require.True(t, ok)
	require.Equal(t, 4, general["cap"])

	reindex, ok := m["reindex"].(map[string]int)
	require.True(t, ok)
	require.Equal(t, 2, reindex["cap"])
}

func TestShutdown_StopsDetachedTasks(t *testing.T) {
	t.Parallel()

	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)

	started := make(chan struct{})
	stopped := make(chan struct{})
	err = pools.SubmitDetached("general", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(stopped)
	})
	require.NoError(t, err)
	<-started

	pools.Shutdown()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("detached task did not observe shutdown")
	}
}
