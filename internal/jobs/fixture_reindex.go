package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"

	"charterdesk.io/charterdesk/ent"
	entfixture "charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/internal/pkg/logger"
	"charterdesk.io/charterdesk/internal/pkg/worker"
	"charterdesk.io/charterdesk/internal/service"
)

// reindexBatchSize is how many fixtures one pool task recomputes.
const reindexBatchSize = 50

// FixtureReindexArgs recomputes the derived last_updated and search_text
// columns for every fixture. Enqueued on demand from the admin endpoint,
// typically after bulk imports or reference-data renames.
type FixtureReindexArgs struct{}

// Kind returns the job kind identifier for the fixture reindex backfill.
func (FixtureReindexArgs) Kind() string { return "fixture_reindex" }

// InsertOpts deduplicates concurrent reindex requests.
func (FixtureReindexArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
			ByQueue: true,
			ByArgs:  true,
		},
	}
}

// FixtureReindexWorker fans fixture batches out to the reindex pool.
type FixtureReindexWorker struct {
	river.WorkerDefaults[FixtureReindexArgs]
	entClient *ent.Client
	pools     *worker.Pools
}

// NewFixtureReindexWorker creates a reindex worker.
func NewFixtureReindexWorker(entClient *ent.Client, pools *worker.Pools) *FixtureReindexWorker {
	return &FixtureReindexWorker{
		entClient: entClient,
		pools:     pools,
	}
}

// Work recomputes every fixture's derived fields in batches. A failed
// fixture is logged and skipped; the job reports how many failed.
func (w *FixtureReindexWorker) Work(ctx context.Context, _ *river.Job[FixtureReindexArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("fixture reindex worker is not initialized")
	}

	start := time.Now()
	ids, err := w.entClient.Fixture.Query().
		Order(ent.Asc(entfixture.FieldCreatedAt)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list fixture ids: %w", err)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for batchStart := 0; batchStart < len(ids); batchStart += reindexBatchSize {
		batch := ids[batchStart:min(batchStart+reindexBatchSize, len(ids))]
		wg.Add(1)
		task := func(taskCtx context.Context) {
			defer wg.Done()
			for _, id := range batch {
				if taskCtx.Err() != nil {
					return
				}
				err := service.WithTx(taskCtx, w.entClient, func(tx *ent.Client) error {
					return service.RecomputeFixtureDerived(taskCtx, tx, id)
				})
				if err != nil {
					logger.Warn("fixture reindex failed",
						zap.String("fixture_id", id),
						zap.Error(err),
					)
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}
		if err := w.pools.Reindex.Submit(ctx, task); err != nil {
			wg.Done()
			return fmt.Errorf("submit reindex batch: %w", err)
		}
	}
	wg.Wait()

	logger.Info("fixture reindex completed",
		zap.Int("fixtures", len(ids)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	if failed > 0 {
		return fmt.Errorf("fixture reindex: %d of %d fixtures failed", failed, len(ids))
	}
	return nil
}
