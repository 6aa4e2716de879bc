package jobs

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/leaderboard"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/metrics"
	"fulfillment/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultLeaderboardSchedule runs the snapshot at the start of every minute.
const DefaultLeaderboardSchedule = "0 * * * * *"

// LeaderboardCounter supplies the per-actor counts behind both boards.
type LeaderboardCounter interface {
	Fulfilled(ctx context.Context) ([]leaderboard.ActorCount, error)
	Approved(ctx context.Context) ([]leaderboard.ActorCount, error)
}

// LeaderboardSnapshotJob periodically exports the top counts of both boards as
// gauges so they can be charted without hitting the listing endpoint.
type LeaderboardSnapshotJob struct {
	counter  LeaderboardCounter
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	log      *logrus.Entry
}

// NewLeaderboardSnapshotJob creates the job. An empty schedule means
// DefaultLeaderboardSchedule; schedules use the six-field cron format.
func NewLeaderboardSnapshotJob(
	counter LeaderboardCounter,
	m *metrics.Metrics,
	schedule string,
	log *logrus.Logger,
) *LeaderboardSnapshotJob {
	if schedule == "" {
		schedule = DefaultLeaderboardSchedule
	}
	return &LeaderboardSnapshotJob{
		counter:  counter,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		log:      logger.Component(log, "leaderboard_snapshot_job"),
	}
}

// Start registers the snapshot with the scheduler and starts it.
func (j *LeaderboardSnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.log.WithError(err).Error("leaderboard snapshot failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.log.WithField("schedule", j.schedule).Info("leaderboard snapshot job started")
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *LeaderboardSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("leaderboard snapshot job stopped")
}

// Run takes one snapshot. The boards are ranked without a caller.
func (j *LeaderboardSnapshotJob) Run(ctx context.Context) error {
	fulfilled, err := j.counter.Fulfilled(ctx)
	if err != nil {
		return err
	}
	approved, err := j.counter.Approved(ctx)
	if err != nil {
		return err
	}

	j.metrics.SetLeaderboard(metrics.BoardFulfilled, topCounts(fulfilled))
	j.metrics.SetLeaderboard(metrics.BoardApproved, topCounts(approved))
	return nil
}

func topCounts(counts []leaderboard.ActorCount) []int {
	board := services.RankLeaderboard(counts, "")
	out := make([]int, len(board.Entries))
	for i, e := range board.Entries {
		out[i] = e.Count
	}
	return out
}
