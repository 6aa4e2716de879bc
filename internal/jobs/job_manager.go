package jobs

import (
	"fmt"

	"fulfillment/internal/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job  Job
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
	log     *logrus.Entry
}

// NewJobManager creates a job manager running the leaderboard snapshot job.
func NewJobManager(snapshotJob *LeaderboardSnapshotJob, log *logrus.Logger) *JobManager {
	return &JobManager{
		jobs: []namedJob{
			{name: "leaderboard snapshot", job: snapshotJob},
		},
		log: logger.Component(log, "jobs"),
	}
}

// StartAll starts all scheduled jobs in registration order.
// When one fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj)
	}
	jm.log.WithField("count", len(jm.started)).Info("jobs started")
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
