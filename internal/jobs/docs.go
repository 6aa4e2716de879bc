// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
// LeaderboardSnapshotJob ranks both leaderboards and publishes the visible
// counts as the fulfillment_leaderboard_count gauge. It runs every minute by
// default.
//
// # Usage
//
//	job := jobs.NewLeaderboardSnapshotJob(counter, m, cfg.LeaderboardCron, log)
//	jobManager := jobs.NewJobManager(job, log)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed snapshot is logged and retried on the next tick; the gauges keep
// their previous values. A failed start stops every job already started.
package jobs
