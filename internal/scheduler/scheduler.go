// Package scheduler runs background maintenance jobs on cron schedules.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Job is a named unit of background work.
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs
type Scheduler struct {
	cron *cron.Cron
}

// New creates a new scheduler
func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// AddJob registers a job with a cron schedule ("@daily", "0 3 * * *", ...).
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			log.Printf("Scheduled job %s failed: %v", job.Name(), err)
			return
		}
		log.Printf("Scheduled job %s completed", job.Name())
	})
	if err != nil {
		return err
	}

	log.Printf("Registered job %s with schedule %s", job.Name(), schedule)
	return nil
}

// BackupJob snapshots the portfolio data file.
type BackupJob struct {
	Backup func() (string, error)
}

// Name identifies the job in logs.
func (j *BackupJob) Name() string { return "portfolio-backup" }

// Run creates one backup.
func (j *BackupJob) Run() error {
	path, err := j.Backup()
	if err != nil {
		return err
	}
	log.Printf("Portfolio backup written to %s", path)
	return nil
}
