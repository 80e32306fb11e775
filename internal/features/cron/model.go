package cron_feature

import (
	"context"
	"time"
)

// JobFunc is the body of a scheduled job
type JobFunc func(ctx context.Context) error

// CronJob describes a job registered with the scheduler
type CronJob struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Schedule    string     `json:"schedule"`
	LastRun     *time.Time `json:"last_run,omitempty"`
	NextRun     *time.Time `json:"next_run,omitempty"`
	LastStatus  string     `json:"last_status,omitempty"`
}

// CronJobLog represents a single execution of a cron job
type CronJobLog struct {
	CronJobName string     `json:"cron_job_name"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Status      string     `json:"status"` // "success", "failed", "running"
	Trigger     string     `json:"trigger"` // "schedule" or "manual"
	Error       string     `json:"error,omitempty"`
}

const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"

	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)
