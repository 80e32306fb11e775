package cron_feature

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"studio-admin/internal/common/apperr"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// maxLogsPerJob bounds the in-memory run history of each job
const maxLogsPerJob = 20

type CronService interface {
	RegisterJob(name, description, schedule string, timeout time.Duration, fn JobFunc) error
	UnregisterJob(name string) error
	ListCronJobs() []CronJob
	ExecuteCronJob(ctx context.Context, name string) (*CronJobLog, error)
	GetCronJobLogs(name string, limit int) ([]CronJobLog, error)
	InitializeScheduler(ctx context.Context) error
	StopScheduler() error
}

type registeredJob struct {
	CronJob
	entryID cron.EntryID
	timeout time.Duration
	fn      JobFunc
	logs    []CronJobLog
}

type CronServiceImpl struct {
	scheduler *cron.Cron
	jobs      map[string]*registeredJob
	mu        sync.RWMutex
	logger    *zap.Logger
}

func NewCronService(logger *zap.Logger) CronService {
	return &CronServiceImpl{
		scheduler: cron.New(),
		jobs:      make(map[string]*registeredJob),
		logger:    logger,
	}
}

func (s *CronServiceImpl) RegisterJob(name, description, schedule string, timeout time.Duration, fn JobFunc) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("cron job %s already registered", name)
	}

	job := &registeredJob{
		CronJob: CronJob{Name: name, Description: description, Schedule: schedule},
		timeout: timeout,
		fn:      fn,
	}

	entryID, err := s.scheduler.AddFunc(schedule, func() {
		s.run(context.Background(), job, TriggerSchedule)
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job to scheduler: %w", err)
	}
	job.entryID = entryID
	s.jobs[name] = job

	s.logger.Info("Registered cron job", zap.String("job", name), zap.String("schedule", schedule))
	return nil
}

func (s *CronServiceImpl) UnregisterJob(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, exists := s.jobs[name]; exists {
		s.scheduler.Remove(job.entryID)
		delete(s.jobs, name)
	}
	return nil
}

func (s *CronServiceImpl) ListCronJobs() []CronJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]CronJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		view := job.CronJob
		if next := s.scheduler.Entry(job.entryID).Next; !next.IsZero() {
			view.NextRun = &next
		}
		jobs = append(jobs, view)
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })
	return jobs
}

func (s *CronServiceImpl) ExecuteCronJob(ctx context.Context, name string) (*CronJobLog, error) {
	s.mu.RLock()
	job, exists := s.jobs[name]
	s.mu.RUnlock()
	if !exists {
		return nil, apperr.NotFoundf("cron job %s", name)
	}

	entry := s.run(ctx, job, TriggerManual)
	return &entry, nil
}

func (s *CronServiceImpl) GetCronJobLogs(name string, limit int) ([]CronJobLog, error) {
	if limit <= 0 {
		limit = maxLogsPerJob
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[name]
	if !exists {
		return nil, apperr.NotFoundf("cron job %s", name)
	}

	// newest first
	logs := make([]CronJobLog, 0, limit)
	for i := len(job.logs) - 1; i >= 0 && len(logs) < limit; i-- {
		logs = append(logs, job.logs[i])
	}
	return logs, nil
}

func (s *CronServiceImpl) InitializeScheduler(ctx context.Context) error {
	s.logger.Info("Initializing cron scheduler...")
	s.scheduler.Start()
	return nil
}

func (s *CronServiceImpl) StopScheduler() error {
	ctx := s.scheduler.Stop()
	<-ctx.Done()
	return nil
}

func (s *CronServiceImpl) run(ctx context.Context, job *registeredJob, trigger string) CronJobLog {
	if job.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.timeout)
		defer cancel()
	}

	entry := CronJobLog{
		CronJobName: job.Name,
		StartTime:   time.Now().UTC(),
		Status:      StatusRunning,
		Trigger:     trigger,
	}

	err := job.fn(ctx)

	end := time.Now().UTC()
	entry.EndTime = &end
	if err != nil {
		entry.Status = StatusFailed
		entry.Error = err.Error()
		s.logger.Error("Cron job failed", zap.String("job", job.Name), zap.String("trigger", trigger), zap.Error(err))
	} else {
		entry.Status = StatusSuccess
	}

	s.mu.Lock()
	job.LastRun = &entry.StartTime
	job.LastStatus = entry.Status
	job.logs = append(job.logs, entry)
	if len(job.logs) > maxLogsPerJob {
		job.logs = job.logs[len(job.logs)-maxLogsPerJob:]
	}
	s.mu.Unlock()

	return entry
}

