package dashboard

import (
	"context"
	"fmt"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/features/bugreport"
	"studio-admin/internal/features/member"
	"studio-admin/internal/features/storagestats"
	"studio-admin/internal/features/usage"
	"studio-admin/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSnapshotLimit = 24
	maxSnapshotLimit     = 500
)

type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
	DisplayReports(ctx context.Context) ([]bugreport.BugReport, error)
	TakeSnapshot(ctx context.Context) (*Snapshot, error)
	ListSnapshots(ctx context.Context, limit int64) ([]Snapshot, error)
}

type DashboardServiceImpl struct {
	Members   member.MemberService
	Reports   bugreport.BugReportService
	Usage     usage.Provider
	Storage   storagestats.Provider
	Snapshots SnapshotRepository
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func NewDashboardService(
	members member.MemberService,
	reports bugreport.BugReportService,
	usageProvider usage.Provider,
	storageProvider storagestats.Provider,
	snapshots SnapshotRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) DashboardService {
	return &DashboardServiceImpl{
		Members:   members,
		Reports:   reports,
		Usage:     usageProvider,
		Storage:   storageProvider,
		Snapshots: snapshots,
		Metrics:   m,
		Logger:    logger,
	}
}

// Stats reads both stores and both collaborators concurrently.
// A store failure fails the call; a collaborator failure only empties its section.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (*Stats, error) {
	var (
		members    []member.Member
		reports    []bugreport.BugReport
		seconds    map[string]float64
		storage    *storagestats.Storage
		usageErr   error
		storageErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.Members.ListMembers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reports, err = s.Reports.ListReports(gctx)
		return err
	})
	g.Go(func() error {
		seconds, usageErr = s.Usage.UsageSeconds(gctx)
		return nil
	})
	g.Go(func() error {
		storage, storageErr = s.Storage.Storage(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.Upstream(err)
	}

	var warnings []string
	if usageErr != nil {
		warnings = append(warnings, s.degrade("usage", s.Usage.Name(), usageErr))
		seconds = nil
	}
	if storageErr != nil {
		warnings = append(warnings, s.degrade("storage", s.Storage.Name(), storageErr))
		storage = nil
	}

	stats := ComputeStats(members, seconds, storage)
	stats.ReportStatusCounts = CountStatuses(reports)
	stats.Warnings = warnings
	stats.GeneratedAt = time.Now().UTC()
	return &stats, nil
}

func (s *DashboardServiceImpl) degrade(collaborator, source string, err error) string {
	if s.Metrics != nil {
		s.Metrics.RecordCollaboratorFailure(collaborator)
	}
	s.Logger.Warn("Dashboard collaborator unavailable",
		zap.String("collaborator", collaborator),
		zap.String("source", source),
		zap.Error(err),
	)
	return fmt.Sprintf("%s unavailable: %v", collaborator, err)
}

func (s *DashboardServiceImpl) DisplayReports(ctx context.Context) ([]bugreport.BugReport, error) {
	reports, err := s.Reports.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	return SortReportsForDisplay(reports), nil
}

func (s *DashboardServiceImpl) TakeSnapshot(ctx context.Context) (*Snapshot, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		TotalMembers:       stats.TotalMembers,
		AccessDistribution: stats.AccessDistribution,
		TotalUsageMinutes:  stats.TotalUsageMinutes,
		OpenReports:        stats.ReportStatusCounts[string(bugreport.StatusOpen)] + stats.ReportStatusCounts[string(bugreport.StatusInProgress)],
		Warnings:           stats.Warnings,
		TakenAt:            stats.GeneratedAt,
	}
	if stats.Storage != nil {
		snapshot.UsedPercentage = stats.Storage.UsedPercentage
	}

	if err := s.Snapshots.Create(ctx, snapshot); err != nil {
		return nil, err
	}
	if s.Metrics != nil {
		s.Metrics.SnapshotsTaken.Inc()
	}
	return snapshot, nil
}

func (s *DashboardServiceImpl) ListSnapshots(ctx context.Context, limit int64) ([]Snapshot, error) {
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}
	if limit > maxSnapshotLimit {
		limit = maxSnapshotLimit
	}
	return s.Snapshots.List(ctx, limit)
}

// SnapshotJobName is the scheduler key of the periodic stats snapshot
const SnapshotJobName = "stats-snapshot"

// SnapshotJob adapts TakeSnapshot to the scheduler's job signature
func SnapshotJob(svc DashboardService, logger *zap.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		snapshot, err := svc.TakeSnapshot(ctx)
		if err != nil {
			return err
		}
		logger.Info("Stats snapshot taken",
			zap.Int("total_members", snapshot.TotalMembers),
			zap.Int("open_reports", snapshot.OpenReports),
			zap.Int("warnings", len(snapshot.Warnings)),
		)
		return nil
	}
}
