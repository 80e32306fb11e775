package bugreport

import (
	"context"
	"errors"
	"strings"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/common/events"
	"studio-admin/internal/common/models"
	"studio-admin/internal/features/audit"
	"studio-admin/internal/metrics"

	"go.uber.org/zap"
)

type BugReportService interface {
	ListReports(ctx context.Context) ([]BugReport, error)
	GetReport(ctx context.Context, id string) (*BugReport, error)
	CreateReport(ctx context.Context, input ReportInput) (*BugReport, error)
	ResolveReport(ctx context.Context, id string, resolutionMessage string) (*BugReport, error)
}

type BugReportServiceImpl struct {
	Repo         BugReportRepository
	AuditService audit.AuditService
	Notifier     events.Notifier
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

func NewBugReportService(repo BugReportRepository, auditService audit.AuditService, notifier events.Notifier, m *metrics.Metrics, logger *zap.Logger) BugReportService {
	return &BugReportServiceImpl{
		Repo:         repo,
		AuditService: auditService,
		Notifier:     notifier,
		Metrics:      m,
		Logger:       logger,
	}
}

func (s *BugReportServiceImpl) ListReports(ctx context.Context) ([]BugReport, error) {
	return s.Repo.List(ctx)
}

func (s *BugReportServiceImpl) GetReport(ctx context.Context, id string) (*BugReport, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *BugReportServiceImpl) CreateReport(ctx context.Context, input ReportInput) (*BugReport, error) {
	input, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	report := &BugReport{
		UserID:      input.UserID,
		Username:    input.Username,
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		Status:      StatusOpen,
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		return nil, err
	}

	changes := map[string]models.Change{
		"title":  {New: report.Title},
		"rating": {New: report.Rating},
		"status": {New: report.Status},
	}
	s.record(ctx, models.AuditActionCreate, report.ID.Hex(), changes, events.ActionCreated)

	return report, nil
}

func (s *BugReportServiceImpl) ResolveReport(ctx context.Context, id string, resolutionMessage string) (*BugReport, error) {
	message := strings.TrimSpace(resolutionMessage)
	if message == "" {
		s.countResolution("empty_message")
		return nil, apperr.ErrEmptyMessage
	}

	report, err := s.Repo.Resolve(ctx, id, message, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			s.countResolution("not_found")
		case errors.Is(err, apperr.ErrInvalidState):
			s.countResolution("already_terminal")
		default:
			s.countResolution("error")
		}
		return nil, err
	}
	s.countResolution("closed")

	changes := map[string]models.Change{
		"status":            {New: report.Status},
		"resolutionMessage": {New: report.ResolutionMessage},
	}
	s.record(ctx, models.AuditActionResolve, id, changes, events.ActionResolved)

	return report, nil
}

func (s *BugReportServiceImpl) countResolution(result string) {
	if s.Metrics != nil {
		s.Metrics.RecordResolution(result)
	}
}

func (s *BugReportServiceImpl) record(ctx context.Context, action models.AuditAction, id string, changes map[string]models.Change, event events.Action) {
	if err := s.AuditService.LogChange(ctx, action, ModuleName, id, changes); err != nil {
		s.Logger.Warn("Failed to write audit log", zap.String("report_id", id), zap.Error(err))
	}

	s.Notifier.Notify(ctx, events.Change{
		Collection: ModuleName,
		Action:     event,
		ID:         id,
		At:         time.Now().UTC(),
	})
}
