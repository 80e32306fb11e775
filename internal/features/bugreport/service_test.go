package bugreport

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/common/events"
	"studio-admin/internal/common/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// memoryRepo is an in-memory BugReportRepository with the same conditional resolve
type memoryRepo struct {
	mu      sync.Mutex
	reports map[string]*BugReport
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{reports: make(map[string]*BugReport)}
}

func (r *memoryRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *memoryRepo) List(ctx context.Context) ([]BugReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]BugReport, 0, len(r.reports))
	for _, rep := range r.reports {
		out = append(out, *rep)
	}
	return out, nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*BugReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperr.NotFoundf("bug report %s", id)
	}
	cp := *rep
	return &cp, nil
}

func (r *memoryRepo) Create(ctx context.Context, report *BugReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = primitive.NewObjectID()
	report.CreatedAt = time.Now()
	cp := *report
	r.reports[report.ID.Hex()] = &cp
	return nil
}

func (r *memoryRepo) Resolve(ctx context.Context, id string, message string, at time.Time) (*BugReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperr.NotFoundf("bug report %s", id)
	}
	if rep.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: bug report %s is already resolved", apperr.ErrInvalidState, id)
	}
	rep.Status = StatusClosed
	rep.ResolutionMessage = message
	rep.ResolvedAt = &at
	cp := *rep
	return &cp, nil
}

type nopAudit struct{}

func (nopAudit) LogChange(ctx context.Context, action models.AuditAction, module string, recordID string, changes map[string]models.Change) error {
	return nil
}

func (nopAudit) ListLogs(ctx context.Context, filters map[string]interface{}, page, limit int64) ([]models.AuditLog, error) {
	return nil, nil
}

type countingNotifier struct {
	count atomic.Int32
}

func (n *countingNotifier) Notify(ctx context.Context, change events.Change) {
	n.count.Add(1)
}

func newTestService() (BugReportService, *memoryRepo, *countingNotifier) {
	repo := newMemoryRepo()
	notifier := &countingNotifier{}
	return NewBugReportService(repo, nopAudit{}, notifier, nil, zap.NewNop()), repo, notifier
}

func seedReport(t *testing.T, svc BugReportService) *BugReport {
	t.Helper()
	rep, err := svc.CreateReport(context.Background(), ReportInput{
		UserID: "u1", Username: "ann", Title: "Crash", Description: "on export", Rating: 2,
	})
	require.NoError(t, err)
	return rep
}

func TestCreateReportStartsOpen(t *testing.T) {
	svc, _, notifier := newTestService()

	rep := seedReport(t, svc)
	assert.Equal(t, StatusOpen, rep.Status)
	assert.Empty(t, rep.ResolutionMessage)
	assert.Nil(t, rep.ResolvedAt)
	assert.EqualValues(t, 1, notifier.count.Load())

	_, err := svc.CreateReport(context.Background(), ReportInput{UserID: "u", Username: "a", Title: "t", Description: "d", Rating: 9})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestResolveReport(t *testing.T) {
	ctx := context.Background()

	t.Run("closes with message", func(t *testing.T) {
		svc, _, _ := newTestService()
		rep := seedReport(t, svc)

		resolved, err := svc.ResolveReport(ctx, rep.ID.Hex(), "  Fixed in v2  ")
		require.NoError(t, err)
		assert.Equal(t, StatusClosed, resolved.Status)
		assert.Equal(t, "Fixed in v2", resolved.ResolutionMessage)
		assert.NotNil(t, resolved.ResolvedAt)
	})

	t.Run("second resolution is rejected and record unchanged", func(t *testing.T) {
		svc, _, _ := newTestService()
		rep := seedReport(t, svc)

		_, err := svc.ResolveReport(ctx, rep.ID.Hex(), "first")
		require.NoError(t, err)

		_, err = svc.ResolveReport(ctx, rep.ID.Hex(), "second")
		assert.ErrorIs(t, err, apperr.ErrInvalidState)

		got, err := svc.GetReport(ctx, rep.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, "first", got.ResolutionMessage)
	})

	t.Run("reserved resolved status also rejects", func(t *testing.T) {
		svc, repo, _ := newTestService()
		rep := seedReport(t, svc)
		repo.reports[rep.ID.Hex()].Status = StatusResolved

		_, err := svc.ResolveReport(ctx, rep.ID.Hex(), "late")
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})

	t.Run("in progress can be closed", func(t *testing.T) {
		svc, repo, _ := newTestService()
		rep := seedReport(t, svc)
		repo.reports[rep.ID.Hex()].Status = StatusInProgress

		resolved, err := svc.ResolveReport(ctx, rep.ID.Hex(), "done")
		require.NoError(t, err)
		assert.Equal(t, StatusClosed, resolved.Status)
	})

	t.Run("empty message", func(t *testing.T) {
		svc, _, _ := newTestService()
		rep := seedReport(t, svc)

		_, err := svc.ResolveReport(ctx, rep.ID.Hex(), "   ")
		assert.ErrorIs(t, err, apperr.ErrEmptyMessage)

		got, _ := svc.GetReport(ctx, rep.ID.Hex())
		assert.Equal(t, StatusOpen, got.Status)
	})

	t.Run("missing report", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.ResolveReport(ctx, primitive.NewObjectID().Hex(), "msg")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("concurrent resolutions close exactly once", func(t *testing.T) {
		svc, _, notifier := newTestService()
		rep := seedReport(t, svc)

		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, err := svc.ResolveReport(ctx, rep.ID.Hex(), fmt.Sprintf("attempt %d", i)); err == nil {
					wins.Add(1)
				} else {
					assert.ErrorIs(t, err, apperr.ErrInvalidState)
				}
			}(i)
		}
		wg.Wait()

		assert.EqualValues(t, 1, wins.Load())
		// one create plus one resolve
		assert.EqualValues(t, 2, notifier.count.Load())
	})
}
