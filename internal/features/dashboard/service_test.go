package dashboard

import (
	"context"
	"errors"
	"testing"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/features/bugreport"
	"studio-admin/internal/features/member"
	"studio-admin/internal/features/storagestats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeMembers struct {
	member.MemberService
	members []member.Member
	err     error
}

func (f fakeMembers) ListMembers(ctx context.Context) ([]member.Member, error) {
	return f.members, f.err
}

type fakeReports struct {
	bugreport.BugReportService
	reports []bugreport.BugReport
	err     error
}

func (f fakeReports) ListReports(ctx context.Context) ([]bugreport.BugReport, error) {
	return f.reports, f.err
}

type fakeUsage struct {
	seconds map[string]float64
	err     error
}

func (f fakeUsage) Name() string { return "fake" }

func (f fakeUsage) UsageSeconds(ctx context.Context) (map[string]float64, error) {
	return f.seconds, f.err
}

type fakeStorage struct {
	storage *storagestats.Storage
	err     error
}

func (f fakeStorage) Name() string { return "fake" }

func (f fakeStorage) Storage(ctx context.Context) (*storagestats.Storage, error) {
	return f.storage, f.err
}

type memorySnapshots struct {
	saved []Snapshot
	limit int64
}

func (m *memorySnapshots) EnsureIndexes(ctx context.Context) error { return nil }

func (m *memorySnapshots) Create(ctx context.Context, snapshot *Snapshot) error {
	snapshot.ID = primitive.NewObjectID()
	m.saved = append(m.saved, *snapshot)
	return nil
}

func (m *memorySnapshots) List(ctx context.Context, limit int64) ([]Snapshot, error) {
	m.limit = limit
	return m.saved, nil
}

type fixture struct {
	members   fakeMembers
	reports   fakeReports
	usage     fakeUsage
	storage   fakeStorage
	snapshots *memorySnapshots
}

func newFixture() *fixture {
	alice := member.Member{ID: primitive.NewObjectID(), Username: "alice", Access: member.Access{Assets: true}}
	return &fixture{
		members: fakeMembers{members: []member.Member{alice}},
		reports: fakeReports{reports: []bugreport.BugReport{
			{Status: bugreport.StatusOpen},
			{Status: bugreport.StatusInProgress},
			{Status: bugreport.StatusClosed},
		}},
		usage:     fakeUsage{seconds: map[string]float64{alice.ID.Hex(): 600}},
		storage:   fakeStorage{storage: &storagestats.Storage{UsedStorageMB: 128, TotalStorageMB: 512}},
		snapshots: &memorySnapshots{},
	}
}

func (f *fixture) service() DashboardService {
	return NewDashboardService(f.members, f.reports, f.usage, f.storage, f.snapshots, nil, zap.NewNop())
}

func TestStats(t *testing.T) {
	f := newFixture()

	stats, err := f.service().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalMembers)
	assert.Equal(t, 1, stats.AccessDistribution["assets"])
	assert.Equal(t, 10.0, stats.TotalUsageMinutes)
	assert.Equal(t, 25.0, stats.Storage.UsedPercentage)
	assert.Equal(t, 1, stats.ReportStatusCounts["Open"])
	assert.Empty(t, stats.Warnings)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestStatsDegradesOnCollaboratorFailure(t *testing.T) {
	f := newFixture()
	f.usage.err = apperr.Upstream(errors.New("redis down"))
	f.storage.err = apperr.Upstream(errors.New("minio down"))

	stats, err := f.service().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.TotalUsageMinutes)
	assert.Nil(t, stats.Storage)
	assert.Len(t, stats.Warnings, 2)
	assert.Equal(t, 1, stats.TotalMembers)
}

func TestStatsFailsOnStoreFailure(t *testing.T) {
	f := newFixture()
	f.reports.err = errors.New("connection reset")

	_, err := f.service().Stats(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestDisplayReports(t *testing.T) {
	f := newFixture()
	f.reports.reports = []bugreport.BugReport{
		{Title: "c", Status: bugreport.StatusClosed},
		{Title: "o", Status: bugreport.StatusOpen},
	}

	reports, err := f.service().DisplayReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "o", reports[0].Title)
	assert.Equal(t, "c", reports[1].Title)
}

func TestTakeAndListSnapshots(t *testing.T) {
	f := newFixture()
	svc := f.service()

	snap, err := svc.TakeSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalMembers)
	assert.Equal(t, 2, snap.OpenReports)
	assert.Equal(t, 25.0, snap.UsedPercentage)
	require.Len(t, f.snapshots.saved, 1)

	_, err = svc.ListSnapshots(context.Background(), 0)
	require.NoError(t, err)
	assert.EqualValues(t, defaultSnapshotLimit, f.snapshots.limit)

	_, err = svc.ListSnapshots(context.Background(), 10000)
	require.NoError(t, err)
	assert.EqualValues(t, maxSnapshotLimit, f.snapshots.limit)
}

func TestSnapshotJob(t *testing.T) {
	f := newFixture()
	job := SnapshotJob(f.service(), zap.NewNop())

	require.NoError(t, job(context.Background()))
	assert.Len(t, f.snapshots.saved, 1)

	f.members.err = errors.New("connection reset")
	job = SnapshotJob(f.service(), zap.NewNop())
	assert.Error(t, job(context.Background()))
	assert.Len(t, f.snapshots.saved, 1)
}
