package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/features/bugreport"
	"studio-admin/internal/features/member"
	"studio-admin/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMembers struct {
	member.MemberService
	taken   map[string]bool
	created []string
}

func (f *fakeMembers) CreateMember(ctx context.Context, in member.MemberInput) (*member.Member, error) {
	if f.taken[in.Username] {
		return nil, apperr.ErrDuplicateUsername
	}
	f.created = append(f.created, in.Username)
	return &member.Member{Username: in.Username}, nil
}

type fakeReports struct {
	bugreport.BugReportService
	err    error
	stored []bugreport.BugReport
}

func (f *fakeReports) ListReports(ctx context.Context) ([]bugreport.BugReport, error) {
	return f.stored, nil
}

func (f *fakeReports) CreateReport(ctx context.Context, in bugreport.ReportInput) (*bugreport.BugReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := bugreport.BugReport{UserID: in.UserID, Title: in.Title}
	f.stored = append(f.stored, r)
	return &r, nil
}

func TestLoadSeedFile(t *testing.T) {
	data, err := loadSeedFile(filepath.Join("testdata", "seed.json"))
	require.NoError(t, err)

	require.Len(t, data.Members, 3)
	assert.Equal(t, "alice", data.Members[0].Username)
	assert.True(t, data.Members[0].Access.PosterEditor)
	assert.False(t, data.Members[0].Access.IDCard)
	assert.Len(t, data.BugReports, 2)
	assert.Equal(t, 3, data.BugReports[0].Rating)
}

func TestLoadSeedFileRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte("{members:"), 0o600))

	_, err := loadSeedFile(path)
	assert.Error(t, err)
}

func TestSeedSkipsExistingMembers(t *testing.T) {
	data, err := loadSeedFile(filepath.Join("testdata", "seed.json"))
	require.NoError(t, err)

	members := &fakeMembers{taken: map[string]bool{"bob": true}}
	reports := &fakeReports{}

	res, err := seed(context.Background(), members, reports, data, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{MembersCreated: 2, MembersSkipped: 1, ReportsCreated: 2}, res)
	assert.Equal(t, []string{"alice", "carol"}, members.created)
}

func TestSeedRerunCreatesNothing(t *testing.T) {
	data, err := loadSeedFile(filepath.Join("testdata", "seed.json"))
	require.NoError(t, err)

	members := &fakeMembers{taken: map[string]bool{}}
	reports := &fakeReports{}

	_, err = seed(context.Background(), members, reports, data, zap.NewNop())
	require.NoError(t, err)
	for _, name := range members.created {
		members.taken[name] = true
	}

	res, err := seed(context.Background(), members, reports, data, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{MembersSkipped: 3, ReportsSkipped: 2}, res)
	assert.Len(t, reports.stored, 2)
}

func TestSeedStopsOnReportError(t *testing.T) {
	data, err := loadSeedFile(filepath.Join("testdata", "seed.json"))
	require.NoError(t, err)

	reports := &fakeReports{err: errors.New("write failed")}
	_, err = seed(context.Background(), &fakeMembers{}, reports, data, zap.NewNop())
	assert.ErrorContains(t, err, "Poster export cuts the margin")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "--username", "root", "--user-id", "u1"})
	require.NoError(t, cmd.Execute())

	claims, err := utils.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, "u1", claims.UserID)
}
