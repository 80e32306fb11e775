package member

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

type MemberService interface {
	ListMembers(ctx context.Context) ([]Member, error)
	GetMember(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, input MemberInput) (*Member, error)
	UpdateMember(ctx context.Context, id string, input MemberInput) (*Member, error)
	DeleteMember(ctx context.Context, id string) error
	SetAccessFlag(ctx context.Context, id string, flagName string, value bool) (*Member, error)
	ExportMembers(ctx context.Context) ([]byte, error)
}

type MemberServiceImpl struct {
	Repo         MemberRepository
	AuditService audit.AuditService
	Notifier     events.Notifier
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

func NewMemberService(repo MemberRepository, auditService audit.AuditService, notifier events.Notifier, m *metrics.Metrics, logger *zap.Logger) MemberService {
	return &MemberServiceImpl{
		Repo:         repo,
		AuditService: auditService,
		Notifier:     notifier,
		Metrics:      m,
		Logger:       logger,
	}
}

func (s *MemberServiceImpl) ListMembers(ctx context.Context) ([]Member, error) {
	return s.Repo.List(ctx)
}

func (s *MemberServiceImpl) GetMember(ctx context.Context, id string) (*Member, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *MemberServiceImpl) CreateMember(ctx context.Context, input MemberInput) (*Member, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, input.Username, ""); err != nil {
		return nil, err
	}

	member := &Member{
		Username: input.Username,
		Password: input.Password,
		Access:   input.Access,
	}
	if err := s.Repo.Create(ctx, member); err != nil {
		return nil, err
	}

	changes := map[string]models.Change{
		"username": {New: member.Username},
		"access":   {New: member.Access},
	}
	s.record(ctx, models.AuditActionCreate, member.ID.Hex(), changes, events.ActionCreated, "create")

	return member, nil
}

func (s *MemberServiceImpl) UpdateMember(ctx context.Context, id string, input MemberInput) (*Member, error) {
	input, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(existing.Username, input.Username) {
		if err := s.ensureUsernameFree(ctx, input.Username, id); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	// Track changes for audit log
	changes := make(map[string]models.Change)
	if existing.Username != updated.Username {
		changes["username"] = models.Change{Old: existing.Username, New: updated.Username}
	}
	if existing.Password != updated.Password {
		changes["password"] = models.Change{Old: "********", New: "********"}
	}
	for _, flag := range AllFlags {
		if existing.Access.Get(flag) != updated.Access.Get(flag) {
			changes["access."+string(flag)] = models.Change{Old: existing.Access.Get(flag), New: updated.Access.Get(flag)}
		}
	}
	s.record(ctx, models.AuditActionUpdate, id, changes, events.ActionUpdated, "update")

	return updated, nil
}

func (s *MemberServiceImpl) DeleteMember(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	changes := map[string]models.Change{
		"deleted": {Old: false, New: true},
	}
	s.record(ctx, models.AuditActionDelete, id, changes, events.ActionDeleted, "delete")

	return nil
}

func (s *MemberServiceImpl) SetAccessFlag(ctx context.Context, id string, flagName string, value bool) (*Member, error) {
	flag, err := ParseAccessFlag(flagName)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.SetAccessFlag(ctx, id, flag, value)
	if err != nil {
		return nil, err
	}

	if s.Metrics != nil {
		s.Metrics.RecordAccessFlag(string(flag))
	}
	changes := map[string]models.Change{
		"access." + string(flag): {New: value},
	}
	s.record(ctx, models.AuditActionAccess, id, changes, events.ActionUpdated, "access")

	return updated, nil
}

func (s *MemberServiceImpl) ExportMembers(ctx context.Context) ([]byte, error) {
	members, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildWorkbook(members)
}

// ensureUsernameFree rejects a username held by another member, ignoring case
func (s *MemberServiceImpl) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.Repo.FindByUsernameFold(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID.Hex() == selfID {
		return nil
	}
	return apperr.ErrDuplicateUsername
}

// record writes the audit entry and publishes the change once the write committed.
// Failures here are logged and never undo the mutation.
func (s *MemberServiceImpl) record(ctx context.Context, action models.AuditAction, id string, changes map[string]models.Change, event events.Action, op string) {
	if s.Metrics != nil {
		s.Metrics.RecordMemberMutation(op)
	}

	if len(changes) > 0 {
		if err := s.AuditService.LogChange(ctx, action, ModuleName, id, changes); err != nil {
			s.Logger.Warn("Failed to write audit log", zap.String("member_id", id), zap.Error(err))
		}
	}

	s.Notifier.Notify(ctx, events.Change{
		Collection: ModuleName,
		Action:     event,
		ID:         id,
		At:         time.Now().UTC(),
	})
}

func normalizeInput(input MemberInput) (MemberInput, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return input, apperr.Invalid("username", "is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return input, apperr.Invalid("password", "is required")
	}
	return input, nil
}
