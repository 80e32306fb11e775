// Command adminctl performs maintenance tasks against the studio admin
// database: seeding, spreadsheet export and development tokens.
package main

import (
	"context"
	"fmt"
	"os"

	"studio-admin/internal/common/events"
	"studio-admin/internal/config"
	"studio-admin/internal/database"
	"studio-admin/internal/features/audit"
	"studio-admin/internal/features/bugreport"
	"studio-admin/internal/features/member"
	"studio-admin/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is what every database-backed subcommand needs
type env struct {
	cfg     *config.Config
	db      *database.MongodbDB
	logger  *zap.Logger
	members member.MemberService
	reports bugreport.BugReportService
}

func openEnv() (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewBaseLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	auditService := audit.NewAuditService(audit.NewAuditRepository(db))
	return &env{
		cfg:     cfg,
		db:      db,
		logger:  log,
		members: member.NewMemberService(member.NewMemberRepository(db), auditService, events.Nop{}, nil, log),
		reports: bugreport.NewBugReportService(bugreport.NewBugReportRepository(db), auditService, events.Nop{}, nil, log),
	}, nil
}

func (e *env) Close(ctx context.Context) {
	_ = e.logger.Sync()
	_ = e.db.Client.Disconnect(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Maintenance tasks for the studio admin dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSeedCmd(), newExportCmd(), newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
