package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/features/bugreport"
	"studio-admin/internal/features/member"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SeedData is the layout of a seed file
type SeedData struct {
	Members    []member.MemberInput     `json:"members"`
	BugReports []bugreport.ReportInput `json:"bugReports"`
}

// SeedResult counts what a seed run did
type SeedResult struct {
	MembersCreated int
	MembersSkipped int
	ReportsCreated int
	ReportsSkipped int
}

// reportKey identifies a seeded report across runs
type reportKey struct{ userID, title string }

func loadSeedFile(path string) (*SeedData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data SeedData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}

// seed creates the members and reports of data. Members whose username is
// already taken, and reports with the same reporter and title as an existing
// one, are skipped so the command can be re-run.
func seed(ctx context.Context, members member.MemberService, reports bugreport.BugReportService, data *SeedData, logger *zap.Logger) (SeedResult, error) {
	var res SeedResult

	for _, in := range data.Members {
		_, err := members.CreateMember(ctx, in)
		switch {
		case errors.Is(err, apperr.ErrDuplicateUsername):
			logger.Info("Member exists, skipping", zap.String("username", in.Username))
			res.MembersSkipped++
		case err != nil:
			return res, fmt.Errorf("member %q: %w", in.Username, err)
		default:
			res.MembersCreated++
		}
	}

	if len(data.BugReports) == 0 {
		return res, nil
	}

	existing, err := reports.ListReports(ctx)
	if err != nil {
		return res, fmt.Errorf("list bug reports: %w", err)
	}
	seen := make(map[reportKey]bool, len(existing))
	for _, r := range existing {
		seen[reportKey{r.UserID, r.Title}] = true
	}

	for _, in := range data.BugReports {
		key := reportKey{strings.TrimSpace(in.UserID), strings.TrimSpace(in.Title)}
		if seen[key] {
			logger.Info("Bug report exists, skipping", zap.String("title", key.title))
			res.ReportsSkipped++
			continue
		}
		if _, err := reports.CreateReport(ctx, in); err != nil {
			return res, fmt.Errorf("bug report %q: %w", in.Title, err)
		}
		seen[key] = true
		res.ReportsCreated++
	}

	return res, nil
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create members and bug reports from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			e, err := openEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			defer e.Close(context.Background())

			res, err := seed(ctx, e.members, e.reports, data, e.logger)
			if err != nil {
				return err
			}
			e.logger.Info("Seeding complete",
				zap.Int("members_created", res.MembersCreated),
				zap.Int("members_skipped", res.MembersSkipped),
				zap.Int("reports_created", res.ReportsCreated),
				zap.Int("reports_skipped", res.ReportsSkipped),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "cmd/adminctl/testdata/seed.json", "seed file")
	return cmd
}
