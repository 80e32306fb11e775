package main

import (
	"context"
	"os"
	"time"

	"studio-admin/internal/features/member"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the member list with access flags to an XLSX file",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			defer e.Close(context.Background())

			b, err := e.members.ExportMembers(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			e.logger.Info("Exported members", zap.String("file", out), zap.Int("bytes", len(b)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", member.ExportFilename, "output file")
	return cmd
}
