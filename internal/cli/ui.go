package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dNmmer/SortFiles/internal/config"
	"github.com/dNmmer/SortFiles/internal/domain"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	"github.com/dNmmer/SortFiles/internal/logging"
	"github.com/dNmmer/SortFiles/internal/tui"
)

func newUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ui [source] [target]",
		Short: "Scan interactively, pick file types and copy them",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts, args)
		},
	}
}

func runUI(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(config.OpUI); err != nil {
		return appErrors.Wrap(appErrors.InvalidInput, "ui", cfg.SourceDir, err)
	}

	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.close()
	// Logs on stderr would tear the alternate screen.
	if cfg.LogFile == "" {
		s.logger = logging.Nop()
		s.engine.Logger = s.logger
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	model := tui.NewModel(tui.Config{
		SourceDir: cfg.SourceDir,
		TargetDir: cfg.TargetDir,
		Verbose:   cfg.Verbose,
		Scan: func() ([]domain.FileType, error) {
			return s.engine.Scan(ctx, cfg.SourceDir)
		},
		Copy: func(selected domain.Selection) (domain.CopyOutcome, error) {
			return s.copyLocked(ctx, selected)
		},
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return appErrors.Wrap(appErrors.Internal, "ui", "", err)
	}
	return nil
}
