package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dNmmer/SortFiles/internal/config"
	"github.com/dNmmer/SortFiles/internal/domain"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	"github.com/dNmmer/SortFiles/internal/infra/lock"
)

func newCopyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy [source] [target]",
		Short: "Copy files of the selected extensions into the target directory",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			if err := cfg.Validate(config.OpCopy); err != nil {
				return appErrors.Wrap(appErrors.InvalidInput, "copy", cfg.SourceDir, err)
			}

			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			defer s.close()

			outcome, err := s.copyLocked(cmd.Context(), cfg.Selection())
			if err != nil {
				return err
			}
			s.printer.PrintCopy(outcome)
			return nil
		},
	}
}

// copyLocked runs the copy while holding the destination lock.
func (s *session) copyLocked(ctx context.Context, selected domain.Selection) (domain.CopyOutcome, error) {
	l := lock.ForDir(s.cfg.TargetDir, s.cfg.LockDir)
	if err := l.TryLock(); err != nil {
		kind := appErrors.IOFailure
		if errors.Is(err, lock.ErrBusy) {
			kind = appErrors.Busy
		}
		return domain.CopyOutcome{}, appErrors.Wrap(kind, "lock", s.cfg.TargetDir, err)
	}
	defer func() {
		if err := l.Unlock(); err != nil {
			s.logger.Warnf("%v", err)
		}
	}()

	outcome, err := s.engine.CopyFiles(ctx, s.cfg.SourceDir, s.cfg.TargetDir, selected)
	if err != nil {
		return outcome, err
	}
	if outcome.HasFailures() {
		s.logger.Warnf("%d of %d files failed to copy", len(outcome.Failures), outcome.Succeeded+len(outcome.Failures))
	}
	return outcome, nil
}
