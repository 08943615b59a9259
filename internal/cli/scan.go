package cli

import (
	"github.com/spf13/cobra"

	"github.com/dNmmer/SortFiles/internal/config"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
)

func newScanCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [source]",
		Short: "Count files per extension under a source directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			if err := cfg.Validate(config.OpScan); err != nil {
				return appErrors.Wrap(appErrors.InvalidInput, "scan", cfg.SourceDir, err)
			}

			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			defer s.close()

			types, err := s.engine.Scan(cmd.Context(), cfg.SourceDir)
			if err != nil {
				return err
			}
			s.printer.PrintScan(types)
			return nil
		},
	}
}
