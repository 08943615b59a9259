package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dNmmer/SortFiles/internal/app"
	"github.com/dNmmer/SortFiles/internal/config"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
	"github.com/dNmmer/SortFiles/internal/infra/fs"
	"github.com/dNmmer/SortFiles/internal/logging"
	"github.com/dNmmer/SortFiles/internal/presentation"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type options struct {
	configFile string
	envFile    string
	flags      config.Config
}

// NewRootCommand creates the sortfiles command tree. Without a subcommand it
// starts the interactive selector.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sortfiles",
		Short: "Classify files by extension and copy selected types",
		Long: `sortfiles walks a source folder, counts the files of every extension
and copies the chosen types into one destination folder. Existing files
are never overwritten; clashing names get a "(n)" suffix.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file")
	pf.StringVarP(&opts.flags.SourceDir, "source", "s", "", "Source directory to scan")
	pf.StringVarP(&opts.flags.TargetDir, "target", "t", "", "Destination directory for copies")
	pf.StringSliceVarP(&opts.flags.Extensions, "ext", "e", nil, "Extensions to copy (repeatable, comma separated)")
	pf.IntVarP(&opts.flags.Workers, "workers", "w", 0, "Worker count (0 = number of CPUs)")
	pf.BoolVarP(&opts.flags.Verbose, "verbose", "v", false, "Verbose output")
	pf.StringVar(&opts.flags.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.BoolVar(&opts.flags.NoColor, "no-color", false, "Disable coloured output")
	pf.StringVar(&opts.flags.LockDir, "lock-dir", "", "Directory for operation lock files")

	cmd.AddCommand(newScanCommand(opts))
	cmd.AddCommand(newCopyCommand(opts))
	cmd.AddCommand(newUICommand(opts))

	return cmd
}

// loadConfig resolves flags over environment over config file.
func loadConfig(cmd *cobra.Command, opts *options, args []string) (config.Config, error) {
	var cfg config.Config

	if opts.configFile != "" {
		if err := config.LoadFile(&cfg, opts.configFile); err != nil {
			return config.Config{}, appErrors.Wrap(appErrors.InvalidInput, "config", opts.configFile, err)
		}
	}
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return config.Config{}, appErrors.Wrap(appErrors.InvalidInput, "config", opts.envFile, err)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, appErrors.Wrap(appErrors.InvalidInput, "config", "", err)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.SourceDir = opts.flags.SourceDir
	}
	if flags.Changed("target") {
		cfg.TargetDir = opts.flags.TargetDir
	}
	if flags.Changed("ext") {
		cfg.Extensions = opts.flags.Extensions
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.flags.Workers
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.flags.Verbose
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.flags.LogFile
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.flags.NoColor
	}
	if flags.Changed("lock-dir") {
		cfg.LockDir = opts.flags.LockDir
	}

	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}
	if len(args) > 1 {
		cfg.TargetDir = args[1]
	}

	cfg.Normalize()
	return cfg, nil
}

// session bundles what every subcommand needs once the config is known.
type session struct {
	cfg     config.Config
	engine  *app.Engine
	printer presentation.Printer
	logger  logging.Logger
	close   func()
}

func newSession(cmd *cobra.Command, cfg config.Config) (*session, error) {
	logger, closeLog, err := logging.NewFile(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return nil, appErrors.Wrap(appErrors.IOFailure, "log", cfg.LogFile, err)
	}

	out := cmd.OutOrStdout()
	useColor := false
	if f, ok := out.(*os.File); ok && !cfg.NoColor {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &session{
		cfg: cfg,
		engine: &app.Engine{
			FS:      fs.NewOS(),
			Workers: cfg.Workers,
			Logger:  logger,
		},
		printer: presentation.Printer{
			Writer:  out,
			Verbose: cfg.Verbose,
			Color:   useColor,
		},
		logger: logger,
		close:  closeLog,
	}, nil
}
