package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/app"
	"github.com/rojanmagar2001/linkverify/internal/config"
	"github.com/rojanmagar2001/linkverify/internal/logging"
)

// errBrokenLinks is returned with --fail-on-broken so the exit status reflects
// the report; main exits 2 without printing it.
var errBrokenLinks = errors.New("broken links found")

func exitCode(err error) int {
	if errors.Is(err, errBrokenLinks) {
		return 2
	}
	return 1
}

type rootFlags struct {
	file         string
	configPath   string
	root         string
	timeout      time.Duration
	concurrency  int
	headFirst    bool
	userAgent    string
	rate         int
	perHostRate  int
	ignoreDirs   []string
	json         bool
	noColor      bool
	logLevel     string
	failOnBroken bool
}

func newRootCommand() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "linkverify --file <document>",
		Short:         "Verifies the links of a Markdown or HTML document",
		Long:          "linkverify checks that local links in a document point at existing files (suggesting close matches when they do not) and that external links answer with a 2xx status.",
		Version:       "1.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			report, err := app.Run(cmd.Context(), cfg, f.file, cmd.OutOrStdout(), logger)
			if err != nil {
				logger.Error("verification failed", zap.String(logging.FieldDocument, f.file), zap.Error(err))
				return err
			}
			if f.failOnBroken && report.BrokenCount() > 0 {
				return fmt.Errorf("%w: %d", errBrokenLinks, report.BrokenCount())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Document to verify (path or http(s) URL)")
	flags.StringVarP(&f.configPath, "config", "c", "", "Configuration file path (TOML)")
	flags.StringVar(&f.root, "root", "", "Directory searched for suggestions (default \".\")")
	flags.DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (default 10s)")
	flags.IntVar(&f.concurrency, "concurrency", 0, "Maximum concurrent URL probes (default 20)")
	flags.BoolVar(&f.headFirst, "head-first", false, "Try HEAD before GET")
	flags.StringVar(&f.userAgent, "user-agent", "", "User-Agent header for probes (none by default)")
	flags.IntVar(&f.rate, "rate", 0, "Global probes per second (0 = unlimited)")
	flags.IntVar(&f.perHostRate, "per-host-rate", 0, "Probes per second per host (0 = unlimited)")
	flags.StringSliceVar(&f.ignoreDirs, "ignore-dir", nil, "Directory name skipped by the suggestion search (repeatable)")
	flags.BoolVar(&f.json, "json", false, "Print the report as JSON")
	flags.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&f.failOnBroken, "fail-on-broken", false, "Exit with status 2 when any link is broken")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// loadConfig layers flags that were explicitly set over the config file and
// environment.
func loadConfig(cmd *cobra.Command, f rootFlags) (*config.Config, error) {
	config.LoadDotEnv()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("root") {
		cfg.Local.Root = f.root
	}
	if changed("timeout") {
		cfg.HTTP.Timeout = f.timeout.String()
	}
	if changed("concurrency") {
		cfg.Remote.Concurrency = f.concurrency
	}
	if changed("head-first") {
		cfg.HTTP.HeadFirst = f.headFirst
	}
	if changed("user-agent") {
		cfg.HTTP.UserAgent = f.userAgent
	}
	if changed("rate") {
		cfg.Remote.Rate = f.rate
	}
	if changed("per-host-rate") {
		cfg.Remote.PerHostRate = f.perHostRate
	}
	if changed("ignore-dir") {
		cfg.Local.IgnoreDirs = f.ignoreDirs
	}
	if changed("json") {
		cfg.Output.JSON = f.json
	}
	if f.noColor {
		cfg.Output.Color = false
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
