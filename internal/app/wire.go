package app

import (
	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/check"
	"github.com/rojanmagar2001/linkverify/internal/config"
	"github.com/rojanmagar2001/linkverify/internal/infra/extractor"
	"github.com/rojanmagar2001/linkverify/internal/infra/httpclient"
	"github.com/rojanmagar2001/linkverify/internal/infra/limiter"
	"github.com/rojanmagar2001/linkverify/internal/infra/store"
	"github.com/rojanmagar2001/linkverify/internal/logging"
	"github.com/rojanmagar2001/linkverify/internal/ports"
	"github.com/rojanmagar2001/linkverify/internal/similar"
	"github.com/rojanmagar2001/linkverify/internal/usecase"
)

// App holds the wired components of one verification run.
type App struct {
	cfg      *config.Config
	loader   *usecase.Loader
	pipeline *usecase.Pipeline
	logger   *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *App {
	logger = logging.OrNop(logger)
	timeout := cfg.Timeout()

	httpc := httpclient.New(timeout)
	lim := limiter.New(cfg.Remote.Rate, cfg.Remote.PerHostRate)
	ext := extractor.New()

	chk := check.NewChecker(httpc, check.Options{
		HeadFirst: cfg.HTTP.HeadFirst,
		UserAgent: cfg.HTTP.UserAgent,
	})
	checker := usecase.NewLinkChecker(chk, lim, timeout)

	finder := similar.New(similar.Options{
		Root:       cfg.Local.Root,
		IgnoreDirs: cfg.Local.IgnoreDirs,
	}, logger)

	local := usecase.NewLocalVerifier(finder, logger)
	remote := usecase.NewRemoteVerifier(checker, func(n int) ports.Store { return store.NewMemory(n) }, cfg.Remote.Concurrency, logger)

	return &App{
		cfg:      cfg,
		loader:   usecase.NewLoader(httpc, ext, cfg.HTTP.UserAgent, timeout, logger),
		pipeline: usecase.NewPipeline(local, remote, logger),
		logger:   logger,
	}
}
