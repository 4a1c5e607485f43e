package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/logging"
)

// Pipeline runs local and remote verification side by side.
type Pipeline struct {
	local  *LocalVerifier
	remote *RemoteVerifier
	logger *zap.Logger
}

func NewPipeline(local *LocalVerifier, remote *RemoteVerifier, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		local:  local,
		remote: remote,
		logger: logging.OrNop(logger).With(zap.String(logging.FieldComponent, "pipeline")),
	}
}

func (p *Pipeline) Run(ctx context.Context, localPaths, externalURLs []string) (domain.FileLinksResult, domain.URLLinksResult) {
	start := time.Now()

	var (
		wg    sync.WaitGroup
		files domain.FileLinksResult
		urls  domain.URLLinksResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		files = p.local.Verify(ctx, localPaths)
	}()
	go func() {
		defer wg.Done()
		urls = p.remote.Verify(ctx, externalURLs)
	}()
	wg.Wait()

	p.logger.Info("verification finished",
		zap.Int("okFiles", len(files.OK)),
		zap.Int("brokenFiles", len(files.Broken)),
		zap.Int("validUrls", len(urls.Valid)),
		zap.Int("invalidUrls", len(urls.Invalid)),
		zap.Duration(logging.FieldDuration, time.Since(start)))

	return files, urls
}
