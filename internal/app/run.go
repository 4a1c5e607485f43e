package app

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/config"
	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/extract"
	"github.com/rojanmagar2001/linkverify/internal/logging"
)

// Run verifies every link of document and writes the report to stdout.
// Broken links are not an error; only an unreadable document or a failed
// write is.
func Run(ctx context.Context, cfg *config.Config, document string, stdout io.Writer, logger *zap.Logger) (domain.Report, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return New(cfg, logger).Run(ctx, document, stdout)
}

func (a *App) Run(ctx context.Context, document string, stdout io.Writer) (domain.Report, error) {
	start := time.Now()
	report := domain.Report{
		RunID:    uuid.NewString(),
		Document: document,
	}
	logger := a.logger.With(zap.String(logging.FieldRunID, report.RunID))

	links, err := a.loader.Load(ctx, document)
	if err != nil {
		return report, errors.Wrapf(err, "load %s", document)
	}

	local, external := extract.Split(links)
	logger.Info("links extracted",
		zap.String(logging.FieldDocument, document),
		zap.Int("local", len(local)),
		zap.Int("external", len(external)))

	report.Files, report.URLs = a.pipeline.Run(ctx, local, external)
	report.Elapsed = time.Since(start)

	if a.cfg.Output.JSON {
		err = RenderJSON(stdout, report)
	} else {
		err = RenderText(stdout, report, a.cfg.Output.Color && shouldColorize(stdout))
	}
	if err != nil {
		return report, errors.Wrap(err, "write report")
	}
	return report, nil
}
