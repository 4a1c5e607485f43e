package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/check"
	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/logging"
	"github.com/rojanmagar2001/linkverify/internal/ports"
)

type LocalVerifier struct {
	finder ports.SimilarFinder
	exists func(string) bool
	logger *zap.Logger
}

func NewLocalVerifier(finder ports.SimilarFinder, logger *zap.Logger) *LocalVerifier {
	return &LocalVerifier{
		finder: finder,
		exists: check.PathExists,
		logger: logging.OrNop(logger).With(zap.String(logging.FieldComponent, "local")),
	}
}

// Verify sorts every path into OK or Broken. Suggestions are only searched
// for paths that do not exist.
func (v *LocalVerifier) Verify(ctx context.Context, paths []string) domain.FileLinksResult {
	out := domain.FileLinksResult{
		OK:     []string{},
		Broken: []domain.BrokenLink{},
	}
	for _, p := range paths {
		if v.exists(p) {
			out.OK = append(out.OK, p)
			continue
		}
		suggestions := v.finder.FindSimilar(ctx, p)
		v.logger.Debug("broken file link",
			zap.String(logging.FieldPath, p),
			zap.Strings(logging.FieldSuggestions, suggestions))
		out.Broken = append(out.Broken, domain.BrokenLink{Path: p, Suggestions: suggestions})
	}
	return out
}
