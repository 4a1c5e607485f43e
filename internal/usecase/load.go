package usecase

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/logging"
	"github.com/rojanmagar2001/linkverify/internal/ports"
)

// Loader reads the document under verification and extracts its links. The
// document is either a local file or an http(s) URL.
type Loader struct {
	client    ports.HTTPClient
	extractor ports.Extractor
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewLoader(client ports.HTTPClient, extractor ports.Extractor, userAgent string, timeout time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		client:    client,
		extractor: extractor,
		userAgent: userAgent,
		timeout:   timeout,
		logger:    logging.OrNop(logger).With(zap.String(logging.FieldComponent, "loader")),
	}
}

// Load returns the classified links of source. Failing to read the document
// is the only fatal error of a run.
func (l *Loader) Load(ctx context.Context, source string) ([]domain.Link, error) {
	if source == "" {
		return nil, errors.New("document is required")
	}
	if isURL(source) {
		return l.fetch(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, errors.Wrap(err, "open document")
	}
	defer f.Close()

	links, err := l.extractor.Extract(source, "", f)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("document loaded", zap.String(logging.FieldDocument, source), zap.Int(logging.FieldCount, len(links)))
	return links, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]domain.Link, error) {
	pageCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pageCtx, http.MethodGet, source, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build document request")
	}
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch document")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetch document: unexpected status %d", resp.StatusCode)
	}

	links, err := l.extractor.Extract(source, resp.Header.Get("Content-Type"), resp.Body)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("document fetched",
		zap.String(logging.FieldDocument, source),
		zap.Int(logging.FieldStatus, resp.StatusCode),
		zap.Int(logging.FieldCount, len(links)))
	return links, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
