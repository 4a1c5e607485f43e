package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/logging"
	"github.com/rojanmagar2001/linkverify/internal/ports"
)

// Prober checks one URL. *LinkCheckerService is the production Prober.
type Prober interface {
	Check(ctx context.Context, url string) domain.Result
}

type RemoteVerifier struct {
	prober      Prober
	newStore    func(sizeHint int) ports.Store
	concurrency int
	logger      *zap.Logger
}

// NewRemoteVerifier probes at most concurrency URLs at once; concurrency <= 0
// probes all of them at once.
func NewRemoteVerifier(prober Prober, newStore func(sizeHint int) ports.Store, concurrency int, logger *zap.Logger) *RemoteVerifier {
	return &RemoteVerifier{
		prober:      prober,
		newStore:    newStore,
		concurrency: concurrency,
		logger:      logging.OrNop(logger).With(zap.String(logging.FieldComponent, "remote")),
	}
}

// Verify probes every URL once and returns when all probes have finished.
// Each URL lands in exactly one of Valid or Invalid.
func (v *RemoteVerifier) Verify(ctx context.Context, urls []string) domain.URLLinksResult {
	st := v.newStore(len(urls))
	v.logger.Debug("probing urls",
		zap.Int(logging.FieldCount, len(urls)),
		zap.Int(logging.FieldWorkers, v.concurrency))

	var g errgroup.Group
	if v.concurrency > 0 {
		g.SetLimit(v.concurrency)
	}

	for i, u := range urls {
		g.Go(func() error {
			res := v.prober.Check(ctx, u)
			// Probe failures are outcomes, never group errors.
			res.URL = u
			st.Record(i, res)

			if res.Err != nil {
				v.logger.Debug("url unreachable",
					zap.String(logging.FieldURL, u),
					zap.Duration(logging.FieldDuration, res.Elapsed),
					zap.Error(res.Err))
			} else {
				v.logger.Debug("url probed",
					zap.String(logging.FieldURL, u),
					zap.Int(logging.FieldStatus, res.StatusCode),
					zap.Duration(logging.FieldDuration, res.Elapsed))
			}
			return nil
		})
	}
	_ = g.Wait()

	return st.Partition()
}
