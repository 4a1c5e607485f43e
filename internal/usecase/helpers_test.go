package usecase

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rojanmagar2001/linkverify/internal/check"
	"github.com/rojanmagar2001/linkverify/internal/domain"
	"github.com/rojanmagar2001/linkverify/internal/infra/httpclient"
	"github.com/rojanmagar2001/linkverify/internal/infra/limiter"
	"github.com/rojanmagar2001/linkverify/internal/infra/store"
	"github.com/rojanmagar2001/linkverify/internal/ports"
)

func memoryStore(n int) ports.Store { return store.NewMemory(n) }

func newService(timeout time.Duration) *LinkCheckerService {
	chk := check.NewChecker(httpclient.New(timeout), check.Options{})
	return NewLinkChecker(chk, limiter.New(0, 0), timeout)
}

// linkServer answers 200 on /ok*, 404 on /dead*, 500 elsewhere.
func linkServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/ok", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/dead/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })
	mux.HandleFunc("/dead", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNotFound) })
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) })
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func refusedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return "http://" + addr
}

// fakeProber answers from a fixed table without touching the network.
type fakeProber map[string]bool

func (f fakeProber) Check(_ context.Context, url string) domain.Result {
	if f[url] {
		return domain.Result{URL: url, StatusCode: http.StatusOK}
	}
	return domain.Result{URL: url, StatusCode: http.StatusNotFound}
}

type fakeFinder struct {
	calls []string
	found []string
}

func (f *fakeFinder) FindSimilar(_ context.Context, target string) []string {
	f.calls = append(f.calls, target)
	return f.found
}
