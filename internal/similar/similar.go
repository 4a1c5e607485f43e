// Package similar suggests existing files for a path that does not resolve.
//
// Every file under a root directory is compared with the missing path by
// Levenshtein distance. A candidate is accepted when
//
//	Distance(target, candidate) <= min(len(candidate)/LengthDivisor, MaxDistance)
//
// so longer paths tolerate more edits, up to a hard cap. Both constants are
// heuristics kept for compatibility with existing reports.
package similar

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/rojanmagar2001/linkverify/internal/logging"
)

const (
	LengthDivisor = 5
	MaxDistance   = 5
)

// Threshold is the edit budget allowed for candidate. len is in bytes.
func Threshold(candidate string) int {
	return min(len(candidate)/LengthDivisor, MaxDistance)
}

// Distance is the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Accept reports whether candidate is close enough to target.
func Accept(target, candidate string) bool {
	return Distance(target, candidate) <= Threshold(candidate)
}

type Options struct {
	// Root is where the walk starts. Empty means ".".
	Root string
	// IgnoreDirs lists directory base names that are not descended into.
	IgnoreDirs []string
}

type Finder struct {
	root   string
	ignore map[string]struct{}
	logger *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Finder {
	root := opts.Root
	if root == "" {
		root = "."
	}
	ignore := make(map[string]struct{}, len(opts.IgnoreDirs))
	for _, d := range opts.IgnoreDirs {
		ignore[d] = struct{}{}
	}
	return &Finder{
		root:   root,
		ignore: ignore,
		logger: logging.OrNop(logger).With(zap.String(logging.FieldComponent, "similar")),
	}
}

func (f *Finder) Root() string { return f.root }

// FindSimilar returns the files under the root that are within the edit
// budget of target, in directory-entry order. Unreadable directories are
// skipped. A directory whose real path was already visited is not entered
// again, which keeps symlink cycles finite. Cancelling ctx ends the walk and
// returns what was found so far.
func (f *Finder) FindSimilar(ctx context.Context, target string) []string {
	w := walker{
		finder:  f,
		target:  target,
		visited: make(map[string]struct{}),
		found:   []string{},
	}
	w.visit(ctx, f.root)
	return w.found
}

type walker struct {
	finder  *Finder
	target  string
	visited map[string]struct{}
	found   []string
}

func (w *walker) visit(ctx context.Context, dir string) {
	if ctx.Err() != nil {
		return
	}
	if rp, ok := canonical(dir); ok {
		if _, seen := w.visited[rp]; seen {
			w.finder.logger.Debug("directory already visited", zap.String(logging.FieldPath, dir))
			return
		}
		w.visited[rp] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.finder.logger.Debug("skip unreadable directory",
			zap.String(logging.FieldPath, dir), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		path := join(dir, entry.Name())
		if isDir(path, entry) {
			if _, skip := w.finder.ignore[entry.Name()]; skip {
				continue
			}
			w.visit(ctx, path)
			continue
		}
		if Accept(w.target, path) {
			w.found = append(w.found, path)
		}
	}
}

// isDir follows symlinks. A dangling link is a file.
func isDir(path string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func canonical(dir string) (string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// join keeps the root spelled as given, so "." yields "./docs/a.md" rather
// than the cleaned "docs/a.md" filepath.Join would produce.
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
