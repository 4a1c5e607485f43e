package similar

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// tree creates files (and their parent dirs) under a fresh temp dir and makes
// it the working directory.
func tree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	t.Chdir(root)
	return root
}

func rel(p string) string { return filepath.FromSlash(p) }

func TestThreshold(t *testing.T) {
	tests := []struct {
		candidate string
		want      int
	}{
		{"", 0},
		{"a.md", 0},
		{"abcde", 1},
		{"./docs/readme.md", 3},
		{strings.Repeat("x", 25), 5},
		{strings.Repeat("x", 200), 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Threshold(tt.candidate), "candidate %q", tt.candidate)
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 0, Distance("readme", "readme"))
	assert.Equal(t, 1, Distance("./docs/reedme.md", "./docs/readme.md"))
	assert.Equal(t, 3, Distance("kitten", "sitting"))
	assert.Equal(t, 1, Distance("café", "cafe"))
}

func TestFindSimilarSuggestsTypoFix(t *testing.T) {
	tree(t, "docs/readme.md", "docs/guide.md", "src/main.go")

	got := New(Options{}, nil).FindSimilar(context.Background(), rel("./docs/reedme.md"))
	assert.ElementsMatch(t, []string{rel("./docs/readme.md")}, got)
}

func TestFindSimilarRejectsCandidatesBeyondThreshold(t *testing.T) {
	tree(t, "docs/readme.md", "docs/changelog.md")

	got := New(Options{}, nil).FindSimilar(context.Background(), rel("./docs/zzzzzzzz.md"))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFindSimilarNeverSuggestsDirectories(t *testing.T) {
	root := tree(t, "docs/readme.md")
	require.NoError(t, os.Mkdir(filepath.Join(root, "docs", "readme.mx"), 0o755))

	got := New(Options{}, nil).FindSimilar(context.Background(), rel("./docs/readme.mz"))
	assert.ElementsMatch(t, []string{rel("./docs/readme.md")}, got)
}

func TestFindSimilarUsesGivenRootSpelling(t *testing.T) {
	root := tree(t, "docs/readme.md")
	want := filepath.Join(root, "docs", "readme.md")

	got := New(Options{Root: root}, nil).FindSimilar(context.Background(), filepath.Join(root, "docs", "readme.mdx"))
	assert.Equal(t, []string{want}, got)

	got = New(Options{Root: root + string(os.PathSeparator)}, nil).FindSimilar(context.Background(), filepath.Join(root, "docs", "readme.mdx"))
	assert.Equal(t, []string{want}, got)
}

func TestFindSimilarSkipsUnreadableSubtree(t *testing.T) {
	root := tree(t, "docs/readme.md", "locked/readme.md")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	core, logs := observer.New(zapcore.DebugLevel)
	got := New(Options{}, zap.New(core)).FindSimilar(context.Background(), rel("./docs/reedme.md"))

	assert.Contains(t, got, rel("./docs/readme.md"))
	if os.Geteuid() != 0 {
		// root can read anything, so only check the skip was logged otherwise.
		assert.Equal(t, 1, logs.FilterMessage("skip unreadable directory").Len())
	}
}

func TestFindSimilarTerminatesOnSymlinkCycle(t *testing.T) {
	root := tree(t, "docs/readme.md")
	if err := os.Symlink(root, filepath.Join(root, "docs", "loop")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := New(Options{}, nil).FindSimilar(context.Background(), rel("./docs/reedme.md"))
	assert.Equal(t, []string{rel("./docs/readme.md")}, got)
}

func TestFindSimilarFollowsSymlinkedDirectoryOnce(t *testing.T) {
	root := tree(t, "shared/readme.md")
	if err := os.Symlink(filepath.Join(root, "shared"), filepath.Join(root, "docs")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := New(Options{}, nil).FindSimilar(context.Background(), rel("./docs/reedme.md"))
	// "./docs" is the link and "./shared" the target; whichever is walked
	// first claims the real directory.
	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], rel("/readme.md")))
}

func TestFindSimilarTreatsDanglingSymlinkAsFile(t *testing.T) {
	root := tree(t, "docs/other.txt")
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "docs", "readme.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got := New(Options{}, nil).FindSimilar(context.Background(), rel("./docs/reedme.md"))
	assert.Equal(t, []string{rel("./docs/readme.md")}, got)
}

func TestFindSimilarIgnoresConfiguredDirs(t *testing.T) {
	tree(t, "docs/readme.md", "vendor/readme.md")
	target := rel("./vendor/reedme.md")

	got := New(Options{}, nil).FindSimilar(context.Background(), target)
	assert.Equal(t, []string{rel("./vendor/readme.md")}, got)

	got = New(Options{IgnoreDirs: []string{"vendor"}}, nil).FindSimilar(context.Background(), target)
	assert.Empty(t, got)
}

func TestFindSimilarStopsWhenCancelled(t *testing.T) {
	tree(t, "docs/readme.md")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, New(Options{}, nil).FindSimilar(ctx, rel("./docs/reedme.md")))
}

// substitute replaces the first k bytes of s with '#', which never occurs in
// the generated paths, so the result is exactly k edits away.
func substitute(s string, k int) string {
	return strings.Repeat("#", k) + s[k:]
}

func TestAcceptProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	paths := gen.AlphaString().Map(func(s string) string { return "./docs/" + s + ".md" })

	properties.Property("edits within the threshold are accepted", prop.ForAll(
		func(candidate string, k int) bool {
			k = min(k, Threshold(candidate))
			return Accept(substitute(candidate, k), candidate)
		},
		paths,
		gen.IntRange(0, MaxDistance),
	))

	properties.Property("one edit past the threshold is rejected", prop.ForAll(
		func(candidate string) bool {
			return !Accept(substitute(candidate, Threshold(candidate)+1), candidate)
		},
		paths,
	))

	properties.TestingRun(t)
}
