package globmatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func TestMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"main.go",
		"pkg/a/a.go",
		"pkg/a/a_test.go",
		"pkg/b/b.go",
		"docs/readme.md",
	)

	m := &Matcher{Root: root, Pattern: "**/*.go"}
	matches, err := m.Matches()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go", "pkg/a/a.go", "pkg/a/a_test.go", "pkg/b/b.go"}, matches)
}

func TestMatchesSubtreePattern(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"pkg/a/a_test.go",
		"pkg/a/a.go",
		"cmd/main.go",
	)

	m := &Matcher{Root: root, Pattern: "pkg/**/*_test.go"}
	matches, err := m.Matches()
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/a/a_test.go"}, matches)
}

func TestMatchesExcludesVendoredDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"app.go",
		"node_modules/dep/index.js",
		"vendor/lib/lib.go",
		".git/config",
	)

	m := &Matcher{Root: root, Pattern: "**/*"}
	matches, err := m.Matches()
	require.NoError(t, err)
	assert.Equal(t, []string{"app.go"}, matches)
}

func TestMatchesHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"visible.yml",
		".github/workflows/ci.yml",
	)

	t.Run("skipped by default", func(t *testing.T) {
		m := &Matcher{Root: root, Pattern: "**/*.yml"}
		matches, err := m.Matches()
		require.NoError(t, err)
		assert.Equal(t, []string{"visible.yml"}, matches)
	})

	t.Run("included on request", func(t *testing.T) {
		m := &Matcher{Root: root, Pattern: "**/*.yml", IncludeHidden: true}
		matches, err := m.Matches()
		require.NoError(t, err)
		assert.Equal(t, []string{".github/workflows/ci.yml", "visible.yml"}, matches)
	})
}

func TestMatchesIncludeHiddenReducesExclusions(t *testing.T) {
	// With hidden directories included, build output and virtualenv
	// directories become visible too; only VCS and dependency internals
	// stay excluded.
	root := t.TempDir()
	writeTree(t, root,
		"app.py",
		"dist/bundle.py",
		".venv/lib/site.py",
		"node_modules/dep/index.py",
		".git/hooks/pre-commit.py",
	)

	m := &Matcher{Root: root, Pattern: "**/*.py", IncludeHidden: true}
	matches, err := m.Matches()
	require.NoError(t, err)
	assert.Equal(t, []string{".venv/lib/site.py", "app.py", "dist/bundle.py"}, matches)
}

func TestMatchesLimit(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.txt", "b.txt", "c.txt", "d.txt")

	m := &Matcher{Root: root, Pattern: "*.txt", Limit: 2}
	matches, err := m.Matches()
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestMatchesInvalidPattern(t *testing.T) {
	m := &Matcher{Root: t.TempDir(), Pattern: "[unclosed"}
	_, err := m.Matches()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestScopeHint(t *testing.T) {
	assert.Contains(t, ScopeHint(3), "small")
	assert.Contains(t, ScopeHint(10), "good")
	assert.Contains(t, ScopeHint(500), "good")
	assert.Contains(t, ScopeHint(501), "large")
}
