package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorPrefersRepoRoot(t *testing.T) {
	repoRoot := t.TempDir()
	skillsDir := filepath.Join(repoRoot, ".skillet", "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))

	locator := NewLocator(WithRepoRootFunc(func() (string, error) {
		return repoRoot, nil
	}))

	dir, fellBack, err := locator.Resolve()
	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.Equal(t, skillsDir, dir)
}

func TestLocatorIgnoresRepoRootWithoutSkillsDir(t *testing.T) {
	// A git checkout without a skills directory falls through to the
	// upward walk from the working directory.
	repoRoot := t.TempDir()
	workTree := t.TempDir()
	skillsDir := filepath.Join(workTree, ".skillet", "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))

	locator := NewLocator(
		WithRepoRootFunc(func() (string, error) {
			return repoRoot, nil
		}),
		WithWorkDir(workTree),
	)

	dir, fellBack, err := locator.Resolve()
	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.Equal(t, skillsDir, dir)
}

func TestLocatorWalksUpward(t *testing.T) {
	root := t.TempDir()
	skillsDir := filepath.Join(root, ".skillet", "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	locator := NewLocator(
		WithRepoRootFunc(func() (string, error) {
			return "", errors.New("not inside a git repository")
		}),
		WithWorkDir(nested),
	)

	dir, fellBack, err := locator.Resolve()
	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.Equal(t, skillsDir, dir)
}

func TestLocatorFallsBackToWorkDir(t *testing.T) {
	workDir := t.TempDir()

	locator := NewLocator(
		WithRepoRootFunc(func() (string, error) {
			return "", errors.New("not inside a git repository")
		}),
		WithWorkDir(workDir),
	)

	dir, fellBack, err := locator.Resolve()
	require.NoError(t, err)
	assert.True(t, fellBack)
	assert.Equal(t, workDir, dir)
}
