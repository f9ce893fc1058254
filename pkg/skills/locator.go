package skills

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LocalSkillsDir is the conventional skills root, relative to a repository
// root or working directory.
const LocalSkillsDir = ".skillet/skills"

// RepoRootFunc resolves the root of the surrounding version-controlled
// project. It is injectable so tests can substitute it without a real git
// checkout.
type RepoRootFunc func() (string, error)

// GitRepoRoot resolves the repository root via git. It is the default
// RepoRootFunc.
func GitRepoRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", errors.Wrap(err, "not inside a git repository")
	}
	return strings.TrimSpace(string(out)), nil
}

// Locator resolves the parent directory under which new skill packages are
// created. Resolution is best effort: a failure at any step falls through
// to the next rather than aborting.
type Locator struct {
	repoRoot RepoRootFunc
	workDir  string
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithRepoRootFunc overrides the repository root lookup.
func WithRepoRootFunc(fn RepoRootFunc) LocatorOption {
	return func(l *Locator) {
		l.repoRoot = fn
	}
}

// WithWorkDir overrides the working directory used for the upward walk and
// the final fallback.
func WithWorkDir(dir string) LocatorOption {
	return func(l *Locator) {
		l.workDir = dir
	}
}

// NewLocator creates a Locator with the default git-based root lookup.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{repoRoot: GitRepoRoot}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the directory under which new skill packages should be
// created. It prefers the skills root of the surrounding repository, then
// walks upward from the working directory looking for one, and finally
// falls back to the working directory itself. fellBack is true only for
// the last case, so callers can warn the user.
func (l *Locator) Resolve() (dir string, fellBack bool, err error) {
	if root, err := l.repoRoot(); err == nil {
		skillsDir := filepath.Join(root, filepath.FromSlash(LocalSkillsDir))
		if info, err := os.Stat(skillsDir); err == nil && info.IsDir() {
			return skillsDir, false, nil
		}
	}

	cwd := l.workDir
	if cwd == "" {
		cwd, err = os.Getwd()
		if err != nil {
			return "", false, errors.Wrap(err, "failed to determine working directory")
		}
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		skillsDir := filepath.Join(dir, filepath.FromSlash(LocalSkillsDir))
		if info, err := os.Stat(skillsDir); err == nil && info.IsDir() {
			return skillsDir, false, nil
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	return cwd, true, nil
}
