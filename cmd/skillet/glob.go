package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skilletdev/skillet/pkg/globmatch"
	"github.com/skilletdev/skillet/pkg/presenter"
	"github.com/spf13/cobra"
)

type GlobConfig struct {
	Pattern       string
	Directory     string
	Limit         int
	FullPaths     bool
	IncludeHidden bool
}

func NewGlobConfig() *GlobConfig {
	return &GlobConfig{
		Pattern:   "",
		Directory: ".",
		Limit:     20,
	}
}

var globCmd = &cobra.Command{
	Use:   "glob",
	Short: "Test a glob pattern against repository files",
	Long: `Show which files in a directory tree match a glob pattern. Useful
for checking the scope of path-specific instructions before committing to a
pattern. Common dependency and VCS directories are skipped.

Examples:
  skillet glob --pattern "**/*.go"
  skillet glob --pattern "src/components/**/*.tsx" --limit 50
  skillet glob --pattern "tests/**/*_test.go" --directory /path/to/repo`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getGlobConfigFromFlags(cmd)
		runGlob(config)
	},
}

func init() {
	defaults := NewGlobConfig()
	globCmd.Flags().StringP("pattern", "p", defaults.Pattern, `Glob pattern to test (e.g. "**/*.go")`)
	globCmd.Flags().StringP("directory", "d", defaults.Directory, "Directory to search")
	globCmd.Flags().IntP("limit", "l", defaults.Limit, "Maximum number of files to display (0 for unlimited)")
	globCmd.Flags().Bool("full-paths", defaults.FullPaths, "Show absolute paths instead of relative paths")
	globCmd.Flags().Bool("include-hidden", defaults.IncludeHidden, "Include hidden directories in the walk")
	globCmd.MarkFlagRequired("pattern")
}

func getGlobConfigFromFlags(cmd *cobra.Command) *GlobConfig {
	config := NewGlobConfig()
	if pattern, err := cmd.Flags().GetString("pattern"); err == nil {
		config.Pattern = pattern
	}
	if directory, err := cmd.Flags().GetString("directory"); err == nil {
		config.Directory = directory
	}
	if limit, err := cmd.Flags().GetInt("limit"); err == nil {
		config.Limit = limit
	}
	if fullPaths, err := cmd.Flags().GetBool("full-paths"); err == nil {
		config.FullPaths = fullPaths
	}
	if includeHidden, err := cmd.Flags().GetBool("include-hidden"); err == nil {
		config.IncludeHidden = includeHidden
	}
	return config
}

func runGlob(config *GlobConfig) {
	root, err := filepath.Abs(config.Directory)
	if err != nil {
		presenter.Error(err, "Invalid directory")
		os.Exit(1)
	}

	presenter.Info(fmt.Sprintf("Searching in: %s", root))
	presenter.Info(fmt.Sprintf("Pattern: %s", config.Pattern))
	presenter.Separator()

	matcher := &globmatch.Matcher{
		Root:          root,
		Pattern:       config.Pattern,
		Limit:         config.Limit,
		IncludeHidden: config.IncludeHidden,
	}

	matches, err := matcher.Matches()
	if err != nil {
		presenter.Error(err, "Failed to search for files")
		os.Exit(1)
	}

	if len(matches) == 0 {
		presenter.Warning("No files matched the pattern")
		presenter.Info("Tips:")
		presenter.Info("  - Check if the pattern syntax is correct")
		presenter.Info(`  - Try a broader pattern (e.g. "**/*.go" instead of "src/**/*.go")`)
		return
	}

	presenter.Success(fmt.Sprintf("Found %d matching file(s):", len(matches)))
	for i, match := range matches {
		if config.FullPaths {
			match = filepath.Join(root, match)
		}
		presenter.Info(fmt.Sprintf("  %3d. %s", i+1, match))
	}

	if config.Limit > 0 && len(matches) >= config.Limit {
		presenter.Warning(fmt.Sprintf("Results limited to %d files. Use --limit 0 to see all matches", config.Limit))
	}

	presenter.Separator()
	presenter.Info(globmatch.ScopeHint(len(matches)))
}
