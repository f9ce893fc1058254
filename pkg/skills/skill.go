// Package skills implements the skill package format: a directory holding a
// SKILL.md entry document with YAML frontmatter (name, description) and
// optional scripts/, references/ and assets/ subdirectories. The package
// provides the scaffolder that creates well-formed skill packages, the
// validator that checks existing ones against the same contract, and
// discovery of installed skills.
package skills

import "path/filepath"

// SkillFileName is the mandatory entry document at the root of every skill
// package.
const SkillFileName = "SKILL.md"

// Names of the optional resource subdirectories.
const (
	ScriptsDir    = "scripts"
	ReferencesDir = "references"
	AssetsDir     = "assets"
)

// Skill represents a discovered skill with its metadata
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of what the skill does
	Directory   string // Full path to the skill directory
	Content     string // Full content of SKILL.md (body, not frontmatter)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Identifier derives the skill identifier from a package path: the final
// path component of the cleaned path.
func Identifier(path string) string {
	return filepath.Base(filepath.Clean(path))
}
