package skills

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Scaffolder creates new skill packages that satisfy the validator's
// contract: the directory name passes the name rule, SKILL.md carries a
// matching name field and a description field.
type Scaffolder struct {
	locator *Locator
}

// NewScaffolder creates a Scaffolder using the given locator to resolve
// the parent directory for new packages.
func NewScaffolder(locator *Locator) *Scaffolder {
	return &Scaffolder{locator: locator}
}

// ErrIllegalName is returned when the requested name violates the name
// rule. No filesystem mutation happens in that case.
var ErrIllegalName = errors.New("skill name violates naming constraint")

// Scaffold creates a new skill package named name under the resolved
// skills directory and returns its path. With simple set, the optional
// scripts/, references/ and assets/ directories are not created.
//
// Steps are ordered dependencies; the first failing step aborts the rest
// and anything already written stays on disk for inspection. There is no
// rollback.
func (s *Scaffolder) Scaffold(name string, simple bool) (string, bool, error) {
	if !IsLegalName(name) {
		return "", false, errors.Wrapf(ErrIllegalName, "'%s' (%s)", name, NameRuleDescription)
	}

	parent, fellBack, err := s.locator.Resolve()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to resolve skills directory")
	}

	skillPath := filepath.Join(parent, name)
	if _, err := os.Stat(skillPath); err == nil {
		return "", fellBack, errors.Errorf("skill directory already exists: %s", skillPath)
	}

	if err := os.MkdirAll(skillPath, 0o755); err != nil {
		return "", fellBack, errors.Wrap(err, "failed to create skill directory")
	}

	data := templateData{Name: name, Title: TitleCase(name)}

	doc, err := renderTemplate("skill", skillDocTemplate, data)
	if err != nil {
		return skillPath, fellBack, err
	}
	if err := os.WriteFile(filepath.Join(skillPath, SkillFileName), []byte(doc), 0o644); err != nil {
		return skillPath, fellBack, errors.Wrapf(err, "failed to write %s", SkillFileName)
	}

	if !simple {
		if err := s.writeResourceDirs(skillPath, data); err != nil {
			return skillPath, fellBack, err
		}
	}

	return skillPath, fellBack, nil
}

// writeResourceDirs populates scripts/, references/ and assets/ with one
// placeholder each. The example helper is marked executable.
func (s *Scaffolder) writeResourceDirs(skillPath string, data templateData) error {
	script, err := renderTemplate("script", exampleScriptTemplate, data)
	if err != nil {
		return err
	}
	scriptsDir := filepath.Join(skillPath, ScriptsDir)
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create scripts directory")
	}
	if err := os.WriteFile(filepath.Join(scriptsDir, "example.sh"), []byte(script), 0o755); err != nil {
		return errors.Wrap(err, "failed to write scripts/example.sh")
	}

	reference, err := renderTemplate("reference", exampleReferenceTemplate, data)
	if err != nil {
		return err
	}
	referencesDir := filepath.Join(skillPath, ReferencesDir)
	if err := os.MkdirAll(referencesDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create references directory")
	}
	if err := os.WriteFile(filepath.Join(referencesDir, "example-reference.md"), []byte(reference), 0o644); err != nil {
		return errors.Wrap(err, "failed to write references/example-reference.md")
	}

	assetsDir := filepath.Join(skillPath, AssetsDir)
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create assets directory")
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "README.md"), []byte(assetsReadme), 0o644); err != nil {
		return errors.Wrap(err, "failed to write assets/README.md")
	}

	return nil
}

// NextSteps returns the recommended follow-up checklist for a freshly
// scaffolded package. The wording differs between the full and the simple
// layout.
func NextSteps(skillPath string, simple bool) []string {
	steps := []string{
		"Edit SKILL.md to complete the TODO items",
		"Update the description to be specific and keyword-rich",
	}
	if !simple {
		steps = append(steps,
			"Customize or delete the example files in scripts/, references/, and assets/",
		)
	}
	steps = append(steps,
		fmt.Sprintf("Validate: skillet validate --path %s", skillPath),
		"Test with real use cases and iterate",
	)
	return steps
}
