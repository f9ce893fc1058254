package skills

import (
	"fmt"
	"os"
	"path/filepath"
)

// Finding is a single reported issue from validation. Its severity is
// given by which Report list it sits in: critical findings fail the
// package, advisory findings are informational only.
type Finding struct {
	Message string
}

// Report is the result of validating one skill package. Critical and
// advisory findings are accumulated separately; the package passes iff
// the critical list is empty.
type Report struct {
	Identifier string
	Critical   []Finding
	Advisory   []Finding
}

// Pass reports whether the package satisfies the contract. Advisories
// never affect the result.
func (r *Report) Pass() bool {
	return len(r.Critical) == 0
}

func (r *Report) critical(format string, args ...any) {
	r.Critical = append(r.Critical, Finding{Message: fmt.Sprintf(format, args...)})
}

func (r *Report) advisory(format string, args ...any) {
	r.Advisory = append(r.Advisory, Finding{Message: fmt.Sprintf(format, args...)})
}

// Validate inspects the skill package at path and reports every contract
// violation it can find in one pass. It never mutates the package. The
// path is not required to exist; the individual checks detect absence.
func Validate(path string) *Report {
	report := &Report{Identifier: Identifier(path)}

	// A bad identifier does not stop the remaining checks; the report
	// should surface every violation at once.
	if !IsLegalName(report.Identifier) {
		report.critical("directory name '%s' violates naming constraint (%s)", report.Identifier, NameRuleDescription)
	}

	skillFile := filepath.Join(path, SkillFileName)
	if _, err := os.Stat(skillFile); err != nil {
		// Without the entry document every metadata check is moot; this
		// is the one legitimate short-circuit.
		report.critical("missing %s (the mandatory entry document)", SkillFileName)
	} else if content, err := os.ReadFile(skillFile); err != nil {
		report.critical("cannot read entry document: %v", err)
	} else {
		checkMetadata(report, string(content))
	}

	if info, err := os.Stat(filepath.Join(path, ScriptsDir)); err != nil || !info.IsDir() {
		report.advisory("no '%s/' directory found (acceptable for pure-prompt skills)", ScriptsDir)
	}
	if info, err := os.Stat(filepath.Join(path, ReferencesDir)); err != nil || !info.IsDir() {
		report.advisory("no '%s/' directory found (acceptable for simple skills)", ReferencesDir)
	}

	return report
}

func checkMetadata(report *Report, content string) {
	name, ok := scanField(nameFieldRe, content)
	switch {
	case !ok:
		report.critical("frontmatter missing 'name' field")
	case name != report.Identifier:
		report.critical("frontmatter name '%s' mismatches directory '%s'", name, report.Identifier)
	}

	if _, ok := scanField(descriptionFieldRe, content); !ok {
		report.critical("frontmatter missing 'description' field")
	}
}
