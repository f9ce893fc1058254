package skills

import (
	"regexp"
	"strings"
)

// The validator matches frontmatter fields with a per-line scan over the
// whole document, first match wins. This is deliberately permissive: a
// field line outside the delimiter block is still honored, matching the
// behavior skill authors already rely on. Discovery uses a strict
// delimiter-block parse instead (see discovery.go).
var (
	nameFieldRe        = regexp.MustCompile(`(?m)^name:\s*(.+)$`)
	descriptionFieldRe = regexp.MustCompile(`(?m)^description:\s*(.+)$`)
)

// scanField returns the trimmed value of the first matching field line and
// whether one was found.
func scanField(re *regexp.Regexp, content string) (string, bool) {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// extractBody removes YAML frontmatter and returns the document body.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
