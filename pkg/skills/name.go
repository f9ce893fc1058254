package skills

import (
	"regexp"
	"strings"
)

// nameRule is the single definition of a legal skill identifier: lowercase
// alphanumerics with internal hyphens, starting and ending with an
// alphanumeric. The shortest legal name is therefore two characters.
// Both the scaffolder and the validator go through IsLegalName; do not
// duplicate this pattern elsewhere.
var nameRule = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// NameRuleDescription explains the naming constraint to users when it is
// violated.
const NameRuleDescription = "must be lowercase alphanumeric with hyphens, e.g. 'my-skill-name'"

// IsLegalName reports whether s is a legal skill identifier.
func IsLegalName(s string) bool {
	return nameRule.MatchString(s)
}

// TitleCase converts a hyphenated skill name to a human-friendly heading,
// e.g. "pdf-filler" -> "Pdf Filler".
func TitleCase(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
