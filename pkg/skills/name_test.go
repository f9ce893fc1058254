package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLegalName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		legal bool
	}{
		{"simple hyphenated name", "my-skill", true},
		{"plain word", "pdf", true},
		{"digits allowed", "skill2pdf", true},
		{"two characters minimum", "ab", true},
		{"digits only", "42", true},
		{"uppercase rejected", "My-Skill", false},
		{"leading hyphen rejected", "-abc", false},
		{"trailing hyphen rejected", "abc-", false},
		{"single character rejected", "a", false},
		{"empty rejected", "", false},
		{"underscore rejected", "my_skill", false},
		{"spaces rejected", "my skill", false},
		{"dots rejected", "my.skill", false},
		{"internal double hyphen allowed", "my--skill", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.legal, IsLegalName(tt.input))
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Pdf Filler", TitleCase("pdf-filler"))
	assert.Equal(t, "My Skill Name", TitleCase("my-skill-name"))
	assert.Equal(t, "Single", TitleCase("single"))
	assert.Equal(t, "A  B", TitleCase("a--b"))
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "my-skill", Identifier("/tmp/skills/my-skill"))
	assert.Equal(t, "my-skill", Identifier("/tmp/skills/my-skill/"))
	assert.Equal(t, "my-skill", Identifier("my-skill"))
}
