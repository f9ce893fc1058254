package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanField(t *testing.T) {
	content := `---
name: my-skill
description: does things
---

body text
`
	name, ok := scanField(nameFieldRe, content)
	assert.True(t, ok)
	assert.Equal(t, "my-skill", name)

	desc, ok := scanField(descriptionFieldRe, content)
	assert.True(t, ok)
	assert.Equal(t, "does things", desc)

	_, ok = scanField(nameFieldRe, "no fields at all")
	assert.False(t, ok)
}

func TestScanFieldFirstMatchWins(t *testing.T) {
	content := "name: first\nname: second\n"
	name, ok := scanField(nameFieldRe, content)
	assert.True(t, ok)
	assert.Equal(t, "first", name)
}

func TestExtractBody(t *testing.T) {
	t.Run("strips frontmatter", func(t *testing.T) {
		content := "---\nname: x\n---\n\n# Body\n"
		assert.Equal(t, "# Body\n", extractBody(content))
	})

	t.Run("no frontmatter", func(t *testing.T) {
		content := "# Body only\n"
		assert.Equal(t, content, extractBody(content))
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		content := "---\nname: x\n# never closed\n"
		assert.Equal(t, content, extractBody(content))
	})
}
