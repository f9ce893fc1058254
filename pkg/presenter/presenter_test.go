package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewWithOptions(out, errOut, ColorNever), out, errOut
}

func TestError(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p, out, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "Failed to do thing")

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "[ERROR] Failed to do thing: boom")
	})

	t.Run("without context", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "")

		assert.Contains(t, errOut.String(), "[ERROR] boom")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(nil, "context")

		assert.Empty(t, errOut.String())
	})
}

func TestMessages(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("created")
	p.Warning("careful")
	p.Info("note")

	assert.Contains(t, out.String(), "✓ created")
	assert.Contains(t, out.String(), "⚠ careful")
	assert.Contains(t, out.String(), "note")
}

func TestSection(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.Section("Next steps")

	assert.Contains(t, out.String(), "Next steps\n----------\n")
}

func TestQuietMode(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("created")
	p.Warning("careful")
	p.Info("note")
	p.Section("header")
	p.Separator()
	assert.Empty(t, out.String())

	// Errors are never suppressed.
	p.Error(errors.New("boom"), "")
	assert.Contains(t, errOut.String(), "boom")
}
