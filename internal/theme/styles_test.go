package theme

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLines_PlainProfile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "PR #7 https://github.com/org/repo/pull/7", PullRequestLine(7, "https://github.com/org/repo/pull/7"))
	assert.Equal(t, "Compare https://github.com/org/repo/compare/x", CompareLine("https://github.com/org/repo/compare/x"))
	assert.Equal(t, "nothing found", WarningLine("nothing found"))
	assert.Equal(t, "no match", MutedLine("no match"))
	assert.Equal(t, "Error: boom", ErrorLine(errors.New("boom")))
}
