package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeOneLineStripsOscAndNewlines(t *testing.T) {
	input := "\x1b]8;;https://evil\x07click\x1b]8;;\x07\nline\tmore"
	out := SanitizeOneLine(input)

	assert.False(t, strings.Contains(out, "\x1b"))
	assert.False(t, strings.Contains(out, "\n"))
	assert.False(t, strings.Contains(out, "\t"))
}

func TestSanitizeTextRemovesBidiControls(t *testing.T) {
	input := "safe\u202eexe.txt"
	out := SanitizeText(input)

	assert.NotContains(t, out, "\u202e")
}

func TestSanitizeTextStripsCSIButKeepsNewlines(t *testing.T) {
	out := SanitizeText("Uni\x1b[31mmed\x1b[0m\nSaude\x07")
	assert.Equal(t, "Unimed\nSaude", out)
}

func TestSanitizeOneLineKeepsAccents(t *testing.T) {
	assert.Equal(t, "Amil Assistência Médica", SanitizeOneLine("Amil\tAssistência\nMédica"))
}
