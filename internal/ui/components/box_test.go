package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 110, boxWidth(200))
	assert.Equal(t, 90, boxWidth(100))
}

func TestBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox("Operadoras", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestBoxesSpanBoxWidthIncludingBorder(t *testing.T) {
	for _, width := range []int{20, 41, 80, 200} {
		want := safeBoxWidth(width)
		for name, out := range map[string]string{
			"box":    Box("x", width),
			"titled": TitledBox("Statistics", "x", width),
			"banner": Banner("Offline", "Could not reach the API", width),
		} {
			for _, line := range strings.Split(out, "\n") {
				assert.Equal(t, want, lipgloss.Width(line), "%s at width %d", name, width)
			}
		}
	}
}

func TestBoxContentWidthMatchesFrame(t *testing.T) {
	assert.Equal(t, 0, BoxContentWidth(0))
	assert.Equal(t, 16, BoxContentWidth(20))
	assert.Equal(t, 68, BoxContentWidth(80))

	row := strings.Repeat("a", BoxContentWidth(80))
	lines := strings.Split(Box(row, 80), "\n")
	assert.Len(t, lines, 3)
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("Statistics", "Content", 80)
	assert.Contains(t, out, "Statistics")
	assert.Contains(t, out, "Content")
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	out := TitledBox("", "Content", 80)
	assert.Contains(t, out, "Content")
}

func TestBannerIncludesTitleAndMessage(t *testing.T) {
	out := Banner("Warning", "Error loading operators. Displaying sample data.", 80)
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "Displaying sample data.")
}

func TestBannerFoldsMultilineMessage(t *testing.T) {
	out := SanitizeText(Banner("", "first\nsecond", 120))
	assert.Contains(t, out, "first second")
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "short", ClampTextWidth("short", 10))
	assert.Equal(t, "abc…", ClampTextWidth("abcdefgh", 4))
	assert.Equal(t, "…", ClampTextWidth("abcdefgh", 1))
	assert.Equal(t, "abcdefgh", ClampTextWidth("abcdefgh", 0))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "ã", truncateRunes("ãé", 1))
}

func TestTableClampsLongValues(t *testing.T) {
	rows := []TableRow{
		{
			Label: strings.Repeat("Label", 8),
			Value: strings.Repeat("value", 40),
		},
	}
	out := Table("Details", rows, 60)
	maxWidth := lipgloss.Width(strings.Split(Box("x", 60), "\n")[0])
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), maxWidth)
	}
}

func TestTableEmptyRowsRendersNothing(t *testing.T) {
	assert.Equal(t, "", Table("Details", nil, 80))
}

func TestTableSanitizesLabelAndValue(t *testing.T) {
	out := Table("Details", []TableRow{{Label: "na‮me\x1b]0;evil\x07", Value: "va\x1b[2Jlue"}}, 80)
	assert.NotContains(t, out, "‮")
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\x1b[2J")
	assert.Contains(t, SanitizeText(out), "value")
}

func TestIndentPreservesLineCountAndAddsPadding(t *testing.T) {
	out := Indent("a\nb\nc", 2)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "))
	}
}
