package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 5, "     "},
		{"shorter", "ab", 5, "ab   "},
		{"exact", "abcde", 5, "abcde"},
		{"longer", "abcdefgh", 5, "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadOrTruncate(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.width)
		})
	}
}

func TestWrapWordsLineLengths(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a b c d e f g h i j k l m n o p",
		"supercalifragilisticexpialidocious word",
		"short",
	}
	for _, text := range texts {
		for _, maxWidth := range []int{5, 10, 20, 44} {
			lines := WrapWords(text, maxWidth)
			joined := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
			original := strings.Join(strings.Fields(text), " ")
			for _, line := range lines {
				assert.LessOrEqual(t, len(line), maxWidth,
					"line %q exceeds width %d", line, maxWidth)
			}
			// Hard-broken words re-join with an inserted space; strip it
			// by comparing the character stream instead.
			assert.Equal(t,
				strings.ReplaceAll(original, " ", ""),
				strings.ReplaceAll(joined, " ", ""),
				"content lost wrapping %q at %d", text, maxWidth)
		}
	}
}

func TestWrapWordsOrder(t *testing.T) {
	lines := WrapWords("alpha beta gamma delta epsilon", 12)
	assert.Equal(t, []string{"alpha beta", "gamma delta", "epsilon"}, lines)
}

func TestWrapWordsShortInputVerbatim(t *testing.T) {
	// Inputs that already fit are returned as-is, whitespace included.
	assert.Equal(t, []string{"  two  spaces"}, WrapWords("  two  spaces", 20))
}

func TestWrapWordsHardBreak(t *testing.T) {
	lines := WrapWords("abcdefghij xy", 4)
	assert.Equal(t, []string{"abcd", "efgh", "ij", "xy"}, lines)
}

func TestTwoColumnSingleLine(t *testing.T) {
	lines := TwoColumn("Team", "Engineering", 48, 2)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 48)
	assert.True(t, strings.HasSuffix(lines[0], "Engineering  "),
		"value should be right-aligned against the padded edge: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[0], "  Team"), "got %q", lines[0])
}

func TestTwoColumnWrapsLongValue(t *testing.T) {
	lines := TwoColumn("Labels", "urgent, needs-review, blocked-by-infra-team-approval", 48, 2)
	require.GreaterOrEqual(t, len(lines), 2)
	for _, line := range lines {
		assert.Len(t, line, 48)
	}
	// Usable width 44, budget floor(44*0.45) = 19. Every chunk must fit the
	// budget and every split lands on a space or just after a comma.
	content := strings.TrimSpace(lines[0])
	assert.True(t, strings.HasPrefix(content, "Labels"))
	for _, line := range lines {
		chunk := strings.TrimSpace(line)
		chunk = strings.TrimPrefix(chunk, "Labels")
		chunk = strings.TrimSpace(chunk)
		assert.LessOrEqual(t, len(chunk), 19, "chunk %q over budget", chunk)
	}
}

func TestTwoColumnCommaBeatsEarlierSpace(t *testing.T) {
	// Budget 19. In the first 19 chars of the value the last space is at
	// index 3 and the last comma at index 8, so the split lands just after
	// the comma even though a space exists earlier.
	lines := TwoColumn("L", "red blue,greenish-long,tail", 48, 2)
	require.GreaterOrEqual(t, len(lines), 2)
	first := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[0]), "L"))
	assert.Equal(t, "red blue,", first)
	second := strings.TrimSpace(lines[1])
	assert.Equal(t, "greenish-long,tail", second)
}

func TestTwoColumnHardSplitWithoutSeparators(t *testing.T) {
	lines := TwoColumn("ID", strings.Repeat("x", 40), 48, 2)
	require.GreaterOrEqual(t, len(lines), 2)
	first := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[0]), "ID"))
	assert.Equal(t, strings.Repeat("x", 19), first)
}

func TestTruncateWithEllipsis(t *testing.T) {
	long := strings.Repeat("A", 500)
	got := TruncateWithEllipsis(long, 350)
	assert.Len(t, got, 350)
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "short", TruncateWithEllipsis("  short  ", 350))
	assert.Equal(t, "exact", TruncateWithEllipsis("exact", 5))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, "toolong", Center("toolong", 4))
}
