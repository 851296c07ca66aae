package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(segs []Segment) []Kind {
	out := make([]Kind, len(segs))
	for i, s := range segs {
		out[i] = s.Kind
	}
	return out
}

func TestTranslateHeaders(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		text string
	}{
		{"# Big Title", KindHeader1, "Big Title"},
		{"## Section", KindHeader2, "Section"},
		{"### Sub", KindHeader3Plus, "Sub"},
		{"#### Deeper", KindHeader3Plus, "Deeper"},
		{"###### Deepest", KindHeader3Plus, "Deepest"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			segs := Translate(tt.line)
			require.Len(t, segs, 1)
			assert.Equal(t, tt.kind, segs[0].Kind)
			assert.Equal(t, tt.text, segs[0].Text)
			assert.Equal(t, tt.line, segs[0].Raw)
		})
	}
}

func TestTranslateHeaderNeedsSpace(t *testing.T) {
	// "#hashtag" is not a header.
	segs := Translate("#hashtag")
	require.Len(t, segs, 1)
	assert.Equal(t, KindNormal, segs[0].Kind)
	assert.Equal(t, "#hashtag", segs[0].Text)
}

func TestTranslateBullet(t *testing.T) {
	segs := Translate("* first item")
	require.Len(t, segs, 2)
	assert.Equal(t, KindBullet, segs[0].Kind)
	assert.Equal(t, "• ", segs[0].Text)
	assert.Equal(t, KindNormal, segs[1].Kind)
	assert.Equal(t, "first item", segs[1].Text)

	segs = Translate("  - indented item")
	require.Len(t, segs, 2)
	assert.Equal(t, KindBullet, segs[0].Kind)
	assert.Equal(t, "  - ", segs[0].Raw)
	assert.Equal(t, "indented item", segs[1].Text)
}

func TestTranslateBareMarkerIsNotBullet(t *testing.T) {
	// "* " alone (2 chars trimmed) stays plain text.
	segs := Translate("* ")
	require.Len(t, segs, 1)
	assert.Equal(t, KindNormal, segs[0].Kind)
}

func TestTranslateBulletWithInlineFormatting(t *testing.T) {
	segs := Translate("- fix the **login** flow")
	require.Len(t, segs, 4)
	assert.Equal(t,
		[]Kind{KindBullet, KindNormal, KindBold, KindNormal}, kinds(segs))
	assert.Equal(t, "login", segs[2].Text)
	assert.Equal(t, "**login**", segs[2].Raw)
}

func TestParseInlineBoldAndItalic(t *testing.T) {
	segs := parseInline("a **b** and *c* end")
	require.Len(t, segs, 5)
	assert.Equal(t,
		[]Kind{KindNormal, KindBold, KindNormal, KindItalic, KindNormal}, kinds(segs))
	assert.Equal(t, "b", segs[1].Text)
	assert.Equal(t, "c", segs[3].Text)
}

func TestParseInlineMidWordAsteriskStaysPlain(t *testing.T) {
	segs := parseInline("foo*bar*baz")
	require.Len(t, segs, 1)
	assert.Equal(t, KindNormal, segs[0].Kind)
	assert.Equal(t, "foo*bar*baz", segs[0].Text)
}

func TestParseInlineBoldWinsOverItalic(t *testing.T) {
	segs := parseInline("**x**")
	require.Len(t, segs, 1)
	assert.Equal(t, KindBold, segs[0].Kind)
	assert.Equal(t, "x", segs[0].Text)
}

func TestParseInlineUnmatchedSyntaxPassesThrough(t *testing.T) {
	for _, text := range []string{"*unclosed", "a ** b", "`code`", "[link](url)"} {
		segs := parseInline(text)
		assert.Equal(t, text, Reconstruct(segs), "input %q", text)
	}
}

func TestTranslateBlankLines(t *testing.T) {
	segs := Translate("A\n\nB")
	require.Equal(t,
		[]Kind{KindNormal, KindLineBreak, KindLineBreak, KindNormal}, kinds(segs))
	assert.Equal(t, "A\n\nB", Reconstruct(segs))
}

func TestTranslateRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"# Title\n\nBody with **bold** and *italic*.\n\n* one\n* two **strong**\n- three",
		"## Notes\n### Details\n#### More\ntrailing *stars* here *",
		"mixed **bold** then *ital* then plain `code` [l](u)\n   \nend",
		"* bullet with trailing spaces  \nnext",
	}
	for _, input := range inputs {
		segs := Translate(input)
		assert.Equal(t, input, Reconstruct(segs), "round-trip failed for %q", input)
	}
}
