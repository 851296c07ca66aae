// Package markdown translates a restricted markdown subset into an ordered
// sequence of styled segments. Headers, bullets, bold and italic are
// interpreted; everything else passes through verbatim.
package markdown

import (
	"regexp"
	"strings"
)

var (
	boldRe    = regexp.MustCompile(`\*\*([^*]+?)\*\*`)
	italicRe  = regexp.MustCompile(`\*([^*]+?)\*`)
	header3Re = regexp.MustCompile(`^#{3,} `)
)

// Translate parses text line by line into segments. Each physical line is
// classified (header, bullet, blank, plain) and plain or bullet text is
// re-scanned for inline bold/italic spans. A KindLineBreak segment is
// emitted for every newline in the input.
func Translate(text string) []Segment {
	lines := strings.Split(text, "\n")

	var segments []Segment
	for i, line := range lines {
		segments = append(segments, translateLine(line)...)
		if i < len(lines)-1 {
			segments = append(segments, Segment{Kind: KindLineBreak, Raw: "\n"})
		}
	}
	return segments
}

// Reconstruct joins the raw bytes of segments back into the original input.
func Reconstruct(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Raw)
	}
	return b.String()
}

// translateLine classifies a single physical line. Header detection is
// anchored at the line start; bullet markers may be indented.
func translateLine(line string) []Segment {
	switch {
	case strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## "):
		return []Segment{{Kind: KindHeader1, Text: line[2:], Raw: line}}

	case strings.HasPrefix(line, "## ") && !strings.HasPrefix(line, "### "):
		return []Segment{{Kind: KindHeader2, Text: line[3:], Raw: line}}

	case header3Re.MatchString(line):
		text := strings.TrimSpace(strings.TrimLeft(line, "#"))
		return []Segment{{Kind: KindHeader3Plus, Text: text, Raw: line}}
	}

	trimmed := strings.TrimLeft(line, " \t")
	if (strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- ")) &&
		len(strings.TrimSpace(trimmed)) > 2 {
		indent := line[:len(line)-len(trimmed)]
		marker := Segment{Kind: KindBullet, Text: "• ", Raw: indent + trimmed[:2]}
		return append([]Segment{marker}, parseInline(trimmed[2:])...)
	}

	if strings.TrimSpace(line) == "" {
		if line == "" {
			return nil
		}
		// Whitespace-only line: break with the bytes preserved.
		return []Segment{{Kind: KindLineBreak, Raw: line}}
	}

	return parseInline(line)
}

// parseInline scans text left to right for **bold** and *italic* spans.
// Italic only matches where the outer asterisks are not adjacent to a word
// character, so mid-word asterisks pass through as plain text. Unmatched
// text between spans is emitted verbatim.
func parseInline(text string) []Segment {
	var segments []Segment
	rest := text

	for rest != "" {
		bold := boldRe.FindStringSubmatchIndex(rest)
		italic := findItalic(rest)

		loc := bold
		kind := KindBold
		// Earliest match wins; bold wins a tie since "**" is also a valid
		// italic opener one byte later.
		if italic != nil && (loc == nil || italic[0] < loc[0]) {
			loc = italic
			kind = KindItalic
		}

		if loc == nil {
			segments = append(segments, Segment{Kind: KindNormal, Text: rest, Raw: rest})
			break
		}

		if loc[0] > 0 {
			plain := rest[:loc[0]]
			segments = append(segments, Segment{Kind: KindNormal, Text: plain, Raw: plain})
		}
		segments = append(segments, Segment{
			Kind: kind,
			Text: rest[loc[2]:loc[3]],
			Raw:  rest[loc[0]:loc[1]],
		})
		rest = rest[loc[1]:]
	}

	return segments
}

// findItalic returns the match indexes of the first *italic* span whose
// outer asterisks do not touch a word character, or nil. Go's regexp has
// no lookarounds, so the adjacency check is done by hand.
func findItalic(s string) []int {
	offset := 0
	for {
		loc := italicRe.FindStringSubmatchIndex(s[offset:])
		if loc == nil {
			return nil
		}
		start, end := loc[0]+offset, loc[1]+offset
		if !isWordChar(byteBefore(s, start)) && !isWordChar(byteAt(s, end)) {
			return []int{start, end, loc[2] + offset, loc[3] + offset}
		}
		offset = start + 1
	}
}

func byteBefore(s string, i int) byte {
	if i <= 0 {
		return 0
	}
	return s[i-1]
}

func byteAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
