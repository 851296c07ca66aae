// Package layout provides the fixed-width text primitives shared by the
// console and device renderers. Both outputs must wrap and truncate
// identically, so all width arithmetic lives here.
package layout

import "strings"

// valueBudgetPercent is the share of the usable width each column of the
// two-column format may occupy before wrapping.
const valueBudgetPercent = 45

// PadOrTruncate returns text adjusted to exactly width characters:
// right-padded with spaces if shorter, hard-truncated if longer.
func PadOrTruncate(text string, width int) string {
	if len(text) < width {
		return text + strings.Repeat(" ", width-len(text))
	}
	return text[:width]
}

// WrapWords greedily wraps text at word boundaries so that no returned
// line exceeds maxWidth. A word longer than maxWidth is hard-broken into
// maxWidth-sized chunks; no characters are dropped.
func WrapWords(text string, maxWidth int) []string {
	if len(text) <= maxWidth {
		return []string{text}
	}

	var lines []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = nil
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(text) {
		for len(word) > maxWidth {
			flush()
			lines = append(lines, word[:maxWidth])
			word = word[maxWidth:]
		}
		need := len(word)
		if len(current) > 0 {
			need++ // space between words
		}
		if currentLen+need <= maxWidth {
			current = append(current, word)
			currentLen += need
		} else {
			flush()
			current = []string{word}
			currentLen = len(word)
		}
	}
	flush()

	return lines
}

// TwoColumn formats a label/value pair into lines of exactly width
// characters. The label is left-aligned on the first line; the value is
// right-aligned against the padded right edge, wrapping onto right-aligned
// continuation lines when it exceeds its budget (45% of the usable width).
//
// The split point for an over-budget value is the later of the last space
// within the budget and the position just after the last comma within the
// budget; when neither exists the value is hard-split at the budget
// boundary. The comma-inclusive tie-break is load-bearing: it determines
// where values like "Option A, Option B" break.
func TwoColumn(label, value string, width, padding int) []string {
	usable := width - padding*2
	budget := usable * valueBudgetPercent / 100

	var chunks []string
	remaining := value
	for len(remaining) > budget {
		head := remaining[:budget]
		splitAt := strings.LastIndex(head, " ")
		if c := strings.LastIndex(head, ",") + 1; c > splitAt {
			splitAt = c
		}
		if splitAt <= 0 {
			splitAt = budget
		}
		chunks = append(chunks, strings.TrimRight(remaining[:splitAt], " "))
		remaining = strings.TrimLeft(remaining[splitAt:], " ")
	}
	if remaining != "" || len(chunks) == 0 {
		chunks = append(chunks, remaining)
	}

	pad := strings.Repeat(" ", padding)
	var lines []string

	if len(chunks) > 0 {
		gap := usable - len(label) - len(chunks[0])
		if gap < 0 {
			gap = 0
		}
		lines = append(lines, PadOrTruncate(pad+label+strings.Repeat(" ", gap)+chunks[0]+pad, width))
	}
	for _, chunk := range chunks[1:] {
		gap := usable - len(chunk)
		if gap < 0 {
			gap = 0
		}
		lines = append(lines, PadOrTruncate(pad+strings.Repeat(" ", gap)+chunk+pad, width))
	}

	return lines
}

// TruncateWithEllipsis trims surrounding whitespace and, when the result
// is longer than maxLength, cuts it to maxLength-3 characters plus "...".
func TruncateWithEllipsis(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if len(text) > maxLength {
		return text[:maxLength-3] + "..."
	}
	return text
}

// Center pads text with spaces on both sides to the given width, placing
// the extra space of an odd margin on the right. Text wider than width is
// returned unchanged.
func Center(text string, width int) string {
	margin := width - len(text)
	if margin <= 0 {
		return text
	}
	left := margin / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", margin-left)
}
