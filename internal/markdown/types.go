package markdown

// Kind classifies a translated segment.
type Kind int

const (
	// KindNormal is unstyled text.
	KindNormal Kind = iota
	// KindBold is **text**.
	KindBold
	// KindItalic is *text* where the outer asterisks are not mid-word.
	KindItalic
	// KindHeader1 is a "# " line: bold, double width, double height.
	KindHeader1
	// KindHeader2 is a "## " line: bold, double height.
	KindHeader2
	// KindHeader3Plus is a line with three or more leading '#': bold only.
	KindHeader3Plus
	// KindBullet is the "• " marker opening a list item.
	KindBullet
	// KindLineBreak is an explicit line break.
	KindLineBreak
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindHeader1:
		return "header1"
	case KindHeader2:
		return "header2"
	case KindHeader3Plus:
		return "header3plus"
	case KindBullet:
		return "bullet"
	case KindLineBreak:
		return "linebreak"
	}
	return "unknown"
}

// Segment is one styled chunk of translated text.
//
// Text is what a renderer displays (markdown markers stripped, bullets
// already replaced by "• "). Raw is the exact input bytes the segment
// consumed; concatenating the Raw of every segment produced from an input
// reproduces that input byte for byte. No input is ever dropped, only
// reinterpreted as style.
type Segment struct {
	Kind Kind
	Text string
	Raw  string
}
