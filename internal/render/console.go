// Package render composes receipts from tickets: an ASCII preview for the
// console and an operation stream for the physical printer. Both use the
// same layout primitives so wrapping and truncation are identical.
package render

import (
	"strings"
	"time"

	"github.com/papercut-dev/papercut/internal/config"
	"github.com/papercut-dev/papercut/internal/layout"
	"github.com/papercut-dev/papercut/internal/ticket"
)

// Timestamp formats used on receipts.
const (
	timestampFormat = "Jan 02, 2006 at 03:04 PM"
	dueDateFormat   = "Jan 02, 2006"
)

// qrPlaceholder marks where the printed receipt carries a QR code; the
// console preview cannot render one.
const qrPlaceholder = "[ QR CODE ]"

// ConsoleRenderer builds the bordered ASCII receipt preview. Stateless
// apart from its configuration; safe for concurrent use.
type ConsoleRenderer struct {
	cfg config.Config
	loc *time.Location
}

// NewConsoleRenderer returns a renderer using the local timezone for
// timestamps.
func NewConsoleRenderer(cfg config.Config) *ConsoleRenderer {
	return &ConsoleRenderer{cfg: cfg, loc: time.Local}
}

// SetLocation overrides the timestamp timezone. Tests pin this to UTC.
func (r *ConsoleRenderer) SetLocation(loc *time.Location) { r.loc = loc }

// Render returns the full bordered receipt, one trailing newline included.
func (r *ConsoleRenderer) Render(t *ticket.Ticket) string {
	width := config.ReceiptWidth
	padding := config.ReceiptPadding
	inner := config.ReceiptInner
	pad := strings.Repeat(" ", padding)

	var b strings.Builder

	line := func(content string) {
		b.WriteString("│")
		b.WriteString(layout.PadOrTruncate(content, width))
		b.WriteString("│\n")
	}
	blank := func() { line("") }
	centered := func(text string) { line(pad + layout.Center(text, inner) + pad) }
	separator := func() { line(pad + strings.Repeat("─", inner) + pad) }
	field := func(label, value string) {
		for _, l := range layout.TwoColumn(label, value, width, padding) {
			line(l)
		}
	}

	b.WriteString("┌" + strings.Repeat("─", width) + "┐\n")
	blank()

	// Company header; every field is optional.
	if !r.cfg.Header.Disabled {
		h := r.cfg.Header
		if h.CompanyName != "" {
			centered(h.CompanyName)
			blank()
		}
		if h.AddressLine1 != "" {
			centered(h.AddressLine1)
		}
		if h.AddressLine2 != "" {
			centered(h.AddressLine2)
		}
		if h.Phone != "" {
			centered("Tel: " + h.Phone)
		}
		if h.URL != "" {
			centered(h.URL)
		}
		blank()
	}

	centered(t.CreatedAt.In(r.loc).Format(timestampFormat))
	blank()

	// Details, fixed order.
	field("ID", t.Identifier)
	field("Team", t.Team)
	field("Priority", t.Priority)
	field("Status", t.Status)
	if t.Assignee != "" {
		field("Assignee", t.Assignee)
	}
	if t.DueDate != nil {
		field("Due", t.DueDate.Format(dueDateFormat))
	}
	field("Created by", t.CreatedBy)
	if len(t.Labels) > 0 {
		field("Labels", strings.Join(t.Labels, ", "))
	}
	blank()

	separator()
	blank()

	// Title, loudest element on the receipt.
	title := layout.TruncateWithEllipsis(strings.ToUpper(t.Title), r.cfg.Providers.Linear.MaxTitleLength)
	for _, l := range layout.WrapWords(title, inner) {
		line(pad + l + pad)
	}
	blank()

	if t.Description != "" {
		desc := strings.TrimSpace(strings.ReplaceAll(t.Description, "\n", " "))
		desc = layout.TruncateWithEllipsis(desc, r.cfg.Providers.Linear.MaxDescriptionLength)
		for _, l := range layout.WrapWords(desc, inner) {
			line(pad + l + pad)
		}
		blank()
	}

	separator()
	blank()

	if !r.cfg.Footer.Disabled {
		f := r.cfg.Footer
		printed := false
		if !f.QRCodeDisabled {
			if f.QRCodeTitle != "" {
				centered(f.QRCodeTitle)
			}
			centered(qrPlaceholder)
			printed = true
		}
		if f.FooterText != "" {
			centered(f.FooterText)
			printed = true
		}
		if printed {
			blank()
		}
	}

	b.WriteString("└" + strings.Repeat("─", width) + "┘\n")

	return b.String()
}
