package render

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/papercut-dev/papercut/internal/config"
	"github.com/papercut-dev/papercut/internal/layout"
	"github.com/papercut-dev/papercut/internal/markdown"
	"github.com/papercut-dev/papercut/internal/printer"
	"github.com/papercut-dev/papercut/internal/ticket"
)

// Styles used by the device renderer.
var (
	styleDefault = printer.Style{}
	styleBold    = printer.Style{Bold: true}
	styleItalic  = printer.Style{Underline: true} // receipt printers have no italic
	styleH1      = printer.Style{Bold: true, DoubleWidth: true, DoubleHeight: true}
	styleH2      = printer.Style{Bold: true, DoubleHeight: true}
	styleTitle   = printer.Style{Bold: true, DoubleWidth: true, DoubleHeight: true}
)

// DeviceRenderer emits a ticket as printer operations. The field order
// matches the console preview; widths come from the connected device's
// reported column count instead of the fixed console width.
type DeviceRenderer struct {
	cfg config.Config
	log *zap.Logger
	loc *time.Location
}

// NewDeviceRenderer builds a renderer. The logger receives recoverable
// warnings (skipped logo); hard failures are returned from Render.
func NewDeviceRenderer(cfg config.Config, log *zap.Logger) *DeviceRenderer {
	return &DeviceRenderer{cfg: cfg, log: log, loc: time.Local}
}

// SetLocation overrides the timestamp timezone.
func (r *DeviceRenderer) SetLocation(loc *time.Location) { r.loc = loc }

// Render issues the full operation stream for one ticket, ending with a
// cut. Returns the first device error encountered; the caller owns the
// session and its cleanup.
func (r *DeviceRenderer) Render(t *ticket.Ticket, dev printer.Device) error {
	w := &opWriter{dev: dev}
	cols := dev.Columns("a")

	if !r.cfg.Header.Disabled {
		r.renderHeader(w, dev)
	}

	w.text(t.CreatedAt.In(r.loc).Format(timestampFormat))
	w.newline(2)

	r.renderFields(w, t, cols)
	w.newline(1)

	// Title: large style halves the effective width.
	title := layout.TruncateWithEllipsis(strings.ToUpper(t.Title), r.cfg.Providers.Linear.MaxTitleLength)
	w.style(styleTitle)
	for _, line := range layout.WrapWords(title, cols/2) {
		w.text(line)
		w.newline(1)
	}
	w.style(styleDefault)
	w.newline(1)

	if t.Description != "" {
		desc := layout.TruncateWithEllipsis(t.Description, r.cfg.Providers.Linear.MaxDescriptionLength)
		r.renderMarkdown(w, desc, cols)
		w.newline(1)
	}

	if !r.cfg.Footer.Disabled {
		r.renderFooter(w, t)
	}

	w.newline(2)
	w.cut()

	return w.err
}

func (r *DeviceRenderer) renderHeader(w *opWriter, dev printer.Device) {
	h := r.cfg.Header

	if h.LogoPath != "" {
		if err := dev.WriteImage(h.LogoPath); err != nil {
			var asset *printer.UnsupportedAssetError
			if errors.As(err, &asset) {
				r.log.Warn("skipping logo", zap.String("path", h.LogoPath), zap.Error(err))
			} else if w.err == nil {
				w.err = err
			}
		} else {
			w.newline(1)
		}
	}

	if h.CompanyName != "" {
		w.style(styleH1)
		w.text(h.CompanyName)
		w.newline(1)
		w.style(styleDefault)
	}
	if h.AddressLine1 != "" {
		w.text(h.AddressLine1)
		w.newline(1)
	}
	if h.AddressLine2 != "" {
		w.text(h.AddressLine2)
		w.newline(1)
	}
	if h.Phone != "" {
		w.text("Tel: " + h.Phone)
		w.newline(1)
	}
	if h.URL != "" {
		w.text(h.URL)
		w.newline(1)
	}
	w.newline(1)
}

func (r *DeviceRenderer) renderFields(w *opWriter, t *ticket.Ticket, cols int) {
	field := func(label, value string) {
		for _, line := range layout.TwoColumn(label, value, cols, 0) {
			w.text(line)
			w.newline(1)
		}
	}

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
}

// renderMarkdown walks the translated segments, toggling the device style
// per segment kind and resetting to default after each styled run.
func (r *DeviceRenderer) renderMarkdown(w *opWriter, text string, cols int) {
	for _, seg := range markdown.Translate(text) {
		switch seg.Kind {
		case markdown.KindLineBreak:
			w.newline(1)

		case markdown.KindHeader1:
			w.style(styleH1)
			// Double width: wrap against half the columns.
			w.blockText(seg.Text, cols/2)
			w.style(styleDefault)

		case markdown.KindHeader2:
			w.style(styleH2)
			w.blockText(seg.Text, cols)
			w.style(styleDefault)

		case markdown.KindHeader3Plus:
			w.style(styleBold)
			w.blockText(seg.Text, cols)
			w.style(styleDefault)

		case markdown.KindBullet:
			w.text(seg.Text)

		case markdown.KindBold:
			w.style(styleBold)
			w.text(seg.Text)
			w.style(styleDefault)

		case markdown.KindItalic:
			w.style(styleItalic)
			w.text(seg.Text)
			w.style(styleDefault)

		default:
			w.text(seg.Text)
		}
	}
	w.newline(1)
}

func (r *DeviceRenderer) renderFooter(w *opWriter, t *ticket.Ticket) {
	f := r.cfg.Footer

	if !f.QRCodeDisabled {
		if f.QRCodeTitle != "" {
			w.newline(1)
			w.text(f.QRCodeTitle)
			w.newline(1)
		}
		w.qr(t.URL, f.QRCodeSize)
	}
	if f.FooterText != "" {
		w.newline(1)
		w.text(f.FooterText)
		w.newline(1)
	}
}

// opWriter issues device operations with a sticky error: after the first
// failure every later call is a no-op and Render reports that first error.
type opWriter struct {
	dev printer.Device
	err error
}

func (w *opWriter) style(s printer.Style) {
	if w.err == nil {
		w.err = w.dev.SetStyle(s)
	}
}

func (w *opWriter) text(s string) {
	if w.err == nil {
		w.err = w.dev.WriteText(s)
	}
}

func (w *opWriter) newline(count int) {
	if w.err == nil {
		w.err = w.dev.Newline(count)
	}
}

func (w *opWriter) qr(data string, size int) {
	if w.err == nil {
		w.err = w.dev.WriteQR(data, size)
	}
}

func (w *opWriter) cut() {
	if w.err == nil {
		w.err = w.dev.Cut()
	}
}

// blockText wraps text to maxWidth, feeding between wrapped lines. The
// line itself is terminated by the segment stream's own line breaks.
func (w *opWriter) blockText(text string, maxWidth int) {
	for i, line := range layout.WrapWords(text, maxWidth) {
		if i > 0 {
			w.newline(1)
		}
		w.text(line)
	}
}
