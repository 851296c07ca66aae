// Package printer defines the printer capability interface, its real
// ESC/POS-over-USB implementation, and the session/queue machinery that
// serializes access to the single physical device.
package printer

// Style is the device text style. The zero value is the default style.
type Style struct {
	Bold         bool
	Underline    bool
	DoubleWidth  bool
	DoubleHeight bool
}

// Device is the capability surface the renderer drives. A Device is an
// open handle; all operations may fail with a DeviceIOError.
type Device interface {
	// SetStyle switches the active text style.
	SetStyle(style Style) error
	// WriteText emits text in the active style.
	WriteText(text string) error
	// Newline feeds count lines.
	Newline(count int) error
	// WriteImage prints the image at path. Returns UnsupportedAssetError
	// for missing or undecodable files.
	WriteImage(path string) error
	// WriteQR prints a QR code of the given module size.
	WriteQR(data string, size int) error
	// Cut feeds and cuts the paper.
	Cut() error
	// Close releases the handle. Safe to call once only.
	Close() error
	// Columns reports the printable column count for a font ("a" or "b").
	Columns(font string) int
}

// Opener acquires a device handle. Implemented by the USB driver and by
// test fakes.
type Opener interface {
	Open(vendorID, productID uint16, profile string) (Device, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(vendorID, productID uint16, profile string) (Device, error)

// Open calls f.
func (f OpenerFunc) Open(vendorID, productID uint16, profile string) (Device, error) {
	return f(vendorID, productID, profile)
}

// profileColumns maps device profile names to columns per font. Unknown
// profiles use the 80mm default.
var profileColumns = map[string]map[string]int{
	"default":   {"a": 48, "b": 64},
	"TM-T88III": {"a": 42, "b": 56},
	"TM-T20":    {"a": 48, "b": 64},
}

// ColumnsFor returns the column count for a profile and font.
func ColumnsFor(profile, font string) int {
	fonts, ok := profileColumns[profile]
	if !ok {
		fonts = profileColumns["default"]
	}
	if cols, ok := fonts[font]; ok {
		return cols
	}
	return fonts["a"]
}
