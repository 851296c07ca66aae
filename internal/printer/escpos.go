package printer

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/gousb"
	"github.com/hennedo/escpos"
)

// USBOpener opens ESC/POS receipt printers over USB. The returned Device
// writes commands to the printer's first bulk OUT endpoint.
type USBOpener struct{}

type usbDevice struct {
	usbCtx   *gousb.Context
	usbDev   *gousb.Device
	intfDone func()
	p        *escpos.Printer
	profile  string
}

// Open locates the printer by vendor/product id and claims its default
// interface. Returns *DeviceNotFoundError when no such device is attached.
func (USBOpener) Open(vendorID, productID uint16, profile string) (Device, error) {
	usbCtx := gousb.NewContext()

	dev, err := usbCtx.OpenDeviceWithVIDPID(gousb.ID(vendorID), gousb.ID(productID))
	if err != nil {
		usbCtx.Close()
		return nil, &DeviceIOError{Op: "open", Err: err}
	}
	if dev == nil {
		usbCtx.Close()
		return nil, &DeviceNotFoundError{VendorID: vendorID, ProductID: productID}
	}

	// The kernel usblp driver usually owns the printer.
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		usbCtx.Close()
		return nil, &DeviceIOError{Op: "open", Err: err}
	}

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		usbCtx.Close()
		return nil, &DeviceIOError{Op: "open", Err: err}
	}

	var out *gousb.OutEndpoint
	for _, ep := range intf.Setting.Endpoints {
		if ep.Direction == gousb.EndpointDirectionOut {
			out, err = intf.OutEndpoint(ep.Number)
			break
		}
	}
	if err != nil || out == nil {
		done()
		dev.Close()
		usbCtx.Close()
		if err == nil {
			err = fmt.Errorf("no bulk OUT endpoint on default interface")
		}
		return nil, &DeviceIOError{Op: "open", Err: err}
	}

	return &usbDevice{
		usbCtx:   usbCtx,
		usbDev:   dev,
		intfDone: done,
		p:        escpos.New(out),
		profile:  profile,
	}, nil
}

func (d *usbDevice) SetStyle(style Style) error {
	width, height := uint8(1), uint8(1)
	if style.DoubleWidth {
		width = 2
	}
	if style.DoubleHeight {
		height = 2
	}
	d.p.Bold(style.Bold).Underline(style.Underline).Size(width, height)
	return nil
}

func (d *usbDevice) WriteText(text string) error {
	d.p.Write(text)
	return d.flush("write-text")
}

func (d *usbDevice) Newline(count int) error {
	for i := 0; i < count; i++ {
		d.p.LineFeed()
	}
	return d.flush("newline")
}

func (d *usbDevice) WriteImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &UnsupportedAssetError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return &UnsupportedAssetError{Path: path, Err: err}
	}

	d.p.PrintImage(img)
	return d.flush("write-image")
}

func (d *usbDevice) WriteQR(data string, size int) error {
	d.p.QRCode(data, true, uint8(size), escpos.QRCodeErrorCorrectionLevelM)
	return d.flush("write-qr")
}

func (d *usbDevice) Cut() error {
	d.p.Cut()
	return d.flush("cut")
}

// flush pushes buffered commands to the endpoint so transport failures
// surface at the operation that caused them.
func (d *usbDevice) flush(op string) error {
	if err := d.p.Print(); err != nil {
		return &DeviceIOError{Op: op, Err: err}
	}
	return nil
}

func (d *usbDevice) Close() error {
	d.intfDone()
	err := d.usbDev.Close()
	if cerr := d.usbCtx.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &DeviceIOError{Op: "close", Err: err}
	}
	return nil
}

func (d *usbDevice) Columns(font string) int {
	return ColumnsFor(d.profile, font)
}
