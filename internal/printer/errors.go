package printer

import "fmt"

// DeviceNotFoundError means the printer is unreachable. The job fails
// with no retry.
type DeviceNotFoundError struct {
	VendorID  uint16
	ProductID uint16
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("printer not found (vendor 0x%04x, product 0x%04x)", e.VendorID, e.ProductID)
}

// DeviceIOError is a transport or write failure mid-job. The session is
// force-closed and the job fails.
type DeviceIOError struct {
	Op  string
	Err error
}

func (e *DeviceIOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("printer i/o failure during %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("printer i/o failure during %s", e.Op)
}

func (e *DeviceIOError) Unwrap() error { return e.Err }

// UnsupportedAssetError means an asset (the logo) could not be read or
// decoded. Recoverable: the asset is skipped and rendering continues.
type UnsupportedAssetError struct {
	Path string
	Err  error
}

func (e *UnsupportedAssetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported asset %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("unsupported asset %s", e.Path)
}

func (e *UnsupportedAssetError) Unwrap() error { return e.Err }
