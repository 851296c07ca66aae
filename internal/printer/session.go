package printer

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultOpTimeout bounds each device operation so a stuck handle cannot
// block the print queue indefinitely.
const DefaultOpTimeout = 10 * time.Second

// Session is the scoped lifetime of an open device handle. Close runs
// exactly once per session regardless of how the session ends.
type Session struct {
	dev     Device
	log     *zap.Logger
	timeout time.Duration
	closed  bool
}

// OpenSession acquires a device from the opener. Returns
// *DeviceNotFoundError or *DeviceIOError on failure.
func OpenSession(opener Opener, vendorID, productID uint16, profile string, log *zap.Logger) (*Session, error) {
	dev, err := opener.Open(vendorID, productID, profile)
	if err != nil {
		return nil, err
	}
	return &Session{
		dev:     dev,
		log:     log,
		timeout: DefaultOpTimeout,
	}, nil
}

// SetTimeout overrides the per-operation timeout. Zero disables it.
func (s *Session) SetTimeout(d time.Duration) { s.timeout = d }

// Device returns the session's device, wrapped so that every operation is
// bounded by the session timeout.
func (s *Session) Device() Device {
	return &timedDevice{session: s}
}

// Close releases the handle. A close failure is logged, not propagated:
// the session is already terminating. Subsequent calls are no-ops.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.dev.Close(); err != nil {
		s.log.Warn("failed to close printer handle", zap.Error(err))
	}
}

// do runs one device operation under the session timeout. On timeout the
// session is force-closed: the device is in an unknown state and the
// goroutine running the stuck call must not touch a handle we still own.
func (s *Session) do(op string, fn func() error) error {
	if s.closed {
		return &DeviceIOError{Op: op, Err: fmt.Errorf("session already closed")}
	}
	if s.timeout <= 0 {
		return fn()
	}

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-time.After(s.timeout):
		s.log.Error("printer operation timed out, force-closing session",
			zap.String("op", op), zap.Duration("timeout", s.timeout))
		s.Close()
		return &DeviceIOError{Op: op, Err: fmt.Errorf("timed out after %s", s.timeout)}
	}
}

// timedDevice routes every call through Session.do.
type timedDevice struct {
	session *Session
}

func (d *timedDevice) SetStyle(style Style) error {
	return d.session.do("set-style", func() error { return d.session.dev.SetStyle(style) })
}

func (d *timedDevice) WriteText(text string) error {
	return d.session.do("write-text", func() error { return d.session.dev.WriteText(text) })
}

func (d *timedDevice) Newline(count int) error {
	return d.session.do("newline", func() error { return d.session.dev.Newline(count) })
}

func (d *timedDevice) WriteImage(path string) error {
	return d.session.do("write-image", func() error { return d.session.dev.WriteImage(path) })
}

func (d *timedDevice) WriteQR(data string, size int) error {
	return d.session.do("write-qr", func() error { return d.session.dev.WriteQR(data, size) })
}

func (d *timedDevice) Cut() error {
	return d.session.do("cut", func() error { return d.session.dev.Cut() })
}

func (d *timedDevice) Close() error {
	d.session.Close()
	return nil
}

func (d *timedDevice) Columns(font string) int {
	return d.session.dev.Columns(font)
}
