package printer

import "fmt"

// Op is one recorded device operation.
type Op struct {
	Name  string // "set-style", "text", "newline", "image", "qr", "cut", "close"
	Text  string
	Style Style
	Count int
	Size  int
}

// Recorder is a Device that records the operation stream instead of
// talking to hardware. Used by tests and by preview --dry-run.
type Recorder struct {
	Ops        []Op
	ColumnsA   int
	ColumnsB   int
	FailOn     string // op name that returns a DeviceIOError, "" for none
	ImageError error  // returned by WriteImage when set
	Closed     int    // number of Close calls
}

// NewRecorder returns a Recorder with the default 80mm column counts.
func NewRecorder() *Recorder {
	return &Recorder{ColumnsA: 48, ColumnsB: 64}
}

func (r *Recorder) fail(op string) error {
	if r.FailOn == op {
		return &DeviceIOError{Op: op, Err: fmt.Errorf("injected failure")}
	}
	return nil
}

func (r *Recorder) SetStyle(style Style) error {
	if err := r.fail("set-style"); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "set-style", Style: style})
	return nil
}

func (r *Recorder) WriteText(text string) error {
	if err := r.fail("text"); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "text", Text: text})
	return nil
}

func (r *Recorder) Newline(count int) error {
	if err := r.fail("newline"); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "newline", Count: count})
	return nil
}

func (r *Recorder) WriteImage(path string) error {
	if r.ImageError != nil {
		return r.ImageError
	}
	if err := r.fail("image"); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "image", Text: path})
	return nil
}

func (r *Recorder) WriteQR(data string, size int) error {
	if err := r.fail("qr"); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "qr", Text: data, Size: size})
	return nil
}

func (r *Recorder) Cut() error {
	if err := r.fail("cut"); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{Name: "cut"})
	return nil
}

func (r *Recorder) Close() error {
	r.Closed++
	r.Ops = append(r.Ops, Op{Name: "close"})
	return nil
}

func (r *Recorder) Columns(font string) int {
	if font == "b" {
		return r.ColumnsB
	}
	return r.ColumnsA
}

// Names returns the recorded operation names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}
