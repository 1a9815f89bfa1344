package fbwire

import "fmt"

// RowsOption adjusts how a Rows decodes its columns.
type RowsOption func(*Rows)

// RowsCalendar sets the calendar codec used for date and time columns.
func RowsCalendar(cal CalendarCodec) RowsOption {
	return func(r *Rows) { r.cal = cal }
}

// TrimFixedText makes string decode of fixed-length CHAR columns drop the
// trailing fill. The default returns the declared length verbatim,
// including whatever fill the engine wrote.
func TrimFixedText() RowsOption {
	return func(r *Rows) { r.trim = true }
}

// DecodeCharsets makes string decode transcode column bytes to UTF-8
// according to the slot's character set id. Unknown ids pass through
// unchanged.
func DecodeCharsets() RowsOption {
	return func(r *Rows) { r.charsets = true }
}

// RowsDiagnostics sets the formatter used to render failures reported by
// the row source.
func RowsDiagnostics(f DiagnosticFormatter) RowsOption {
	return func(r *Rows) { r.diag = f }
}

// Rows owns the single live row buffer of one open cursor. Next overwrites
// the buffer in place; Field views always reflect the current row. A Rows
// must not be shared between goroutines without external serialization.
type Rows struct {
	desc     *Descriptor
	src      RowSource
	buf      []byte
	cal      CalendarCodec
	diag     DiagnosticFormatter
	trim     bool
	charsets bool
	closed   bool
}

// NewRows binds a descriptor to a row source and allocates the row buffer.
func NewRows(desc *Descriptor, src RowSource, opts ...RowsOption) *Rows {
	r := &Rows{
		desc: desc,
		src:  src,
		buf:  make([]byte, desc.MessageLength()),
		cal:  StandardCalendar{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRowsFromBuffer wraps an already-fetched row buffer, for callers that
// obtained the raw bytes elsewhere. The buffer must be at least the
// descriptor's message length.
func NewRowsFromBuffer(desc *Descriptor, buf []byte, opts ...RowsOption) (*Rows, error) {
	if uint32(len(buf)) < desc.MessageLength() {
		return nil, fmt.Errorf("row buffer of %d bytes is shorter than message length %d", len(buf), desc.MessageLength())
	}
	r := &Rows{
		desc: desc,
		buf:  buf,
		cal:  StandardCalendar{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Next fetches the next row into the buffer, overwriting the previous row.
func (r *Rows) Next() (bool, error) {
	if r.closed {
		return false, contractErrf("rows are closed")
	}
	if r.src == nil {
		return false, contractErrf("rows have no row source")
	}
	more, err := r.src.FetchNext(r.buf)
	if err != nil {
		return false, WrapEngineError(r.diag, err)
	}
	return more, nil
}

// Count returns the number of columns.
func (r *Rows) Count() int {
	return r.desc.Count()
}

// Names returns the column names in order.
func (r *Rows) Names() []string {
	return r.desc.Names()
}

// Aliases returns the column aliases in order.
func (r *Rows) Aliases() []string {
	return r.desc.Aliases()
}

// Types returns the column wire types in order.
func (r *Rows) Types() []Type {
	return r.desc.Types()
}

// Field returns an ephemeral view of column i in the current row. The view
// holds no state of its own and stays valid only until the next Next or
// Close on the same Rows.
func (r *Rows) Field(i int) (Field, error) {
	if r.closed {
		return Field{}, contractErrf("rows are closed")
	}
	s, ok := r.desc.Slot(i)
	if !ok {
		return Field{}, contractErrf("column index out of bounds: %d of %d", i, r.desc.Count())
	}
	return Field{rows: r, slot: s, index: i}, nil
}

// Close releases the cursor. The row buffer is invalid afterwards.
func (r *Rows) Close() error {
	if r.closed {
		return contractErrf("rows are already closed")
	}
	r.closed = true
	r.buf = nil
	if r.src != nil {
		if err := r.src.Close(); err != nil {
			return WrapEngineError(r.diag, err)
		}
	}
	return nil
}
