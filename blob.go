package fbwire

// MaxSegment is the largest number of bytes one segment transfer moves.
const MaxSegment = 32 * 1024

// BlobMode says which direction a blob handle was opened for.
type BlobMode int

const (
	BlobWrite BlobMode = iota + 1
	BlobRead
)

func (m BlobMode) String() string {
	switch m {
	case BlobWrite:
		return "write"
	case BlobRead:
		return "read"
	}
	return "unknown"
}

// Blob streams a large-object value in bounded segments over a
// BlobTransport. A write blob accumulates data with Put until Close, after
// which its id can travel as a parameter; a read blob is opened from an id
// decoded out of a row. Close every blob on every exit path, normally with
// defer; any operation after Close is a contract violation.
type Blob struct {
	tr     BlobTransport
	diag   DiagnosticFormatter
	id     QuadID
	mode   BlobMode
	closed bool
}

// BlobOption adjusts a blob handle.
type BlobOption func(*Blob)

// BlobDiagnostics sets the formatter used to render engine failures.
func BlobDiagnostics(f DiagnosticFormatter) BlobOption {
	return func(b *Blob) { b.diag = f }
}

// NewBlob wraps an open engine blob handle. The session layer creates or
// opens the underlying handle and passes its transport here; id is zero for
// a freshly created write blob until the engine assigns one.
func NewBlob(tr BlobTransport, id QuadID, mode BlobMode, opts ...BlobOption) *Blob {
	b := &Blob{tr: tr, id: id, mode: mode}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the blob's large-object id.
func (b *Blob) ID() QuadID {
	return b.id
}

// Mode returns the direction the blob was opened for.
func (b *Blob) Mode() BlobMode {
	return b.mode
}

func (b *Blob) writable() error {
	if b.closed {
		return contractErrf("blob is closed")
	}
	if b.mode != BlobWrite {
		return contractErrf("blob is open for %s, not write", b.mode)
	}
	return nil
}

func (b *Blob) readable() error {
	if b.closed {
		return contractErrf("blob is closed")
	}
	if b.mode != BlobRead {
		return contractErrf("blob is open for %s, not read", b.mode)
	}
	return nil
}

// Put writes data to the blob. Payloads larger than MaxSegment are split
// into consecutive segments of at most MaxSegment bytes, issued in order.
func (b *Blob) Put(data []byte) error {
	if err := b.writable(); err != nil {
		return err
	}
	for pos := 0; pos < len(data); pos += MaxSegment {
		end := pos + MaxSegment
		if end > len(data) {
			end = len(data)
		}
		if err := b.tr.PutSegment(data[pos:end]); err != nil {
			return WrapEngineError(b.diag, err)
		}
	}
	return nil
}

// PutString writes a string to the blob.
func (b *Blob) PutString(s string) error {
	return b.Put([]byte(s))
}

// Get requests up to n bytes in one segment transfer and returns exactly
// what the engine produced, which may be less than n.
func (b *Blob) Get(n int) ([]byte, error) {
	if err := b.readable(); err != nil {
		return nil, err
	}
	data, _, err := b.tr.GetSegment(n)
	if err != nil {
		return nil, WrapEngineError(b.diag, err)
	}
	return data, nil
}

// GetAll reads the whole blob, requesting MaxSegment-sized segments until
// the transport reports the final one, and returns the concatenation.
func (b *Blob) GetAll() ([]byte, error) {
	if err := b.readable(); err != nil {
		return nil, err
	}
	var out []byte
	for {
		data, final, err := b.tr.GetSegment(MaxSegment)
		if err != nil {
			return nil, WrapEngineError(b.diag, err)
		}
		out = append(out, data...)
		if final {
			return out, nil
		}
	}
}

// GetString reads the whole blob as a string.
func (b *Blob) GetString() (string, error) {
	data, err := b.GetAll()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// info runs a single-item info query and decodes the integer payload.
func (b *Blob) info(item byte) (int64, error) {
	if b.closed {
		return 0, contractErrf("blob is closed")
	}
	buf, err := b.tr.GetInfo([]byte{item, InfoEnd})
	if err != nil {
		return 0, WrapEngineError(b.diag, err)
	}
	if len(buf) < 3 || buf[0] != item {
		return 0, contractErrf("malformed info response for item %d", item)
	}
	length := PortableInteger(buf[1:3])
	if int64(len(buf)) < 3+length {
		return 0, contractErrf("malformed info response for item %d", item)
	}
	return PortableInteger(buf[3 : 3+length]), nil
}

// NumSegments returns how many segments the engine stored for the blob.
func (b *Blob) NumSegments() (int64, error) {
	return b.info(InfoBlobNumSegments)
}

// MaxSegmentSize returns the largest stored segment's size.
func (b *Blob) MaxSegmentSize() (int64, error) {
	return b.info(InfoBlobMaxSegment)
}

// TotalLength returns the blob's total byte length.
func (b *Blob) TotalLength() (int64, error) {
	return b.info(InfoBlobTotalLength)
}

// BlobType returns the blob's subtype.
func (b *Blob) BlobType() (int64, error) {
	return b.info(InfoBlobType)
}

// Close releases the engine handle. The transition to closed is
// irreversible; closing twice is a contract violation.
func (b *Blob) Close() error {
	if b.closed {
		return contractErrf("blob is already closed")
	}
	b.closed = true
	if err := b.tr.Close(); err != nil {
		return WrapEngineError(b.diag, err)
	}
	return nil
}
