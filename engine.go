package fbwire

// Collaborator interfaces. The marshaling core never talks to a server
// itself; the session layer that owns connections and transactions supplies
// implementations of these.

// MetadataAuthority finalizes a message layout. Given the per-slot type,
// subtype and declared-length hints assembled by Params, it assigns byte
// offsets, null indicator offsets and the total message length. The
// engine's own metadata builder plays this role in a live session;
// StandardLayout is the in-process implementation.
type MetadataAuthority interface {
	Resolve(slots []Slot) (*Descriptor, error)
}

// CalendarCodec converts between calendar components and the engine's
// packed date/time integers.
type CalendarCodec interface {
	EncodeDate(d Date) int32
	DecodeDate(packed int32) Date
	EncodeTime(t TimeOfDay) uint32
	DecodeTime(packed uint32) TimeOfDay
}

// DiagnosticFormatter renders an engine-level failure as a human-readable
// message, used when wrapping the cause into an EngineError.
type DiagnosticFormatter interface {
	Format(cause error) string
}

// RowSource delivers raw row buffers for an open cursor. FetchNext fills
// buf in place with the next row and reports whether a row was produced.
// Close releases the cursor.
type RowSource interface {
	FetchNext(buf []byte) (bool, error)
	Close() error
}

// BlobTransport performs segment-level transfers for one open large object.
// GetSegment returns up to n bytes; final reports that the returned segment
// was the last one. GetInfo runs a generic item-code query and returns the
// raw info buffer. Close releases the engine handle.
type BlobTransport interface {
	PutSegment(seg []byte) error
	GetSegment(n int) (data []byte, final bool, err error)
	GetInfo(items []byte) ([]byte, error)
	Close() error
}
