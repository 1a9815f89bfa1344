package fbwire

// Kind identifies the application-side kind of a parameter value. It maps
// onto a wire Type when the parameter message is built.
type Kind int

const (
	KindNull Kind = iota + 1
	KindBool
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindFloat32
	KindFloat64
	KindDec16
	KindDec34
	KindText
	KindBytes
	KindBlob
	KindDate
	KindTime
	KindTimeTZ
	KindTimestamp
	KindTimestampTZ
)

var kindNames = map[Kind]string{
	KindNull:        "NULL",
	KindBool:        "BOOLEAN",
	KindInt16:       "SMALLINT",
	KindInt32:       "INT",
	KindInt64:       "BIGINT",
	KindInt128:      "INT128",
	KindFloat32:     "FLOAT",
	KindFloat64:     "DOUBLE",
	KindDec16:       "DEC16",
	KindDec34:       "DEC34",
	KindText:        "CHAR",
	KindBytes:       "OCTETS",
	KindBlob:        "BLOB",
	KindDate:        "DATE",
	KindTime:        "TIME",
	KindTimeTZ:      "TIME_TZ",
	KindTimestamp:   "TIMESTAMP",
	KindTimestampTZ: "TIMESTAMP_TZ",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// QuadID is an opaque 8-byte large-object identifier, assigned by the
// engine when a write blob is created.
type QuadID struct {
	High int32
	Low  uint32
}

// IsZero reports whether the id is the zero id (no blob assigned yet).
func (q QuadID) IsZero() bool {
	return q.High == 0 && q.Low == 0
}

// Date is a calendar date in the proleptic Gregorian calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

// TimeOfDay is a wall-clock time. Fractions are 1/10000ths of a second.
type TimeOfDay struct {
	Hour      int
	Minute    int
	Second    int
	Fractions int
}

// TimeTZ is a time of day qualified with an engine time-zone id.
type TimeTZ struct {
	Time TimeOfDay
	Zone uint16
}

// Timestamp is a date plus a time of day.
type Timestamp struct {
	Date Date
	Time TimeOfDay
}

// TimestampTZ is a timestamp qualified with an engine time-zone id.
type TimestampTZ struct {
	Timestamp Timestamp
	Zone      uint16
}

// Dec16 is an opaque Decimal64 value in the engine's wire representation.
// The package moves it verbatim; interpreting the bits is up to the caller.
type Dec16 [8]byte

// Dec34 is an opaque Decimal128 value in the engine's wire representation.
type Dec34 [16]byte

// Int128 is a signed 128-bit integer, low word first as on the wire.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Int128FromInt64 widens a 64-bit integer to Int128.
func Int128FromInt64(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Lo: uint64(v), Hi: hi}
}

// param is one pending parameter value. It is an explicit tagged union:
// kind selects which payload field is meaningful. Calendar payloads are
// stored already packed (packedDate/packedTime) because packing happens at
// Add time through the calendar codec, matching the engine's buffer layout.
type param struct {
	kind    Kind
	subtype int16

	boolVal    bool
	i16        int16
	i32        int32
	i64        int64
	f32        float32
	f64        float64
	d16        Dec16
	d34        Dec34
	i128       Int128
	str        string
	raw        []byte
	quad       QuadID
	packedDate int32
	packedTime uint32
	zone       uint16
}
