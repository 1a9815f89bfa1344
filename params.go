package fbwire

import (
	"encoding/binary"
	"math"
)

// nullIndicator values. The indicator is a little-endian int16 word.
const (
	indicatorNull    = int16(-1)
	indicatorNotNull = int16(0)
)

// textFill is the byte the encoder writes after a short text payload in a
// fixed-length CHAR slot. Raw-byte payloads are padded with zero instead.
const textFill = byte(' ')

func putIndicator(b []byte, ind int16) {
	binary.LittleEndian.PutUint16(b, uint16(ind))
}

// Params is an ordered list of parameter values for one statement
// execution. Values are appended with the Add methods, consumed once by
// Build, and never mutated afterwards.
type Params struct {
	cal  CalendarCodec
	vals []param
}

// NewParams returns an empty parameter list. Calendar kinds are packed with
// the given codec; pass nil to use StandardCalendar.
func NewParams(cal CalendarCodec) *Params {
	if cal == nil {
		cal = StandardCalendar{}
	}
	return &Params{cal: cal}
}

// Len returns the number of values added so far.
func (p *Params) Len() int {
	return len(p.vals)
}

// Empty reports whether no values have been added.
func (p *Params) Empty() bool {
	return len(p.vals) == 0
}

// Clear drops all values, keeping the list reusable.
func (p *Params) Clear() {
	p.vals = p.vals[:0]
}

func (p *Params) AddBool(v bool) *Params {
	p.vals = append(p.vals, param{kind: KindBool, boolVal: v})
	return p
}

func (p *Params) AddInt16(v int16) *Params {
	p.vals = append(p.vals, param{kind: KindInt16, i16: v})
	return p
}

func (p *Params) AddInt32(v int32) *Params {
	p.vals = append(p.vals, param{kind: KindInt32, i32: v})
	return p
}

func (p *Params) AddInt64(v int64) *Params {
	p.vals = append(p.vals, param{kind: KindInt64, i64: v})
	return p
}

func (p *Params) AddInt128(v Int128) *Params {
	p.vals = append(p.vals, param{kind: KindInt128, i128: v})
	return p
}

func (p *Params) AddFloat32(v float32) *Params {
	p.vals = append(p.vals, param{kind: KindFloat32, f32: v})
	return p
}

func (p *Params) AddFloat64(v float64) *Params {
	p.vals = append(p.vals, param{kind: KindFloat64, f64: v})
	return p
}

func (p *Params) AddDec16(v Dec16) *Params {
	p.vals = append(p.vals, param{kind: KindDec16, d16: v})
	return p
}

func (p *Params) AddDec34(v Dec34) *Params {
	p.vals = append(p.vals, param{kind: KindDec34, d34: v})
	return p
}

func (p *Params) AddString(v string) *Params {
	p.vals = append(p.vals, param{kind: KindText, str: v})
	return p
}

// AddBytes appends an uninterpreted byte sequence. There is no dedicated
// wire type for raw bytes; the slot is encoded as fixed-length text with an
// explicit length equal to the payload size.
func (p *Params) AddBytes(v []byte) *Params {
	p.vals = append(p.vals, param{kind: KindBytes, raw: v})
	return p
}

// AddBlob appends a large-object reference. The subtype travels into the
// descriptor slot.
func (p *Params) AddBlob(id QuadID, subtype int16) *Params {
	p.vals = append(p.vals, param{kind: KindBlob, quad: id, subtype: subtype})
	return p
}

func (p *Params) AddDate(v Date) *Params {
	p.vals = append(p.vals, param{kind: KindDate, packedDate: p.cal.EncodeDate(v)})
	return p
}

func (p *Params) AddTime(v TimeOfDay) *Params {
	p.vals = append(p.vals, param{kind: KindTime, packedTime: p.cal.EncodeTime(v)})
	return p
}

func (p *Params) AddTimeTZ(v TimeTZ) *Params {
	p.vals = append(p.vals, param{kind: KindTimeTZ, packedTime: p.cal.EncodeTime(v.Time), zone: v.Zone})
	return p
}

func (p *Params) AddTimestamp(v Timestamp) *Params {
	p.vals = append(p.vals, param{
		kind:       KindTimestamp,
		packedDate: p.cal.EncodeDate(v.Date),
		packedTime: p.cal.EncodeTime(v.Time),
	})
	return p
}

func (p *Params) AddTimestampTZ(v TimestampTZ) *Params {
	p.vals = append(p.vals, param{
		kind:       KindTimestampTZ,
		packedDate: p.cal.EncodeDate(v.Timestamp.Date),
		packedTime: p.cal.EncodeTime(v.Timestamp.Time),
		zone:       v.Zone,
	})
	return p
}

func (p *Params) AddNull() *Params {
	p.vals = append(p.vals, param{kind: KindNull})
	return p
}

// kindWireTypes maps fixed-width kinds to their wire type. Kinds with
// special handling (null, text, bytes, blob) are resolved in slotForParam.
var kindWireTypes = map[Kind]Type{
	KindBool:        TypeBoolean,
	KindInt16:       TypeShort,
	KindInt32:       TypeLong,
	KindInt64:       TypeInt64,
	KindInt128:      TypeInt128,
	KindFloat32:     TypeFloat,
	KindFloat64:     TypeDouble,
	KindDec16:       TypeDec16,
	KindDec34:       TypeDec34,
	KindDate:        TypeDate,
	KindTime:        TypeTime,
	KindTimeTZ:      TypeTimeTZ,
	KindTimestamp:   TypeTimestamp,
	KindTimestampTZ: TypeTimestampTZ,
}

// slotForParam is pass one of the descriptor build: it assigns the wire
// type, subtype and declared length for one value. Offsets stay zero until
// the metadata authority resolves them.
func slotForParam(v param) (Slot, error) {
	s := Slot{Nullable: true}

	switch v.kind {
	case KindNull:
		// The descriptor format has no true "no type"; an always-null slot
		// is declared as a placeholder SMALLINT.
		s.Type = TypeShort
		s.Length = TypeShort.Size()
	case KindText:
		s.Type = TypeText
		s.Length = uint32(len(v.str))
	case KindBytes:
		s.Type = TypeText
		s.Length = uint32(len(v.raw))
	case KindBlob:
		s.Type = TypeBlob
		s.Length = TypeBlob.Size()
		s.Subtype = v.subtype
	default:
		t, ok := kindWireTypes[v.kind]
		if !ok {
			return Slot{}, contractErrf("not implemented parameter type: %s", v.kind)
		}
		s.Type = t
		s.Length = t.Size()
	}

	return s, nil
}

// Build turns the parameter list into a wire buffer. Pass one assigns each
// slot's type, subtype and declared length; the metadata authority then
// lays the slots out; finally every value is encoded into a buffer of
// exactly the descriptor's message length. The returned descriptor is
// immutable and shared read-only with the decode path.
func (p *Params) Build(auth MetadataAuthority) (*Descriptor, []byte, error) {
	slots := make([]Slot, len(p.vals))
	for i, v := range p.vals {
		s, err := slotForParam(v)
		if err != nil {
			return nil, nil, err
		}
		slots[i] = s
	}

	desc, err := auth.Resolve(slots)
	if err != nil {
		return nil, nil, err
	}
	if desc.Count() != len(p.vals) {
		return nil, nil, contractErrf("metadata authority returned %d slots for %d values", desc.Count(), len(p.vals))
	}

	buf, err := p.encode(desc)
	if err != nil {
		return nil, nil, err
	}
	return desc, buf, nil
}

// encode writes every value at its resolved offset and sets its null
// indicator. It performs no engine calls.
func (p *Params) encode(desc *Descriptor) ([]byte, error) {
	buf := make([]byte, desc.MessageLength())

	for i, v := range p.vals {
		s, _ := desc.Slot(i)

		if v.kind == KindNull {
			putIndicator(buf[s.NullOffset:], indicatorNull)
			continue
		}
		putIndicator(buf[s.NullOffset:], indicatorNotNull)

		data := buf[s.Offset:s.end()]
		switch v.kind {
		case KindBool:
			if v.boolVal {
				data[0] = 1
			} else {
				data[0] = 0
			}
		case KindInt16:
			binary.LittleEndian.PutUint16(data, uint16(v.i16))
		case KindInt32:
			binary.LittleEndian.PutUint32(data, uint32(v.i32))
		case KindInt64:
			binary.LittleEndian.PutUint64(data, uint64(v.i64))
		case KindInt128:
			binary.LittleEndian.PutUint64(data, v.i128.Lo)
			binary.LittleEndian.PutUint64(data[8:], uint64(v.i128.Hi))
		case KindFloat32:
			binary.LittleEndian.PutUint32(data, math.Float32bits(v.f32))
		case KindFloat64:
			binary.LittleEndian.PutUint64(data, math.Float64bits(v.f64))
		case KindDec16:
			copy(data, v.d16[:])
		case KindDec34:
			copy(data, v.d34[:])
		case KindBlob:
			putQuad(data, v.quad)
		case KindDate:
			binary.LittleEndian.PutUint32(data, uint32(v.packedDate))
		case KindTime:
			binary.LittleEndian.PutUint32(data, v.packedTime)
		case KindTimeTZ:
			binary.LittleEndian.PutUint32(data, v.packedTime)
			binary.LittleEndian.PutUint16(data[4:], v.zone)
		case KindTimestamp:
			binary.LittleEndian.PutUint32(data, uint32(v.packedDate))
			binary.LittleEndian.PutUint32(data[4:], v.packedTime)
		case KindTimestampTZ:
			binary.LittleEndian.PutUint32(data, uint32(v.packedDate))
			binary.LittleEndian.PutUint32(data[4:], v.packedTime)
			binary.LittleEndian.PutUint16(data[8:], v.zone)
		case KindText:
			if err := copyPadded(data, []byte(v.str), textFill, i); err != nil {
				return nil, err
			}
		case KindBytes:
			if err := copyPadded(data, v.raw, 0, i); err != nil {
				return nil, err
			}
		default:
			return nil, contractErrf("not implemented parameter type: %s", v.kind)
		}
	}

	return buf, nil
}

// copyPadded copies a variable-length payload into a fixed slot, filling
// the remainder. A payload longer than the slot is a programming error:
// Build sizes the declared length from the same payload, so this is only
// reachable with a foreign descriptor.
func copyPadded(dst, src []byte, fill byte, slot int) error {
	if len(src) > len(dst) {
		return contractErrf("parameter %d: payload of %d bytes exceeds declared length %d", slot, len(src), len(dst))
	}
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = fill
	}
	return nil
}

func putQuad(data []byte, q QuadID) {
	binary.LittleEndian.PutUint32(data, uint32(q.High))
	binary.LittleEndian.PutUint32(data[4:], q.Low)
}

func getQuad(data []byte) QuadID {
	return QuadID{
		High: int32(binary.LittleEndian.Uint32(data)),
		Low:  binary.LittleEndian.Uint32(data[4:]),
	}
}
