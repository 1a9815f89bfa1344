package fbwire

import (
	"encoding/binary"
	"math"

	"github.com/shopspring/decimal"
)

// Field is a stateless view of one column in the current row of a Rows. It
// may be produced and discarded freely; every accessor re-reads the live
// row buffer. The conversion matrix is keyed by (stored wire type,
// requested type): identity and widening conversions succeed, scaled
// integer columns convert to floating point, decimal and text with the
// decimal point reinserted, calendar columns decompose through the
// calendar codec, and every other pairing is a ContractError naming both
// types.
type Field struct {
	rows  *Rows
	slot  Slot
	index int
}

// Name returns the column's field name.
func (f Field) Name() string { return f.slot.Name }

// Alias returns the column's alias.
func (f Field) Alias() string { return f.slot.Alias }

// Type returns the stored wire type and its subtype.
func (f Field) Type() (Type, int16) { return f.slot.Type, f.slot.Subtype }

// Scale returns the column's decimal scale exponent (zero or negative).
func (f Field) Scale() int16 { return f.slot.Scale }

// Length returns the declared byte length of the column's data region.
func (f Field) Length() uint32 { return f.slot.Length }

// IsNullable reports whether the column may carry nulls.
func (f Field) IsNullable() bool { return f.slot.Nullable }

// IsNull reads the column's null indicator word in the current row.
func (f Field) IsNull() bool {
	return int16(binary.LittleEndian.Uint16(f.rows.buf[f.slot.NullOffset:])) != indicatorNotNull
}

func (f Field) data() []byte {
	return f.rows.buf[f.slot.Offset:f.slot.end()]
}

func (f Field) AsBool() (bool, error) {
	if f.slot.Type != TypeBoolean {
		return false, invalidConversion(f.slot.Type, "BOOLEAN")
	}
	return f.data()[0] != 0, nil
}

func (f Field) AsInt16() (int16, error) {
	switch f.slot.Type {
	case TypeShort:
		return int16(binary.LittleEndian.Uint16(f.data())), nil
	case TypeBoolean:
		return int16(f.data()[0]), nil
	}
	return 0, invalidConversion(f.slot.Type, "SMALLINT")
}

func (f Field) AsInt32() (int32, error) {
	switch f.slot.Type {
	case TypeLong:
		return int32(binary.LittleEndian.Uint32(f.data())), nil
	case TypeShort:
		return int32(int16(binary.LittleEndian.Uint16(f.data()))), nil
	case TypeBoolean:
		return int32(f.data()[0]), nil
	}
	return 0, invalidConversion(f.slot.Type, "INTEGER")
}

func (f Field) AsInt64() (int64, error) {
	switch f.slot.Type {
	case TypeInt64:
		return int64(binary.LittleEndian.Uint64(f.data())), nil
	case TypeLong:
		return int64(int32(binary.LittleEndian.Uint32(f.data()))), nil
	case TypeShort:
		return int64(int16(binary.LittleEndian.Uint16(f.data()))), nil
	case TypeBoolean:
		return int64(f.data()[0]), nil
	}
	return 0, invalidConversion(f.slot.Type, "BIGINT")
}

func (f Field) AsInt128() (Int128, error) {
	if f.slot.Type == TypeInt128 {
		data := f.data()
		return Int128{
			Lo: binary.LittleEndian.Uint64(data),
			Hi: int64(binary.LittleEndian.Uint64(data[8:])),
		}, nil
	}
	v, err := f.AsInt64()
	if err != nil {
		return Int128{}, invalidConversion(f.slot.Type, "INT128")
	}
	return Int128FromInt64(v), nil
}

// scaled applies the column's scale exponent to a raw integer value:
// the stored integer represents raw * 10^scale.
func (f Field) scaled(raw int64) float64 {
	if f.slot.Scale == 0 {
		return float64(raw)
	}
	return float64(raw) / math.Pow(10, float64(-f.slot.Scale))
}

func (f Field) AsFloat64() (float64, error) {
	switch f.slot.Type {
	case TypeDouble:
		return math.Float64frombits(binary.LittleEndian.Uint64(f.data())), nil
	case TypeFloat:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(f.data()))), nil
	case TypeInt64, TypeLong, TypeShort:
		raw, err := f.AsInt64()
		if err != nil {
			return 0, err
		}
		return f.scaled(raw), nil
	}
	return 0, invalidConversion(f.slot.Type, "DOUBLE PRECISION")
}

func (f Field) AsFloat32() (float32, error) {
	switch f.slot.Type {
	case TypeFloat:
		return math.Float32frombits(binary.LittleEndian.Uint32(f.data())), nil
	case TypeInt64, TypeLong, TypeShort:
		raw, err := f.AsInt64()
		if err != nil {
			return 0, err
		}
		return float32(f.scaled(raw)), nil
	}
	return 0, invalidConversion(f.slot.Type, "FLOAT")
}

// AsDecimal converts a scaled integer column to an exact decimal value.
func (f Field) AsDecimal() (decimal.Decimal, error) {
	switch f.slot.Type {
	case TypeInt64, TypeLong, TypeShort:
		raw, err := f.AsInt64()
		if err != nil {
			return decimal.Decimal{}, err
		}
		return decimal.New(raw, int32(f.slot.Scale)), nil
	}
	return decimal.Decimal{}, invalidConversion(f.slot.Type, "DECIMAL")
}

// AsString decodes the column as text. VARCHAR reads the leading count
// word; CHAR returns the declared length verbatim unless TrimFixedText was
// set; scaled integer columns render their digit string with the decimal
// point reinserted according to the scale exponent.
func (f Field) AsString() (string, error) {
	switch f.slot.Type {
	case TypeVarying:
		data := f.data()
		n := varyingCount(data)
		return f.transcode(data[2 : 2+n])
	case TypeText:
		data := f.data()
		if f.rows.trim {
			data = trimFill(data)
		}
		return f.transcode(data)
	case TypeInt64, TypeLong, TypeShort:
		raw, err := f.AsInt64()
		if err != nil {
			return "", err
		}
		return decimal.New(raw, int32(f.slot.Scale)).String(), nil
	}
	return "", invalidConversion(f.slot.Type, "TEXT")
}

// AsBytes decodes the column as an uninterpreted byte sequence. VARCHAR
// honors the count word; every other type returns the declared length
// verbatim. The returned slice is a copy and survives row advances.
func (f Field) AsBytes() ([]byte, error) {
	data := f.data()
	if f.slot.Type == TypeVarying {
		data = data[2 : 2+varyingCount(data)]
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (f Field) AsDate() (Date, error) {
	data := f.data()
	switch f.slot.Type {
	case TypeDate:
		return f.rows.cal.DecodeDate(int32(binary.LittleEndian.Uint32(data))), nil
	case TypeTimestamp, TypeTimestampTZ:
		return f.rows.cal.DecodeDate(int32(binary.LittleEndian.Uint32(data))), nil
	}
	return Date{}, invalidConversion(f.slot.Type, "DATE")
}

func (f Field) AsTime() (TimeOfDay, error) {
	data := f.data()
	switch f.slot.Type {
	case TypeTime:
		return f.rows.cal.DecodeTime(binary.LittleEndian.Uint32(data)), nil
	case TypeTimestamp, TypeTimestampTZ:
		return f.rows.cal.DecodeTime(binary.LittleEndian.Uint32(data[4:])), nil
	}
	return TimeOfDay{}, invalidConversion(f.slot.Type, "TIME")
}

func (f Field) AsTimeTZ() (TimeTZ, error) {
	data := f.data()
	switch f.slot.Type {
	case TypeTimeTZ:
		return TimeTZ{
			Time: f.rows.cal.DecodeTime(binary.LittleEndian.Uint32(data)),
			Zone: binary.LittleEndian.Uint16(data[4:]),
		}, nil
	case TypeTimestampTZ:
		return TimeTZ{
			Time: f.rows.cal.DecodeTime(binary.LittleEndian.Uint32(data[4:])),
			Zone: binary.LittleEndian.Uint16(data[8:]),
		}, nil
	}
	return TimeTZ{}, invalidConversion(f.slot.Type, "TIME WITH TIME ZONE")
}

func (f Field) AsTimestamp() (Timestamp, error) {
	data := f.data()
	switch f.slot.Type {
	case TypeTimestamp, TypeTimestampTZ:
		return Timestamp{
			Date: f.rows.cal.DecodeDate(int32(binary.LittleEndian.Uint32(data))),
			Time: f.rows.cal.DecodeTime(binary.LittleEndian.Uint32(data[4:])),
		}, nil
	}
	return Timestamp{}, invalidConversion(f.slot.Type, "TIMESTAMP")
}

func (f Field) AsTimestampTZ() (TimestampTZ, error) {
	if f.slot.Type != TypeTimestampTZ {
		return TimestampTZ{}, invalidConversion(f.slot.Type, "TIMESTAMP WITH TIME ZONE")
	}
	data := f.data()
	return TimestampTZ{
		Timestamp: Timestamp{
			Date: f.rows.cal.DecodeDate(int32(binary.LittleEndian.Uint32(data))),
			Time: f.rows.cal.DecodeTime(binary.LittleEndian.Uint32(data[4:])),
		},
		Zone: binary.LittleEndian.Uint16(data[8:]),
	}, nil
}

// AsQuad returns a blob column's large-object id.
func (f Field) AsQuad() (QuadID, error) {
	if f.slot.Type != TypeBlob {
		return QuadID{}, invalidConversion(f.slot.Type, "BLOB")
	}
	return getQuad(f.data()), nil
}

func (f Field) AsDec16() (Dec16, error) {
	if f.slot.Type != TypeDec16 {
		return Dec16{}, invalidConversion(f.slot.Type, "DEC16")
	}
	var v Dec16
	copy(v[:], f.data())
	return v, nil
}

func (f Field) AsDec34() (Dec34, error) {
	if f.slot.Type != TypeDec34 {
		return Dec34{}, invalidConversion(f.slot.Type, "DEC34")
	}
	var v Dec34
	copy(v[:], f.data())
	return v, nil
}

// varyingCount reads a VARCHAR count word, clamped to the declared payload
// so a corrupt buffer never slices past the data region.
func varyingCount(data []byte) int {
	n := int(binary.LittleEndian.Uint16(data))
	if max := len(data) - 2; n > max {
		n = max
	}
	return n
}

func trimFill(data []byte) []byte {
	end := len(data)
	for end > 0 && data[end-1] == textFill {
		end--
	}
	return data[:end]
}
