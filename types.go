// Package fbwire marshals typed values to and from Firebird-style row
// message buffers. A message layout (field offsets, null indicator offsets,
// lengths, scale, subtype) is described at runtime by a Descriptor rather
// than known at compile time: Params builds a descriptor and encodes a
// parameter buffer, Rows/Field decode a row buffer through a per-column
// conversion matrix, and Blob streams large-object values in bounded
// segments. Session, transaction and statement management belong to a
// higher layer and appear here only as collaborator interfaces.
package fbwire

// Type is an engine-level wire type code describing how a slot's bytes are
// laid out. The values are the Firebird SQL_* codes.
type Type uint32

const (
	TypeVarying       Type = 448 // length-prefixed text
	TypeText          Type = 452 // fixed-length text, no terminator
	TypeDouble        Type = 480
	TypeFloat         Type = 482
	TypeLong          Type = 496
	TypeShort         Type = 500
	TypeTimestamp     Type = 510
	TypeBlob          Type = 520
	TypeDFloat        Type = 530
	TypeArray         Type = 540
	TypeQuad          Type = 550
	TypeTime          Type = 560
	TypeDate          Type = 570
	TypeInt64         Type = 580
	TypeTimestampTZEx Type = 32748
	TypeTimeTZEx      Type = 32750
	TypeInt128        Type = 32752
	TypeTimestampTZ   Type = 32754
	TypeTimeTZ        Type = 32756
	TypeDec16         Type = 32760
	TypeDec34         Type = 32762
	TypeBoolean       Type = 32764
	TypeNull          Type = 32766
)

// String returns the SQL name of the type, or "UNKNOWN" for a code this
// package does not know.
func (t Type) String() string {
	switch t {
	case TypeArray:
		return "ARRAY"
	case TypeBlob:
		return "BLOB"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeDec16:
		return "DEC16"
	case TypeDec34:
		return "DEC34"
	case TypeDouble:
		return "DOUBLE"
	case TypeDFloat:
		return "D_FLOAT"
	case TypeFloat:
		return "FLOAT"
	case TypeInt128:
		return "INT128"
	case TypeInt64:
		return "BIGINT"
	case TypeLong:
		return "INT"
	case TypeShort:
		return "SMALLINT"
	case TypeText:
		return "CHAR"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeTimestampTZ:
		return "TIMESTAMP_TZ"
	case TypeTimestampTZEx:
		return "TIMESTAMP_TZ_EX"
	case TypeTimeTZ:
		return "TIME_TZ"
	case TypeTimeTZEx:
		return "TIME_TZ_EX"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeVarying:
		return "VARCHAR"
	case TypeNull:
		return "NULL"
	case TypeQuad:
		return "QUAD"
	}
	return "UNKNOWN"
}

// Size returns the natural byte width of a fixed-width type. Variable-length
// types (CHAR, VARCHAR) have no natural width and return 0; their length
// comes from the descriptor slot.
func (t Type) Size() uint32 {
	switch t {
	case TypeBoolean:
		return 1
	case TypeShort:
		return 2
	case TypeLong, TypeFloat, TypeDate, TypeTime:
		return 4
	case TypeTimeTZ:
		return 6
	case TypeInt64, TypeDouble, TypeDFloat, TypeTimestamp, TypeBlob, TypeQuad, TypeDec16, TypeTimeTZEx:
		return 8
	case TypeTimestampTZ:
		return 10
	case TypeTimestampTZEx:
		return 12
	case TypeInt128, TypeDec34:
		return 16
	case TypeNull:
		return 2
	}
	return 0
}

// Alignment returns the byte alignment the standard layout uses for the
// type's data region.
func (t Type) Alignment() uint32 {
	switch t {
	case TypeBoolean, TypeText:
		return 1
	case TypeShort, TypeVarying, TypeNull:
		return 2
	case TypeLong, TypeFloat, TypeDate, TypeTime, TypeTimestamp, TypeBlob, TypeQuad,
		TypeTimeTZ, TypeTimeTZEx, TypeTimestampTZ, TypeTimestampTZEx:
		return 4
	case TypeInt64, TypeDouble, TypeDFloat, TypeDec16, TypeInt128, TypeDec34:
		return 8
	}
	return 1
}
