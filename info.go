package fbwire

import "fmt"

// Info buffer item codes. An info buffer is a sequence of
// {item: 1 byte, length: 2 bytes little-endian, payload: length bytes}
// clusters terminated by InfoEnd. A leading InfoTruncated signals that the
// caller-supplied buffer was too small for the response.
const (
	InfoEnd             = byte(1)
	InfoTruncated       = byte(2)
	InfoError           = byte(3)
	InfoBlobNumSegments = byte(4)
	InfoBlobMaxSegment  = byte(5)
	InfoBlobTotalLength = byte(6)
	InfoBlobType        = byte(7)
)

// PortableInteger decodes a little-endian integer of up to 8 bytes, the
// encoding every info payload uses for numbers.
func PortableInteger(p []byte) int64 {
	var v int64
	for i := 0; i < len(p) && i < 8; i++ {
		v |= int64(p[i]) << (8 * i)
	}
	return v
}

// ParseInfoBuffer walks an info buffer and calls fn for each item cluster
// with the item code and its payload. It stops at the end marker. A
// truncated marker or a buffer with no end marker is an error, as is an
// error returned by fn.
func ParseInfoBuffer(buf []byte, fn func(item byte, payload []byte) error) error {
	if len(buf) == 0 {
		return fmt.Errorf("info buffer is empty")
	}
	if buf[0] == InfoTruncated {
		return fmt.Errorf("info buffer is truncated")
	}

	for pos := 0; pos < len(buf); {
		item := buf[pos]
		if item == InfoEnd {
			return nil
		}
		pos++
		if pos+2 > len(buf) {
			return fmt.Errorf("info buffer is broken: item %d has no length at offset %d", item, pos)
		}
		length := int(PortableInteger(buf[pos : pos+2]))
		pos += 2
		if pos+length > len(buf) {
			return fmt.Errorf("info buffer is broken: item %d payload of %d bytes exceeds buffer", item, length)
		}
		if err := fn(item, buf[pos:pos+length]); err != nil {
			return err
		}
		pos += length
	}

	return fmt.Errorf("info buffer is broken: no end marker")
}
