package fbwire

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Engine character set ids carried in a slot's CharSet. Only single-byte
// sets that need transcoding are listed; NONE, OCTETS, ASCII and UTF8 pass
// through as-is.
const (
	CharSetNone    uint16 = 0
	CharSetOctets  uint16 = 1
	CharSetASCII   uint16 = 2
	CharSetUTF8    uint16 = 4
	CharSetDOS437  uint16 = 10
	CharSetLatin1  uint16 = 21
	CharSetWin1251 uint16 = 52
	CharSetWin1252 uint16 = 53
)

var charSetEncodings = map[uint16]encoding.Encoding{
	CharSetDOS437:  charmap.CodePage437,
	CharSetLatin1:  charmap.ISO8859_1,
	CharSetWin1251: charmap.Windows1251,
	CharSetWin1252: charmap.Windows1252,
}

// transcode converts column bytes to a UTF-8 string. Without the
// DecodeCharsets option, or for an id with no registered encoding, the
// bytes pass through unchanged.
func (f Field) transcode(data []byte) (string, error) {
	if !f.rows.charsets {
		return string(data), nil
	}
	enc, ok := charSetEncodings[f.slot.CharSet]
	if !ok {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode character set %d: %w", f.slot.CharSet, err)
	}
	return string(out), nil
}
