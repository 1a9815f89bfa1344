package fbwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func charsetRows(t *testing.T, charset uint16, payload []byte, opts ...RowsOption) *Rows {
	t.Helper()
	desc, err := StandardLayout{}.Resolve([]Slot{{
		Type:    TypeText,
		Length:  uint32(len(payload)),
		CharSet: charset,
	}})
	require.NoError(t, err)

	buf := make([]byte, desc.MessageLength())
	s, _ := desc.Slot(0)
	copy(buf[s.Offset:], payload)

	rows, err := NewRowsFromBuffer(desc, buf, opts...)
	require.NoError(t, err)
	return rows
}

func TestCharsetDecodeWin1251(t *testing.T) {
	// "да" in WIN1251
	payload := []byte{0xe4, 0xe0}
	rows := charsetRows(t, CharSetWin1251, payload, DecodeCharsets())

	f, err := rows.Field(0)
	require.NoError(t, err)
	got, err := f.AsString()
	require.NoError(t, err)
	require.Equal(t, "да", got)
}

func TestCharsetDecodeLatin1(t *testing.T) {
	payload := []byte{0x63, 0x61, 0x66, 0xe9} // "café" in ISO 8859-1
	rows := charsetRows(t, CharSetLatin1, payload, DecodeCharsets())

	f, err := rows.Field(0)
	require.NoError(t, err)
	got, err := f.AsString()
	require.NoError(t, err)
	require.Equal(t, "café", got)
}

func TestCharsetPassThroughWhenDisabled(t *testing.T) {
	payload := []byte{0xe4, 0xe0}
	rows := charsetRows(t, CharSetWin1251, payload)

	f, err := rows.Field(0)
	require.NoError(t, err)
	got, err := f.AsString()
	require.NoError(t, err)
	require.Equal(t, string(payload), got)
}

func TestCharsetUnknownIDPassesThrough(t *testing.T) {
	payload := []byte("plain")
	rows := charsetRows(t, 999, payload, DecodeCharsets())

	f, err := rows.Field(0)
	require.NoError(t, err)
	got, err := f.AsString()
	require.NoError(t, err)
	require.Equal(t, "plain", got)
}
