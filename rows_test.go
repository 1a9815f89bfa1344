package fbwire

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// sliceSource replays pre-encoded row buffers, overwriting the caller's
// buffer in place like a live cursor does.
type sliceSource struct {
	rows   [][]byte
	pos    int
	closed bool
}

func (s *sliceSource) FetchNext(buf []byte) (bool, error) {
	if s.pos >= len(s.rows) {
		return false, nil
	}
	copy(buf, s.rows[s.pos])
	s.pos++
	return true, nil
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

func encodeRow(t *testing.T, v int32) (*Descriptor, []byte) {
	t.Helper()
	desc, buf, err := NewParams(nil).AddInt32(v).Build(StandardLayout{})
	require.NoError(t, err)
	return desc, buf
}

func TestRowsOverwriteInPlace(t *testing.T) {
	desc, row1 := encodeRow(t, 1)
	_, row2 := encodeRow(t, 2)

	src := &sliceSource{rows: [][]byte{row1, row2}}
	rows := NewRows(desc, src)

	ok, err := rows.Next()
	require.NoError(t, err)
	require.True(t, ok)

	f, err := rows.Field(0)
	require.NoError(t, err)
	v, err := f.AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(1), v)

	// Advancing overwrites the buffer; the same field view now reflects
	// the new row.
	ok, err = rows.Next()
	require.NoError(t, err)
	require.True(t, ok)
	v, err = f.AsInt32()
	require.NoError(t, err)
	require.Equal(t, int32(2), v)

	ok, err = rows.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRowsCloseReleasesSource(t *testing.T) {
	desc, row := encodeRow(t, 7)
	src := &sliceSource{rows: [][]byte{row}}
	rows := NewRows(desc, src)

	require.NoError(t, rows.Close())
	require.True(t, src.closed)

	var cerr *ContractError
	_, err := rows.Next()
	require.ErrorAs(t, err, &cerr)
	_, err = rows.Field(0)
	require.ErrorAs(t, err, &cerr)
	require.ErrorAs(t, rows.Close(), &cerr)
}

func TestRowsWithoutSource(t *testing.T) {
	desc, buf := encodeRow(t, 3)
	rows, err := NewRowsFromBuffer(desc, buf)
	require.NoError(t, err)

	var cerr *ContractError
	_, err = rows.Next()
	require.ErrorAs(t, err, &cerr)

	// Close still works and needs no source.
	require.NoError(t, rows.Close())
}

func TestRowsFromShortBuffer(t *testing.T) {
	desc, _ := encodeRow(t, 3)
	_, err := NewRowsFromBuffer(desc, make([]byte, 1))
	require.Error(t, err)
}

func TestRowsMetadata(t *testing.T) {
	desc, err := StandardLayout{}.Resolve([]Slot{
		{Name: "ID", Alias: "ID", Type: TypeInt64},
		{Name: "TITLE", Alias: "T", Type: TypeVarying, Length: 40},
	})
	require.NoError(t, err)

	rows, err := NewRowsFromBuffer(desc, make([]byte, desc.MessageLength()))
	require.NoError(t, err)
	require.Equal(t, 2, rows.Count())
	require.Equal(t, []string{"ID", "TITLE"}, rows.Names())
	require.Equal(t, []string{"ID", "T"}, rows.Aliases())
	require.Equal(t, []Type{TypeInt64, TypeVarying}, rows.Types())
}

func TestRowsCustomCalendar(t *testing.T) {
	// A custom codec must be consulted instead of the standard one.
	desc, err := StandardLayout{}.Resolve([]Slot{{Type: TypeDate}})
	require.NoError(t, err)
	buf := make([]byte, desc.MessageLength())
	s, _ := desc.Slot(0)
	binary.LittleEndian.PutUint32(buf[s.Offset:], 42)

	rows, err := NewRowsFromBuffer(desc, buf, RowsCalendar(constCalendar{}))
	require.NoError(t, err)
	f, err := rows.Field(0)
	require.NoError(t, err)
	d, err := f.AsDate()
	require.NoError(t, err)
	require.Equal(t, Date{Year: 1, Month: 2, Day: 3}, d)
}

func TestRowsEngineErrorWrapping(t *testing.T) {
	cause := errors.New("cursor is not open")
	desc, _ := encodeRow(t, 1)
	rows := NewRows(desc, &failSource{failWith: cause}, RowsDiagnostics(prefixDiag{}))

	_, err := rows.Next()
	var eerr *EngineError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, "engine: cursor is not open", eerr.Error())
	require.ErrorIs(t, err, cause)

	err = rows.Close()
	require.ErrorAs(t, err, &eerr)
	require.ErrorIs(t, err, cause)
}

// failSource reports the same engine failure from every call.
type failSource struct {
	failWith error
}

func (s *failSource) FetchNext([]byte) (bool, error) { return false, s.failWith }
func (s *failSource) Close() error                   { return s.failWith }

type constCalendar struct{}

func (constCalendar) EncodeDate(Date) int32       { return 0 }
func (constCalendar) DecodeDate(int32) Date       { return Date{Year: 1, Month: 2, Day: 3} }
func (constCalendar) EncodeTime(TimeOfDay) uint32 { return 0 }
func (constCalendar) DecodeTime(uint32) TimeOfDay { return TimeOfDay{} }
