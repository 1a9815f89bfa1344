package fbwire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// memTransport is an in-memory BlobTransport keeping each stored segment
// separate, the way the engine does.
type memTransport struct {
	segments [][]byte
	readSeg  int
	readOff  int
	closed   bool
	failWith error
}

func (m *memTransport) PutSegment(seg []byte) error {
	if m.failWith != nil {
		return m.failWith
	}
	stored := make([]byte, len(seg))
	copy(stored, seg)
	m.segments = append(m.segments, stored)
	return nil
}

func (m *memTransport) GetSegment(n int) ([]byte, bool, error) {
	if m.failWith != nil {
		return nil, false, m.failWith
	}
	if m.readSeg >= len(m.segments) {
		return nil, true, nil
	}

	seg := m.segments[m.readSeg]
	end := m.readOff + n
	if end >= len(seg) {
		end = len(seg)
	}
	data := seg[m.readOff:end]

	if end == len(seg) {
		m.readSeg++
		m.readOff = 0
	} else {
		m.readOff = end
	}
	final := m.readSeg >= len(m.segments)
	return data, final, nil
}

func (m *memTransport) GetInfo(items []byte) ([]byte, error) {
	if len(items) == 0 {
		return nil, errors.New("empty items")
	}
	var value int64
	switch items[0] {
	case InfoBlobNumSegments:
		value = int64(len(m.segments))
	case InfoBlobMaxSegment:
		for _, seg := range m.segments {
			if int64(len(seg)) > value {
				value = int64(len(seg))
			}
		}
	case InfoBlobTotalLength:
		for _, seg := range m.segments {
			value += int64(len(seg))
		}
	case InfoBlobType:
		value = 1
	default:
		return nil, errors.New("unknown item")
	}

	return []byte{
		items[0], 4, 0,
		byte(value), byte(value >> 8), byte(value >> 16), byte(value >> 24),
		InfoEnd,
	}, nil
}

func (m *memTransport) Close() error {
	m.closed = true
	return nil
}

func TestBlobLargeRoundTrip(t *testing.T) {
	// 70000 bytes exceed two full segments, so the write must split into at
	// least three ordered transfers and read-all must reassemble exactly.
	payload := make([]byte, 70000)
	for i := range payload {
		payload[i] = byte(i * 31)
	}

	tr := &memTransport{}
	w := NewBlob(tr, QuadID{}, BlobWrite)
	require.NoError(t, w.Put(payload))
	require.NoError(t, w.Close())
	require.True(t, tr.closed)

	require.GreaterOrEqual(t, len(tr.segments), 3)
	for _, seg := range tr.segments {
		require.LessOrEqual(t, len(seg), MaxSegment)
	}

	tr.closed = false
	r := NewBlob(tr, QuadID{High: 0, Low: 1}, BlobRead)
	got, err := r.GetAll()
	require.NoError(t, err)
	require.True(t, bytes.Equal(payload, got))
	require.NoError(t, r.Close())
}

func TestBlobSmallPutSingleSegment(t *testing.T) {
	tr := &memTransport{}
	w := NewBlob(tr, QuadID{}, BlobWrite)
	require.NoError(t, w.PutString("tiny"))
	require.Len(t, tr.segments, 1)
	require.NoError(t, w.Close())
}

func TestBlobGetReturnsWhatEngineProduced(t *testing.T) {
	tr := &memTransport{segments: [][]byte{[]byte("abcdef")}}
	r := NewBlob(tr, QuadID{}, BlobRead)
	defer r.Close()

	// The engine may return less than requested.
	data, err := r.Get(4)
	require.NoError(t, err)
	require.Equal(t, []byte("abcd"), data)

	data, err = r.Get(100)
	require.NoError(t, err)
	require.Equal(t, []byte("ef"), data)
}

func TestBlobGetString(t *testing.T) {
	tr := &memTransport{segments: [][]byte{[]byte("hello, "), []byte("world")}}
	r := NewBlob(tr, QuadID{}, BlobRead)
	defer r.Close()

	s, err := r.GetString()
	require.NoError(t, err)
	require.Equal(t, "hello, world", s)
}

func TestBlobInfoQueries(t *testing.T) {
	tr := &memTransport{segments: [][]byte{make([]byte, 100), make([]byte, 250)}}
	r := NewBlob(tr, QuadID{}, BlobRead)
	defer r.Close()

	n, err := r.NumSegments()
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	m, err := r.MaxSegmentSize()
	require.NoError(t, err)
	require.EqualValues(t, 250, m)

	total, err := r.TotalLength()
	require.NoError(t, err)
	require.EqualValues(t, 350, total)

	sub, err := r.BlobType()
	require.NoError(t, err)
	require.EqualValues(t, 1, sub)
}

func TestBlobModeViolations(t *testing.T) {
	var cerr *ContractError

	w := NewBlob(&memTransport{}, QuadID{}, BlobWrite)
	_, err := w.GetAll()
	require.ErrorAs(t, err, &cerr)
	require.NoError(t, w.Close())

	r := NewBlob(&memTransport{}, QuadID{}, BlobRead)
	require.ErrorAs(t, r.Put([]byte("x")), &cerr)
	require.NoError(t, r.Close())
}

func TestBlobClosedUse(t *testing.T) {
	b := NewBlob(&memTransport{}, QuadID{}, BlobWrite)
	require.NoError(t, b.Close())

	var cerr *ContractError
	require.ErrorAs(t, b.Put([]byte("x")), &cerr)
	_, err := b.NumSegments()
	require.ErrorAs(t, err, &cerr)
	require.ErrorAs(t, b.Close(), &cerr)
}

func TestBlobEngineErrorWrapping(t *testing.T) {
	cause := errors.New("conversion error from string BLOB")
	tr := &memTransport{failWith: cause}
	w := NewBlob(tr, QuadID{}, BlobWrite, BlobDiagnostics(prefixDiag{}))

	err := w.Put([]byte("x"))
	var eerr *EngineError
	require.ErrorAs(t, err, &eerr)
	require.Equal(t, "engine: conversion error from string BLOB", eerr.Error())
	require.ErrorIs(t, err, cause)
}

type prefixDiag struct{}

func (prefixDiag) Format(cause error) string { return "engine: " + cause.Error() }
