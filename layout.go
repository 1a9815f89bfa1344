package fbwire

import "fmt"

// StandardLayout is the in-process MetadataAuthority. It lays slots out the
// way the engine does: each data region aligned to its type's natural
// alignment, immediately followed by a 2-byte null indicator word aligned
// to 2. Slot order is preserved.
type StandardLayout struct{}

func (StandardLayout) Resolve(slots []Slot) (*Descriptor, error) {
	resolved := make([]Slot, len(slots))
	var pos uint32

	for i, s := range slots {
		length := s.Length
		if length == 0 && s.Type != TypeText && s.Type != TypeVarying {
			// Zero is an explicit length only for the variable-length
			// types; everything else takes its natural width.
			length = s.Type.Size()
			if length == 0 {
				return nil, fmt.Errorf("slot %d: type %s has no defined size", i, s.Type)
			}
		}
		if s.Type == TypeVarying {
			// Declared length covers the payload; the count word precedes it.
			length += 2
		}

		s.Length = length
		s.Offset = align(pos, s.Type.Alignment())
		pos = s.Offset + length
		s.NullOffset = align(pos, 2)
		pos = s.NullOffset + 2
		resolved[i] = s
	}

	return NewDescriptor(resolved, pos)
}

func align(pos, alignment uint32) uint32 {
	if alignment <= 1 {
		return pos
	}
	rem := pos % alignment
	if rem == 0 {
		return pos
	}
	return pos + alignment - rem
}
