package fbwire

import "fmt"

// Slot describes one field of a message: its wire type, secondary type
// qualifier, declared byte length, decimal scale, character set, and the
// resolved positions of its data bytes and null indicator word.
type Slot struct {
	Name     string
	Alias    string
	Type     Type
	Subtype  int16
	Scale    int16
	CharSet  uint16
	Nullable bool
	Length   uint32

	// Assigned by the metadata authority.
	Offset     uint32
	NullOffset uint32
}

// end returns the first byte past the slot's data region.
func (s Slot) end() uint32 {
	return s.Offset + s.Length
}

// Descriptor is the ordered, offset-resolved layout plan for one row or
// parameter buffer. Once built it is immutable and may be shared read-only
// between the encode and decode paths.
type Descriptor struct {
	slots     []Slot
	msgLength uint32
}

// NewDescriptor validates the resolved slots and freezes them into a
// descriptor. Offsets must be monotonic and non-overlapping, and every data
// region and null indicator must fit within msgLength.
func NewDescriptor(slots []Slot, msgLength uint32) (*Descriptor, error) {
	var prevEnd uint32
	for i, s := range slots {
		if s.Offset < prevEnd {
			return nil, fmt.Errorf("slot %d: offset %d overlaps previous slot", i, s.Offset)
		}
		if s.end() > msgLength {
			return nil, fmt.Errorf("slot %d: data region [%d, %d) exceeds message length %d", i, s.Offset, s.end(), msgLength)
		}
		if s.NullOffset+2 > msgLength {
			return nil, fmt.Errorf("slot %d: null indicator at %d exceeds message length %d", i, s.NullOffset, msgLength)
		}
		prevEnd = s.end()
		if s.NullOffset+2 > prevEnd {
			prevEnd = s.NullOffset + 2
		}
	}

	frozen := make([]Slot, len(slots))
	copy(frozen, slots)
	return &Descriptor{slots: frozen, msgLength: msgLength}, nil
}

// Count returns the number of slots.
func (d *Descriptor) Count() int {
	return len(d.slots)
}

// MessageLength returns the total byte length of a buffer laid out by this
// descriptor.
func (d *Descriptor) MessageLength() uint32 {
	return d.msgLength
}

// Slot returns a copy of slot i. ok is false when i is out of range.
func (d *Descriptor) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(d.slots) {
		return Slot{}, false
	}
	return d.slots[i], true
}

// Names returns the field names in slot order.
func (d *Descriptor) Names() []string {
	names := make([]string, len(d.slots))
	for i, s := range d.slots {
		names[i] = s.Name
	}
	return names
}

// Aliases returns the field aliases in slot order.
func (d *Descriptor) Aliases() []string {
	aliases := make([]string, len(d.slots))
	for i, s := range d.slots {
		aliases[i] = s.Alias
	}
	return aliases
}

// Types returns the wire types in slot order.
func (d *Descriptor) Types() []Type {
	types := make([]Type, len(d.slots))
	for i, s := range d.slots {
		types[i] = s.Type
	}
	return types
}
