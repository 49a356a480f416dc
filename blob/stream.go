// Package blob implements the binary container format of vault exports:
// a sequence of tagged, length-prefixed chunks, each payload optionally
// carrying its own sequence of length-prefixed items.
//
// Wire format (big-endian throughout):
//
//	chunk := id(4 bytes ASCII) || size(uint32) || payload(size bytes)
//	item  := size(uint32) || payload(size bytes)
package blob

import (
	"encoding/binary"
	"fmt"
)

// Stream is a forward-only cursor over an in-memory byte slice.
// Reads either consume exactly what they ask for or fail with
// ErrStreamUnderflow, leaving the cursor unchanged. A Stream never
// copies payload bytes; returned slices alias the underlying buffer.
type Stream struct {
	data []byte
	off  int
}

// NewStream returns a Stream positioned at the start of data.
func NewStream(data []byte) *Stream {
	return &Stream{data: data}
}

// ReadFixed consumes exactly n bytes and returns them.
func (s *Stream) ReadFixed(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read length %d", ErrStreamUnderflow, n)
	}
	if n > len(s.data)-s.off {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrStreamUnderflow, n, len(s.data)-s.off)
	}
	out := s.data[s.off : s.off+n]
	s.off += n
	return out, nil
}

// ReadUint32 consumes 4 bytes and returns their big-endian unsigned value.
func (s *Stream) ReadUint32() (uint32, error) {
	b, err := s.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// AtEnd reports whether the stream has no bytes left.
func (s *Stream) AtEnd() bool {
	return s.off == len(s.data)
}

// Remaining returns the number of unconsumed bytes.
func (s *Stream) Remaining() int {
	return len(s.data) - s.off
}
