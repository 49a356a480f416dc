package blob

import (
	"encoding/binary"
	"fmt"
)

// IDLen is the length of a chunk type id in bytes.
const IDLen = 4

// Chunk is one top-level container record. Well-formed ids are four
// uppercase ASCII letters, but the codec does not enforce a charset.
// The wire size field equals len(Payload) by construction.
type Chunk struct {
	ID      string
	Payload []byte
}

// ReadChunk reads one chunk record from the stream: id(4) + size(uint32)
// + payload(size). The first failing sub-read aborts the whole read.
func ReadChunk(s *Stream) (Chunk, error) {
	id, err := s.ReadFixed(IDLen)
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk id: %w", err)
	}
	size, err := s.ReadUint32()
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk %q size: %w", id, err)
	}
	payload, err := s.ReadFixed(int(size))
	if err != nil {
		return Chunk{}, fmt.Errorf("chunk %q payload: %w", id, err)
	}
	return Chunk{ID: string(id), Payload: payload}, nil
}

// PackChunk is the exact inverse of ReadChunk.
func PackChunk(c Chunk) []byte {
	buf := make([]byte, 0, IDLen+4+len(c.Payload))
	buf = append(buf, c.ID...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(c.Payload)))
	return append(buf, c.Payload...)
}

// ReadItem reads one sub-item from a chunk payload stream: size(uint32)
// + payload(size). Items are structurally a chunk minus the id; any
// chunk payload can be treated as its own sub-stream of items.
func ReadItem(s *Stream) ([]byte, error) {
	size, err := s.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("item size: %w", err)
	}
	payload, err := s.ReadFixed(int(size))
	if err != nil {
		return nil, fmt.Errorf("item payload: %w", err)
	}
	return payload, nil
}

// PackItem is the exact inverse of ReadItem.
func PackItem(payload []byte) []byte {
	buf := make([]byte, 0, 4+len(payload))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(payload)))
	return append(buf, payload...)
}
