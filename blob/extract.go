package blob

import "fmt"

// ExtractChunks reads chunk records back to back until the buffer is
// exhausted and groups their payloads by id, preserving first-to-last
// encounter order within each id. The whole buffer must be consumed:
// a dangling partial chunk fails the extraction with ErrTruncatedChunk
// and no partial result.
func ExtractChunks(data []byte) (map[string][][]byte, error) {
	chunks := make(map[string][][]byte)
	s := NewStream(data)
	for !s.AtEnd() {
		c, err := ReadChunk(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedChunk, err)
		}
		chunks[c.ID] = append(chunks[c.ID], c.Payload)
	}
	return chunks, nil
}
