package blob

import (
	"bytes"
	"testing"
)

// FuzzExtractChunks ensures the extractor never panics and either
// consumes the whole buffer or fails.
func FuzzExtractChunks(f *testing.F) {
	f.Add([]byte{})
	// One complete chunk.
	f.Add(PackChunk(Chunk{ID: "TEST", Payload: []byte("0123456789")}))
	// Dangling id.
	f.Add([]byte("AC"))
	// Size larger than the remaining buffer.
	f.Add([]byte("ACCT\xFF\xFF\xFF\xFF"))
	// Two chunks back to back.
	f.Add(append(
		PackChunk(Chunk{ID: "LPAV", Payload: []byte("9")}),
		PackChunk(Chunk{ID: "ENDM", Payload: nil})...,
	))

	f.Fuzz(func(t *testing.T, data []byte) {
		chunks, err := ExtractChunks(data)
		if err != nil {
			return
		}
		total := 0
		for id, payloads := range chunks {
			if len(id) != IDLen {
				t.Fatalf("chunk id %q has length %d", id, len(id))
			}
			for _, p := range payloads {
				total += IDLen + 4 + len(p)
			}
		}
		if total != len(data) {
			t.Fatalf("consumed %d of %d bytes", total, len(data))
		}
	})
}

// FuzzItemRoundTrip verifies pack/read inversion for arbitrary payloads.
func FuzzItemRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("payload"))
	f.Add(bytes.Repeat([]byte{0xFF}, 100))

	f.Fuzz(func(t *testing.T, payload []byte) {
		s := NewStream(PackItem(payload))
		got, err := ReadItem(s)
		if err != nil {
			t.Fatalf("round trip failed: %v", err)
		}
		if !bytes.Equal(payload, got) {
			t.Fatalf("payload mismatch: %x != %x", payload, got)
		}
		if !s.AtEnd() {
			t.Fatalf("%d bytes left over", s.Remaining())
		}
	})
}
