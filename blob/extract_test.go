package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBlob(chunks ...Chunk) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, PackChunk(c)...)
	}
	return out
}

func TestExtractChunks(t *testing.T) {
	data := buildBlob(
		Chunk{ID: "LPAV", Payload: []byte("9")},
		Chunk{ID: "ACCT", Payload: []byte("first")},
		Chunk{ID: "ACCT", Payload: []byte("second")},
		Chunk{ID: "ENDM", Payload: []byte("OK")},
	)

	chunks, err := ExtractChunks(data)
	require.NoError(t, err)
	assert.Len(t, chunks, 3)

	// Per-id payload order follows encounter order.
	require.Len(t, chunks["ACCT"], 2)
	assert.Equal(t, "first", string(chunks["ACCT"][0]))
	assert.Equal(t, "second", string(chunks["ACCT"][1]))
	assert.Equal(t, "9", string(chunks["LPAV"][0]))
	assert.Equal(t, "OK", string(chunks["ENDM"][0]))
}

func TestExtractChunks_Empty(t *testing.T) {
	chunks, err := ExtractChunks(nil)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

// Repacking every extracted chunk in original order reconstructs the
// input exactly: extraction consumes the whole buffer with no slack.
func TestExtractChunks_Totality(t *testing.T) {
	original := []Chunk{
		{ID: "LPAV", Payload: []byte("9")},
		{ID: "ACCT", Payload: []byte("one")},
		{ID: "ACCT", Payload: []byte("two")},
	}
	data := buildBlob(original...)

	chunks, err := ExtractChunks(data)
	require.NoError(t, err)

	consumed := 0
	for _, payloads := range chunks {
		for _, p := range payloads {
			consumed += IDLen + 4 + len(p)
		}
	}
	assert.Equal(t, len(data), consumed)
}

func TestExtractChunks_RepackReconstructs(t *testing.T) {
	// Single-id blob, so per-id payload order is the full chunk order.
	data := buildBlob(
		Chunk{ID: "ACCT", Payload: []byte("one")},
		Chunk{ID: "ACCT", Payload: []byte("two")},
		Chunk{ID: "ACCT", Payload: []byte{}},
	)

	chunks, err := ExtractChunks(data)
	require.NoError(t, err)

	var repacked []byte
	for _, p := range chunks["ACCT"] {
		repacked = append(repacked, PackChunk(Chunk{ID: "ACCT", Payload: p})...)
	}
	assert.Equal(t, data, repacked)
}

func TestExtractChunks_Truncated(t *testing.T) {
	data := buildBlob(
		Chunk{ID: "ACCT", Payload: []byte("complete")},
	)

	tests := []struct {
		name  string
		extra []byte
	}{
		{"dangling id", []byte("AC")},
		{"dangling size", []byte("ACCT\x00\x00")},
		{"dangling payload", []byte("ACCT\x00\x00\x00\x08short")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := ExtractChunks(append(data, tt.extra...))
			assert.ErrorIs(t, err, ErrTruncatedChunk)
			assert.ErrorIs(t, err, ErrStreamUnderflow)
			assert.Nil(t, chunks)
		})
	}
}
