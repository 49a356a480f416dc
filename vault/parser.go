// Package vault decodes vault export blobs: it extracts the chunk
// container, applies per-chunk-type schemas to split payloads into
// named items, and reverses each item's field encoding.
//
// The caller supplies the base64 export text and the 32-byte encryption
// key; retrieving the blob and deriving the key from credentials belong
// to the surrounding application.
package vault

import (
	"encoding/base64"
	"fmt"

	"github.com/bitfsorg/libvault-go/blob"
	"github.com/bitfsorg/libvault-go/decode"
)

// ItemSpec names one schema item and the encoding its payload is
// obscured with. The zero Encoding is decode.Plain, so an unspecified
// encoding means identity.
type ItemSpec struct {
	Name     string
	Encoding decode.Encoding
}

// Record maps item names to decoded payloads for one chunk. Records are
// not mutated by the library once returned.
type Record map[string][]byte

// Result is the decoded chunk map. Records holds one entry per payload
// of every registered chunk id, in payload order. Raw holds the
// untouched payloads of unregistered ids when the registry retains
// them.
type Result struct {
	Records map[string][]Record
	Raw     map[string][][]byte
}

// ParseItem reads a single item from the stream and decodes its payload.
func ParseItem(s *blob.Stream, enc decode.Encoding, key []byte) ([]byte, error) {
	payload, err := blob.ReadItem(s)
	if err != nil {
		return nil, err
	}
	return decode.Decode(payload, enc, key)
}

// ParseItemizedChunk reads exactly one item per spec, in order, and
// decodes each payload per its spec. Bytes remaining in the stream
// after the last spec are left unconsumed for the caller; payloads with
// trailing data not modeled by the schema are therefore fine.
func ParseItemizedChunk(s *blob.Stream, specs []ItemSpec, key []byte) (Record, error) {
	record := make(Record, len(specs))
	for _, spec := range specs {
		value, err := ParseItem(s, spec.Encoding, key)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", spec.Name, err)
		}
		record[spec.Name] = value
	}
	return record, nil
}

// Registry associates chunk type ids with item schemas. Populate it
// once at startup; it is read-only during parsing and safe for
// concurrent readers. New chunk types are supported by registering a
// schema, not by changing the extractor or codecs.
type Registry struct {
	schemas map[string][]ItemSpec

	// retainRaw controls what happens to chunk ids without a schema:
	// retained as raw payloads in Result.Raw, or omitted.
	retainRaw bool
}

// NewRegistry returns an empty registry that omits unregistered ids.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string][]ItemSpec)}
}

// Register associates a chunk id with its ordered item schema,
// replacing any previous schema for that id.
func (r *Registry) Register(id string, specs []ItemSpec) {
	r.schemas[id] = specs
}

// RetainUnregistered sets whether chunk ids without a schema appear in
// Result.Raw (true) or are dropped from the result (false, default).
func (r *Registry) RetainUnregistered(retain bool) {
	r.retainRaw = retain
}

// ParseChunks applies the registered schemas to extracted chunk
// payloads. Each payload of a registered id is wrapped in a fresh
// stream and itemized: one Record per payload, in payload order. Any
// decode failure aborts the whole parse.
func (r *Registry) ParseChunks(raw map[string][][]byte, key []byte) (*Result, error) {
	result := &Result{Records: make(map[string][]Record)}
	if r.retainRaw {
		result.Raw = make(map[string][][]byte)
	}
	for id, payloads := range raw {
		specs, ok := r.schemas[id]
		if !ok {
			if r.retainRaw {
				result.Raw[id] = payloads
			}
			continue
		}
		records := make([]Record, 0, len(payloads))
		for i, payload := range payloads {
			record, err := ParseItemizedChunk(blob.NewStream(payload), specs, key)
			if err != nil {
				return nil, fmt.Errorf("vault: chunk %s[%d]: %w", id, i, err)
			}
			records = append(records, record)
		}
		result.Records[id] = records
	}
	return result, nil
}

// Parse is the top-level entry point: it base64-decodes the export
// text, extracts the chunk container, and applies the registry's
// schemas. The key must be the caller's 32-byte AES-256 key; it is not
// retained.
func (r *Registry) Parse(blobText string, key []byte) (*Result, error) {
	data, err := base64.StdEncoding.DecodeString(blobText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlob, err)
	}
	raw, err := blob.ExtractChunks(data)
	if err != nil {
		return nil, fmt.Errorf("vault: extract: %w", err)
	}
	return r.ParseChunks(raw, key)
}
