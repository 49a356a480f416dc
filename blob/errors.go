package blob

import "errors"

var (
	// ErrStreamUnderflow indicates a read needed more bytes than remain
	// in the stream. The cursor is left where it was before the read.
	ErrStreamUnderflow = errors.New("blob: stream underflow")

	// ErrTruncatedChunk indicates the buffer ends in the middle of a
	// chunk record, so the container cannot be extracted as a whole.
	ErrTruncatedChunk = errors.New("blob: truncated chunk at end of buffer")
)
