package decode

import "errors"

var (
	// ErrUnsupportedEncoding indicates an encoding tag outside the known
	// set. Unknown tags always fail; they are never treated as identity.
	ErrUnsupportedEncoding = errors.New("decode: unsupported encoding")

	// ErrInvalidFormat indicates the value is not valid hex, base64, or
	// CBC marker framing for the requested encoding.
	ErrInvalidFormat = errors.New("decode: invalid input format")

	// ErrDecryptFailed indicates AES decryption failed (wrong key length,
	// misaligned ciphertext, or bad PKCS#7 padding). No plaintext is
	// returned on failure.
	ErrDecryptFailed = errors.New("decode: decryption failed")
)
