// Package decode implements the layered field decodings used inside
// vault export chunks: identity, hex, base64, and AES-256 in ECB or CBC
// mode with optional base64 wrapping and marker framing for the IV.
package decode

import "fmt"

// Encoding identifies how a field value is obscured on the wire. The
// set is closed: Decode matches exhaustively over these variants and
// anything else fails with ErrUnsupportedEncoding.
type Encoding int

const (
	// Plain is the identity encoding; it is the zero value so an
	// unspecified encoding in a schema defaults to it.
	Plain Encoding = iota
	Hex
	Base64
	// AES256 auto-detects among the ECB/CBC variants below from the
	// shape of the value. See DecodeAuto.
	AES256
	AES256ECBPlain
	AES256ECBBase64
	AES256CBCPlain
	AES256CBCBase64
)

var encodingTags = map[Encoding]string{
	Plain:           "plain",
	Hex:             "hex",
	Base64:          "base64",
	AES256:          "aes256",
	AES256ECBPlain:  "aes256_ecb_plain",
	AES256ECBBase64: "aes256_ecb_base64",
	AES256CBCPlain:  "aes256_cbc_plain",
	AES256CBCBase64: "aes256_cbc_base64",
}

// String returns the wire tag for the encoding, as found in schema
// definitions.
func (e Encoding) String() string {
	if tag, ok := encodingTags[e]; ok {
		return tag
	}
	return fmt.Sprintf("encoding(%d)", int(e))
}

// ParseEncoding maps a schema tag to its Encoding. The empty string and
// "nil" both mean identity. Unknown tags fail with ErrUnsupportedEncoding
// so a typo in configuration data surfaces instead of silently passing
// values through unchanged.
func ParseEncoding(tag string) (Encoding, error) {
	switch tag {
	case "", "nil", "plain":
		return Plain, nil
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	case "aes256":
		return AES256, nil
	case "aes256_ecb_plain":
		return AES256ECBPlain, nil
	case "aes256_ecb_base64":
		return AES256ECBBase64, nil
	case "aes256_cbc_plain":
		return AES256CBCPlain, nil
	case "aes256_cbc_base64":
		return AES256CBCBase64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, tag)
	}
}
