package decode

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Decode returns the plaintext of value under the given encoding. The
// key is required only by the AES variants and must be exactly 32 raw
// bytes; it is never mutated or retained. The switch is exhaustive over
// the Encoding set; an out-of-range value (e.g. from corrupted
// configuration data) fails with ErrUnsupportedEncoding.
func Decode(value []byte, enc Encoding, key []byte) ([]byte, error) {
	switch enc {
	case Plain:
		return value, nil
	case Hex:
		out, err := hex.DecodeString(string(value))
		if err != nil {
			return nil, fmt.Errorf("%w: hex: %w", ErrInvalidFormat, err)
		}
		return out, nil
	case Base64:
		out, err := base64.StdEncoding.DecodeString(string(value))
		if err != nil {
			return nil, fmt.Errorf("%w: base64: %w", ErrInvalidFormat, err)
		}
		return out, nil
	case AES256:
		return DecodeAuto(value, key)
	case AES256ECBPlain:
		return decryptECB(value, key)
	case AES256ECBBase64:
		ct, err := base64.StdEncoding.DecodeString(string(value))
		if err != nil {
			return nil, fmt.Errorf("%w: base64 ciphertext: %w", ErrInvalidFormat, err)
		}
		return decryptECB(ct, key)
	case AES256CBCPlain:
		return decryptCBCPlain(value, key)
	case AES256CBCBase64:
		return decryptCBCBase64(value, key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, enc)
	}
}

// DecodeAuto is the generic aes256 mode: it infers the concrete AES
// variant from the shape of the value.
//
// Priority, on ambiguous inputs:
//  1. empty value decodes to empty plaintext;
//  2. a leading '!' with a '|' somewhere after it is CBC marker framing
//     ("!<base64 IV>|<base64 ciphertext>");
//  3. a value that strictly decodes as padded base64 into a non-empty
//     16-byte-aligned ciphertext is base64-wrapped ECB;
//  4. anything else is raw ECB ciphertext.
//
// Raw ciphertext whose bytes happen to form valid base64 text of
// aligned decoded length is taken as case 3. Callers that know the
// concrete variant should request it explicitly instead.
func DecodeAuto(value []byte, key []byte) ([]byte, error) {
	if len(value) == 0 {
		return []byte{}, nil
	}
	if value[0] == markerByte && bytes.IndexByte(value, separatorByte) > 0 {
		return decryptCBCBase64(value, key)
	}
	if ct, err := base64.StdEncoding.Strict().DecodeString(string(value)); err == nil {
		if len(ct) > 0 && len(ct)%aesBlockSize == 0 {
			return decryptECB(ct, key)
		}
	}
	return decryptECB(value, key)
}
