package decode

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
)

const (
	// KeyLen is the required AES-256 key length in bytes.
	KeyLen = 32

	aesBlockSize = aes.BlockSize

	// CBC marker framing: '!' || base64(IV) || '|' || base64(ciphertext).
	markerByte    = '!'
	separatorByte = '|'
)

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeyLen {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrDecryptFailed, KeyLen, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return block, nil
}

// decryptECB decrypts raw AES-256-ECB ciphertext and strips PKCS#7
// padding. ECB has no stdlib mode wrapper, so blocks are decrypted one
// at a time. Empty ciphertext decrypts to empty plaintext.
func decryptECB(ciphertext, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return []byte{}, nil
	}
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext)%aesBlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d not a multiple of %d", ErrDecryptFailed, len(ciphertext), aesBlockSize)
	}
	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += aesBlockSize {
		block.Decrypt(plaintext[i:i+aesBlockSize], ciphertext[i:i+aesBlockSize])
	}
	return stripPKCS7(plaintext)
}

// decryptCBCPlain decrypts a value laid out as IV(16 bytes) ||
// ciphertext and strips PKCS#7 padding. Empty input decrypts to empty
// plaintext.
func decryptCBCPlain(value, key []byte) ([]byte, error) {
	if len(value) == 0 {
		return []byte{}, nil
	}
	if len(value) < aesBlockSize {
		return nil, fmt.Errorf("%w: value too short for IV", ErrDecryptFailed)
	}
	return decryptCBC(value[aesBlockSize:], value[:aesBlockSize], key)
}

// decryptCBCBase64 decrypts a value in CBC marker framing:
// '!' || base64(IV) || '|' || base64(ciphertext).
func decryptCBCBase64(value, key []byte) ([]byte, error) {
	if len(value) == 0 {
		return []byte{}, nil
	}
	if value[0] != markerByte {
		return nil, fmt.Errorf("%w: missing %q marker", ErrInvalidFormat, markerByte)
	}
	sep := bytes.IndexByte(value, separatorByte)
	if sep < 0 {
		return nil, fmt.Errorf("%w: missing %q separator", ErrInvalidFormat, separatorByte)
	}
	iv, err := base64.StdEncoding.DecodeString(string(value[1:sep]))
	if err != nil {
		return nil, fmt.Errorf("%w: base64 IV: %w", ErrInvalidFormat, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(string(value[sep+1:]))
	if err != nil {
		return nil, fmt.Errorf("%w: base64 ciphertext: %w", ErrInvalidFormat, err)
	}
	return decryptCBC(ciphertext, iv, key)
}

func decryptCBC(ciphertext, iv, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return []byte{}, nil
	}
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != aesBlockSize {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d", ErrDecryptFailed, aesBlockSize, len(iv))
	}
	if len(ciphertext)%aesBlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d not a multiple of %d", ErrDecryptFailed, len(ciphertext), aesBlockSize)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return stripPKCS7(plaintext)
}

// stripPKCS7 validates and removes PKCS#7 padding. Every padding byte
// must equal the padding length, which must be in [1, block size];
// anything else means a wrong key or tampered ciphertext and nothing is
// returned.
func stripPKCS7(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 || len(plaintext)%aesBlockSize != 0 {
		return nil, fmt.Errorf("%w: bad padded length %d", ErrDecryptFailed, len(plaintext))
	}
	n := int(plaintext[len(plaintext)-1])
	if n == 0 || n > aesBlockSize {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryptFailed)
	}
	for _, b := range plaintext[len(plaintext)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrDecryptFailed)
		}
	}
	return plaintext[:len(plaintext)-n], nil
}
