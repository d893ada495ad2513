package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ErrDecrypt is returned for every decryption failure. Tampered data, a
// wrong key, and malformed input are deliberately indistinguishable.
var ErrDecrypt = errors.New("bank data decryption failed")

const (
	keyLength      = 32
	kdfIterations  = 100_000
	kdfSalt        = "paydispatch-bank-data-v1"
	gcmNonceLength = 12
	minBlobLength  = gcmNonceLength + 16
)

// Cipher encrypts sensitive bank fields with AES-256-GCM. The key is
// derived once from the configured secret; the struct is read-only after
// construction and safe for concurrent use.
type Cipher struct {
	key []byte
}

func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("bank data secret is required")
	}
	key := pbkdf2.Key([]byte(secret), []byte(kdfSalt), kdfIterations, keyLength, sha256.New)
	return &Cipher{key: key}, nil
}

// EncryptString seals plaintext with a fresh random nonce and returns
// base64(nonce || ciphertext || tag).
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcmNonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString reverses EncryptString. Any failure reports ErrDecrypt.
func (c *Cipher) DecryptString(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", ErrDecrypt
	}
	if len(raw) < minBlobLength {
		return "", ErrDecrypt
	}
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}
	plain, err := gcm.Open(nil, raw[:gcmNonceLength], raw[gcmNonceLength:], nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plain), nil
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
