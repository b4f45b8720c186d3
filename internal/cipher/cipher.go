package cipher

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrInvalidKey        = errors.New("invalid_credential_key")
	ErrInvalidCiphertext = errors.New("invalid_ciphertext")
)

// CredentialCipher encrypts stored third-party credentials (SMTP passwords,
// payment client ids) at rest. It is constructed once and injected into the
// services that need it.
type CredentialCipher struct {
	key []byte
}

// New builds a cipher from a 32-byte key encoded as hex or base64.
func New(encodedKey string) (*CredentialCipher, error) {
	key, err := decodeKey(encodedKey)
	if err != nil {
		return nil, err
	}
	return &CredentialCipher{key: key}, nil
}

// NewEphemeral builds a cipher with a random process-local key. Credentials
// written under an ephemeral key are unreadable after restart, so it is only
// suitable for development.
func NewEphemeral() (*CredentialCipher, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return &CredentialCipher{key: key}, nil
}

// Encrypt seals plaintext and returns a base64 token with the nonce prepended.
func (c *CredentialCipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a token produced by Encrypt.
func (c *CredentialCipher) Decrypt(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	return string(plaintext), nil
}

func decodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, ErrInvalidKey
	}
	if key, err := hex.DecodeString(encoded); err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	if key, err := base64.StdEncoding.DecodeString(encoded); err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	return nil, ErrInvalidKey
}
