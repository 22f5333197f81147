package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	base64_ "resortfront/internal/utils/base64"
	"resortfront/internal/utils/logger"

	"golang.org/x/crypto/nacl/secretbox"
)

var log = logger.New("crypto")

var sealKey *[32]byte

// InitializeKeys loads the secretbox key used to seal upstream bearer
// tokens before they are written to redis.
func InitializeKeys(sealKeyEnv string) error {
	log.Info("Initializing keys")

	if sealKeyEnv == "" {
		return errors.New("seal key not found")
	}

	raw, err := base64_.DecodeFromBase64(sealKeyEnv)
	if err != nil {
		return fmt.Errorf("failed to decode seal key: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("seal key must be 32 bytes, got %d", len(raw))
	}

	key := new([32]byte)
	copy(key[:], raw)
	sealKey = key
	return nil
}

// Seal encrypts plaintext with the configured key. The nonce is prepended
// to the ciphertext and the whole blob is base64 encoded.
func Seal(plaintext string) (string, error) {
	if sealKey == nil {
		return "", errors.New("seal key not initialized")
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, sealKey)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a blob produced by Seal.
func Open(sealed string) (string, error) {
	if sealKey == nil {
		return "", errors.New("seal key not initialized")
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	if len(raw) < 24 {
		return "", errors.New("sealed blob too short")
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	plaintext, ok := secretbox.Open(nil, raw[24:], &nonce, sealKey)
	if !ok {
		return "", errors.New("failed to open sealed blob")
	}
	return string(plaintext), nil
}
