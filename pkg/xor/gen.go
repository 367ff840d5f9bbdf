package xor

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// GenKey will generate an XOR key with the given length.
func GenKey(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("failed to read requested bytes: %w", err)
	}
	return buf, nil
}

func GenKeyAndOffset(length int) ([]byte, int, error) {
	key, err := GenKey(length)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, 0, err
	}
	return key, int(binary.BigEndian.Uint32(buf) % uint32(length)), nil
}

// GenPasscode generates a random passcode of length hex characters, suitable for Transform.
func GenPasscode(length int) (string, error) {
	key, err := GenKey((length + 1) / 2)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key)[:length], nil
}
