package xor

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// DefaultPasscode is used by callers that weren't given a passcode.
const DefaultPasscode = "1234"

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrDecode     = errors.New("unable to decode cipher text")
)

// PasscodeOrDefault returns passcode, or DefaultPasscode if passcode is empty.
func PasscodeOrDefault(passcode string) string {
	if len(passcode) == 0 {
		return DefaultPasscode
	}
	return passcode
}

// Transform will XOR each byte of data with the passcode, repeating the passcode as needed.
// The input is not modified.
// Transform is its own inverse, so calling it again with the same passcode will restore the original data.
func Transform(data []byte, passcode string) ([]byte, error) {
	scr, err := newXorScreen([]byte(passcode))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	scr.screenAll(out, data)
	return out, nil
}

// EncryptBytes screens data with the passcode and returns it as standard base64.
func EncryptBytes(data []byte, passcode string) (string, error) {
	screened, err := Transform(data, passcode)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(screened), nil
}

// DecryptBytes reverses EncryptBytes.
// A wrong passcode doesn't produce an error, just the wrong bytes.
func DecryptBytes(cipherText string, passcode string) ([]byte, error) {
	if len(passcode) == 0 {
		return nil, fmt.Errorf("%w: cannot use empty passcode", ErrInvalidKey)
	}
	raw, err := base64.StdEncoding.DecodeString(cipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Transform(raw, passcode)
}

// Encrypt screens the UTF-8 bytes of text with the passcode and returns standard base64.
func Encrypt(text string, passcode string) (string, error) {
	return EncryptBytes([]byte(text), passcode)
}

// Decrypt reverses Encrypt.
// As with DecryptBytes, a wrong passcode silently produces garbage.
func Decrypt(cipherText string, passcode string) (string, error) {
	data, err := DecryptBytes(cipherText, passcode)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
