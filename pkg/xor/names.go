package xor

import (
	"path/filepath"
	"strings"
)

const (
	// EncryptedSuffix is appended to the name of a screened file.
	EncryptedSuffix = ".enc"
	// DecryptedSuffix is appended when a file without EncryptedSuffix is decrypted, so the input isn't overwritten.
	DecryptedSuffix = ".dec"
)

// EncryptedName returns the conventional name for the screened form of name.
func EncryptedName(name string) string {
	return name + EncryptedSuffix
}

// DecryptedName strips EncryptedSuffix from name, or appends DecryptedSuffix if it's not there.
func DecryptedName(name string) string {
	trimmed := strings.TrimSuffix(name, EncryptedSuffix)
	if trimmed == name || filepath.Base(name) == EncryptedSuffix {
		return name + DecryptedSuffix
	}
	return trimmed
}
