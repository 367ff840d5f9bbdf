package lsb

import (
	"fmt"
	"math"
)

var defaultEmbedder = new(Embedder)

// Embed hides payload in the low bits of channels, modifying channels in place.
// See Embedder.Embed.
func Embed(channels []byte, payload []byte) error {
	return defaultEmbedder.Embed(channels, payload)
}

// EmbedCopy is like Embed, but leaves channels unchanged and returns a modified copy.
func EmbedCopy(channels []byte, payload []byte) ([]byte, error) {
	return defaultEmbedder.EmbedCopy(channels, payload)
}

// Extract recovers a payload hidden with Embed.
// See Embedder.Extract.
func Extract(channels []byte) ([]byte, error) {
	return defaultEmbedder.Extract(channels)
}

// ExtractString recovers a payload hidden with Embed, with each byte as one code unit of the string.
func ExtractString(channels []byte) (string, error) {
	return defaultEmbedder.ExtractString(channels)
}

// Capacity returns the largest payload in bytes that Embed can fit in channelCount channel bytes.
func Capacity(channelCount int) int {
	return defaultEmbedder.Capacity(channelCount)
}

// Embed writes the length header and payload to the low bits of the eligible channel bytes, in place.
// If the header and payload need more channel bytes than are eligible, then ErrCapacityExceeded is returned and channels is not modified.
// Filling the carrier exactly is allowed, and an empty payload results in only a zero header being written.
func (e *Embedder) Embed(channels []byte, payload []byte) error {
	bitLen := uint64(len(payload)) * bitsPerByte
	avail := uint64(e.eligible(len(channels)))
	if bitLen > math.MaxUint32 || HeaderBits+bitLen > avail {
		return fmt.Errorf("%w: need %d channel bytes for a %d byte payload, but only %d are available",
			ErrCapacityExceeded, HeaderBits+bitLen, len(payload), avail)
	}
	header, err := encodeHeader(uint32(bitLen))
	if err != nil {
		return err
	}
	pos := e.writeBits(channels, 0, header)
	e.writeBits(channels, pos, payload)
	return nil
}

// EmbedCopy is like Embed, but leaves channels unchanged and returns a modified copy.
func (e *Embedder) EmbedCopy(channels []byte, payload []byte) ([]byte, error) {
	out := make([]byte, len(channels))
	copy(out, channels)
	if err := e.Embed(out, payload); err != nil {
		return nil, err
	}
	return out, nil
}

// Extract reads the length header from the low bits of channels, then the payload bits that follow it.
// ErrTruncatedStream is returned if the header can't be read, or if it claims more bits than channels holds.
// A header that isn't a multiple of 8 has its trailing partial byte dropped.
func (e *Embedder) Extract(channels []byte) ([]byte, error) {
	avail := uint64(e.eligible(len(channels)))
	if avail < HeaderBits {
		return nil, fmt.Errorf("%w: %d channel bytes can't hold a %d bit header", ErrTruncatedStream, avail, HeaderBits)
	}
	bitLen, err := decodeHeader(e.readBytes(channels, 0, HeaderBits/bitsPerByte))
	if err != nil {
		return nil, err
	}
	if HeaderBits+uint64(bitLen) > avail {
		return nil, fmt.Errorf("%w: header claims %d payload bits, but only %d are available",
			ErrTruncatedStream, bitLen, avail-HeaderBits)
	}
	return e.readBytes(channels, HeaderBits, int(bitLen/bitsPerByte)), nil
}

// ExtractString is like Extract, but returns the payload bytes as a string, one byte per code unit.
func (e *Embedder) ExtractString(channels []byte) (string, error) {
	payload, err := e.Extract(channels)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
