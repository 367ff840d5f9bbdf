package lsb

import (
	"bytes"
	"encoding/binary"

	bin "github.com/saylorsolutions/binmap"
)

var endian = binary.BigEndian

func encodeHeader(bitLen uint32) ([]byte, error) {
	var buf bytes.Buffer
	if err := bin.Int(&bitLen).Write(&buf, endian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeHeader(header []byte) (uint32, error) {
	var bitLen uint32
	if err := bin.Int(&bitLen).Read(bytes.NewReader(header), endian); err != nil {
		return 0, err
	}
	return bitLen, nil
}

// writeBits writes each bit of data, MSB first, to the low bit of the channels starting at stream position pos.
// It returns the stream position after the last bit written.
func (e *Embedder) writeBits(channels []byte, pos int, data []byte) int {
	for _, b := range data {
		for shift := bitsPerByte - 1; shift >= 0; shift-- {
			idx := e.index(pos)
			channels[idx] = channels[idx]&0xFE | (b>>shift)&1
			pos++
		}
	}
	return pos
}

// readBytes collects n bytes from the low bits of channels, starting at stream position pos.
func (e *Embedder) readBytes(channels []byte, pos int, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		var b byte
		for j := 0; j < bitsPerByte; j++ {
			b = b<<1 | channels[e.index(pos)]&1
			pos++
		}
		out[i] = b
	}
	return out
}
