package lsb

import "errors"

// HeaderBits is the number of channel bytes used for the payload length header.
const HeaderBits = 32

const (
	bitsPerByte = 8
	// rgbaChannels is the number of channels per pixel assumed by ColorOnly.
	rgbaChannels  = 4
	colorChannels = 3
)

var (
	ErrCapacityExceeded = errors.New("carrier too small to hold payload")
	ErrTruncatedStream  = errors.New("embedded stream is truncated")
)

// Embedder embeds and extracts payloads with a particular channel eligibility policy.
// An Embedder holds no state between calls, and is safe for concurrent use as long as each call gets its own channel slice.
type Embedder struct {
	colorOnly bool
}

type EmbedderOpt = func(*Embedder) error

// ColorOnly skips every fourth channel byte, which is alpha in an RGBA layout.
// This lowers capacity by a quarter, but leaves transparency untouched.
func ColorOnly() EmbedderOpt {
	return func(e *Embedder) error {
		e.colorOnly = true
		return nil
	}
}

// AllChannels makes every channel byte eligible, which is the default.
func AllChannels() EmbedderOpt {
	return func(e *Embedder) error {
		e.colorOnly = false
		return nil
	}
}

// NewEmbedder creates an Embedder using the options provided as zero or more EmbedderOpt.
func NewEmbedder(opts ...EmbedderOpt) (*Embedder, error) {
	e := new(Embedder)
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// eligible returns how many of channelCount bytes may carry a bit.
func (e *Embedder) eligible(channelCount int) int {
	if channelCount <= 0 {
		return 0
	}
	if !e.colorOnly {
		return channelCount
	}
	return channelCount/rgbaChannels*colorChannels + min(channelCount%rgbaChannels, colorChannels)
}

// index maps the position of a bit in the stream to the channel byte that carries it.
func (e *Embedder) index(pos int) int {
	if !e.colorOnly {
		return pos
	}
	return pos/colorChannels*rgbaChannels + pos%colorChannels
}

// Capacity returns the largest payload, in bytes, that fits in channelCount channel bytes.
func (e *Embedder) Capacity(channelCount int) int {
	avail := e.eligible(channelCount) - HeaderBits
	if avail <= 0 {
		return 0
	}
	return avail / bitsPerByte
}
