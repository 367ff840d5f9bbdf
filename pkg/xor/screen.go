package xor

import (
	"fmt"
)

type xorScreen struct {
	key  []byte
	init int
	cur  int
}

func newXorScreen(key []byte, offset ...int) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: cannot use empty key", ErrInvalidKey)
	}
	s := &xorScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("%w: offset %d out of range for provided key of len %d", ErrInvalidKey, offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

// screenAll screens every byte of in, writing the result to out.
// out must be at least as long as in.
func (s *xorScreen) screenAll(out, in []byte) {
	for i := 0; i < len(in); i++ {
		out[i] = s.screen(in[i])
	}
}

func (s *xorScreen) reset() {
	s.cur = s.init
}
