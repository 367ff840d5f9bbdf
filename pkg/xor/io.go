package xor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and reset the offset position within the key to its initial value.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and reset the offset position within the key to its initial value.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	r.scr.screenAll(out[:n], out[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a new Reader that will perform XOR operations on all bytes read, using the provided key, starting at offset.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	xReader := &reader{
		source: r,
		scr:    scr,
	}
	return xReader, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
	buf    []byte
}

// NewWriter constructs a new Writer that will perform XOR operations on all bytes written, using the provided key, starting at offset.
func NewWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	xWriter := &writer{
		target: target,
		scr:    scr,
	}
	return xWriter, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	if cap(w.buf) < len(in) {
		w.buf = make([]byte, len(in))
	}
	out := w.buf[:len(in)]
	w.scr.screenAll(out, in)
	return w.target.Write(out)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}

type encryptWriter struct {
	Writer
	enc io.WriteCloser
}

func (w *encryptWriter) Close() error {
	return w.enc.Close()
}

// NewEncryptWriter returns an io.WriteCloser that screens everything written with the passcode, and writes it to target as standard base64.
// The output is identical to EncryptBytes over the same input.
// Close must be called to flush any partially encoded block, but it doesn't close target.
func NewEncryptWriter(target io.Writer, passcode string) (io.WriteCloser, error) {
	enc := base64.NewEncoder(base64.StdEncoding, target)
	w, err := NewWriter(enc, []byte(passcode))
	if err != nil {
		return nil, err
	}
	return &encryptWriter{Writer: w, enc: enc}, nil
}

type decodeReader struct {
	source io.Reader
}

func (r *decodeReader) Read(out []byte) (int, error) {
	n, err := r.source.Read(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return n, err
}

// NewDecryptReader returns a Reader that decodes standard base64 from source, and reverses the screen using the passcode.
// Malformed base64 is reported as ErrDecode from Read.
func NewDecryptReader(source io.Reader, passcode string) (Reader, error) {
	dec := &decodeReader{source: base64.NewDecoder(base64.StdEncoding, source)}
	return NewReader(dec, []byte(passcode))
}
