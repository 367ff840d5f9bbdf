// Package carrier converts raster images to and from the flat channel byte view used by package lsb.
//
// Any registered format may be decoded, but only lossless formats may be written.
// Writing a carrier as JPEG, for example, would destroy the embedded payload.
package carrier

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Format is an image format name, as reported by image.Decode.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

var (
	ErrLossyFormat   = errors.New("format can't store pixels losslessly")
	ErrUnknownFormat = errors.New("unknown image format")
)

// Carrier is a decoded image held as non-premultiplied RGBA, so every channel byte round-trips through a lossless encoder unchanged.
type Carrier struct {
	img    *image.NRGBA
	format Format
}

// Decode reads an image in any registered format.
// Images that aren't already NRGBA are converted, which is the only point where pixel values may change.
func Decode(r io.Reader) (*Carrier, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode carrier image: %w", err)
	}
	img, ok := src.(*image.NRGBA)
	if !ok || img.Rect.Min != (image.Point{}) {
		bounds := src.Bounds()
		img = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	}
	return &Carrier{img: img, format: Format(format)}, nil
}

// New creates a fully transparent carrier with the given dimensions.
func New(width, height int) *Carrier {
	return &Carrier{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		format: FormatPNG,
	}
}

// Channels returns the flat channel bytes of the carrier, 4 per pixel in R, G, B, A order.
// The slice aliases the carrier's pixels, so changes are reflected in Encode.
func (c *Carrier) Channels() []byte {
	return c.img.Pix
}

func (c *Carrier) Width() int {
	return c.img.Rect.Dx()
}

func (c *Carrier) Height() int {
	return c.img.Rect.Dy()
}

// Format is the format the carrier was decoded from.
func (c *Carrier) Format() Format {
	return c.format
}

// Image exposes the underlying image.
func (c *Carrier) Image() image.Image {
	return c.img
}

// OutputFormat returns the carrier's own format if it's lossless, and FormatPNG otherwise.
func (c *Carrier) OutputFormat() Format {
	if c.format.Lossless() {
		return c.format
	}
	return FormatPNG
}

// Encode writes the carrier to w in the given format.
// ErrLossyFormat is returned for formats that would alter channel bytes.
func (c *Carrier) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, c.img)
	case FormatBMP:
		return bmp.Encode(w, c.img)
	case "":
		return ErrUnknownFormat
	default:
		return fmt.Errorf("%w: '%s'", ErrLossyFormat, format)
	}
}

// Lossless reports whether Encode supports the format.
func (f Format) Lossless() bool {
	return f == FormatPNG || f == FormatBMP
}

// FormatFromPath maps the extension of path to a Format.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "jpg", "jpeg":
		return Format("jpeg"), nil
	case "gif":
		return Format("gif"), nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
	}
}
