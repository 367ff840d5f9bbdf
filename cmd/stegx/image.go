package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/saylorsolutions/stegx/cmd/internal"
	"github.com/saylorsolutions/stegx/pkg/carrier"
	"github.com/saylorsolutions/stegx/pkg/xor"
)

// imageOptions adds the flags used by hide, reveal, and capacity.
type imageOptions struct {
	*options
	input  string
	output string
	screen bool
}

func newImageOptions(name, argSyntax, description string) *imageOptions {
	opts := &imageOptions{options: newOptions(name, argSyntax, description).withColorOnly()}
	opts.flags.StringVarP(&opts.input, "input", "i", "", "Carrier image to read. PNG, BMP, GIF, and JPEG are accepted.")
	return opts
}

func (o *imageOptions) withScreen() *imageOptions {
	o.withPasscode()
	o.flags.BoolVarP(&o.screen, "screen", "s", false, "Screen the payload with the passcode, so it's not readable as-is once extracted. Implied by --passcode. Must match between hide and reveal.")
	return o
}

// parse is like options.parse, but an explicit --passcode turns on --screen.
func (o *imageOptions) parse(args []string) error {
	if err := o.options.parse(args); err != nil {
		return err
	}
	if !o.screen && o.flags.Changed("passcode") {
		o.log.Debug("Passcode given, screening the payload")
		o.screen = true
	}
	return nil
}

func (o *imageOptions) loadCarrier() (*carrier.Carrier, error) {
	if len(o.input) == 0 {
		o.flags.Usage()
		return nil, errors.New("missing required --input image")
	}
	f, err := os.Open(o.input)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	c, err := carrier.Decode(f)
	if err != nil {
		return nil, err
	}
	o.log.Debug("Loaded carrier", "path", o.input, "format", c.Format(), "width", c.Width(), "height", c.Height(), "channels", len(c.Channels()))
	return c, nil
}

func runHide(args []string) error {
	var (
		message string
		file    string
	)
	opts := newImageOptions("hide", "-i IMAGE (-m MESSAGE | -f FILE) [-o OUTPUT]",
		"Hides a message or the contents of a file in the low bits of the pixels of IMAGE.\nThe output is always written in a lossless format, PNG unless OUTPUT ends with .bmp.").withScreen()
	opts.flags.StringVarP(&message, "message", "m", "", "Message text to hide.")
	opts.flags.StringVarP(&file, "file", "f", "", "File whose contents should be hidden.")
	opts.flags.StringVarP(&opts.output, "output", "o", "", "Where to write the resulting image. Defaults to IMAGE with a '.stego.png' suffix.")
	if err := opts.parse(args); err != nil {
		return err
	}

	output := opts.output
	if len(output) == 0 {
		output = strings.TrimSuffix(opts.input, filepath.Ext(opts.input)) + ".stego.png"
	}
	format, err := carrier.FormatFromPath(output)
	if err != nil {
		return err
	}
	if !format.Lossless() {
		return fmt.Errorf("%w: refusing to write '%s'", carrier.ErrLossyFormat, output)
	}

	var payload []byte
	switch {
	case len(message) == 0 && len(file) == 0:
		opts.flags.Usage()
		return errors.New("nothing to hide, one of --message or --file is required")
	case len(message) > 0 && len(file) > 0:
		return errors.New("--message and --file are mutually exclusive")
	case len(file) > 0:
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		payload = data
	default:
		payload = []byte(message)
	}

	c, err := opts.loadCarrier()
	if err != nil {
		return err
	}
	if opts.screen {
		if payload, err = xor.Transform(payload, opts.resolvePasscode()); err != nil {
			return err
		}
	}
	emb, err := opts.embedder()
	if err != nil {
		return err
	}
	if err := emb.Embed(c.Channels(), payload); err != nil {
		return err
	}

	size, err := writeFile(output, newFileMode, func(out io.Writer) error {
		return c.Encode(out, format)
	})
	if err != nil {
		return err
	}
	internal.Echo("Hid %s in %s, wrote %s (%s)", humanize.Bytes(uint64(len(payload))), opts.input, output, humanize.Bytes(uint64(size)))
	return nil
}

func runReveal(args []string) error {
	opts := newImageOptions("reveal", "-i IMAGE [-o OUTPUT]",
		"Recovers a payload hidden with 'stegx hide'. The payload is printed to stdout unless OUTPUT is given.").withScreen()
	opts.flags.StringVarP(&opts.output, "output", "o", "", "File to write the recovered payload to.")
	if err := opts.parse(args); err != nil {
		return err
	}

	c, err := opts.loadCarrier()
	if err != nil {
		return err
	}
	emb, err := opts.embedder()
	if err != nil {
		return err
	}
	payload, err := emb.Extract(c.Channels())
	if err != nil {
		return err
	}
	if opts.screen {
		if payload, err = xor.Transform(payload, opts.resolvePasscode()); err != nil {
			return err
		}
	}
	opts.log.Debug("Extracted payload", "bytes", len(payload))

	if len(opts.output) == 0 {
		_, err = os.Stdout.Write(payload)
		return err
	}
	_, err = writeFile(opts.output, newFileMode, func(out io.Writer) error {
		_, err := out.Write(payload)
		return err
	})
	if err != nil {
		return err
	}
	internal.Echo("Recovered %s to %s", humanize.Bytes(uint64(len(payload))), opts.output)
	return nil
}

func runCapacity(args []string) error {
	opts := newImageOptions("capacity", "-i IMAGE", "Reports how large a payload IMAGE can hold.")
	if err := opts.parse(args); err != nil {
		return err
	}
	c, err := opts.loadCarrier()
	if err != nil {
		return err
	}
	emb, err := opts.embedder()
	if err != nil {
		return err
	}
	capacity := emb.Capacity(len(c.Channels()))
	fmt.Printf("%s: %dx%d %s, %s channel bytes, can hide %s (%s bytes)\n",
		opts.input, c.Width(), c.Height(), c.Format(),
		humanize.Comma(int64(len(c.Channels()))), humanize.Bytes(uint64(capacity)), humanize.Comma(int64(capacity)))
	return nil
}

func runPasscode(args []string) error {
	var length int
	opts := newOptions("passcode", "[-n LENGTH]", "Prints a random hex passcode generated from the OS entropy pool.")
	opts.flags.IntVarP(&length, "length", "n", 16, "Number of characters in the passcode.")
	if err := opts.parse(args); err != nil {
		return err
	}
	pass, err := xor.GenPasscode(length)
	if err != nil {
		return err
	}
	fmt.Println(pass)
	return nil
}
