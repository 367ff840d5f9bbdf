package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/saylorsolutions/stegx/cmd/internal"
	"github.com/saylorsolutions/stegx/pkg/xor"
)

// fileOptions adds the flags used by encrypt and decrypt.
type fileOptions struct {
	*options
	parallel int
	quiet    bool
}

func newFileOptions(name, description string) *fileOptions {
	opts := &fileOptions{options: newOptions(name, "FILE...", description).withPasscode()}
	opts.flags.IntVarP(&opts.parallel, "parallel", "j", runtime.NumCPU(), "Number of files to process at once.")
	opts.flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-error output.")
	return opts
}

func runEncrypt(args []string) error {
	opts := newFileOptions("encrypt", "Screens each FILE with the passcode, and writes the result as base64 text to FILE"+xor.EncryptedSuffix+".")
	if err := opts.parse(args); err != nil {
		return err
	}
	return opts.processFiles(xor.EncryptedName, encryptFile)
}

func runDecrypt(args []string) error {
	opts := newFileOptions("decrypt", "Reverses encrypt for each FILE, writing the original bytes to FILE with the "+xor.EncryptedSuffix+" suffix removed.\nA wrong passcode will NOT be detected, the output will just be garbage.")
	if err := opts.parse(args); err != nil {
		return err
	}
	return opts.processFiles(xor.DecryptedName, decryptFile)
}

type fileProcessor = func(in io.Reader, out io.Writer, passcode string) error

// processFiles runs proc over every positional argument, with at most parallel files in flight.
// Every file is attempted, and all failures are reported together.
func (o *fileOptions) processFiles(outputName func(string) string, proc fileProcessor) error {
	files := o.flags.Args()
	if len(files) == 0 {
		o.flags.Usage()
		return errors.New("missing required FILE argument")
	}
	if o.parallel < 1 {
		o.parallel = 1
	}
	passcode := o.resolvePasscode()

	var (
		group errgroup.Group
		errs  = make([]error, len(files))
	)
	group.SetLimit(o.parallel)
	for i, file := range files {
		group.Go(func() error {
			output := outputName(file)
			o.log.Debug("Processing file", "input", file, "output", output)
			info, err := os.Stat(file)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", file, err)
				return nil
			}
			size, err := writeFile(output, info.Mode().Perm(), func(out io.Writer) error {
				in, err := os.Open(file)
				if err != nil {
					return err
				}
				defer func() {
					_ = in.Close()
				}()
				return proc(in, out, passcode)
			})
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", file, err)
				return nil
			}
			if !o.quiet {
				internal.Echo("%s -> %s (%s)", file, output, humanize.Bytes(uint64(size)))
			}
			return nil
		})
	}
	_ = group.Wait()
	return errors.Join(errs...)
}

func encryptFile(in io.Reader, out io.Writer, passcode string) error {
	w, err := xor.NewEncryptWriter(out, passcode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, in); err != nil {
		return err
	}
	return w.Close()
}

func decryptFile(in io.Reader, out io.Writer, passcode string) error {
	r, err := xor.NewDecryptReader(in, passcode)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	return err
}

// newFileMode is used for outputs that aren't derived from an input file's permissions.
const newFileMode os.FileMode = 0o644

// writeFile writes to a temporary file next to path, and only renames it into place with the given permissions if write succeeds.
// The size of the written file is returned.
func writeFile(path string, perm os.FileMode, write func(out io.Writer) error) (size int64, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".stegx-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return 0, err
	}
	if size, err = tmp.Seek(0, io.SeekCurrent); err != nil {
		return 0, err
	}
	if err = tmp.Chmod(perm); err != nil {
		return 0, err
	}
	if err = tmp.Close(); err != nil {
		return 0, err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, err
	}
	return size, nil
}
