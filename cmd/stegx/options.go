package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/saylorsolutions/stegx/cmd/internal"
	"github.com/saylorsolutions/stegx/pkg/lsb"
	"github.com/saylorsolutions/stegx/pkg/xor"
)

const passcodeEnv = "STEGX_PASSCODE"

// options holds the flags shared by every command.
type options struct {
	help      bool
	verbose   bool
	passcode  string
	colorOnly bool

	flags *flag.FlagSet
	log   *slog.Logger
}

// newOptions creates the FlagSet for a command with the shared flags already registered.
func newOptions(name, argSyntax, description string) *options {
	opts := new(options)
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enables diagnostic logging to stderr.")
	flags.Usage = func() {
		fmt.Printf(`
%s

USAGE:  stegx %s %s

FLAGS:
%s`, description, name, argSyntax, flags.FlagUsages())
	}
	opts.flags = flags
	return opts
}

func (o *options) withPasscode() *options {
	o.flags.StringVarP(&o.passcode, "passcode", "p", "", fmt.Sprintf("Passcode used to screen data. Defaults to $%s, or '%s' if that's unset.", passcodeEnv, xor.DefaultPasscode))
	return o
}

func (o *options) withColorOnly() *options {
	o.flags.BoolVarP(&o.colorOnly, "color-only", "C", false, "Leave the alpha channel alone, only hiding bits in red, green, and blue. Must match between hide and reveal.")
	return o
}

// parse parses args, and returns errUsage if help was requested.
func (o *options) parse(args []string) error {
	if err := o.flags.Parse(args); err != nil {
		o.flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if o.help {
		o.flags.Usage()
		return errUsage
	}
	o.log = internal.NewLogger(os.Stderr, o.verbose)
	return nil
}

// resolvePasscode picks the passcode from the flag, then the environment, then the default.
func (o *options) resolvePasscode() string {
	if len(o.passcode) > 0 {
		return o.passcode
	}
	if env, ok := os.LookupEnv(passcodeEnv); ok && len(env) > 0 {
		o.log.Debug("Using passcode from environment", "var", passcodeEnv)
		return env
	}
	o.log.Warn("No passcode given, using the demonstration default")
	return xor.PasscodeOrDefault("")
}

func (o *options) embedder() (*lsb.Embedder, error) {
	if o.colorOnly {
		return lsb.NewEmbedder(lsb.ColorOnly())
	}
	return lsb.NewEmbedder(lsb.AllChannels())
}
