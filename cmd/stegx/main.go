package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/saylorsolutions/stegx/cmd/internal"
	"github.com/saylorsolutions/stegx/internal/buildinfo"
)

var version = buildinfo.Version

type command struct {
	summary string
	run     func(args []string) error
}

var commands = map[string]command{
	"encrypt":  {"Screen files with a passcode, writing base64 text to FILE.enc", runEncrypt},
	"decrypt":  {"Reverse encrypt, writing the original bytes next to FILE.enc", runDecrypt},
	"hide":     {"Hide a message or file in the low bits of an image", runHide},
	"reveal":   {"Recover a message or file hidden with hide", runReveal},
	"capacity": {"Report how many bytes an image can hide", runCapacity},
	"passcode": {"Generate a random passcode", runPasscode},
}

// errUsage signals that usage was already printed, and the command should exit quietly.
var errUsage = errors.New("usage requested")

func usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var cmds strings.Builder
	for _, name := range names {
		_, _ = fmt.Fprintf(&cmds, "    %-10s %s\n", name, commands[name].summary)
	}
	fmt.Printf(`
stegx %s hides data in plain sight, either by screening file contents with a passcode or by embedding a payload in the pixels of an image.
Run 'stegx COMMAND --help' for the flags of a command.

USAGE:  stegx COMMAND [FLAGS] [ARGS]

COMMANDS:
%s
PASSCODE:
    Commands that need a passcode take it from the -p flag, then the %s environment variable, and finally fall back to the demonstration default.

SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
Screening with a repeating passcode is easily reversed, and decrypting with the wrong passcode silently produces garbage rather than an error.
Hidden image payloads don't survive lossy re-encoding, so images are always written as PNG or BMP.
`, version, cmds.String(), passcodeEnv)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	name := os.Args[1]
	switch name {
	case "-h", "--help", "help":
		usage()
		return
	case "-V", "--version", "version":
		internal.Echo("stegx %s", version)
		return
	}
	cmd, ok := commands[name]
	if !ok {
		usage()
		internal.Fatal("Unknown command '%s'", name)
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			return
		}
		internal.Fatal("Failed to %s: %v", name, err)
	}
}
