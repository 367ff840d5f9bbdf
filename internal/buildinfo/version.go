// Package buildinfo holds release metadata shared by the stegx binary and its build script.
package buildinfo

// Version is the current stegx release.
// The build script also stamps it into cmd/stegx, so a plain "go build" reports the same value.
const Version = "0.1.0"
