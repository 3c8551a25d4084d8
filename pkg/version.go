// Package app holds application-wide version metadata set at build time.
package app

var (
	// Version is the application version, set via ldflags at build time.
	Version = "v0.1.0"

	// Build is the build timestamp, set via ldflags at build time.
	Build = "n/a"
)
