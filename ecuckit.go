// Package ecuckit holds shared metadata for the ecuckit toolchain.
package ecuckit

// Version is the current ecuckit release.
const Version = "0.1.0"
