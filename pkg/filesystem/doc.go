// Package filesystem provides filesystem implementations for envperm.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used by the profile store.
package filesystem
