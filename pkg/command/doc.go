// Package command provides subprocess and environment implementations
// for envperm.
//
// This package contains the OS-backed implementations of the
// types.Runner and types.Environment interfaces used by the native
// store on Windows.
package command
