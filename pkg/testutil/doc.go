// Package testutil provides test doubles for envperm.
//
// It contains an in-memory types.FS with error injection for profile
// store tests, a fake types.Runner that records invocations for native
// store tests, and a fake types.Environment with preset variables.
package testutil
