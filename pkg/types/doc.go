// Package types defines the core interfaces used throughout envperm.
// This includes the FS interface for profile file access, the Runner
// interface for one-shot subprocess invocation, and the Environment
// interface for process environment lookups.
package types
