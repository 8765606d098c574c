// Package paths provides centralized path handling for envperm.
// It resolves the user's home directory, names the profile files the
// profile store tries in order, and locates the log file under the
// XDG state directory.
package paths
