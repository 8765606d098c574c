package main

import (
	_ "embed"
	"strings"
)

// Templates
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Permanently set or append environment variables"
	MsgSetShort    = "Persist a variable without checking if it exists"
	MsgAppendShort = "Prefix a value ahead of a variable's prior value"
	MsgEnsureShort = "Persist a default value only when the variable is unset"

	// Status messages
	MsgSetDone    = "Persisted %s\n"
	MsgAppendDone = "Appended to %s\n"
	MsgEnsureDone = "Ensured %s\n"

	// Error messages
	MsgErrSet    = "failed to set %s: %w"
	MsgErrAppend = "failed to append to %s: %w"
	MsgErrEnsure = "failed to ensure %s: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)

// Long messages
const (
	MsgRootLong = `envperm permanently sets or appends environment variables. On POSIX
systems it appends export lines to your shell profile (.bash_profile,
.bash_login or .profile, whichever exists first); on Windows it invokes
setx so the value survives across sessions.`

	MsgSetLong = `Set appends an export line (or invokes setx) without checking whether
the variable already exists. Calling it twice leaves two assignments;
which one wins is up to your shell or the registry.`

	MsgAppendLong = `Append persists VALUE prefixed ahead of the variable's prior value,
which is how PATH-like variables are extended. On POSIX the written
line references the variable itself ($NAME), expanded by the shell at
startup; on Windows the current process value is read and combined.`

	MsgEnsureLong = `Ensure checks whether the variable is set in the current environment.
If it is, nothing happens; if not, the default value is persisted the
same way set would.`
)
