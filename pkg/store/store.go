package store

// Store persists environment variables across sessions.
//
// Set records an unconditional assignment; calling it twice produces
// two assignments, with last-write-wins left to shell or registry
// semantics. Append logically prefixes a value ahead of the variable's
// prior value at shell-start time.
type Store interface {
	Set(name, value string) error
	Append(name, value string) error
}
