package asciishader

import "fmt"

// ConfigError reports a degenerate or contradictory parameter. The offending
// value is carried so diagnostics can show it.
type ConfigError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("asciishader: bad %s %q: %s", e.Param, fmt.Sprint(e.Value), e.Reason)
}

// ResourceError reports an image or font that could not be read or decoded.
type ResourceError struct {
	Resource string
	Err      error
}

func (e ResourceError) Error() string {
	return fmt.Sprintf("asciishader: %s: %v", e.Resource, e.Err)
}

func (e ResourceError) Unwrap() error { return e.Err }

// WriteError reports a failure on the output sink.
type WriteError struct {
	Err error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("asciishader: write: %v", e.Err)
}

func (e WriteError) Unwrap() error { return e.Err }
