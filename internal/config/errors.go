package config

import (
	"errors"
	"fmt"
)

// Reasons an argument list is rejected. Use errors.Is against a *UsageError.
var (
	ErrNoOption          = errors.New("please provide an option")
	ErrExtraArgs         = errors.New("cannot process other option or argument")
	ErrInputRequired     = errors.New("input option must be provided with <file> or <folder> argument")
	ErrMissingArgument   = errors.New("missing option argument")
	ErrMissingStylesheet = errors.New("missing option argument: provide CSS links to add")
)

// UsageError reports a malformed or contradictory command line.
type UsageError struct {
	Flag string // Offending flag, if the rule is tied to one
	Err  error  // One of the Err* reasons above
}

func (e *UsageError) Error() string {
	if e.Flag == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Flag, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// FileAccessError reports a configuration file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config file: %v", e.Err)
	}
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ConfigParseError reports configuration file content that is not a valid object,
// or a recognised key holding a value of the wrong type.
type ConfigParseError struct {
	Path string
	Key  string // Set when a single key is at fault
	Err  error
}

func (e *ConfigParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("parsing config file %s: key %q: %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// errNoConfigPath is wrapped in a FileAccessError when -c has no path after it.
var errNoConfigPath = errors.New("no path given")
