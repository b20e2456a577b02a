package csslint

import (
	"errors"
	"fmt"
)

var (
	// ErrPathEscapesRoot is returned when a relative import climbs above the
	// importer's top-level directory. The resolved path is still usable.
	ErrPathEscapesRoot = errors.New("relative import escapes the project root")

	// ErrIO marks a file that could not be read after it was listed.
	ErrIO = errors.New("read failed")
)

// ConfigError reports a missing, unreadable or malformed tsconfig.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("could not load %s: %v (is the provided directory a TypeScript project?)", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ParseError reports a component file the front-end could not parse.
type ParseError struct {
	File   string
	Line   int // 1-based, 0 when unknown
	Column int // 0-based
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("could not parse %s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("could not parse %s: %s", e.File, e.Msg)
}
