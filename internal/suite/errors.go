package suite

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel wrapped by every configuration error
// raised at freeze time. Use errors.Is to detect configuration failure
// regardless of the concrete cause, and errors.As for the cause itself.
var ErrConfiguration = errors.New("suite: invalid configuration")

// MissingSettingError reports a required setting that was neither
// provided nor covered by a default.
type MissingSettingError struct {
	Name Name
}

// Error implements the error interface.
func (e *MissingSettingError) Error() string {
	return fmt.Sprintf("suite: missing required setting %q", e.Name)
}

// Unwrap returns ErrConfiguration.
func (e *MissingSettingError) Unwrap() error { return ErrConfiguration }

// TypeMismatchError reports a setting whose value does not match its
// declared kind.
type TypeMismatchError struct {
	Name Name
	Want Kind
	Got  string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("suite: setting %q: want %s, got %s", e.Name, e.Want, e.Got)
}

// Unwrap returns ErrConfiguration.
func (e *TypeMismatchError) Unwrap() error { return ErrConfiguration }

// InconsistentExpansionError reports list-valued settings that disagree
// on their length, so no single expansion length exists.
type InconsistentExpansionError struct {
	Name  Name // offending setting
	Len   int  // its list length
	Want  int  // expansion length established earlier
	First Name // setting that established Want
}

// Error implements the error interface.
func (e *InconsistentExpansionError) Error() string {
	return fmt.Sprintf("suite: setting %q has %d values, want %d (established by %q)",
		e.Name, e.Len, e.Want, e.First)
}

// Unwrap returns ErrConfiguration.
func (e *InconsistentExpansionError) Unwrap() error { return ErrConfiguration }

// UnknownSettingError reports a setting name outside the fixed schema.
type UnknownSettingError struct {
	Name Name
}

// Error implements the error interface.
func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("suite: unknown setting %q", e.Name)
}

// Unwrap returns ErrConfiguration.
func (e *UnknownSettingError) Unwrap() error { return ErrConfiguration }
