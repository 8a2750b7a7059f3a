package generrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrSchema indicates a schema could not be resolved or mapped.
	ErrSchema = errors.New("schema error")

	// ErrUndefinedReference indicates a $ref with no target in the document.
	ErrUndefinedReference = errors.New("undefined reference")

	// ErrNamingCollision indicates two distinct entities derived the same identifier.
	ErrNamingCollision = errors.New("naming collision")

	// ErrUnsupportedConstruct indicates a recognized-but-unimplemented construct.
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse an OpenAPI document.
// This includes YAML/JSON deserialization errors and structural issues.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SchemaError represents a schema that could not be resolved or mapped to a
// type descriptor. This includes undefined references and unsupported shapes
// such as inline anonymous objects, composition keywords, and
// additionalProperties maps.
type SchemaError struct {
	// Path is the JSON path to the offending schema (e.g., "components.schemas.Pet.properties.tags")
	Path string
	// Ref is the unresolved reference string, if the failure is an undefined reference
	Ref string
	// Construct is the triggering construct (e.g., "oneOf", "inline object", "additionalProperties")
	Construct string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Ref != "" {
		msg = "undefined reference " + e.Ref
	} else if e.Construct != "" {
		msg = "unsupported schema shape '" + e.Construct + "'"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrSchema, and also ErrUndefinedReference when Ref is set.
func (e *SchemaError) Is(target error) bool {
	if target == ErrSchema {
		return true
	}
	if target == ErrUndefinedReference && e.Ref != "" {
		return true
	}
	return false
}

// NamingCollisionError represents two distinct entities deriving an identical
// identifier. There is no defined disambiguation policy, so this is fatal.
type NamingCollisionError struct {
	// Identifier is the colliding identifier
	Identifier string
	// FirstPath is the document path of the entity that registered the identifier first
	FirstPath string
	// SecondPath is the document path of the entity whose registration collided
	SecondPath string
}

// Error returns a human-readable error message.
func (e *NamingCollisionError) Error() string {
	msg := fmt.Sprintf("naming collision on identifier %q", e.Identifier)
	if e.FirstPath != "" && e.SecondPath != "" {
		msg += fmt.Sprintf(": derived by both %s and %s", e.FirstPath, e.SecondPath)
	}
	return msg
}

// Unwrap returns nil as NamingCollisionError has no underlying cause.
func (e *NamingCollisionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NamingCollisionError) Is(target error) bool {
	return target == ErrNamingCollision
}

// UnsupportedConstructError represents a construct that is recognized but not
// implemented, such as enum-constrained strings or the catch-all "default"
// response. These fail loudly rather than being approximated.
type UnsupportedConstructError struct {
	// Path is the JSON path to the offending construct
	Path string
	// Construct names the triggering construct (e.g., "enum", "default response")
	Construct string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedConstructError) Error() string {
	msg := "unsupported construct"
	if e.Construct != "" {
		msg += " '" + e.Construct + "'"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnsupportedConstructError has no underlying cause.
func (e *UnsupportedConstructError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedConstructError) Is(target error) bool {
	return target == ErrUnsupportedConstruct
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
