package slicer

import (
	"errors"
	"fmt"
)

// Common errors returned by the slicer.
var (
	// ErrUnrecognizedPluginSpec is returned when a plugin identity is neither
	// an ordered (name, class, config) triple nor a named plugin object.
	ErrUnrecognizedPluginSpec = errors.New("unrecognized plugin specification")

	// ErrAttributeNotFound is returned when a sliced attribute has no
	// corresponding writable field on the merge target.
	ErrAttributeNotFound = errors.New("attribute not found on merge target")

	// ErrUnsupportedTarget is returned when a merge target is neither a plain
	// map nor an object that can expose settable fields.
	ErrUnsupportedTarget = errors.New("unsupported merge target")
)

// AttributeNotFoundError reports which attribute of which plugin could not
// be merged. It wraps ErrAttributeNotFound.
type AttributeNotFoundError struct {
	// Plugin is the name of the plugin being merged into.
	Plugin string
	// Class is the plugin's class/package identifier.
	Class string
	// Attribute is the sliced attribute with no matching field.
	Attribute string
}

// Error implements the error interface.
func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("plugin %s (%s) has no writable attribute %q", e.Plugin, e.Class, e.Attribute)
}

// Unwrap returns the sentinel ErrAttributeNotFound.
func (e *AttributeNotFoundError) Unwrap() error { return ErrAttributeNotFound }

// NewAttributeNotFoundError creates a new AttributeNotFoundError.
func NewAttributeNotFoundError(plugin, class, attribute string) *AttributeNotFoundError {
	return &AttributeNotFoundError{
		Plugin:    plugin,
		Class:     class,
		Attribute: attribute,
	}
}
