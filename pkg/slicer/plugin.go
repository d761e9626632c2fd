package slicer

import (
	"fmt"
	"reflect"
)

// Plugin is implemented by live plugin objects that expose their own name.
// For such objects the class identifier is the object's runtime type name
// and the object itself serves as the merge target.
type Plugin interface {
	PluginName() string
}

// PluginSpec is the explicit (name, class, config) form of a plugin
// identity. Config may be a map[string]any, an object with settable fields,
// or nil (Merge then allocates a fresh map).
type PluginSpec struct {
	// Name is the plugin's configured name, possibly bundle-qualified.
	Name string
	// Class is the plugin's class/package identifier.
	Class string
	// Config is the existing configuration to merge into.
	Config any
}

// PluginInfo normalizes a plugin identity into its (name, class, target)
// triple. It accepts a PluginSpec (by value or pointer), a three-element
// []any of the shape {name, class, target}, or any value implementing
// Plugin. Anything else fails with an error wrapping
// ErrUnrecognizedPluginSpec.
func PluginInfo(v any) (name, class string, target any, err error) {
	switch p := v.(type) {
	case PluginSpec:
		return p.Name, p.Class, p.Config, nil
	case *PluginSpec:
		if p != nil {
			return p.Name, p.Class, p.Config, nil
		}
	case []any:
		if len(p) == 3 {
			n, nameOK := p[0].(string)
			c, classOK := p[1].(string)
			if nameOK && classOK {
				return n, c, p[2], nil
			}
		}
	}
	if p, ok := v.(Plugin); ok {
		return p.PluginName(), reflect.TypeOf(v).String(), v, nil
	}
	return "", "", nil, fmt.Errorf("%w: %T", ErrUnrecognizedPluginSpec, v)
}
