// Package target defines the protocol a merge destination must expose so
// that sliced attributes can be combined into it generically: field lookup
// by name, a coarse shape classification, a current-value read and a setter.
//
// Concrete plugin types may implement Target directly; Reflect synthesizes
// the protocol over any struct pointer.
package target

// Shape classifies a field's declared shape for merge decisions.
type Shape int

const (
	// ShapeScalar is any field that is neither a sequence nor textual.
	ShapeScalar Shape = iota
	// ShapeSequence is a slice- or array-kinded field.
	ShapeSequence
	// ShapeText is a string-kinded field.
	ShapeText
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeText:
		return "text"
	default:
		return "scalar"
	}
}

// Target is the capability protocol for object-shaped merge destinations.
// A field that exists but cannot be written must be reported as absent by
// Has; the merge layer does not distinguish not-found from not-writable.
type Target interface {
	// Has reports whether a writable field with the given name exists.
	Has(name string) bool
	// Shape returns the declared shape of the named field.
	Shape(name string) Shape
	// Get returns the field's current value.
	Get(name string) any
	// Set assigns a new value to the field.
	Set(name string, value any) error
}
