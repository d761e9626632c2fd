package target

import (
	"fmt"
	"reflect"
	"strings"
)

// Reflect synthesizes a Target over a struct pointer using reflection.
// Attribute names resolve to fields in this order: a `config` struct tag,
// the exact field name, then a case-insensitive field name. Only exported,
// settable fields are visible.
func Reflect(v any) (Target, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("reflect target must be a non-nil struct pointer, got %T", v)
	}
	return &reflectTarget{v: rv.Elem()}, nil
}

type reflectTarget struct {
	v reflect.Value
}

// field resolves an attribute name to a settable struct field. A field
// tagged `config:"-"` is invisible to every resolution step.
func (t *reflectTarget) field(name string) (reflect.Value, bool) {
	typ := t.v.Type()
	for i := 0; i < typ.NumField(); i++ {
		tag, ok := typ.Field(i).Tag.Lookup("config")
		if !ok {
			continue
		}
		if tagName, _, _ := strings.Cut(tag, ","); tagName == name && tagName != "-" {
			return settable(t.v.Field(i))
		}
	}
	if sf, ok := typ.FieldByName(name); ok && !excluded(sf) {
		return settable(t.v.FieldByIndex(sf.Index))
	}
	if sf, ok := typ.FieldByNameFunc(func(n string) bool {
		return strings.EqualFold(n, name)
	}); ok && !excluded(sf) {
		return settable(t.v.FieldByIndex(sf.Index))
	}
	return reflect.Value{}, false
}

func excluded(sf reflect.StructField) bool {
	tagName, _, _ := strings.Cut(sf.Tag.Get("config"), ",")
	return tagName == "-"
}

func settable(fv reflect.Value) (reflect.Value, bool) {
	if !fv.CanSet() {
		return reflect.Value{}, false
	}
	return fv, true
}

// Has implements Target.
func (t *reflectTarget) Has(name string) bool {
	_, ok := t.field(name)
	return ok
}

// Shape implements Target. Slice and array fields are sequences, string
// fields are textual, everything else is scalar.
func (t *reflectTarget) Shape(name string) Shape {
	fv, ok := t.field(name)
	if !ok {
		return ShapeScalar
	}
	switch fv.Kind() {
	case reflect.Slice, reflect.Array:
		return ShapeSequence
	case reflect.String:
		return ShapeText
	default:
		return ShapeScalar
	}
}

// Get implements Target.
func (t *reflectTarget) Get(name string) any {
	fv, ok := t.field(name)
	if !ok {
		return nil
	}
	return fv.Interface()
}

// Set implements Target, converting the value to the field's type where the
// conversion is lossless in kind (numeric to numeric) and building typed
// slices element-wise for sequence fields.
func (t *reflectTarget) Set(name string, value any) error {
	fv, ok := t.field(name)
	if !ok {
		return fmt.Errorf("no settable field %q on %s", name, t.v.Type())
	}
	return assign(fv, value)
}

func assign(fv reflect.Value, value any) error {
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if rv.Type().AssignableTo(fv.Type()) {
		fv.Set(rv)
		return nil
	}
	if fv.Kind() == reflect.Slice && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		elem := fv.Type().Elem()
		out := reflect.MakeSlice(fv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev := rv.Index(i)
			if ev.Kind() == reflect.Interface {
				ev = ev.Elem()
			}
			converted, ok := convert(ev, elem)
			if !ok {
				return fmt.Errorf("cannot assign element %d (%s) to sequence of %s", i, ev.Type(), elem)
			}
			out.Index(i).Set(converted)
		}
		fv.Set(out)
		return nil
	}
	if converted, ok := convert(rv, fv.Type()); ok {
		fv.Set(converted)
		return nil
	}
	return fmt.Errorf("cannot assign %s to field of type %s", rv.Type(), fv.Type())
}

// convert permits assignment as-is and numeric-to-numeric conversion.
// Cross-kind conversions such as int-to-string are rejected: Go would
// produce a rune string, which is never what a configuration value means.
func convert(rv reflect.Value, to reflect.Type) (reflect.Value, bool) {
	if rv.Type().AssignableTo(to) {
		return rv, true
	}
	if isNumeric(rv.Kind()) && isNumeric(to.Kind()) && rv.Type().ConvertibleTo(to) {
		return rv.Convert(to), true
	}
	return reflect.Value{}, false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
