package slicer

import (
	"fmt"
	"reflect"

	"github.com/wehubfusion/Daedalus/pkg/slicer/target"
)

// isSequence reports whether a value is slice- or array-shaped.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// sequenceValues normalizes any slice or array into []any.
func sequenceValues(v any) []any {
	if vs, ok := v.([]any); ok {
		return vs
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// truthy implements the weak-truthiness check the merge rules depend on:
// nil, false, empty strings, numeric zero and empty sequences all count as
// absent. A falsy-but-present previous value is therefore overwritten, not
// combined; this mirrors the legacy semantics.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// updateEntry applies the array-merge rule to one destination key.
// Array-building engages when forceArray is set, when the destination
// already holds a sequence, or when the new value is itself a sequence; an
// existing scalar is wrapped into a one-element sequence first and new
// elements append in processing order. Otherwise the value overwrites
// outright.
func updateEntry(dst map[string]any, key string, value any, forceArray bool) {
	existing, exists := dst[key]
	if !forceArray && !isSequence(value) && (!exists || !isSequence(existing)) {
		dst[key] = value
		return
	}
	var seq []any
	if exists {
		if isSequence(existing) {
			seq = append(seq, sequenceValues(existing)...)
		} else {
			seq = append(seq, existing)
		}
	}
	if isSequence(value) {
		seq = append(seq, sequenceValues(value)...)
	} else {
		seq = append(seq, value)
	}
	dst[key] = seq
}

// mergeAttribute combines one sliced value into an object-shaped target
// field. The caller has already checked that the field exists.
func mergeAttribute(t target.Target, attr string, value any, join string, haveJoin bool) error {
	prev := t.Get(attr)
	switch {
	case truthy(prev) && isSequence(prev):
		seq := sequenceValues(prev)
		if isSequence(value) {
			seq = append(seq, sequenceValues(value)...)
		} else {
			seq = append(seq, value)
		}
		return t.Set(attr, seq)
	case isSequence(value):
		var seq []any
		if truthy(prev) {
			seq = append(seq, prev)
		}
		seq = append(seq, sequenceValues(value)...)
		return t.Set(attr, seq)
	case truthy(prev) && haveJoin && t.Shape(attr) == target.ShapeText:
		return t.Set(attr, fmt.Sprintf("%v%s%v", prev, join, value))
	case truthy(prev):
		return t.Set(attr, value)
	default:
		if t.Shape(attr) == target.ShapeSequence {
			return t.Set(attr, []any{value})
		}
		return t.Set(attr, value)
	}
}
