// Package assemble builds flat parent-configuration maps for the slicer
// from nested maps and INI files. The slicer itself accepts any
// map[string]any; this package only covers the common sources.
package assemble

import "fmt"

// Flatten converts a nested configuration map into the flat composite-key
// form the slicer consumes. Nested map keys join with "."; slice values
// become subscripted entries ("servers[0]", "servers[1]", ...) so that
// element order survives a round trip through a slice. Subscripts are
// zero-padded to a fixed width because the slicer orders fragments by the
// lexical order of the whole key.
//
// An empty prefix emits keys as-is; a non-empty prefix is prepended with a
// "." joint, qualifying every key for one plugin.
func Flatten(data map[string]any, prefix string) map[string]any {
	out := make(map[string]any)
	flattenInto(out, data, prefix)
	return out
}

func flattenInto(out map[string]any, data map[string]any, prefix string) {
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenInto(out, v, full)
		case []any:
			width := len(fmt.Sprint(len(v) - 1))
			for i, item := range v {
				out[fmt.Sprintf("%s[%0*d]", full, width, i)] = item
			}
		default:
			out[full] = value
		}
	}
}
