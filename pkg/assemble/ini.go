package assemble

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadINI reads an INI file into the flat composite-key form: each value in
// section [Section] becomes a "Section.key" entry, and keys in the default
// section stay bare. A key repeated within a section (shadowing) becomes a
// run of subscripted entries in file order, which the slicer reassembles
// into a sequence.
func LoadINI(path string) (map[string]any, error) {
	f, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, path)
	if err != nil {
		return nil, fmt.Errorf("loading INI %s: %w", path, err)
	}
	return flattenFile(f), nil
}

// ParseINI is LoadINI over an in-memory document.
func ParseINI(src []byte) (map[string]any, error) {
	f, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, src)
	if err != nil {
		return nil, fmt.Errorf("parsing INI: %w", err)
	}
	return flattenFile(f), nil
}

func flattenFile(f *ini.File) map[string]any {
	out := make(map[string]any)
	for _, section := range f.Sections() {
		for _, key := range section.Keys() {
			name := key.Name()
			if section.Name() != ini.DefaultSection {
				name = section.Name() + "." + name
			}
			values := key.ValueWithShadows()
			if len(values) <= 1 {
				out[name] = key.Value()
				continue
			}
			width := len(fmt.Sprint(len(values) - 1))
			for i, v := range values {
				out[fmt.Sprintf("%s[%0*d]", name, width, i)] = v
			}
		}
	}
	return out
}
