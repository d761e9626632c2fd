package slicer

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Default pattern fragments for composite key parsing.
const (
	// DefaultPrefix is spliced before the qualifier capture. Empty by default.
	DefaultPrefix = ""

	// DefaultSeparator splits a key into qualifier and attribute on the first
	// literal dot. Both captures are non-greedy; because the full pattern is
	// anchored and the bracket suffix is optional, the attribute capture still
	// extends over any remaining dots ("Class::Name.attr.ibute" parses to
	// qualifier "Class::Name", attribute "attr.ibute").
	DefaultSeparator = `(.+?)\.(.+?)`
)

// ParsedKey is the decomposition of one composite configuration key.
type ParsedKey struct {
	// Qualifier is the plugin-identifying portion of the key.
	Qualifier string
	// Attribute is the destination field name.
	Attribute string
	// Subscript is the text inside a trailing [...] suffix, if present.
	// It is an opaque sort marker and is never interpreted numerically.
	Subscript string
	// HasSubscript reports whether a bracket suffix appeared at all,
	// including the literal empty marker "[]".
	HasSubscript bool
}

// Pattern is a compiled composite-key pattern. It is immutable after
// compilation and safe to share.
type Pattern struct {
	re *regexp2.Regexp
}

// CompilePattern combines a prefix fragment and a two-capture-group separator
// fragment into one anchored key pattern:
//
//	^<prefix><separator>(?:\[(.*?)\])?$
//
// The separator's first capture is the qualifier and its second the
// attribute; an empty separator selects DefaultSeparator. The prefix fragment
// is spliced in verbatim. Caveat: capturing groups inside a custom prefix
// shift the qualifier/attribute/subscript group indices, which are read as
// groups 1, 2 and 3 — use non-capturing groups ("(?:...)") in custom
// prefixes.
func CompilePattern(prefix, separator string) (*Pattern, error) {
	if separator == "" {
		separator = DefaultSeparator
	}
	expr := "^" + prefix + separator + `(?:\[(.*?)\])?$`
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compiling key pattern %q: %w", expr, err)
	}
	return &Pattern{re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on invalid fragments.
// Intended for patterns built from constants.
func MustCompilePattern(prefix, separator string) *Pattern {
	p, err := CompilePattern(prefix, separator)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression of the compiled pattern, for
// introspection and testing.
func (p *Pattern) String() string {
	return p.re.String()
}

// Parse decomposes a raw key. The second return value reports whether the
// key matched at all; a non-matching key is simply unrelated to the pattern,
// not an error. Leading '-' or other non-alphanumeric characters in the
// qualifier or attribute are passed through uninterpreted.
func (p *Pattern) Parse(key string) (ParsedKey, bool) {
	m, err := p.re.FindStringMatch(key)
	if err != nil || m == nil {
		return ParsedKey{}, false
	}
	groups := m.Groups()
	if len(groups) < 4 {
		return ParsedKey{}, false
	}
	parsed := ParsedKey{
		Qualifier: groups[1].String(),
		Attribute: groups[2].String(),
	}
	// The bracket group is optional; an empty "[]" still counts as present.
	if sub := groups[3]; len(sub.Captures) > 0 {
		parsed.Subscript = sub.String()
		parsed.HasSubscript = true
	}
	return parsed, true
}
