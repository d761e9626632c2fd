package slicer

import "strings"

// MatchFunc decides whether a parsed key qualifier refers to a plugin
// identity fragment (its name or its class). Custom matchers can be injected
// through Config to support alternate resolution strategies, such as
// stripping bundle-expansion prefixes before comparison.
type MatchFunc func(qualifier, target string) bool

// MatchNameDefault is the default name predicate. A qualifier matches a
// plugin name when the name equals the qualifier, optionally with one or
// more bundle-path prefixes of the shape "@<token>/" in front:
//
//	qualifier "Foo" matches "Foo" and "@Bar/Foo"
//	qualifier "@Bar/Foo" matches "@Bar/Foo" and "@Baz/@Bar/Foo",
//	but neither "Foo" nor "@Baz/Foo"
func MatchNameDefault(qualifier, name string) bool {
	for {
		if name == qualifier {
			return true
		}
		// Strip one leading "@<token>/" and retry. The token must be
		// non-empty and slash-free.
		if !strings.HasPrefix(name, "@") {
			return false
		}
		slash := strings.IndexByte(name, '/')
		if slash < 2 {
			return false
		}
		name = name[slash+1:]
	}
}

// MatchPackageDefault is the default class predicate: strict equality.
func MatchPackageDefault(qualifier, class string) bool {
	return qualifier == class
}
