// Package slicer extracts embedded plugin configuration out of a flat
// parent configuration map and merges it into individual plugin records.
//
// A parent configuration is a single mapping from composite string keys to
// scalar values, as produced by flattening an INI-like file. Keys follow the
// grammar
//
//	<prefix><qualifier><separator><attribute>[<subscript>]
//
// where the qualifier names a plugin (by name or class), the attribute names
// a destination field, and the optional bracketed subscript marks the value
// as one fragment of an ordered sequence. Example parent map:
//
//	"Hunting.self":      "duck",
//	"Hunting.season[0]": "duck",
//	"Hunting.season[1]": "wabbit",
//
// # Slicing
//
// Slice finds every key that belongs to a plugin, strips the plugin
// qualification and subscript decoration, and reassembles subscripted
// fragments into sequences. Fragment order follows the ascending lexical
// order of the whole raw key; the subscript text is an opaque sort marker
// and is never compared numerically ("10" sorts before "9").
//
//	s, err := slicer.New(parent, slicer.DefaultConfig())
//	...
//	cfg, err := s.Slice(slicer.PluginSpec{Name: "Hunting", Class: "Plugin::Hunting"})
//	// cfg = map[string]any{"self": "duck", "season": []any{"duck", "wabbit"}}
//
// # Merging
//
// Merge combines a slice into the plugin's existing configuration, which is
// either a plain map[string]any or a live object with settable fields (a
// struct pointer, wrapped reflectively, or any target.Target
// implementation). Sequence values append to existing sequences, scalars
// overwrite truthy scalars, and an optional join separator combines textual
// fields instead.
//
// # Key grammar customization
//
// The prefix and separator are opaque regex fragments combined into one
// anchored pattern at construction; the separator must expose exactly two
// capture groups (qualifier, attribute). Name and class matching are
// injectable predicates, so bundle-qualified plugin names such as
// "@Bundle/Plugin" resolve without callers rewriting their keys.
package slicer
