package slicer

import (
	"fmt"
	"sort"

	"github.com/wehubfusion/Daedalus/pkg/logging"
	"github.com/wehubfusion/Daedalus/pkg/slicer/target"
)

// Config configures a Slicer.
type Config struct {
	// Prefix is a regex fragment spliced before the qualifier capture.
	// Default: empty.
	Prefix string

	// Separator is a two-capture-group regex fragment whose first group is
	// the qualifier and second the attribute.
	// Default: DefaultSeparator.
	Separator string

	// MatchName decides whether a qualifier refers to a plugin's name.
	// Default: MatchNameDefault.
	MatchName MatchFunc

	// MatchPackage decides whether a qualifier refers to a plugin's class.
	// Default: MatchPackageDefault.
	MatchPackage MatchFunc

	// Logger for structured logging (nil for no logging).
	Logger logging.Logger
}

// DefaultConfig returns the default slicer configuration.
func DefaultConfig() Config {
	return Config{
		Prefix:    DefaultPrefix,
		Separator: DefaultSeparator,
	}
}

// Validate applies defaults to unset fields.
func (c *Config) Validate() {
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.MatchName == nil {
		c.MatchName = MatchNameDefault
	}
	if c.MatchPackage == nil {
		c.MatchPackage = MatchPackageDefault
	}
	if c.Logger == nil {
		c.Logger = logging.NoOpLogger{}
	}
}

// WithPrefix sets the prefix fragment.
func (c Config) WithPrefix(prefix string) Config {
	c.Prefix = prefix
	return c
}

// WithSeparator sets the separator fragment.
func (c Config) WithSeparator(separator string) Config {
	c.Separator = separator
	return c
}

// WithMatchName sets the name predicate.
func (c Config) WithMatchName(f MatchFunc) Config {
	c.MatchName = f
	return c
}

// WithMatchPackage sets the class predicate.
func (c Config) WithMatchPackage(f MatchFunc) Config {
	c.MatchPackage = f
	return c
}

// WithLogger sets the logger.
func (c Config) WithLogger(l logging.Logger) Config {
	c.Logger = l
	return c
}

// Slicer extracts embedded plugin configuration out of a flat parent
// configuration map and merges it into plugin records. The parent map is
// read-only to the Slicer and is never mutated.
type Slicer struct {
	parent       map[string]any
	pattern      *Pattern
	matchName    MatchFunc
	matchPackage MatchFunc
	logger       logging.Logger
}

// New creates a Slicer over a parent configuration map. The key pattern is
// compiled once from the configured prefix and separator.
func New(parent map[string]any, cfg Config) (*Slicer, error) {
	cfg.Validate()
	pattern, err := CompilePattern(cfg.Prefix, cfg.Separator)
	if err != nil {
		return nil, err
	}
	return &Slicer{
		parent:       parent,
		pattern:      pattern,
		matchName:    cfg.MatchName,
		matchPackage: cfg.MatchPackage,
		logger:       cfg.Logger,
	}, nil
}

// Pattern returns the compiled key pattern for introspection and testing.
func (s *Slicer) Pattern() *Pattern {
	return s.pattern
}

// Slice extracts the subset of the parent configuration that belongs to the
// given plugin, with plugin qualification stripped from the keys and
// subscripted fragments reassembled into ordered sequences. Keys are
// processed in ascending lexical order of the whole raw key, which fixes the
// append order of same-attribute fragments; subscript text itself only marks
// an entry as sequence-valued and is never compared numerically.
//
// The result is built fresh on every call; neither the parent map nor the
// plugin's existing configuration is touched.
func (s *Slicer) Slice(plugin any) (map[string]any, error) {
	name, class, _, err := PluginInfo(plugin)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(s.parent))
	for k := range s.parent {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any)
	for _, key := range keys {
		parsed, ok := s.pattern.Parse(key)
		if !ok {
			continue
		}
		if !s.matchName(parsed.Qualifier, name) && !s.matchPackage(parsed.Qualifier, class) {
			continue
		}
		s.logger.Debug("sliced key",
			logging.F("key", key),
			logging.F("plugin", name),
			logging.F("attribute", parsed.Attribute),
			logging.F("subscripted", parsed.HasSubscript))
		updateEntry(out, parsed.Attribute, s.parent[key], parsed.HasSubscript)
	}
	return out, nil
}

// MergeOptions adjusts a single Merge call.
type MergeOptions struct {
	// Slice is a precomputed slice to merge instead of slicing the parent
	// configuration again.
	Slice map[string]any

	// Join, when non-empty, joins a new value onto a truthy previous value
	// of a textual field with this separator instead of overwriting it.
	Join string
}

// Merge combines the plugin's slice of the parent configuration into the
// plugin's own configuration and returns the merged target.
//
// A map[string]any target is merged in place per the array-merge rule,
// leaving unrelated keys untouched. An object target (anything implementing
// target.Target, or a struct pointer, which is wrapped reflectively) is
// merged field by field; a sliced attribute with no corresponding writable
// field aborts the whole merge with an AttributeNotFoundError. The merge is
// not transactional: mutations applied before the failing attribute remain
// applied.
//
// A nil target, typed or untyped, allocates and returns a fresh map; the
// caller must use the returned value in that case.
func (s *Slicer) Merge(plugin any, opts *MergeOptions) (any, error) {
	name, class, tgt, err := PluginInfo(plugin)
	if err != nil {
		return nil, err
	}

	var sl map[string]any
	if opts != nil && opts.Slice != nil {
		sl = opts.Slice
	} else {
		sl, err = s.Slice(plugin)
		if err != nil {
			return nil, err
		}
	}

	join := ""
	if opts != nil {
		join = opts.Join
	}

	if tgt == nil {
		tgt = make(map[string]any)
	}
	if m, ok := tgt.(map[string]any); ok {
		if m == nil {
			m = make(map[string]any)
		}
		for attr, value := range sl {
			updateEntry(m, attr, value, false)
		}
		return m, nil
	}

	obj, err := resolveTarget(tgt)
	if err != nil {
		return tgt, err
	}
	for attr, value := range sl {
		if !obj.Has(attr) {
			s.logger.Error("merge aborted",
				logging.F("plugin", name),
				logging.F("class", class),
				logging.F("attribute", attr))
			return tgt, NewAttributeNotFoundError(name, class, attr)
		}
		if err := mergeAttribute(obj, attr, value, join, join != ""); err != nil {
			return tgt, fmt.Errorf("merging attribute %q into plugin %s: %w", attr, name, err)
		}
	}
	return tgt, nil
}

// resolveTarget wraps an object-shaped merge destination in the target
// protocol.
func resolveTarget(v any) (target.Target, error) {
	if t, ok := v.(target.Target); ok {
		return t, nil
	}
	t, err := target.Reflect(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTarget, err)
	}
	return t, nil
}
