package slicer

import (
	"errors"
	"testing"
)

type namedPlugin struct {
	name  string
	Color string
}

func (p *namedPlugin) PluginName() string { return p.name }

func TestPluginInfo_Spec(t *testing.T) {
	cfg := map[string]any{}
	name, class, target, err := PluginInfo(PluginSpec{Name: "Name", Class: "Pkg::Name", Config: cfg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Name" || class != "Pkg::Name" {
		t.Errorf("got (%q, %q), want (Name, Pkg::Name)", name, class)
	}
	if tm, ok := target.(map[string]any); !ok || len(tm) != 0 {
		t.Errorf("target = %#v, want the supplied empty map", target)
	}

	// Pointer form behaves identically.
	if _, _, _, err := PluginInfo(&PluginSpec{Name: "N", Class: "C"}); err != nil {
		t.Errorf("pointer spec: unexpected error: %v", err)
	}
}

func TestPluginInfo_Triple(t *testing.T) {
	cfg := map[string]any{"x": 1}
	name, class, target, err := PluginInfo([]any{"Name", "Pkg::Name", cfg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Name" || class != "Pkg::Name" {
		t.Errorf("got (%q, %q), want (Name, Pkg::Name)", name, class)
	}
	if tm, ok := target.(map[string]any); !ok || tm["x"] != 1 {
		t.Errorf("target = %#v, want the supplied map", target)
	}
}

func TestPluginInfo_Object(t *testing.T) {
	p := &namedPlugin{name: "@Bundle/Moose"}
	name, class, target, err := PluginInfo(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "@Bundle/Moose" {
		t.Errorf("name = %q, want @Bundle/Moose", name)
	}
	if class != "*slicer.namedPlugin" {
		t.Errorf("class = %q, want *slicer.namedPlugin", class)
	}
	if target != any(p) {
		t.Error("target should be the plugin object itself")
	}
}

func TestPluginInfo_Unrecognized(t *testing.T) {
	testCases := []struct {
		name string
		in   any
	}{
		{"bare string", "just a string"},
		{"nil", nil},
		{"short triple", []any{"Name", "Pkg::Name"}},
		{"non-string triple", []any{1, 2, 3}},
		{"nil spec pointer", (*PluginSpec)(nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := PluginInfo(tc.in)
			if !errors.Is(err, ErrUnrecognizedPluginSpec) {
				t.Errorf("PluginInfo(%#v) error = %v, want ErrUnrecognizedPluginSpec", tc.in, err)
			}
		})
	}
}
