package slicer

import "testing"

func TestMatchNameDefault(t *testing.T) {
	testCases := []struct {
		qualifier string
		name      string
		want      bool
	}{
		{"Foo", "Foo", true},
		{"Foo", "@Bar/Foo", true},
		{"Foo", "@Bar/@Baz/Foo", true},
		{"@Bar/Foo", "@Bar/Foo", true},
		{"@Bar/Foo", "@Baz/@Bar/Foo", true},
		{"@Bar/Foo", "Foo", false},
		{"@Bar/Foo", "@Baz/Foo", false},
		{"Foo", "Foobar", false},
		{"Foo", "@Bar/Foobar", false},
		{"Foo", "barFoo", false},
		// Qualifiers with regex metacharacters are matched literally.
		{"Plug.in", "Plug.in", true},
		{"Plug.in", "Plugxin", false},
		// A bundle prefix needs a non-empty token before the slash.
		{"Foo", "@/Foo", false},
		{"Foo", "@Foo", false},
		{"Foo", "Bar/Foo", false},
	}

	for _, tc := range testCases {
		t.Run(tc.qualifier+"/"+tc.name, func(t *testing.T) {
			if got := MatchNameDefault(tc.qualifier, tc.name); got != tc.want {
				t.Errorf("MatchNameDefault(%q, %q) = %v, want %v", tc.qualifier, tc.name, got, tc.want)
			}
		})
	}
}

func TestMatchPackageDefault(t *testing.T) {
	if !MatchPackageDefault("Plugin::Hunting", "Plugin::Hunting") {
		t.Error("identical class should match")
	}
	if MatchPackageDefault("Plugin::Hunting", "Plugin::Fishing") {
		t.Error("different class should not match")
	}
	if MatchPackageDefault("Hunting", "@Bar/Hunting") {
		t.Error("package matching must not honor bundle prefixes")
	}
}
