package assemble

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	testCases := []struct {
		name   string
		data   map[string]any
		prefix string
		want   map[string]any
	}{
		{
			name: "flat map passes through",
			data: map[string]any{"a": "1", "b": 2},
			want: map[string]any{"a": "1", "b": 2},
		},
		{
			name: "nested maps join with dots",
			data: map[string]any{
				"Hunting": map[string]any{
					"gun": "shotgun",
					"dog": map[string]any{"name": "Rex"},
				},
			},
			want: map[string]any{
				"Hunting.gun":      "shotgun",
				"Hunting.dog.name": "Rex",
			},
		},
		{
			name: "slices become subscripted entries",
			data: map[string]any{
				"Hunting": map[string]any{
					"season": []any{"duck", "wabbit"},
				},
			},
			want: map[string]any{
				"Hunting.season[0]": "duck",
				"Hunting.season[1]": "wabbit",
			},
		},
		{
			name: "subscripts are zero-padded for lexical order",
			data: map[string]any{
				"seq": []any{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			},
			want: map[string]any{
				"seq[00]": "a", "seq[01]": "b", "seq[02]": "c", "seq[03]": "d",
				"seq[04]": "e", "seq[05]": "f", "seq[06]": "g", "seq[07]": "h",
				"seq[08]": "i", "seq[09]": "j", "seq[10]": "k",
			},
		},
		{
			name:   "prefix qualifies every key",
			data:   map[string]any{"gun": "shotgun"},
			prefix: "Hunting",
			want:   map[string]any{"Hunting.gun": "shotgun"},
		},
		{
			name: "empty map",
			data: map[string]any{},
			want: map[string]any{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Flatten(tc.data, tc.prefix)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Flatten = %#v, want %#v", got, tc.want)
			}
		})
	}
}
