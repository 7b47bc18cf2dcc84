package input

import (
	"reflect"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		perRune bool
		want    []stroke
	}{
		{
			name: "plain text in one run",
			text: "hello",
			want: []stroke{{text: "hello"}},
		},
		{
			name:    "per rune",
			text:    "hé",
			perRune: true,
			want:    []stroke{{text: "h"}, {text: "é"}},
		},
		{
			name: "newlines and tabs become taps",
			text: "a\r\nb\tc",
			want: []stroke{{text: "a"}, {tap: "enter"}, {text: "b"}, {tap: "tab"}, {text: "c"}},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plan(tt.text, tt.perRune)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("plan(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
