package fix

import (
	"reflect"
	"testing"
)

func TestIdentifier(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"Hello world", "helloWorld"},
		{"Hello, world!", "helloWorld"},
		{"hello", "hello"},
		{"HELLO WORLD", "helloWorld"},
		{"user-name_field", "userNameField"},
		{"42 items left", "key42ItemsLeft"},
		{"7", "key7"},
		{"!!!", "message"},
		{"", "message"},
		{"  spaced   out  ", "spacedOut"},
	}
	for _, tt := range tests {
		if got := Identifier(tt.value); got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSuggestions(t *testing.T) {
	got := Suggestions("helloWorld")
	want := []string{"helloWorld", "helloWorld2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggestions(helloWorld) = %v, want %v", got, want)
	}
}
