package str_test

import (
	"fmt"
	"testing"

	"golang.org/x/text/language"

	"github.com/hasbyte1/go-lodash-lite/str"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hELLO", "Hello"},
		{"hello world", "Hello world"},
		{"HELLO WORLD", "Hello world"},
		{"", ""},
		{"a", "A"},
		{"123ABC", "123abc"},
		{"éCOLE", "École"},
		{"ñANDÚ", "Ñandú"},
	}
	for _, tt := range tests {
		if got := str.Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalizeIn(t *testing.T) {
	if got := str.CapitalizeIn(language.Turkish, "iSTANBUL"); got != "İstanbul" {
		t.Fatalf("CapitalizeIn(tr) = %q; want %q", got, "İstanbul")
	}
	if got := str.CapitalizeIn(language.English, "iSTANBUL"); got != "Istanbul" {
		t.Fatalf("CapitalizeIn(en) = %q; want %q", got, "Istanbul")
	}
}

func ExampleCapitalize() {
	fmt.Println(str.Capitalize("hello world"))
	// Output: Hello world
}
