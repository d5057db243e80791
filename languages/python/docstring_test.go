package python

import "testing"

func TestDecodeLiteral(t *testing.T) {
	tests := []struct {
		lit    string
		want   string
		wantOK bool
	}{
		{`"plain"`, "plain", true},
		{`'single'`, "single", true},
		{`""""""`, "", true},
		{`''`, "", true},
		{`u"unicode"`, "unicode", true},
		{`R'raw \n'`, `raw \n`, true},
		{`"oct \101\0"`, "oct A\x00", true},
		{"\"line \\\ncontinued\"", "line continued", true},
		{`"bad \x4"`, `bad \x4`, true},
		{`"keep \q"`, `keep \q`, true},
		{"'''a\r\nb'''", "a\nb", true},
		{"'''a\rb'''", "a\nb", true},
		{`b"bytes"`, "", false},
		{`rb"bytes"`, "", false},
		{`f"{x}"`, "", false},
		{`name`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			got, ok := decodeLiteral(tt.lit)
			if ok != tt.wantOK {
				t.Fatalf("decodeLiteral(%q) ok = %v, want %v", tt.lit, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("decodeLiteral(%q) = %q, want %q", tt.lit, got, tt.want)
			}
		})
	}
}

func TestCleanDocstring(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "  Hello.  ", "Hello.  "},
		{"blank edges", "\n\n  Body.\n\n", "Body."},
		{"common indent", "Head.\n    a\n      b\n    c", "Head.\na\n  b\nc"},
		{"whitespace only lines", "Head.\n    a\n  \n    b\n", "Head.\na\n\nb"},
		{"tabs", "Head.\n\ta\n\t\tb", "Head.\na\n        b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanDocstring(tt.in); got != tt.want {
				t.Errorf("cleanDocstring(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
