package languages

import (
	"testing"
)

// mockLanguage is a test implementation of Language
type mockLanguage struct {
	name string
	exts []string
}

func (m *mockLanguage) Name() string         { return m.name }
func (m *mockLanguage) Extensions() []string { return m.exts }
func (m *mockLanguage) Parse(content []byte) (*Module, error) {
	return &Module{}, nil
}

func TestRegister(t *testing.T) {
	// Save original registry
	origRegistry := registry
	registry = make(map[string]Language)
	defer func() { registry = origRegistry }()

	lang := &mockLanguage{name: "test", exts: []string{".test", ".tst"}}
	Register(lang)

	// Check both extensions are registered
	if registry[".test"] != lang {
		t.Error("expected .test to be registered")
	}
	if registry[".tst"] != lang {
		t.Error("expected .tst to be registered")
	}
}

func TestLookup(t *testing.T) {
	origRegistry := registry
	registry = make(map[string]Language)
	defer func() { registry = origRegistry }()

	lang := &mockLanguage{name: "lang1", exts: []string{".a"}}
	Register(lang)

	if got := Lookup("lang1"); got != lang {
		t.Errorf("Lookup(lang1) = %v, want %v", got, lang)
	}
	if got := Lookup("missing"); got != nil {
		t.Errorf("Lookup(missing) = %v, want nil", got)
	}
}

func TestHandles(t *testing.T) {
	lang := &mockLanguage{name: "py", exts: []string{".py"}}

	tests := []struct {
		path string
		want bool
	}{
		{"mod.py", true},
		{"pkg/mod.py", true},
		{"MOD.PY", false},
		{"mod.Py", false},
		{"mod.pyc", false},
		{"py", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Handles(lang, tt.path); got != tt.want {
				t.Errorf("Handles(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 3, Column: 7}
	if got := err.Error(); got != "syntax error at line 3, column 7" {
		t.Errorf("unexpected message %q", got)
	}

	err.Text = "def ("
	if got := err.Error(); got != `syntax error at line 3, column 7 near "def ("` {
		t.Errorf("unexpected message %q", got)
	}
}
