package languages

import (
	"path/filepath"
	"slices"
)

var registry = make(map[string]Language)

// Register adds a language to the registry
func Register(lang Language) {
	for _, ext := range lang.Extensions() {
		registry[ext] = lang
	}
}

// Lookup returns the registered language with the given name, or nil.
func Lookup(name string) Language {
	for _, lang := range registry {
		if lang.Name() == name {
			return lang
		}
	}
	return nil
}

// Handles reports whether lang claims the extension of path. Extensions
// compare case-sensitively, so mod.PY is not a Python file.
func Handles(lang Language, path string) bool {
	ext := filepath.Ext(path)
	return ext != "" && slices.Contains(lang.Extensions(), ext)
}
