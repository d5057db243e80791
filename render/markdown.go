// Package render turns module descriptors into Markdown documents.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/roveo/pydocmd/languages"
)

const (
	noArguments = "* No Arguments."
	noMethods   = "No methods."
)

// Module writes the Markdown document for m to w: the file heading, every
// top-level function, then every class with its methods.
func Module(w io.Writer, m *languages.Module) error {
	var sb strings.Builder
	writeModule(&sb, m)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeModule(sb *strings.Builder, m *languages.Module) {
	fmt.Fprintf(sb, "# File %s\n\n", m.Name)
	for _, fn := range m.Functions {
		writeFunction(sb, fn)
	}
	for _, cls := range m.Classes {
		writeClass(sb, cls)
	}
}

func writeFunction(sb *strings.Builder, fn languages.Function) {
	kind := "Function"
	if fn.Method {
		kind = "Method"
	}
	fmt.Fprintf(sb, "%s %s %s()\n\n", heading(fn.Level), kind, fn.Name)
	writeDoc(sb, fn.Doc)

	if len(fn.Params) > 0 {
		fmt.Fprintf(sb, "* Arguments: %s\n\n", strings.Join(fn.Params, ", "))
	} else {
		sb.WriteString(noArguments + "\n\n")
	}
}

func writeClass(sb *strings.Builder, cls languages.Class) {
	fmt.Fprintf(sb, "%s Class %s\n\n", heading(cls.Level), cls.Name)
	writeDoc(sb, cls.Doc)

	for _, m := range cls.Methods {
		writeFunction(sb, m)
	}
	if len(cls.Methods) == 0 {
		sb.WriteString(noMethods + "\n\n")
	}
}

func writeDoc(sb *strings.Builder, doc string) {
	if doc == "" {
		return
	}
	sb.WriteString(doc)
	sb.WriteString("\n\n")
}

// heading returns the # run for a level, never shallower than a section.
func heading(level int) string {
	return strings.Repeat("#", max(level, 2))
}
