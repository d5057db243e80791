package languages

import "fmt"

// Position represents a position in a text document (0-based)
type Position struct {
	Line      int // 0-based line number
	Character int // 0-based character offset
}

// Range represents a range in a text document (0-based)
type Range struct {
	Start Position
	End   Position
}

// Module describes one parsed source file.
type Module struct {
	Name      string // base name of the source file
	Functions []Function
	Classes   []Class
}

// Function describes a top-level function or a method.
type Function struct {
	Name     string
	Doc      string   // empty when there is no docstring
	Params   []string // positional parameter names, "self" removed
	Level    int      // markdown heading level
	Method   bool
	Location Range
}

// Class describes a top-level class and its direct methods.
type Class struct {
	Name     string
	Doc      string
	Methods  []Function
	Level    int
	Location Range
}

// ParseError is returned when source text is not syntactically valid.
// Line and Column are 1-based.
type ParseError struct {
	Line   int
	Column int
	Text   string // offending source fragment, may be empty
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
	}
	return fmt.Sprintf("syntax error at line %d, column %d near %q", e.Line, e.Column, e.Text)
}

// Language defines how to parse a particular programming language
type Language interface {
	// Name returns the language identifier (e.g., "python")
	Name() string

	// Extensions returns the file extensions this language handles (e.g., [".py"])
	Extensions() []string

	// Parse parses the source content into a module descriptor.
	// Module.Name is left for the caller to fill in.
	Parse(content []byte) (*Module, error)
}
