package python

import (
	"strings"

	"github.com/roveo/pydocmd/languages"
	sitter "github.com/smacker/go-tree-sitter"
)

// legacySyntax reports the first Python 2 construct the grammar accepts
// but Python 3 rejects: print/exec statements, backtick repr,
// "except E, e:" and old-style octal or long integer literals.
func legacySyntax(node *sitter.Node, content []byte) *languages.ParseError {
	if reason := legacyConstruct(node, content); reason != "" {
		start := node.StartPoint()
		return &languages.ParseError{
			Line:   int(start.Row) + 1,
			Column: int(start.Column) + 1,
			Text:   reason,
		}
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if perr := legacySyntax(node.Child(i), content); perr != nil {
			return perr
		}
	}
	return nil
}

func legacyConstruct(node *sitter.Node, content []byte) string {
	switch node.Type() {
	case "print_statement":
		if !callLike(node) {
			return "print statement"
		}
	case "exec_statement":
		return "exec statement"
	case "string":
		if strings.HasPrefix(node.Content(content), "`") {
			return "backtick repr"
		}
	case "except_clause", "except_group_clause":
		for i := 0; i < int(node.ChildCount()); i++ {
			if node.Child(i).Type() == "," {
				return "except clause with comma"
			}
		}
	case "integer":
		if legacyInteger(node.Content(content)) {
			return "integer literal " + node.Content(content)
		}
	}
	return ""
}

// callLike reports whether a print_statement is also a valid Python 3
// expression: a bare print or print followed by one parenthesized group.
func callLike(node *sitter.Node) bool {
	var args []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if c := node.NamedChild(i); c.Type() != "comment" {
			args = append(args, c)
		}
	}
	if len(args) == 0 {
		return true
	}
	if len(args) > 1 {
		return false
	}
	switch args[0].Type() {
	case "parenthesized_expression", "tuple", "generator_expression":
		return true
	}
	return false
}

// legacyInteger matches 0777-style octals and L-suffixed longs.
func legacyInteger(lit string) bool {
	lit = strings.ToLower(strings.ReplaceAll(lit, "_", ""))
	if strings.HasSuffix(lit, "l") {
		return true
	}
	if strings.HasSuffix(lit, "j") || len(lit) < 2 || lit[0] != '0' {
		return false
	}
	switch lit[1] {
	case 'x', 'o', 'b':
		return false
	}
	return strings.Trim(lit, "0") != ""
}
