package languages

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// NodeRange converts a tree-sitter node to a Range
func NodeRange(node *sitter.Node) Range {
	start := node.StartPoint()
	end := node.EndPoint()
	return Range{
		Start: Position{Line: int(start.Row), Character: int(start.Column)},
		End:   Position{Line: int(end.Row), Character: int(end.Column)},
	}
}

// SyntaxError returns a ParseError for the first ERROR or MISSING node
// under root, or nil if the tree is clean.
func SyntaxError(root *sitter.Node, content []byte) *ParseError {
	if root == nil || !root.HasError() {
		return nil
	}
	bad := firstErrorNode(root)
	if bad == nil {
		// HasError was set but no node was found; report the root.
		bad = root
	}
	start := bad.StartPoint()
	perr := &ParseError{Line: int(start.Row) + 1, Column: int(start.Column) + 1}
	if !bad.IsMissing() {
		perr.Text = firstLine(bad.Content(content))
	} else {
		perr.Text = bad.Type()
	}
	return perr
}

// firstErrorNode does a pre-order search, so the earliest error in the
// source wins.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
