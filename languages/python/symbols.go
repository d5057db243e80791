package python

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// selfParam is dropped from every parameter list by name, whether or not
// the function is a method.
const selfParam = "self"

// positionalParams returns the names a call may bind positionally after any
// positional-only parameters: the equivalent of Python's args.args.
func positionalParams(params *sitter.Node, content []byte) []string {
	if params == nil {
		return nil
	}

	var names []string
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "positional_separator":
			// everything so far was positional-only
			names = nil
			continue
		case "keyword_separator", "list_splat_pattern", "dictionary_splat_pattern":
			return names
		case "typed_parameter":
			if inner := child.NamedChild(0); inner != nil && inner.Type() != "identifier" {
				// *args: T or **kwargs: T
				return names
			}
		}

		name := paramName(child, content)
		if name == "" || name == selfParam {
			continue
		}
		names = append(names, name)
	}
	return names
}

func paramName(node *sitter.Node, content []byte) string {
	switch node.Type() {
	case "identifier":
		return node.Content(content)
	case "default_parameter", "typed_default_parameter":
		if name := node.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			return name.Content(content)
		}
	case "typed_parameter":
		if inner := node.NamedChild(0); inner != nil && inner.Type() == "identifier" {
			return inner.Content(content)
		}
	}
	return ""
}

// extractDocstring returns the cleaned docstring of a function or class,
// or "" when the body does not start with a plain string literal.
func extractDocstring(node *sitter.Node, content []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return ""
	}

	first := firstStatement(body)
	if first == nil || first.Type() != "expression_statement" || first.NamedChildCount() != 1 {
		return ""
	}

	value, ok := stringValue(first.NamedChild(0), content)
	if !ok {
		return ""
	}
	return cleanDocstring(value)
}

func firstStatement(block *sitter.Node) *sitter.Node {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		child := block.NamedChild(i)
		if child.Type() != "comment" {
			return child
		}
	}
	return nil
}

// stringValue evaluates a str literal expression. Byte strings, f-strings
// and anything that is not a literal report ok == false.
func stringValue(expr *sitter.Node, content []byte) (string, bool) {
	switch expr.Type() {
	case "parenthesized_expression":
		var inner *sitter.Node
		for i := 0; i < int(expr.NamedChildCount()); i++ {
			if c := expr.NamedChild(i); c.Type() != "comment" {
				if inner != nil {
					return "", false
				}
				inner = c
			}
		}
		if inner == nil {
			return "", false
		}
		return stringValue(inner, content)
	case "string":
		return decodeLiteral(expr.Content(content))
	case "concatenated_string":
		var value string
		for i := 0; i < int(expr.NamedChildCount()); i++ {
			part := expr.NamedChild(i)
			if part.Type() == "comment" {
				continue
			}
			s, ok := stringValue(part, content)
			if !ok {
				return "", false
			}
			value += s
		}
		return value, true
	}
	return "", false
}
