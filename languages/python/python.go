package python

import (
	"context"
	"fmt"

	"github.com/roveo/pydocmd/languages"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Heading levels for the extracted descriptors. The module title sits at
// level 1.
const (
	topLevel    = 2
	methodLevel = topLevel + 1
)

func init() {
	languages.Register(&Language{})
}

// Language implements the Python language parser
type Language struct{}

func (p *Language) Name() string {
	return "python"
}

func (p *Language) Extensions() []string {
	return []string{".py"}
}

// Parse extracts the top-level functions and classes of a Python module.
// A tree containing syntax errors yields a *languages.ParseError and no
// descriptors.
func (p *Language) Parse(content []byte) (*languages.Module, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Python file: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if perr := languages.SyntaxError(root, content); perr != nil {
		return nil, perr
	}
	if perr := legacySyntax(root, content); perr != nil {
		return nil, perr
	}

	mod := &languages.Module{}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		def := definition(root.NamedChild(i))
		if def == nil {
			continue
		}
		switch def.Type() {
		case "function_definition":
			mod.Functions = append(mod.Functions, extractFunction(def, content, false))
		case "class_definition":
			mod.Classes = append(mod.Classes, extractClass(def, content))
		}
	}

	return mod, nil
}

// definition unwraps decorators and returns the function or class
// definition a statement declares, or nil. Async functions are a separate
// statement kind and are not returned.
func definition(node *sitter.Node) *sitter.Node {
	if node.Type() == "decorated_definition" {
		node = node.ChildByFieldName("definition")
		if node == nil {
			return nil
		}
	}
	switch node.Type() {
	case "function_definition":
		if isAsync(node) {
			return nil
		}
		return node
	case "class_definition":
		return node
	}
	return nil
}

func isAsync(node *sitter.Node) bool {
	return node.ChildCount() > 0 && node.Child(0).Type() == "async"
}

func extractFunction(node *sitter.Node, content []byte, method bool) languages.Function {
	fn := languages.Function{
		Name:     nodeName(node, content),
		Doc:      extractDocstring(node, content),
		Params:   positionalParams(node.ChildByFieldName("parameters"), content),
		Level:    topLevel,
		Method:   method,
		Location: languages.NodeRange(node),
	}
	if method {
		fn.Level = methodLevel
	}
	return fn
}

func extractClass(node *sitter.Node, content []byte) languages.Class {
	cls := languages.Class{
		Name:     nodeName(node, content),
		Doc:      extractDocstring(node, content),
		Level:    topLevel,
		Location: languages.NodeRange(node),
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return cls
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		def := definition(body.NamedChild(i))
		if def != nil && def.Type() == "function_definition" {
			cls.Methods = append(cls.Methods, extractFunction(def, content, true))
		}
	}
	return cls
}

func nodeName(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return nameNode.Content(content)
}
