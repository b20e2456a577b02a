package csslint

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=frontend.go -destination=mock_frontend.gen.go -package=csslint

// Frontend extracts style imports and member accesses from a component file.
type Frontend interface {
	// Analyze parses one component. A syntax error is returned as *ParseError.
	Analyze(ctx context.Context, file string, src []byte) (*ComponentFacts, error)
}

// Tree-sitter node types used by the walker.
const (
	nodeImportStatement = "import_statement"
	nodeImportClause    = "import_clause"
	nodeIdentifier      = "identifier"
	nodeString          = "string"
	nodeStringFragment  = "string_fragment"
	nodeMemberExpr      = "member_expression"
	nodeSubscriptExpr   = "subscript_expression"
	nodePropertyIdent   = "property_identifier"
	nodeError           = "ERROR"
)

// FrontendOptions configures TreeSitterFrontend.
type FrontendOptions struct {
	// BracketAccess reports styles["btn-primary"] as an access of btn-primary.
	// Default: true
	BracketAccess bool

	// SyntaxCheck validates the file with esbuild before walking it, which gives
	// precise error messages. When disabled, any tree-sitter error node fails the file.
	// Default: true
	SyntaxCheck bool
}

// FrontendOption is a functional option for TreeSitterFrontend.
type FrontendOption func(*FrontendOptions)

// WithBracketAccess toggles string-literal subscript accesses.
func WithBracketAccess(enabled bool) FrontendOption {
	return func(o *FrontendOptions) {
		o.BracketAccess = enabled
	}
}

// WithSyntaxCheck toggles the esbuild syntax check.
func WithSyntaxCheck(enabled bool) FrontendOption {
	return func(o *FrontendOptions) {
		o.SyntaxCheck = enabled
	}
}

// TreeSitterFrontend parses TSX and JSX with tree-sitter.
// It is safe for concurrent use; every call creates its own parser.
type TreeSitterFrontend struct {
	options FrontendOptions
}

// NewTreeSitterFrontend creates a front-end with the given options.
func NewTreeSitterFrontend(opts ...FrontendOption) *TreeSitterFrontend {
	options := FrontendOptions{
		BracketAccess: true,
		SyntaxCheck:   true,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &TreeSitterFrontend{options: options}
}

// Analyze implements Frontend.
func (f *TreeSitterFrontend) Analyze(ctx context.Context, file string, src []byte) (*ComponentFacts, error) {
	if f.options.SyntaxCheck {
		if err := CheckSyntax(file, src); err != nil {
			return nil, err
		}
	}

	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(file))

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse %s: %w", file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !f.options.SyntaxCheck && root.HasError() {
		pe := &ParseError{File: file, Msg: "syntax error"}
		if n := firstErrorNode(root); n != nil {
			pe.Line = int(n.StartPoint().Row) + 1
			pe.Column = int(n.StartPoint().Column)
		}
		return nil, pe
	}

	facts := &ComponentFacts{}
	w := walker{src: src, facts: facts, bracketAccess: f.options.BracketAccess}
	w.collectImports(root)
	w.collectAccesses(root)
	return facts, nil
}

func languageFor(file string) *sitter.Language {
	if strings.HasSuffix(file, JSXSuffix) {
		return javascript.GetLanguage()
	}
	return tsx.GetLanguage()
}

type walker struct {
	src           []byte
	facts         *ComponentFacts
	bracketAccess bool
}

// collectImports records default imports of CSS modules. Only module-level
// import statements are considered.
func (w *walker) collectImports(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != nodeImportStatement {
			continue
		}

		source := stmt.ChildByFieldName("source")
		if source == nil {
			continue
		}
		path := w.stringContent(source)
		if !IsStylesheet(path) {
			continue
		}

		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			clause := stmt.NamedChild(j)
			if clause.Type() != nodeImportClause {
				continue
			}
			// The default binding is a bare identifier child of the clause.
			for k := 0; k < int(clause.NamedChildCount()); k++ {
				if id := clause.NamedChild(k); id.Type() == nodeIdentifier {
					w.facts.Imports = append(w.facts.Imports, StyleImport{
						Path:    path,
						Binding: w.text(id),
					})
				}
			}
		}
	}
}

// collectAccesses records ident.prop (and ident["prop"]) expressions anywhere in the tree.
func (w *walker) collectAccesses(n *sitter.Node) {
	switch n.Type() {
	case nodeMemberExpr:
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		if obj != nil && prop != nil && obj.Type() == nodeIdentifier && prop.Type() == nodePropertyIdent {
			w.addAccess(obj, w.text(prop))
		}
	case nodeSubscriptExpr:
		if w.bracketAccess {
			obj := n.ChildByFieldName("object")
			index := n.ChildByFieldName("index")
			if obj != nil && index != nil && obj.Type() == nodeIdentifier && index.Type() == nodeString {
				w.addAccess(obj, w.stringContent(index))
			}
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.collectAccesses(n.NamedChild(i))
	}
}

func (w *walker) addAccess(obj *sitter.Node, property string) {
	if property == "" {
		return
	}
	w.facts.Accesses = append(w.facts.Accesses, MemberAccess{
		Binding:  w.text(obj),
		Property: property,
		Line:     int(obj.StartPoint().Row) + 1,
		Column:   w.charColumn(obj.EndByte()),
	})
}

// charColumn converts a byte offset into the number of characters between the
// start of its line and the offset.
func (w *walker) charColumn(offset uint32) int {
	lineStart := bytes.LastIndexByte(w.src[:offset], '\n') + 1
	return utf8.RuneCount(w.src[lineStart:offset])
}

func (w *walker) text(n *sitter.Node) string {
	return string(w.src[n.StartByte():n.EndByte()])
}

// stringContent returns a string literal without its quotes.
func (w *walker) stringContent(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeStringFragment {
			return w.text(child)
		}
	}
	text := w.text(n)
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return ""
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == nodeError || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstErrorNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}
