package parser

import "github.com/prestosql/prestocst/pkgs/syntax"

// Tree is a full-fidelity concrete syntax tree node. Every node is one of
// four structural shapes:
//
//   - Empty: an optional piece of grammar that was not present (e.g. a
//     missing WHERE clause). Has no range and no children.
//   - Token: a single leaf lexer token.
//   - List: an ordered sequence of sibling nodes: the elements of a
//     repeated construct (select items, FROM relations, function
//     arguments, ...) or a short group of nodes with no grammar variant of
//     its own (IF NOT EXISTS, a join type, parentheses around a list).
//   - Error: a span of input the parser could not fit into the grammar,
//     carrying the syntax.SyntaxError describing why.
//
// Every other Kind (Query, BinaryExpression, FunctionCall, ...) is carried
// by the same struct: a fixed, ordered slice of named children described by
// fieldNames in kinds.go. This mirrors the source grammar's own tagged-union
// design and lets one traversal contract (Children, Field, Range) work
// uniformly over all ~80 variants without ~80 hand-written struct types.
type Tree struct {
	Kind Kind

	// Token is populated only when Kind == KindToken.
	Token syntax.Token

	// Err is populated only when Kind == KindError.
	Err *syntax.SyntaxError

	// children holds this node's fixed-arity fields (for grammar variants)
	// or its elements (for KindList), in order.
	children []*Tree
}

func empty() *Tree {
	return &Tree{Kind: KindEmpty}
}

func tokenNode(tok syntax.Token) *Tree {
	return &Tree{Kind: KindToken, Token: tok}
}

func errorNode(err *syntax.SyntaxError) *Tree {
	return &Tree{Kind: KindError, Err: err}
}

func listNode(elements ...*Tree) *Tree {
	return &Tree{Kind: KindList, children: elements}
}

func node(kind Kind, children ...*Tree) *Tree {
	want := len(fieldNames[kind])
	if want != 0 && len(children) != want {
		panic("parser: wrong child count for " + kind.String())
	}
	return &Tree{Kind: kind, children: children}
}

// Children returns this node's direct children in grammar order. Empty and
// Token nodes have none.
func (t *Tree) Children() []*Tree {
	if t == nil {
		return nil
	}
	return t.children
}

// Is reports whether the node has the given Kind.
func (t *Tree) Is(kind Kind) bool {
	return t != nil && t.Kind == kind
}

// Field returns the named child of a grammar-variant node, or nil if the
// node has no such field (wrong kind, or the schema doesn't define it).
func (t *Tree) Field(name string) *Tree {
	if t == nil {
		return nil
	}
	names := fieldNames[t.Kind]
	for i, n := range names {
		if n == name && i < len(t.children) {
			return t.children[i]
		}
	}
	return nil
}

// FirstToken returns the first Token leaf reachable from this node, or the
// zero Token and false if none exists (a subtree of only Empty/Error nodes).
func (t *Tree) FirstToken() (syntax.Token, bool) {
	if t == nil {
		return syntax.Token{}, false
	}
	switch t.Kind {
	case KindToken:
		return t.Token, true
	case KindEmpty, KindError:
		return syntax.Token{}, false
	}
	for _, c := range t.children {
		if tok, ok := c.FirstToken(); ok {
			return tok, ok
		}
	}
	return syntax.Token{}, false
}

// LastToken returns the last Token leaf reachable from this node.
func (t *Tree) LastToken() (syntax.Token, bool) {
	if t == nil {
		return syntax.Token{}, false
	}
	switch t.Kind {
	case KindToken:
		return t.Token, true
	case KindEmpty, KindError:
		return syntax.Token{}, false
	}
	for i := len(t.children) - 1; i >= 0; i-- {
		if tok, ok := t.children[i].LastToken(); ok {
			return tok, ok
		}
	}
	return syntax.Token{}, false
}

// Range returns the node's own span, excluding leading/trailing trivia.
func (t *Tree) Range() syntax.TextRange {
	first, ok := t.FirstToken()
	if !ok {
		return syntax.NoRange
	}
	last, _ := t.LastToken()
	return syntax.NewRange(first.Range.Start, last.Range.End)
}

// FullRange returns the node's span including attached comment trivia.
func (t *Tree) FullRange() syntax.TextRange {
	first, ok := t.FirstToken()
	if !ok {
		return syntax.NoRange
	}
	last, _ := t.LastToken()
	return syntax.NewRange(first.FullRange().Start, last.FullRange().End)
}

// Errors collects every Error node and every Token-attached SyntaxError in
// the subtree, in source order.
func (t *Tree) Errors() []*syntax.SyntaxError {
	var out []*syntax.SyntaxError
	t.collectErrors(&out)
	syntax.SortErrors(out)
	return out
}

func (t *Tree) collectErrors(out *[]*syntax.SyntaxError) {
	if t == nil {
		return
	}
	switch t.Kind {
	case KindError:
		*out = append(*out, t.Err)
	case KindToken:
		*out = append(*out, t.Token.Errors...)
	default:
		for _, c := range t.children {
			c.collectErrors(out)
		}
	}
}
