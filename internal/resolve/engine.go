package resolve

import (
	"fmt"

	"breeze/internal/ast"
	"breeze/internal/source"
	"breeze/internal/types"
)

// Engine answers type-resolution queries against a universe. It holds no
// mutable state: every call reads the universe and scope and produces a fresh
// Result, so concurrent calls over stable inputs are safe.
type Engine struct {
	universe *types.Universe

	// src is the original source text, consulted only for the class-literal
	// suffix check. May be nil; the check then degrades to false.
	src *source.Buffer
}

// NewEngine builds an engine over a universe. buffer may be nil.
func NewEngine(u *types.Universe, buffer *source.Buffer) *Engine {
	return &Engine{universe: u, src: buffer}
}

// Universe exposes the engine's type universe.
func (e *Engine) Universe() *types.Universe {
	return e.universe
}

// Result is the answer to a resolution query: the construct's type, the type
// declaring the backing member, the backing declaration itself (nil when the
// result has none, as for literals and plain locals), and how firmly the
// answer is held. Results are values; they are never cached or mutated.
type Result struct {
	Type          types.ClassID
	DeclaringType types.ClassID
	Decl          types.Decl
	Confidence    Confidence
}

func (r Result) String() string {
	return fmt.Sprintf("type=%d declaring=%d confidence=%s", r.Type, r.DeclaringType, r.Confidence)
}

// typeOf extracts the result type from a declaration. Properties defer to
// their backing field when one exists; Object-typed fields are refined by
// their initializer's type.
func (e *Engine) typeOf(decl types.Decl) types.ClassID {
	b := e.universe.Builtins()
	if p, ok := decl.(*types.Property); ok && p.Field != nil {
		decl = p.Field
	}
	switch d := decl.(type) {
	case *types.Field:
		t := d.Type
		if e.universe.SameName(t, b.Object) && d.InitType.IsValid() {
			t = d.InitType
		}
		return t
	case *types.Property:
		return d.Type
	case *types.Method:
		return d.Returns
	case *types.Constructor:
		return d.Owner
	case *types.Param:
		return d.Type
	case types.ClassID:
		return d
	case *ast.Expr:
		if d.Type.IsValid() {
			return d.Type
		}
		return b.Object
	default:
		return b.Object
	}
}

// declaringTypeOf extracts the declaring type from a declaration, preferring
// the caller's resolved type when it names the same class — the resolved one
// may carry generics substitutions the raw owner lacks.
func (e *Engine) declaringTypeOf(decl types.Decl, resolved types.ClassID) types.ClassID {
	var owner types.ClassID
	switch d := decl.(type) {
	case *types.Field:
		owner = d.Owner
	case *types.Method:
		owner = d.Owner
	case *types.Property:
		owner = d.Owner
	default:
		owner = e.universe.Builtins().Object
	}
	if resolved.IsValid() && e.universe.SameName(owner, resolved) {
		return resolved
	}
	return owner
}
