package scope

import (
	"breeze/internal/ast"
	"breeze/internal/types"
)

// Info is what the lexical environment knows about a name.
type Info struct {
	Type          types.ClassID
	DeclaringType types.ClassID
}

// MethodContext identifies the innermost enclosing method or constructor.
type MethodContext struct {
	Owner         types.ClassID
	IsConstructor bool
}

// Scope is the resolver's read-only window into the lexical environment of
// the node being resolved. Implementations must stay stable for the duration
// of a resolution call.
type Scope interface {
	// LookupName reports tracked type info for a name, if any.
	LookupName(name string) (Info, bool)

	// IsMethodCall reports whether the node sits in call position.
	IsMethodCall() bool

	// CallArgumentTypes returns the statically known argument types of the
	// enclosing call, or nil when the node is not in call position.
	CallArgumentTypes() []types.ClassID

	// CallArgumentCount returns the argument count of the enclosing call, or
	// -1 when the node is not in call position.
	CallArgumentCount() int

	// IsStatic reports whether the surrounding context is static.
	IsStatic() bool

	// This returns the current receiver type, or NoClassID.
	This() types.ClassID

	// Delegate returns the current dynamic-receiver (delegate) type, or
	// NoClassID.
	Delegate() types.ClassID

	// EnclosingMethod returns the innermost enclosing method declaration.
	EnclosingMethod() (MethodContext, bool)

	// EnclosingClass returns the innermost enclosing class declaration.
	EnclosingClass() types.ClassID

	// IsAssignTarget reports whether the node is the current assignment
	// target without consuming the mark.
	IsAssignTarget(node *ast.Expr) bool

	// ConsumeAssignTarget reports whether the node is the current assignment
	// target and clears the mark so nested lookups do not see it again.
	ConsumeAssignTarget(node *ast.Expr) bool

	// InScriptBody reports whether the node sits in a top-level script body,
	// where dynamic variables remain legal.
	InScriptBody() bool
}

// DelegateOrThis returns the delegate when one is set, else the receiver.
func DelegateOrThis(s Scope) types.ClassID {
	if d := s.Delegate(); d.IsValid() {
		return d
	}
	return s.This()
}
