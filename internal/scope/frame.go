package scope

import (
	"breeze/internal/ast"
	"breeze/internal/types"
)

// Frame is the standard Scope implementation. Front ends (and tests, and the
// query loader) populate it directly; the resolver only reads it, except for
// the consumable assignment-target mark.
type Frame struct {
	Vars map[string]Info

	MethodCall bool
	ArgTypes   []types.ClassID
	ArgCount   int

	Static     bool
	ThisType   types.ClassID
	Delegated  types.ClassID
	Enclosing  MethodContext
	HasMethod  bool
	ClassDecl  types.ClassID
	ScriptBody bool

	// AssignTarget marks the node currently being assigned to, mirroring the
	// original side-channel as an explicit field.
	AssignTarget *ast.Expr
}

var _ Scope = (*Frame)(nil)

func (f *Frame) LookupName(name string) (Info, bool) {
	info, ok := f.Vars[name]
	return info, ok
}

func (f *Frame) IsMethodCall() bool {
	return f.MethodCall
}

func (f *Frame) CallArgumentTypes() []types.ClassID {
	if !f.MethodCall {
		return nil
	}
	if f.ArgTypes == nil {
		return []types.ClassID{}
	}
	return f.ArgTypes
}

func (f *Frame) CallArgumentCount() int {
	if !f.MethodCall {
		return -1
	}
	if f.ArgTypes != nil {
		return len(f.ArgTypes)
	}
	return f.ArgCount
}

func (f *Frame) IsStatic() bool {
	return f.Static
}

func (f *Frame) This() types.ClassID {
	return f.ThisType
}

func (f *Frame) Delegate() types.ClassID {
	return f.Delegated
}

func (f *Frame) EnclosingMethod() (MethodContext, bool) {
	return f.Enclosing, f.HasMethod
}

func (f *Frame) EnclosingClass() types.ClassID {
	return f.ClassDecl
}

func (f *Frame) IsAssignTarget(node *ast.Expr) bool {
	return node != nil && f.AssignTarget == node
}

func (f *Frame) ConsumeAssignTarget(node *ast.Expr) bool {
	if node == nil || f.AssignTarget != node {
		return false
	}
	f.AssignTarget = nil
	return true
}

func (f *Frame) InScriptBody() bool {
	return f.ScriptBody
}
