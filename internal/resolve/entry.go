package resolve

import (
	"breeze/internal/scope"
	"breeze/internal/types"
)

// ResolveField answers for a field declaration itself: its declared type at
// Exact confidence.
func (e *Engine) ResolveField(f *types.Field) Result {
	return Result{f.Type, f.Owner, f, Exact}
}

// ResolveMethod answers for a method declaration itself: its return type at
// Exact confidence.
func (e *Engine) ResolveMethod(m *types.Method) Result {
	return Result{m.Returns, m.Owner, m, Exact}
}

// ResolveClass answers for a class declaration. An anonymous inner class
// reads as its supertype, or its first interface when the supertype is only
// Object.
func (e *Engine) ResolveClass(c types.ClassID) Result {
	u := e.universe
	resultType := c
	if u.IsAnonymous(c) {
		resultType = u.Super(c)
		if !resultType.IsValid() {
			resultType = u.Builtins().Object
		}
		if faces := u.Interfaces(c); len(faces) > 0 && u.SameName(resultType, u.Builtins().Object) {
			resultType = faces[0]
		}
	}
	return Result{resultType, resultType, c, Exact}
}

// ResolveParameter answers for a parameter declaration. The scope may have
// predetermined a sharper type (loop variables); the declaring type is the
// enclosing class declaration.
func (e *Engine) ResolveParameter(p *types.Param, sc scope.Scope) Result {
	typ := p.Type
	if info, ok := sc.LookupName(p.Name); ok && info.Type.IsValid() {
		typ = info.Type
	}
	return Result{typ, sc.EnclosingClass(), p, Exact}
}
