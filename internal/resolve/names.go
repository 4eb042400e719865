package resolve

import (
	"breeze/internal/ast"
	"breeze/internal/scope"
	"breeze/internal/types"
)

// lookupMember resolves a name against a known object-expression type. The
// name is either in the hierarchy, in the variable scope, or unknown.
func (e *Engine) lookupMember(name string, typ, declaring types.ClassID, sc scope.Scope,
	confidence Confidence, staticExpr, primary, isAssignTarget bool) Result {

	b := e.universe.Builtins()
	origConfidence := confidence
	realDeclaring := declaring
	decl := e.FindDeclaration(name, declaring, isAssignTarget, staticExpr, sc.CallArgumentTypes())

	if decl == nil && primary {
		// probably inside a closure whose delegate has changed
		if thiz := sc.This(); thiz.IsValid() && thiz != declaring {
			decl = e.FindDeclaration(name, thiz, isAssignTarget, staticExpr, sc.CallArgumentTypes())
		}
	}

	if decl == nil && staticExpr {
		// could be a member defined on the type of types itself
		decl = e.FindDeclaration(name, b.Class, isAssignTarget, staticExpr, sc.CallArgumentTypes())
	}

	var info scope.Info
	var hasInfo bool
	if primary {
		info, hasInfo = sc.LookupName(name)
	}
	switch {
	case decl != nil:
		typ = e.typeOf(decl)
		realDeclaring = e.declaringTypeOf(decl, declaring)

	case name == "this":
		// 'this' as a property of the receiver type
		decl = declaring
		typ = declaring
		realDeclaring = declaring

	case hasInfo:
		// everything the scopes know is available here; try the declaration
		// once more against the scope's declaring type
		typ = info.Type
		realDeclaring = info.DeclaringType
		decl = e.FindDeclaration(name, realDeclaring, isAssignTarget, staticExpr, sc.CallArgumentTypes())
		if decl == nil {
			decl = info.DeclaringType
		}

	case name == "call":
		// assume the synthetic invocation method of a closure
		realDeclaring = b.Closure
		decl = e.universe.MethodsNamed(b.Closure, "call")[0]

	default:
		realDeclaring = declaring
		confidence = Unknown
	}

	if decl != nil && !e.universe.SameName(realDeclaring, b.Class) {
		// a static object expression resolving to an instance member is a
		// mismatch; a method whose arity disagrees with the call site may be
		// beaten by an extension method not considered here
		switch d := decl.(type) {
		case *types.Field:
			if staticExpr && !d.Static {
				confidence = Unknown
			}
		case *types.Property:
			if d.Field != nil {
				// the underlying field is authoritative
				if staticExpr && !d.Field.Static {
					confidence = Unknown
				}
			} else if staticExpr && !d.Static {
				confidence = Unknown
			}
		case *types.Method:
			if staticExpr && !d.Static {
				confidence = Unknown
			} else if n := sc.CallArgumentCount(); n >= 0 && len(d.Params) != n {
				confidence = LooselyInferred
			}
		}
	}

	if confidence == Unknown && e.universe.SameName(realDeclaring, b.Class) {
		// a Class<T>-shaped receiver: retry against its single type
		// parameter so members of T resolve through the class value
		params := e.universe.TypeParams(realDeclaring)
		if len(params) == 1 {
			tp := params[0]
			if !e.universe.SameName(tp, b.Class) && !e.universe.SameName(tp, b.Object) {
				return e.lookupMember(name, typ, tp, sc, origConfidence, staticExpr, primary, isAssignTarget)
			}
		}
	}

	return Result{typ, realDeclaring, decl, confidence}
}

// lookupVariable resolves a variable reference through its binding: members
// are used directly, dynamic bindings trigger a hierarchy search, and tracked
// scope info takes over afterwards for anything that is not a method.
func (e *Engine) lookupVariable(v *ast.Expr, sc scope.Scope, confidence Confidence, declaring types.ClassID) Result {
	b := e.universe.Builtins()

	var decl types.Decl = v
	typ := v.Type
	if !typ.IsValid() {
		typ = b.Object
	}
	newConfidence := confidence
	info, hasInfo := sc.LookupName(v.Name)

	switch v.Binding.Kind {
	case ast.BindLocal:
		if v.Binding.Local != nil {
			decl = v.Binding.Local
		}

	case ast.BindField:
		decl = v.Binding.Field
		hasInfo = false
		typ = e.typeOf(decl)

	case ast.BindProperty:
		decl = v.Binding.Property
		hasInfo = false
		typ = e.typeOf(decl)

	case ast.BindDynamic:
		// likely a field or method somewhere in the hierarchy
		search := e.morePrecise(declaring, info, hasInfo)
		candidate := e.FindDeclaration(v.Name, search, sc.ConsumeAssignTarget(v), false, sc.CallArgumentTypes())
		if candidate != nil {
			decl = candidate
			resolved := b.Object
			if hasInfo && info.DeclaringType.IsValid() {
				resolved = info.DeclaringType
			}
			declaring = e.declaringTypeOf(decl, resolved)
		} else {
			newConfidence = Unknown
			// dynamic variables are not allowed outside the script mainline
			if hasInfo && !sc.InScriptBody() {
				hasInfo = false
			}
		}
		typ = e.typeOf(decl)
	}

	if hasInfo && decl.DeclKind() != types.DeclMethod {
		if info.Type.IsValid() {
			typ = info.Type
		}
		if v.IsThisOrSuper() {
			decl = typ
		}
		declaring = e.morePrecise(declaring, info, true)
		newConfidence = LessPrecise(confidence, Inferred)
	}

	return Result{typ, declaring, decl, newConfidence}
}

// morePrecise prefers the scope's declaring type unless it is only Object
// while the computed one is more specific.
func (e *Engine) morePrecise(declaring types.ClassID, info scope.Info, hasInfo bool) types.ClassID {
	b := e.universe.Builtins()
	maybe := b.Object
	if hasInfo && info.DeclaringType.IsValid() {
		maybe = info.DeclaringType
	}
	if e.universe.SameName(maybe, b.Object) && declaring.IsValid() && !e.universe.SameName(declaring, b.Object) {
		return declaring
	}
	return maybe
}
