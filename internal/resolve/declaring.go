package resolve

import (
	"breeze/internal/ast"
	"breeze/internal/scope"
	"breeze/internal/types"
)

// findDeclaringType determines the implicit receiver type for a construct
// used without an explicit object expression. Dynamic variables are chased
// through the delegate's and then the receiver's hierarchy; that path can
// only ever be Inferred. Everything unaccounted for lands on Object.
func (e *Engine) findDeclaringType(node *ast.Expr, sc scope.Scope, confidence *Confidence) types.ClassID {
	b := e.universe.Builtins()

	switch node.Kind {
	case ast.ExprClassLiteral, ast.ExprCtorCall:
		return node.Type

	case ast.ExprStaticCall:
		return node.Owner

	case ast.ExprConstant:
		if sc.IsMethodCall() {
			// method call with an implicit this
			return scope.DelegateOrThis(sc)
		}

	case ast.ExprVariable:
		switch node.Binding.Kind {
		case ast.BindDynamic:
			// search the hierarchy for a declaration: delegate first, then this
			var decl types.Decl
			isAssign := sc.IsAssignTarget(node)
			delegate := sc.Delegate()
			if delegate.IsValid() {
				decl = e.FindDeclaration(node.Name, delegate, isAssign, false, sc.CallArgumentTypes())
			}
			thiz := sc.This()
			if decl == nil && thiz.IsValid() && (!delegate.IsValid() || thiz != delegate) {
				decl = e.FindDeclaration(node.Name, thiz, isAssign, false, sc.CallArgumentTypes())
			}

			var typ types.ClassID
			if decl == nil {
				// a dynamic variable without an apparent declaration: possibly
				// a mistake, possibly declared by this
				typ = thiz
				if !typ.IsValid() {
					typ = b.Object
				}
			} else {
				typ = e.declaringTypeOf(decl, node.Binding.Type)
			}
			*confidence = LessPrecise(*confidence, Inferred)
			return typ

		case ast.BindField:
			return node.Binding.Field.Owner

		case ast.BindProperty:
			return node.Binding.Property.Owner

		default:
			if node.IsThisOrSuper() {
				// unbound this/super, probably from concrete-AST input
				if info, ok := sc.LookupName(node.Name); ok {
					return info.DeclaringType
				}
			}
			// else a local variable: no declaring type
		}
	}
	return b.Object
}
