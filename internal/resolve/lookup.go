package resolve

import (
	"strings"

	"breeze/internal/ast"
	"breeze/internal/scope"
	"breeze/internal/types"
)

// Lookup resolves a construct. receiver is the type of the explicit object
// expression, or NoClassID when the construct stands alone; staticReceiver
// reports whether that object expression is a static (type-name) reference.
// Lookup is total: it always returns a result, degrading confidence instead
// of failing.
func (e *Engine) Lookup(node *ast.Expr, sc scope.Scope, receiver types.ClassID, staticReceiver bool) Result {
	confidence := Exact
	if receiver.IsValid() && e.universe.IsPrimitive(receiver) {
		receiver = e.universe.Box(receiver)
	}
	declaring := receiver
	if !declaring.IsValid() {
		declaring = e.findDeclaringType(node, sc, &confidence)
	}
	return e.findType(node, declaring, sc, confidence,
		staticReceiver || (!receiver.IsValid() && sc.IsStatic()), !receiver.IsValid())
}

func (e *Engine) findType(node *ast.Expr, declaring types.ClassID, sc scope.Scope,
	confidence Confidence, staticExpr, primary bool) Result {

	b := e.universe.Builtins()

	// an earlier pass may have pinned the call target already
	if sc.IsMethodCall() && node.Target != nil {
		return Result{node.Target.Returns, node.Target.Owner, node.Target, confidence}
	}

	if node.Kind == ast.ExprVariable {
		return e.lookupVariable(node, sc, confidence, declaring)
	}

	nodeType := node.Type
	if !nodeType.IsValid() {
		nodeType = b.Object
	}

	if (!primary || sc.IsMethodCall()) && node.Kind == ast.ExprConstant {
		return e.lookupMember(node.Name, nodeType, declaring, sc, confidence,
			staticExpr, primary, sc.ConsumeAssignTarget(node))
	}

	switch node.Kind {
	case ast.ExprConstant:
		switch {
		case node.Lit == ast.LitNull:
			return Result{b.Void, types.NoClassID, nil, confidence}
		case node.Lit == ast.LitTrue || node.Lit == ast.LitFalse:
			return Result{b.Boolean, types.NoClassID, nil, confidence}
		case node.Lit == ast.LitEmptyString || e.universe.SameName(nodeType, b.String):
			return Result{b.String, types.NoClassID, node, confidence}
		case e.universe.IsNumber(nodeType) ||
			e.universe.SameName(nodeType, b.BigDecimal) || e.universe.SameName(nodeType, b.BigInteger):
			return Result{e.universe.Box(nodeType), types.NoClassID, nil, confidence}
		default:
			return Result{nodeType, types.NoClassID, nil, Unknown}
		}

	case ast.ExprBoolean, ast.ExprNot:
		return Result{b.Boolean, types.NoClassID, nil, confidence}

	case ast.ExprInterp:
		// report String, not the interpolation type, so string operations
		// apply uniformly
		return Result{b.String, types.NoClassID, nil, confidence}

	case ast.ExprBitwiseNegate:
		operand := nodeType
		if node.Operand != nil && node.Operand.Type.IsValid() {
			operand = node.Operand.Type
		}
		// ~"..." is a compiled pattern literal
		if e.universe.SameName(operand, b.String) {
			return Result{b.Pattern, types.NoClassID, nil, confidence}
		}
		return Result{operand, types.NoClassID, nil, confidence}

	case ast.ExprClassLiteral:
		if e.isClassLiteralRef(node) {
			return Result{b.Class, b.Class, b.Class, Exact}
		}
		return Result{nodeType, declaring, nodeType, confidence}

	case ast.ExprCtorCall:
		return e.ctorCall(node, nodeType, declaring, sc, confidence)

	case ast.ExprStaticCall:
		if res, ok := e.staticCall(node, sc, confidence); ok {
			return res
		}
	}

	if node.Kind != ast.ExprTuple && e.universe.SameName(nodeType, b.Object) {
		confidence = Unknown
	}
	return Result{nodeType, declaring, nil, confidence}
}

func (e *Engine) ctorCall(node *ast.Expr, nodeType, declaring types.ClassID, sc scope.Scope, confidence Confidence) Result {
	b := e.universe.Builtins()

	switch node.CtorKind {
	case ast.CtorThisCall:
		// watch for initializers with no enclosing constructor
		if method, ok := sc.EnclosingMethod(); ok {
			declaring = method.Owner
		} else {
			declaring = sc.EnclosingClass()
		}
	case ast.CtorSuperCall:
		owner := sc.EnclosingClass()
		if method, ok := sc.EnclosingMethod(); ok {
			owner = method.Owner
		}
		declaring = e.universe.Super(owner)
		if !declaring.IsValid() {
			declaring = b.Object
		}
	}

	// find the best match when there is more than one constructor to choose from
	ctors := e.universe.Constructors(declaring)
	if node.ArgsFlat && len(ctors) > 1 {
		callTypes := sc.CallArgumentTypes()
		var loose []*types.Constructor
		for _, ctor := range ctors {
			if len(callTypes) == len(ctor.Params) {
				if e.ClassifyList(callTypes, ctor.Params) == Match {
					return Result{nodeType, declaring, ctor, confidence}
				}
				// argument types may not be fully resolved; at least the
				// count matched
				loose = append(loose, ctor)
			}
		}
		if len(loose) > 0 {
			ctors = loose
		}
	}

	var decl types.Decl = declaring
	if len(ctors) > 0 {
		decl = ctors[0]
	}
	return Result{nodeType, declaring, decl, confidence}
}

func (e *Engine) staticCall(node *ast.Expr, sc scope.Scope, confidence Confidence) (Result, bool) {
	u := e.universe

	var candidates []*types.Method
	if !u.IsInterface(node.Owner) {
		candidates = u.MethodsNamed(node.Owner, node.Name)
	} else {
		for _, face := range u.AllInterfaces(node.Owner, true) {
			candidates = append(candidates, u.MethodsNamed(face, node.Name)...)
		}
	}

	statics := candidates[:0:0]
	for _, m := range candidates {
		if m.Static {
			statics = append(statics, m)
		}
	}
	if len(statics) == 0 {
		return Result{}, false
	}

	var closest *types.Method
	if sc.IsMethodCall() {
		closest = e.selectBest(statics, sc.CallArgumentTypes())
		confidence = Inferred
	} else {
		closest = statics[0]
		confidence = LooselyInferred
	}
	return Result{closest.Returns, closest.Owner, closest, confidence}, true
}

// isClassLiteralRef decides whether a class reference is spelled Foo.class by
// inspecting the original source text. A crude check: it misses spaces around
// the dot, and degrades to false whenever the buffer is unavailable.
func (e *Engine) isClassLiteralRef(node *ast.Expr) bool {
	text, ok := e.src.Text(node.Span)
	if !ok {
		return false
	}
	text = strings.TrimSpace(text)
	return strings.HasSuffix(text, ".class") || strings.HasSuffix(text, ".class.")
}
