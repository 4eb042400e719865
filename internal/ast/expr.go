package ast

import (
	"breeze/internal/source"
	"breeze/internal/types"
)

// ExprKind enumerates the construct kinds the resolver dispatches on. The set
// is closed: anything a front end produces beyond these uses ExprOther and
// takes the generic fallback path.
type ExprKind uint8

const (
	ExprVariable      ExprKind = iota // name reference bound through the scope
	ExprConstant                      // literal constant
	ExprBoolean                       // boolean conversion wrapper
	ExprNot                           // logical negation
	ExprInterp                        // string interpolation
	ExprBitwiseNegate                 // ~x, doubles as pattern literal on strings
	ExprClassLiteral                  // reference to a class
	ExprCtorCall                      // constructor invocation
	ExprStaticCall                    // statically-owned method invocation
	ExprTuple                         // comma-separated multi-value
	ExprOther                         // any construct outside the closed set
)

func (k ExprKind) String() string {
	switch k {
	case ExprVariable:
		return "variable"
	case ExprConstant:
		return "constant"
	case ExprBoolean:
		return "boolean"
	case ExprNot:
		return "not"
	case ExprInterp:
		return "interp"
	case ExprBitwiseNegate:
		return "bitneg"
	case ExprClassLiteral:
		return "classlit"
	case ExprCtorCall:
		return "ctorcall"
	case ExprStaticCall:
		return "staticcall"
	case ExprTuple:
		return "tuple"
	default:
		return "other"
	}
}

// LitKind classifies constant expressions whose value matters to resolution.
type LitKind uint8

const (
	LitOther LitKind = iota
	LitNull
	LitTrue
	LitFalse
	LitEmptyString
)

// CtorCallKind distinguishes ordinary construction from this(...)/super(...)
// delegation inside a constructor body.
type CtorCallKind uint8

const (
	CtorNormal CtorCallKind = iota
	CtorThisCall
	CtorSuperCall
)

// BindingKind describes what a variable reference was bound to by the front
// end's scope pass.
type BindingKind uint8

const (
	BindNone    BindingKind = iota // unbound (concrete this/super, broken input)
	BindLocal                      // local variable or parameter declaration
	BindDynamic                    // dynamically typed, no static declaration
	BindField
	BindProperty
)

// Binding carries the accessed-variable information for ExprVariable nodes.
type Binding struct {
	Kind     BindingKind
	Field    *types.Field
	Property *types.Property

	// Local is the declaration node for BindLocal (possibly the reference
	// itself for self-declaring forms).
	Local *Expr

	// Type is the statically declared type of the binding, when any.
	Type types.ClassID
}

// Expr is a syntactic construct under resolution. Only the fields relevant to
// the node's kind are populated; everything is read-only once built.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// Type is the inherent static type the front end attached to the node.
	Type types.ClassID

	// Name carries identifier text: the referenced name for variables and
	// member-style constants, the method name for static calls.
	Name string

	Lit LitKind

	// Operand is the wrapped expression of Boolean/Not/BitwiseNegate nodes.
	Operand *Expr

	Binding Binding

	CtorKind CtorCallKind

	// Owner is the explicit owner type of a static call.
	Owner types.ClassID

	// ArgsFlat reports whether a call's arguments form a flat, statically
	// known list (as opposed to spreads or maps); constructor selection only
	// trusts argument types when set.
	ArgsFlat bool

	// Target is a method attached by an earlier analysis pass; when present
	// at a call site it short-circuits resolution.
	Target *types.Method
}

// DeclKind lets an expression node itself back a resolution result, as string
// literals and local variables do.
func (*Expr) DeclKind() types.DeclKind { return types.DeclExpr }

// IsThisOrSuper reports whether the node is a this/super reference.
func (e *Expr) IsThisOrSuper() bool {
	return e.Kind == ExprVariable && (e.Name == "this" || e.Name == "super")
}
