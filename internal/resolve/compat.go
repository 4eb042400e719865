package resolve

import (
	"breeze/internal/types"
)

// Compat classifies how well an argument type fits a parameter type.
type Compat uint8

const (
	NoMatch Compat = iota
	Fuzzy
	Match
)

func (c Compat) String() string {
	switch c {
	case Match:
		return "match"
	case Fuzzy:
		return "fuzzy"
	default:
		return "no-match"
	}
}

// Classify rates a single argument/parameter pairing.
//
// Exact matches cover type equality plus a fixed set of always-safe cases:
// non-primitive arguments against generic placeholders, null against any
// non-primitive parameter, non-primitive-component arrays against Object- or
// placeholder-component array parameters, and closures against
// single-abstract-method parameters. Loadable pairs are then settled by the
// hard assignability check. For everything else the relationship can only be
// probed structurally: a verifiably absent interface/supertype relation is
// NoMatch, anything not provably incompatible stays Fuzzy.
//
// Variadic parameters are not handled; a variadic method participates only
// through its declared parameter count.
func (e *Engine) Classify(arg, param types.ClassID) Compat {
	u := e.universe
	b := u.Builtins()

	switch {
	case arg == param || u.SameName(arg, param):
		return Match
	case !u.IsPrimitive(arg) && u.IsPlaceholder(param):
		return Match
	case arg == b.Null && !u.IsPrimitive(param):
		return Match
	case u.IsArray(arg) && !u.IsPrimitive(u.Component(arg)) && u.IsArray(param) &&
		(u.SameName(u.Component(param), b.Object) || u.IsPlaceholder(u.Component(param))):
		return Match
	case u.SameName(arg, b.Closure) && u.IsSAM(param):
		return Match
	}

	if u.IsLoadable(arg) && u.IsLoadable(param) {
		if u.AssignableTo(arg, param) {
			return Match
		}
		return NoMatch
	}

	if u.IsInterface(param) {
		if u.DeclaresInterface(arg, param) {
			return Fuzzy
		}
		return NoMatch
	}
	if u.DerivedFrom(arg, param) {
		return Fuzzy
	}
	return NoMatch
}

// ClassifyList rates a full argument list against a parameter list of the
// same length: any NoMatch dominates, else any Fuzzy, else Match. Arity
// mismatches are the caller's concern.
func (e *Engine) ClassifyList(args, params []types.ClassID) Compat {
	result := Match
	for i := range params {
		switch e.Classify(args[i], params[i]) {
		case Fuzzy:
			result = Fuzzy
		case NoMatch:
			return NoMatch
		}
	}
	return result
}
