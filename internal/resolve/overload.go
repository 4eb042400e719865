package resolve

import (
	"breeze/internal/types"
)

// FindMethod finds the best same-named method on the declaring type.
// Interfaces need their super-interfaces searched explicitly (the member
// query does not traverse them) along with Object as the implicit supertype;
// the first interface yielding candidates supplies the fallback when no exact
// match is found anywhere. With argument types available, arity plus the
// compatibility classifier steer the choice; without them the first candidate
// encountered wins.
func (e *Engine) FindMethod(name string, declaring types.ClassID, callArgs []types.ClassID) *types.Method {
	u := e.universe

	if u.IsInterface(declaring) {
		supers := append(u.AllInterfaces(declaring, true), u.Builtins().Object)

		var outer *types.Method
		for _, super := range supers {
			var inner *types.Method
			candidates := u.MethodsNamed(super, name)
			if len(candidates) > 0 {
				inner = e.selectBest(candidates, callArgs)
				if outer == nil {
					outer = inner
				}
			}
			if inner != nil && callArgs != nil {
				if len(callArgs) == 0 && len(inner.Params) == 0 {
					return inner
				}
				if len(callArgs) == len(inner.Params) {
					outer = inner
					switch e.ClassifyList(callArgs, inner.Params) {
					case NoMatch:
						continue
					case Match:
						return inner
					}
				}
			}
		}
		return outer
	}

	candidates := u.MethodsNamed(declaring, name)
	if len(candidates) > 0 {
		return e.selectBest(candidates, callArgs)
	}
	return nil
}

// selectBest reduces a non-empty candidate list to one method. A zero-arity
// exact pairing or a full Match returns immediately; a Fuzzy candidate
// becomes the running best; NoMatch and arity-mismatched candidates drop out.
// When nothing matches, the last Fuzzy seen wins, else the first candidate.
func (e *Engine) selectBest(candidates []*types.Method, callArgs []types.ClassID) *types.Method {
	closest := candidates[0]
	if callArgs == nil {
		return closest
	}

	for _, m := range candidates {
		if len(m.Params) == 0 && len(callArgs) == 0 {
			return m
		}
		if len(m.Params) == len(callArgs) {
			switch e.ClassifyList(callArgs, m.Params) {
			case Match:
				return m
			case Fuzzy:
				closest = m
			}
		}
	}
	return closest
}
