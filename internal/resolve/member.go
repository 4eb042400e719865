package resolve

import (
	"breeze/internal/types"
)

// FindDeclaration looks for the named member on the declaring type: a method,
// a canonical accessor, a property, a field, or an interface constant, in
// that order of preference. Super types are searched. callArgs distinguishes
// call sites (non-nil, possibly empty) from plain references (nil); at call
// sites method resolution runs first, otherwise it runs last to cover method
// pointers and static imports. Returns nil when nothing matches.
func (e *Engine) FindDeclaration(name string, declaring types.ClassID, isAssignTarget, isStaticReceiver bool, callArgs []types.ClassID) types.Decl {
	u := e.universe
	b := u.Builtins()

	if u.IsArray(declaring) {
		// only length exists on arrays
		if name == "length" {
			return &types.Field{Name: "length", Owner: declaring, Type: b.Integer}
		}
		// otherwise search on Object
		return e.FindDeclaration(name, b.Object, isAssignTarget, isStaticReceiver, callArgs)
	}

	if callArgs != nil {
		if method := e.FindMethod(name, declaring, callArgs); method != nil {
			return method
		}
		// name may still map to something callable; keep looking
	}

	kinds := readerKinds[:]
	if isAssignTarget {
		kinds = writerKinds[:]
	}
	accessor := e.findAccessor(name, declaring, kinds)
	if accessor != nil && !accessor.Synthetic && accessor.Static == isStaticReceiver {
		return accessor
	}

	for _, t := range u.Hierarchy(declaring) {
		if property := u.PropertyNamed(t, name); property != nil {
			return property
		}
	}

	if field := u.FieldNamed(declaring, name); field != nil {
		return field
	}

	// constants declared on implemented interfaces
	for _, face := range u.AllInterfaces(declaring, true) {
		if face == declaring {
			continue
		}
		if field := u.FieldNamed(face, name); field != nil && field.Final && field.Static {
			return field
		}
	}

	// static or synthetic accessor rejected above, as a last chance
	if accessor != nil {
		return accessor
	}

	if callArgs == nil {
		// reference may be a method pointer or static import; look for a
		// method as the last resort
		if method := e.FindMethod(name, declaring, nil); method != nil {
			return method
		}
	}

	return nil
}
