package types

// Name returns the qualified name of a class, or "" for NoClassID.
func (u *Universe) Name(id ClassID) string {
	return u.class(id).Name
}

// Kind returns the descriptor kind.
func (u *Universe) Kind(id ClassID) ClassKind {
	return u.class(id).Kind
}

func (u *Universe) IsInterface(id ClassID) bool {
	return u.class(id).Kind == KindInterface
}

func (u *Universe) IsArray(id ClassID) bool {
	return u.class(id).Kind == KindArray
}

func (u *Universe) IsPrimitive(id ClassID) bool {
	return u.class(id).Kind == KindPrimitive
}

func (u *Universe) IsPlaceholder(id ClassID) bool {
	return u.class(id).Placeholder
}

func (u *Universe) IsAnonymous(id ClassID) bool {
	return u.class(id).Anonymous
}

func (u *Universe) IsLoadable(id ClassID) bool {
	return u.class(id).Loadable
}

// Super returns the supertype, or NoClassID for Object, interfaces and
// primitives.
func (u *Universe) Super(id ClassID) ClassID {
	return u.class(id).Super
}

// Interfaces returns the directly declared interfaces.
func (u *Universe) Interfaces(id ClassID) []ClassID {
	return u.class(id).Interfaces
}

// TypeParams returns declared generic parameters or applied arguments.
func (u *Universe) TypeParams(id ClassID) []ClassID {
	return u.class(id).TypeParams
}

// Component returns an array's element type, or NoClassID.
func (u *Universe) Component(id ClassID) ClassID {
	return u.class(id).Component
}

// Box returns the wrapper class of a primitive, or the class itself.
func (u *Universe) Box(id ClassID) ClassID {
	if boxed := u.class(id).Boxed; boxed.IsValid() {
		return boxed
	}
	return id
}

// SameName reports whether two classes share a nominal name. Parameterized
// instances compare equal to their base this way.
func (u *Universe) SameName(a, b ClassID) bool {
	return u.Name(a) == u.Name(b) && u.Name(a) != ""
}

// --- member queries ---

// MethodsNamed collects methods with the given name declared on the class and
// its superclass chain, nearest first. Interfaces have no superclass chain, so
// only their own declarations are returned; callers that need super-interface
// methods walk AllInterfaces themselves.
func (u *Universe) MethodsNamed(id ClassID, name string) []*Method {
	var out []*Method
	for c := id; c.IsValid(); c = u.class(c).Super {
		for _, m := range u.class(c).Methods {
			if m.Name == name {
				out = append(out, m)
			}
		}
	}
	return out
}

// FieldNamed finds a field on the class or its superclass chain.
func (u *Universe) FieldNamed(id ClassID, name string) *Field {
	for c := id; c.IsValid(); c = u.class(c).Super {
		for _, f := range u.class(c).Fields {
			if f.Name == name {
				return f
			}
		}
	}
	return nil
}

// PropertyNamed finds a property declared directly on the class.
func (u *Universe) PropertyNamed(id ClassID, name string) *Property {
	for _, p := range u.class(id).Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Constructors returns the declared constructors.
func (u *Universe) Constructors(id ClassID) []*Constructor {
	return u.class(id).Ctors
}

// --- hierarchy traversals ---

// Hierarchy returns the class and its superclass chain, in order.
func (u *Universe) Hierarchy(id ClassID) []ClassID {
	var out []ClassID
	for c := id; c.IsValid(); c = u.class(c).Super {
		out = append(out, c)
	}
	return out
}

// AllInterfaces returns every interface implemented by the class or its
// superclasses, transitively, in first-encountered order. When includeSelf is
// set and the class is itself an interface, it leads the result.
func (u *Universe) AllInterfaces(id ClassID, includeSelf bool) []ClassID {
	var out []ClassID
	seen := make(map[ClassID]bool)
	var walk func(faces []ClassID)
	walk = func(faces []ClassID) {
		for _, f := range faces {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
				walk(u.class(f).Interfaces)
			}
		}
	}
	for c := id; c.IsValid(); c = u.class(c).Super {
		if u.IsInterface(c) && (includeSelf || c != id) && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
		walk(u.class(c).Interfaces)
	}
	return out
}

// DerivedFrom reports whether the class equals target or has it on the
// superclass chain.
func (u *Universe) DerivedFrom(id, target ClassID) bool {
	for c := id; c.IsValid(); c = u.class(c).Super {
		if c == target || u.SameName(c, target) {
			return true
		}
	}
	return false
}

// DeclaresInterface reports whether the class declares target among its
// interfaces, transitively.
func (u *Universe) DeclaresInterface(id, target ClassID) bool {
	for _, f := range u.AllInterfaces(id, false) {
		if f == target || u.SameName(f, target) {
			return true
		}
	}
	return false
}

// numericRank orders the numeric wrappers for widening checks; zero means not
// numeric.
func (u *Universe) numericRank(id ClassID) int {
	b := &u.builtins
	switch u.Box(id) {
	case b.Byte:
		return 1
	case b.Short:
		return 2
	case b.Integer:
		return 3
	case b.Long:
		return 4
	case b.Float:
		return 5
	case b.Double:
		return 6
	default:
		return 0
	}
}

// IsNumber reports whether the class is a numeric primitive or wrapper.
func (u *Universe) IsNumber(id ClassID) bool {
	return u.numericRank(id) != 0
}

// AssignableTo is the hard compatibility check between loadable classes:
// identity, numeric widening after boxing, or a hierarchy/interface
// relationship. Everything else is not assignable.
func (u *Universe) AssignableTo(src, dst ClassID) bool {
	if src == dst || u.SameName(src, dst) {
		return true
	}
	bsrc, bdst := u.Box(src), u.Box(dst)
	if bsrc == bdst {
		return true
	}
	if rs, rd := u.numericRank(bsrc), u.numericRank(bdst); rs != 0 && rd != 0 {
		return rs <= rd
	}
	if dst == u.builtins.Object {
		return !u.IsPrimitive(src)
	}
	if u.DerivedFrom(bsrc, bdst) {
		return true
	}
	return u.DeclaresInterface(bsrc, bdst)
}

// IsSAM reports whether the class is an interface with exactly one abstract
// method.
func (u *Universe) IsSAM(id ClassID) bool {
	if !u.IsInterface(id) {
		return false
	}
	abstract := 0
	for _, m := range u.class(id).Methods {
		if m.Abstract {
			abstract++
		}
	}
	return abstract == 1
}
