package types

// ClassKind categorizes a class descriptor.
type ClassKind uint8

const (
	KindInvalid ClassKind = iota
	KindClass
	KindInterface
	KindPrimitive
	KindArray
)

func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Class is a nominal type descriptor. Parameterized instances created via
// Instantiate share the base descriptor's member slices; only TypeParams (and
// identity) differ.
type Class struct {
	Name       string
	Kind       ClassKind
	Super      ClassID
	Interfaces []ClassID

	// TypeParams holds declared generic parameters on a base class, or the
	// applied arguments on an instantiated one.
	TypeParams []ClassID

	// Component is the element type of an array class.
	Component ClassID

	// Boxed is the wrapper class of a primitive.
	Boxed ClassID

	// Loadable reports whether the class is backed by a fully resolved,
	// loadable declaration. Generated or still-unresolved types are not
	// loadable; compatibility checks against them stay heuristic.
	Loadable bool

	// Placeholder marks a generic type variable standing in for a real type.
	Placeholder bool

	// Anonymous marks an anonymous inner class; such a declaration reads as
	// its supertype, not as a type of its own.
	Anonymous bool

	Methods    []*Method
	Fields     []*Field
	Properties []*Property
	Ctors      []*Constructor
}
