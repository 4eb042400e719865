package types

import (
	"fmt"

	"fortio.org/safecast"

	"breeze/internal/source"
)

// Builtins stores ClassIDs for the types the resolver treats specially.
type Builtins struct {
	Object  ClassID
	Class   ClassID
	Closure ClassID
	String  ClassID
	Pattern ClassID

	// Void is the void-equivalent type reported for null literals; Null is
	// the bottom type of the null literal for compatibility checks.
	Void ClassID
	Null ClassID

	BigDecimal ClassID
	BigInteger ClassID

	Boolean   ClassID
	Integer   ClassID
	Long      ClassID
	Short     ClassID
	Byte      ClassID
	Character ClassID
	Double    ClassID
	Float     ClassID

	BoolPrim   ClassID
	IntPrim    ClassID
	LongPrim   ClassID
	ShortPrim  ClassID
	BytePrim   ClassID
	CharPrim   ClassID
	DoublePrim ClassID
	FloatPrim  ClassID
}

// Universe owns every class descriptor the resolver can see. Descriptors are
// addressed by ClassID; slot 0 stays reserved so NoClassID never aliases a
// real class. The resolver only reads; mutation happens up front, while the
// universe is being assembled from stubs or a snapshot.
type Universe struct {
	classes  []Class
	byName   map[string]ClassID
	arrays   map[ClassID]ClassID
	builtins Builtins
}

// NewUniverse constructs a universe seeded with the builtin types.
func NewUniverse() *Universe {
	u := &Universe{
		classes: make([]Class, 1), // reserve 0 as invalid sentinel
		byName:  make(map[string]ClassID, 64),
		arrays:  make(map[ClassID]ClassID, 8),
	}
	u.seedBuiltins()
	return u
}

func (u *Universe) seedBuiltins() {
	b := &u.builtins
	b.Object = u.addRaw(Class{Name: "breeze.lang.Object", Kind: KindClass, Loadable: true})
	b.Class = u.AddClass("breeze.lang.Class", KindClass)
	b.Closure = u.AddClass("breeze.lang.Closure", KindClass)
	b.String = u.AddClass("breeze.lang.String", KindClass)
	b.Pattern = u.AddClass("breeze.text.Pattern", KindClass)
	b.Void = u.addRaw(Class{Name: "void", Kind: KindPrimitive, Loadable: true})
	b.Null = u.addRaw(Class{Name: "null", Kind: KindClass})

	b.BigDecimal = u.AddClass("breeze.math.BigDecimal", KindClass)
	b.BigInteger = u.AddClass("breeze.math.BigInteger", KindClass)

	b.Boolean = u.AddClass("breeze.lang.Boolean", KindClass)
	b.Integer = u.AddClass("breeze.lang.Integer", KindClass)
	b.Long = u.AddClass("breeze.lang.Long", KindClass)
	b.Short = u.AddClass("breeze.lang.Short", KindClass)
	b.Byte = u.AddClass("breeze.lang.Byte", KindClass)
	b.Character = u.AddClass("breeze.lang.Character", KindClass)
	b.Double = u.AddClass("breeze.lang.Double", KindClass)
	b.Float = u.AddClass("breeze.lang.Float", KindClass)

	b.BoolPrim = u.addPrimitive("bool", b.Boolean)
	b.IntPrim = u.addPrimitive("int", b.Integer)
	b.LongPrim = u.addPrimitive("long", b.Long)
	b.ShortPrim = u.addPrimitive("short", b.Short)
	b.BytePrim = u.addPrimitive("byte", b.Byte)
	b.CharPrim = u.addPrimitive("char", b.Character)
	b.DoublePrim = u.addPrimitive("double", b.Double)
	b.FloatPrim = u.addPrimitive("float", b.Float)

	// The closure type carries the implicit invocation methods referenced by
	// bare "call" lookups.
	u.AddMethod(b.Closure, &Method{Name: "call", Returns: b.Object})
	u.AddMethod(b.Closure, &Method{Name: "call", Returns: b.Object, Params: []ClassID{b.Object}})
}

func (u *Universe) addPrimitive(name string, boxed ClassID) ClassID {
	id := u.addRaw(Class{Name: name, Kind: KindPrimitive, Boxed: boxed, Loadable: true})
	return id
}

func (u *Universe) addRaw(c Class) ClassID {
	n, err := safecast.Conv[uint32](len(u.classes))
	if err != nil {
		panic(fmt.Errorf("universe size overflow: %w", err))
	}
	id := ClassID(n)
	u.classes = append(u.classes, c)
	if _, taken := u.byName[c.Name]; !taken && c.Name != "" {
		u.byName[c.Name] = id
	}
	return id
}

// AddClass registers a class or interface under the given qualified name and
// returns its ID. Classes start out loadable with Object as the supertype;
// interfaces have no supertype.
func (u *Universe) AddClass(name string, kind ClassKind) ClassID {
	name = source.NormalizeName(name)
	c := Class{Name: name, Kind: kind, Loadable: true}
	if kind == KindClass {
		c.Super = u.builtins.Object
	}
	return u.addRaw(c)
}

// AddPlaceholder registers a generic type variable.
func (u *Universe) AddPlaceholder(name string) ClassID {
	name = source.NormalizeName(name)
	return u.addRaw(Class{Name: name, Kind: KindClass, Placeholder: true, Super: u.builtins.Object})
}

// ArrayOf returns the array class with the given component type, creating it
// on first use.
func (u *Universe) ArrayOf(component ClassID) ClassID {
	if id, ok := u.arrays[component]; ok {
		return id
	}
	id := u.addRaw(Class{
		Name:      u.Name(component) + "[]",
		Kind:      KindArray,
		Super:     u.builtins.Object,
		Component: component,
		Loadable:  u.class(component).Loadable,
	})
	u.arrays[component] = id
	return id
}

// Instantiate creates a parameterized instance of base sharing its members.
// The instance keeps the base name, so name-equality checks treat it as the
// same nominal type with generics applied.
func (u *Universe) Instantiate(base ClassID, args []ClassID) ClassID {
	c := *u.class(base)
	c.TypeParams = append([]ClassID(nil), args...)
	return u.addRaw(c)
}

func (u *Universe) class(id ClassID) *Class {
	if !id.IsValid() || int(id) >= len(u.classes) {
		return &u.classes[0]
	}
	return &u.classes[id]
}

// Lookup finds a class by qualified name.
func (u *Universe) Lookup(name string) (ClassID, bool) {
	id, ok := u.byName[source.NormalizeName(name)]
	return id, ok
}

// Builtins returns the seeded builtin ClassIDs.
func (u *Universe) Builtins() Builtins {
	return u.builtins
}

// Len reports the number of allocated descriptors, the invalid slot included.
func (u *Universe) Len() int {
	return len(u.classes)
}

// All returns every valid class ID in allocation order.
func (u *Universe) All() []ClassID {
	out := make([]ClassID, 0, len(u.classes)-1)
	for i := 1; i < len(u.classes); i++ {
		out = append(out, ClassID(i))
	}
	return out
}

// Fields returns the declared fields of a class, in declaration order.
func (u *Universe) Fields(id ClassID) []*Field {
	return u.class(id).Fields
}

// Methods returns the declared methods of a class, in declaration order.
func (u *Universe) Methods(id ClassID) []*Method {
	return u.class(id).Methods
}

// Properties returns the declared properties of a class.
func (u *Universe) Properties(id ClassID) []*Property {
	return u.class(id).Properties
}

// --- descriptor mutation (assembly phase only) ---

// SetSuper replaces the supertype of a class.
func (u *Universe) SetSuper(id, super ClassID) {
	u.class(id).Super = super
}

// AddInterface appends an implemented interface.
func (u *Universe) AddInterface(id, iface ClassID) {
	c := u.class(id)
	c.Interfaces = append(c.Interfaces, iface)
}

// SetTypeParams sets declared generic parameters.
func (u *Universe) SetTypeParams(id ClassID, params []ClassID) {
	u.class(id).TypeParams = params
}

// SetLoadable marks whether a class is backed by a resolved declaration.
func (u *Universe) SetLoadable(id ClassID, loadable bool) {
	u.class(id).Loadable = loadable
}

// SetAnonymous marks a class as an anonymous inner class.
func (u *Universe) SetAnonymous(id ClassID, anonymous bool) {
	u.class(id).Anonymous = anonymous
}

// AddField appends a field declaration, stamping its owner.
func (u *Universe) AddField(id ClassID, f *Field) *Field {
	f.Owner = id
	c := u.class(id)
	c.Fields = append(c.Fields, f)
	return f
}

// AddMethod appends a method declaration, stamping its owner.
func (u *Universe) AddMethod(id ClassID, m *Method) *Method {
	m.Owner = id
	c := u.class(id)
	c.Methods = append(c.Methods, m)
	return m
}

// AddProperty appends a property declaration, stamping its owner (and the
// backing field's, when present).
func (u *Universe) AddProperty(id ClassID, p *Property) *Property {
	p.Owner = id
	if p.Field != nil {
		p.Field.Owner = id
	}
	c := u.class(id)
	c.Properties = append(c.Properties, p)
	return p
}

// AddConstructor appends a constructor declaration, stamping its owner.
func (u *Universe) AddConstructor(id ClassID, ctor *Constructor) *Constructor {
	ctor.Owner = id
	c := u.class(id)
	c.Ctors = append(c.Ctors, ctor)
	return ctor
}
