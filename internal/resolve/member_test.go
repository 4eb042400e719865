package resolve

import (
	"testing"

	"breeze/internal/types"
)

func TestArrayLengthField(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	for _, elem := range []types.ClassID{b.String, b.IntPrim, u.ArrayOf(b.Object)} {
		arr := u.ArrayOf(elem)
		decl := e.FindDeclaration("length", arr, false, false, nil)
		field, ok := decl.(*types.Field)
		if !ok {
			t.Fatalf("length on %s must be a field, got %T", u.Name(arr), decl)
		}
		if field.Type != b.Integer || field.Owner != arr {
			t.Fatalf("length field malformed for %s", u.Name(arr))
		}
	}
}

func TestArrayOtherNamesSearchObject(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	u.AddMethod(b.Object, &types.Method{Name: "hashCode", Returns: b.IntPrim})
	arr := u.ArrayOf(b.String)

	decl := e.FindDeclaration("hashCode", arr, false, false, nil)
	m, ok := decl.(*types.Method)
	if !ok || m.Owner != b.Object {
		t.Fatalf("non-length array member must re-query Object, got %T", decl)
	}
}

func TestCallContextPrefersMethodOverField(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Conflicted", types.KindClass)
	u.AddField(c, &types.Field{Name: "run", Type: b.Closure})
	method := u.AddMethod(c, &types.Method{Name: "run", Returns: b.Void})

	if decl := e.FindDeclaration("run", c, false, false, []types.ClassID{}); decl != types.Decl(method) {
		t.Fatalf("call context must prefer the method, got %T", decl)
	}
	if _, ok := e.FindDeclaration("run", c, false, false, nil).(*types.Field); !ok {
		t.Fatalf("without call context the field wins")
	}
}

func TestAccessorOnlyPropertyReference(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Holder", types.KindClass)
	getter := u.AddMethod(c, &types.Method{Name: "getFoo", Returns: b.String})

	// property-style access: no foo field anywhere
	decl := e.FindDeclaration("foo", c, false, false, nil)
	if decl != types.Decl(getter) {
		t.Fatalf("foo must resolve to getFoo, got %#v", decl)
	}
	if e.typeOf(decl) != b.String {
		t.Fatalf("result type must be the accessor's return type")
	}

	// explicit accessor-name access resolves through the method retry
	decl = e.FindDeclaration("getFoo", c, false, false, nil)
	if decl != types.Decl(getter) {
		t.Fatalf("getFoo must resolve to the declared method, got %#v", decl)
	}
}

func TestAssignTargetUsesSetter(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Holder", types.KindClass)
	u.AddMethod(c, &types.Method{Name: "getFoo", Returns: b.String})
	setter := u.AddMethod(c, &types.Method{Name: "setFoo", Returns: b.Void, Params: []types.ClassID{b.String}})

	if decl := e.FindDeclaration("foo", c, true, false, nil); decl != types.Decl(setter) {
		t.Fatalf("assignment target must resolve the setter, got %#v", decl)
	}
}

func TestStaticMismatchedAccessorIsLastChance(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Holder", types.KindClass)
	static := u.AddMethod(c, &types.Method{Name: "getFoo", Returns: b.String, Static: true})

	// instance receiver: the static accessor is rejected up front but still
	// returned when nothing else matches
	decl := e.FindDeclaration("foo", c, false, false, nil)
	if decl != types.Decl(static) {
		t.Fatalf("static accessor must be the last-chance result, got %#v", decl)
	}
}

func TestPropertyBeforeField(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	base := u.AddClass("p.Base", types.KindClass)
	sub := u.AddClass("p.Sub", types.KindClass)
	u.SetSuper(sub, base)
	property := u.AddProperty(base, &types.Property{Name: "size", Type: b.Integer})
	u.AddField(sub, &types.Field{Name: "size", Type: b.Long})

	if decl := e.FindDeclaration("size", sub, false, false, nil); decl != types.Decl(property) {
		t.Fatalf("hierarchy property must win over the field, got %#v", decl)
	}
}

func TestInterfaceConstant(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	face := u.AddClass("p.Constants", types.KindInterface)
	constant := u.AddField(face, &types.Field{Name: "MAX", Type: b.Integer, Static: true, Final: true})
	impl := u.AddClass("p.Impl", types.KindClass)
	u.AddInterface(impl, face)

	if decl := e.FindDeclaration("MAX", impl, false, false, nil); decl != types.Decl(constant) {
		t.Fatalf("interface constant must resolve, got %#v", decl)
	}

	// non-final interface fields do not count as constants
	face2 := u.AddClass("p.NotConstants", types.KindInterface)
	u.AddField(face2, &types.Field{Name: "VAL", Type: b.Integer, Static: true})
	impl2 := u.AddClass("p.Impl2", types.KindClass)
	u.AddInterface(impl2, face2)
	if decl := e.FindDeclaration("VAL", impl2, false, false, nil); decl != nil {
		t.Fatalf("non-final interface field must not resolve as a constant, got %#v", decl)
	}
}

func TestNothingFoundReturnsNil(t *testing.T) {
	e, _ := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Empty", types.KindClass)
	if decl := e.FindDeclaration("missing", c, false, false, []types.ClassID{}); decl != nil {
		t.Fatalf("missing member must yield nil, got %#v", decl)
	}
}
