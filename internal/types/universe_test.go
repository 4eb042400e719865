package types

import "testing"

func TestBuiltinsSeeded(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	if !b.Object.IsValid() || !b.Class.IsValid() || !b.Null.IsValid() {
		t.Fatalf("builtins not initialized")
	}
	if u.Super(b.Object).IsValid() {
		t.Fatalf("Object must not have a supertype")
	}
	if u.Box(b.IntPrim) != b.Integer {
		t.Fatalf("int must box to Integer")
	}
	if u.Box(b.String) != b.String {
		t.Fatalf("boxing a class must be identity")
	}
}

func TestArrayInterned(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	a1 := u.ArrayOf(b.String)
	a2 := u.ArrayOf(b.String)
	if a1 != a2 {
		t.Fatalf("array classes must be interned per component")
	}
	if !u.IsArray(a1) || u.Component(a1) != b.String {
		t.Fatalf("array descriptor malformed")
	}
	if u.Name(a1) != "breeze.lang.String[]" {
		t.Fatalf("unexpected array name %q", u.Name(a1))
	}
}

func TestMethodsNamedWalksSuperChain(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	base := u.AddClass("p.Base", KindClass)
	sub := u.AddClass("p.Sub", KindClass)
	u.SetSuper(sub, base)
	u.AddMethod(base, &Method{Name: "run", Returns: b.Void})
	u.AddMethod(sub, &Method{Name: "run", Returns: b.Void, Params: []ClassID{b.Integer}})

	got := u.MethodsNamed(sub, "run")
	if len(got) != 2 {
		t.Fatalf("expected both declarations, got %d", len(got))
	}
	if got[0].Owner != sub || got[1].Owner != base {
		t.Fatalf("methods must be ordered nearest first")
	}
}

func TestInterfaceMethodsDoNotIncludeSuperInterfaces(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	top := u.AddClass("p.Top", KindInterface)
	mid := u.AddClass("p.Mid", KindInterface)
	u.AddInterface(mid, top)
	u.AddMethod(top, &Method{Name: "bar", Returns: b.BoolPrim, Abstract: true})

	if got := u.MethodsNamed(mid, "bar"); len(got) != 0 {
		t.Fatalf("interface method query must not see super-interfaces, got %d", len(got))
	}
	faces := u.AllInterfaces(mid, true)
	if len(faces) != 2 || faces[0] != mid || faces[1] != top {
		t.Fatalf("AllInterfaces order wrong: %v", faces)
	}
}

func TestFieldNamedWalksSuperChain(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	base := u.AddClass("p.Base", KindClass)
	sub := u.AddClass("p.Sub", KindClass)
	u.SetSuper(sub, base)
	u.AddField(base, &Field{Name: "count", Type: b.Integer})

	f := u.FieldNamed(sub, "count")
	if f == nil || f.Owner != base {
		t.Fatalf("field lookup must walk the superclass chain")
	}
	if u.PropertyNamed(sub, "count") != nil {
		t.Fatalf("property lookup is declared-only")
	}
}

func TestAssignability(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	face := u.AddClass("p.Face", KindInterface)
	impl := u.AddClass("p.Impl", KindClass)
	u.AddInterface(impl, face)
	sub := u.AddClass("p.SubImpl", KindClass)
	u.SetSuper(sub, impl)

	if !u.AssignableTo(sub, face) {
		t.Fatalf("interface via superclass must be assignable")
	}
	if !u.AssignableTo(b.IntPrim, b.LongPrim) {
		t.Fatalf("numeric widening int->long must hold")
	}
	if u.AssignableTo(b.LongPrim, b.IntPrim) {
		t.Fatalf("numeric narrowing must not hold")
	}
	if u.AssignableTo(b.IntPrim, b.Object) {
		t.Fatalf("primitives are not assignable to Object")
	}
	if !u.AssignableTo(impl, b.Object) {
		t.Fatalf("every class is assignable to Object")
	}
}

func TestInstantiateSharesMembersAndName(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	box := u.AddClass("p.Box", KindClass)
	tv := u.AddPlaceholder("T")
	u.SetTypeParams(box, []ClassID{tv})
	u.AddMethod(box, &Method{Name: "get", Returns: tv})

	inst := u.Instantiate(box, []ClassID{b.String})
	if inst == box {
		t.Fatalf("instance must have its own identity")
	}
	if !u.SameName(inst, box) {
		t.Fatalf("instance must keep the base name")
	}
	if len(u.MethodsNamed(inst, "get")) != 1 {
		t.Fatalf("instance must share the base members")
	}
	if got := u.TypeParams(inst); len(got) != 1 || got[0] != b.String {
		t.Fatalf("instance must carry applied arguments")
	}
}

func TestIsSAM(t *testing.T) {
	u := NewUniverse()
	b := u.Builtins()
	sam := u.AddClass("p.Runnable", KindInterface)
	u.AddMethod(sam, &Method{Name: "run", Returns: b.Void, Abstract: true})
	not := u.AddClass("p.Pair", KindInterface)
	u.AddMethod(not, &Method{Name: "first", Returns: b.Object, Abstract: true})
	u.AddMethod(not, &Method{Name: "second", Returns: b.Object, Abstract: true})

	if !u.IsSAM(sam) || u.IsSAM(not) || u.IsSAM(b.String) {
		t.Fatalf("SAM detection wrong")
	}
}
