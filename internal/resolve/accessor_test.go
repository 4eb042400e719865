package resolve

import (
	"testing"

	"breeze/internal/types"
)

func TestAccessorMethodNames(t *testing.T) {
	if got := Getter.MethodName("foo"); got != "getFoo" {
		t.Fatalf("getter name: %q", got)
	}
	if got := BooleanGetter.MethodName("ready"); got != "isReady" {
		t.Fatalf("boolean getter name: %q", got)
	}
	if got := Setter.MethodName("foo"); got != "setFoo" {
		t.Fatalf("setter name: %q", got)
	}
	// names opening with two capitals keep their spelling
	if got := Getter.MethodName("URL"); got != "getURL" {
		t.Fatalf("acronym property name: %q", got)
	}
}

func TestFindAccessorValidatesShape(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Widget", types.KindClass)
	// wrong shape: takes a parameter
	u.AddMethod(c, &types.Method{Name: "getSize", Returns: b.Integer, Params: []types.ClassID{b.Integer}})
	good := u.AddMethod(c, &types.Method{Name: "isVisible", Returns: b.BoolPrim})

	if m := e.findAccessor("size", c, readerKinds[:]); m != nil {
		t.Fatalf("parameterized getter must be rejected")
	}
	if m := e.findAccessor("visible", c, readerKinds[:]); m != good {
		t.Fatalf("boolean getter must resolve")
	}
}

func TestFindAccessorSearchesHierarchy(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	base := u.AddClass("p.Base", types.KindClass)
	sub := u.AddClass("p.Sub", types.KindClass)
	u.SetSuper(sub, base)
	getter := u.AddMethod(base, &types.Method{Name: "getName", Returns: b.String})

	if m := e.findAccessor("name", sub, readerKinds[:]); m != getter {
		t.Fatalf("accessor search must walk the superclass chain")
	}
	if m := e.findAccessor("name", sub, writerKinds[:]); m != nil {
		t.Fatalf("writer kinds must not find a getter")
	}
}
