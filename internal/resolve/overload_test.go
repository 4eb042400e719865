package resolve

import (
	"testing"

	"breeze/internal/types"
)

func TestSelectBestArityTieBreak(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Overloaded", types.KindClass)
	one := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.String}})
	two := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.String, b.Integer}})
	three := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.String, b.Integer, b.Integer}})

	got := e.selectBest([]*types.Method{one, two, three}, []types.ClassID{b.String, b.Integer})
	if got != two {
		t.Fatalf("two arguments must select the two-parameter overload, got %v", got.Params)
	}
}

func TestSelectBestFuzzyOverDiscarded(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	face := u.AddClass("gen.Face", types.KindInterface)
	u.SetLoadable(face, false)
	impl := u.AddClass("gen.Impl", types.KindClass)
	u.AddInterface(impl, face)
	u.SetLoadable(impl, false)

	c := u.AddClass("p.Overloaded", types.KindClass)
	noMatch := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.Integer, b.Integer}})
	fuzzy := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{face, b.String}})

	got := e.selectBest([]*types.Method{noMatch, fuzzy}, []types.ClassID{impl, b.String})
	if got != fuzzy {
		t.Fatalf("fuzzy candidate must beat a discarded no-match one")
	}
}

func TestSelectBestZeroArityShortCircuit(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Overloaded", types.KindClass)
	unary := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.String}})
	nullary := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void})

	if got := e.selectBest([]*types.Method{unary, nullary}, []types.ClassID{}); got != nullary {
		t.Fatalf("zero-argument call must take the zero-parameter overload")
	}
	// without argument context the first candidate wins
	if got := e.selectBest([]*types.Method{unary, nullary}, nil); got != unary {
		t.Fatalf("no call context must return the first candidate")
	}
}

func TestSelectBestNothingSurvives(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	c := u.AddClass("p.Overloaded", types.KindClass)
	first := u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.Integer}})
	u.AddMethod(c, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.Integer, b.Integer}})

	got := e.selectBest(u.MethodsNamed(c, "f"), []types.ClassID{b.String, b.String, b.String})
	if got != first {
		t.Fatalf("with nothing surviving, the first candidate is returned")
	}
}

func TestInterfaceStaticMethodFoundViaSupertypes(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	super := u.AddClass("p.SuperFace", types.KindInterface)
	bar := u.AddMethod(super, &types.Method{Name: "bar", Returns: b.BoolPrim, Static: true})
	face := u.AddClass("p.Face", types.KindInterface)
	u.AddInterface(face, super)

	if got := u.MethodsNamed(face, "bar"); len(got) != 0 {
		t.Fatalf("precondition: direct query must miss super-interface methods")
	}
	if got := e.FindMethod("bar", face, []types.ClassID{}); got != bar {
		t.Fatalf("interface walk must find the super-interface method")
	}
}

func TestInterfaceSearchIncludesObject(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	toString := u.AddMethod(b.Object, &types.Method{Name: "toString", Returns: b.String})
	face := u.AddClass("p.Face", types.KindInterface)

	if got := e.FindMethod("toString", face, []types.ClassID{}); got != toString {
		t.Fatalf("Object is an implicit supertype of every interface")
	}
}

func TestInterfaceOuterCandidateFallback(t *testing.T) {
	e, b := newEngine()
	u := e.Universe()
	first := u.AddClass("p.First", types.KindInterface)
	firstF := u.AddMethod(first, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.Integer}})
	second := u.AddClass("p.Second", types.KindInterface)
	u.AddMethod(second, &types.Method{Name: "f", Returns: b.Void, Params: []types.ClassID{b.Integer, b.Integer}})
	face := u.AddClass("p.Both", types.KindInterface)
	u.AddInterface(face, first)
	u.AddInterface(face, second)

	// three arguments match nothing; the first interface searched supplies
	// the fallback
	if got := e.FindMethod("f", face, []types.ClassID{b.String, b.String, b.String}); got != firstF {
		t.Fatalf("outer candidate must be first-found-wins")
	}
}
