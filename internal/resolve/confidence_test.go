package resolve

import "testing"

func TestLessPreciseKeepsWeaker(t *testing.T) {
	if LessPrecise(Exact, Inferred) != Inferred {
		t.Fatalf("exact+inferred must be inferred")
	}
	if LessPrecise(Unknown, Exact) != Unknown {
		t.Fatalf("unknown absorbs everything")
	}
	if LessPrecise(Inferred, LooselyInferred) != LooselyInferred {
		t.Fatalf("loosely-inferred is weaker than inferred")
	}
	if LessPrecise(Exact, Exact) != Exact {
		t.Fatalf("combine is idempotent")
	}
}

func TestConfidenceOrderTotal(t *testing.T) {
	order := []Confidence{Exact, Inferred, LooselyInferred, Unknown}
	for i, a := range order {
		for _, b := range order[i:] {
			if LessPrecise(a, b) != b {
				t.Fatalf("LessPrecise(%v, %v) must be %v", a, b, b)
			}
		}
	}
}
