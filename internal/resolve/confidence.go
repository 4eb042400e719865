package resolve

// Confidence qualifies how firmly a resolution result is held. The order is
// total: Exact is the most precise, Unknown the least.
type Confidence uint8

const (
	Exact Confidence = iota
	Inferred
	LooselyInferred
	Unknown
)

func (c Confidence) String() string {
	switch c {
	case Exact:
		return "exact"
	case Inferred:
		return "inferred"
	case LooselyInferred:
		return "loosely-inferred"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// LessPrecise combines two confidence values, keeping the weaker one.
func LessPrecise(a, b Confidence) Confidence {
	if a > b {
		return a
	}
	return b
}
