package resolve

import (
	"unicode"
	"unicode/utf8"

	"breeze/internal/types"
)

// AccessorKind identifies the canonical accessor forms a property-like name
// can resolve through.
type AccessorKind uint8

const (
	Getter AccessorKind = iota
	BooleanGetter
	Setter
)

var (
	readerKinds = [...]AccessorKind{Getter, BooleanGetter}
	writerKinds = [...]AccessorKind{Setter}
)

func (k AccessorKind) prefix() string {
	switch k {
	case BooleanGetter:
		return "is"
	case Setter:
		return "set"
	default:
		return "get"
	}
}

// MethodName synthesizes the accessor method name for a property name.
func (k AccessorKind) MethodName(property string) string {
	return k.prefix() + capitalize(property)
}

// capitalize upper-cases the first rune, except when the first two runes are
// both already upper case — such names keep their spelling in accessor form.
func capitalize(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError && size <= 1 {
		return name
	}
	second, _ := utf8.DecodeRuneInString(name[size:])
	if unicode.IsUpper(first) && unicode.IsUpper(second) {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}

// findAccessor looks up the synthesized accessor method for a property name
// on the declaring type's hierarchy, first kind that fits wins. Shape is
// validated: getters take no parameters and return a value, boolean getters
// return a boolean, setters take exactly one parameter.
func (e *Engine) findAccessor(name string, declaring types.ClassID, kinds []AccessorKind) *types.Method {
	for _, kind := range kinds {
		methodName := kind.MethodName(name)
		for _, m := range e.universe.MethodsNamed(declaring, methodName) {
			if e.accessorShape(kind, m) {
				return m
			}
		}
	}
	return nil
}

func (e *Engine) accessorShape(kind AccessorKind, m *types.Method) bool {
	b := e.universe.Builtins()
	switch kind {
	case Getter:
		return len(m.Params) == 0 && m.Returns != b.Void
	case BooleanGetter:
		boxed := e.universe.Box(m.Returns)
		return len(m.Params) == 0 && boxed == b.Boolean
	case Setter:
		return len(m.Params) == 1
	default:
		return false
	}
}
