package types

// DeclKind tags the variants that can back a resolution result.
type DeclKind uint8

const (
	DeclClass DeclKind = iota
	DeclField
	DeclMethod
	DeclProperty
	DeclConstructor
	DeclParam
	DeclExpr
)

// Decl is a declaration backing a resolution result: a member, a class, a
// parameter, or (for a few literal forms) the expression node itself.
type Decl interface {
	DeclKind() DeclKind
}

func (ClassID) DeclKind() DeclKind      { return DeclClass }
func (*Field) DeclKind() DeclKind       { return DeclField }
func (*Method) DeclKind() DeclKind      { return DeclMethod }
func (*Property) DeclKind() DeclKind    { return DeclProperty }
func (*Constructor) DeclKind() DeclKind { return DeclConstructor }
func (*Param) DeclKind() DeclKind       { return DeclParam }

// Field is a field declaration.
type Field struct {
	Name      string
	Owner     ClassID
	Type      ClassID
	Static    bool
	Final     bool
	Synthetic bool

	// InitType is the static type of the field initializer, when one exists.
	// Used to refine Object-typed fields.
	InitType ClassID
}

// Method is a method declaration.
type Method struct {
	Name      string
	Owner     ClassID
	Returns   ClassID
	Params    []ClassID
	Static    bool
	Abstract  bool
	Synthetic bool
}

// Property is a property declaration, optionally backed by a field. When the
// field is present its static flag is authoritative.
type Property struct {
	Name   string
	Owner  ClassID
	Type   ClassID
	Static bool
	Field  *Field
}

// Constructor is a constructor declaration.
type Constructor struct {
	Owner  ClassID
	Params []ClassID
}

// Param is a parameter declaration.
type Param struct {
	Name string
	Type ClassID
}
