package syntax

// TypeSyntaxKind discriminates the small set of type syntax the binder
// needs to resolve into a svtype.Type.
type TypeSyntaxKind uint8

const (
	TypeSyntaxPredefined TypeSyntaxKind = iota
	TypeSyntaxNamed                     // reference to a typedef/enum/struct by name
	TypeSyntaxPackedArray
)

// TypeSyntax is the syntax for a data type: either one of the predefined
// keyword types (with an optional packed range, e.g. "logic [7:0]"), a
// named reference to a previously-declared type, or an explicit packed
// array of some element type syntax.
type TypeSyntax struct {
	Kind       TypeSyntaxKind
	Predefined string // "logic","bit","int","integer","shortint","longint","byte","real","shortreal","realtime","time","string","void","event"
	Signed     bool
	Name       string // for TypeSyntaxNamed
	Left       Node   // packed range bounds, for TypeSyntaxPredefined/TypeSyntaxPackedArray
	Right      Node
	Element    *TypeSyntax // for TypeSyntaxPackedArray
}

// DataDeclaration declares a variable (or, inside a BlockStatement, a
// local) with an optional initializer.
type DataDeclaration struct {
	base
	Type        TypeSyntax
	Name        string
	Initializer Node // may be nil
}

func (n *DataDeclaration) Kind() Kind { return KindDataDeclaration }

// ParameterDeclaration declares a parameter or localparam.
type ParameterDeclaration struct {
	base
	Type  TypeSyntax
	Name  string
	Value Node
	Local bool // localparam: never overridable at instantiation
}

func (n *ParameterDeclaration) Kind() Kind { return KindParameterDeclaration }

// FormalArgument is one formal of a FunctionDeclaration.
type FormalArgument struct {
	base
	Type      TypeSyntax
	Name      string
	Direction ArgDirection
	Default   Node // may be nil
}

func (n *FormalArgument) Kind() Kind { return KindFormalArgument }

// FunctionDeclaration declares a subroutine. Tasks are not modeled
// separately since the evaluator only ever folds functions; automatic is
// assumed throughout (the core's Non-goals exclude static-lifetime
// subroutine locals).
type FunctionDeclaration struct {
	base
	Name       string
	ReturnType TypeSyntax
	Formals    []*FormalArgument
	Body       []Node
}

func (n *FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }
