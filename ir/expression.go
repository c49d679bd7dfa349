package ir

// Expression represents a node of a shader expression tree.
// Expressions are immutable once built. A node may be shared by any number
// of parents; since children always exist before their parents, the graph
// never contains cycles.
type Expression struct {
	Kind ExpressionKind
}

// ExpressionKind represents the different kinds of expressions.
type ExpressionKind interface {
	expressionKind()
}

// ExprInput references a stage input by name.
type ExprInput struct {
	Name string
	Type ValueType
}

func (ExprInput) expressionKind() {}

// ExprUniform references a uniform parameter by name.
type ExprUniform struct {
	Name string
	Type ValueType
}

func (ExprUniform) expressionKind() {}

// LiteralI32 represents a 32-bit signed integer literal.
type LiteralI32 int32

func (LiteralI32) expressionKind() {}

// LiteralF32 represents a 32-bit float literal.
type LiteralF32 float32

func (LiteralF32) expressionKind() {}

// ExprCompose constructs a float vector from scalar components.
type ExprCompose struct {
	Components []*Expression
}

func (ExprCompose) expressionKind() {}

// ExprAppend concatenates two scalars or vectors into a wider vector.
type ExprAppend struct {
	Left  *Expression
	Right *Expression
}

func (ExprAppend) expressionKind() {}

// ExprUnary applies a unary operator.
type ExprUnary struct {
	Op      UnaryOperator
	Operand *Expression
}

func (ExprUnary) expressionKind() {}

// UnaryOperator represents unary operations.
type UnaryOperator uint8

const (
	UnaryNegate UnaryOperator = iota
)

// ExprBinary applies an infix binary operator.
type ExprBinary struct {
	Op    BinaryOperator
	Left  *Expression
	Right *Expression
}

func (ExprBinary) expressionKind() {}

// BinaryOperator represents binary operations.
type BinaryOperator uint8

const (
	BinaryAdd      BinaryOperator = iota // Addition
	BinarySubtract                       // Subtraction
	BinaryMultiply                       // Multiplication
	BinaryDivide                         // Division
	BinaryModulo                         // Modulo (remainder)
)

// ExprMath applies a built-in math function.
// Arg1 and Arg2 are nil for functions taking fewer arguments.
type ExprMath struct {
	Fun  MathFunction
	Arg  *Expression
	Arg1 *Expression
	Arg2 *Expression
}

func (ExprMath) expressionKind() {}

// MathFunction represents built-in mathematical functions.
type MathFunction uint8

const (
	MathAbs MathFunction = iota
	MathSign
	MathFloor
	MathCeil
	MathRound
	MathMin
	MathMax
	MathClamp
	MathMix
	MathPow
	MathDot
	MathCross
	MathLength
	MathNormalize
)

// ExprImageSample samples a 2D texture at an explicit level of detail.
// Coordinate and Level are nominal values remapped into the texture's region.
type ExprImageSample struct {
	Image      *Expression
	Coordinate *Expression
	Level      *Expression
}

func (ExprImageSample) expressionKind() {}

// Expression returns the expression itself, so *Expression satisfies Value.
func (e *Expression) Expression() *Expression {
	return e
}

// Type returns the type of the expression, derived from its children.
func (e *Expression) Type() ValueType {
	return ResolveType(e)
}

// IsUniform reports whether the expression is a direct uniform reference,
// and returns the uniform's name.
func (e *Expression) IsUniform() (string, bool) {
	if u, ok := e.Kind.(ExprUniform); ok {
		return u.Name, true
	}
	return "", false
}

// NewInput returns an expression referencing a stage input.
func NewInput(name string, typ ValueType) *Expression {
	return &Expression{Kind: ExprInput{Name: name, Type: typ}}
}

// NewUniform returns an expression referencing a uniform parameter.
func NewUniform(name string, typ ValueType) *Expression {
	return &Expression{Kind: ExprUniform{Name: name, Type: typ}}
}
