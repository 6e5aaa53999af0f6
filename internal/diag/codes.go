package diag

// Code identifies a diagnostic kind. P codes come from the parser, S codes
// from scope construction and T codes from the type checker.
type Code string

const (
	InvalidToken         Code = "P0001"
	UnexpectedEndOfInput Code = "P0002"
	UnexpectedToken      Code = "P0003"
	ExtraToken           Code = "P0004"

	FunctionDefinitionInsideBlock Code = "S0001"
	DuplicateDefinition           Code = "S0002"

	ReturnTypeMismatch         Code = "T0001"
	InitializerTypeMismatch    Code = "T0002"
	ReturnOutsideFunction      Code = "T0003"
	NonBooleanCondition        Code = "T0004"
	BranchTypeMismatch         Code = "T0005"
	OperandTypeMismatch        Code = "T0006"
	NotCallable                Code = "T0007"
	ArgumentTypeMismatch       Code = "T0008"
	NotIndexable               Code = "T0009"
	HeterogeneousArrayElements Code = "T0010"
	InvalidTypeSuffix          Code = "T0011"
	UnboundIdentifier          Code = "T0012"
	UnknownType                Code = "T0013"
	ArgumentCountMismatch      Code = "T0014"
	LiteralOutOfRange          Code = "T0015"
	NonIntegerIndex            Code = "T0016"
)
