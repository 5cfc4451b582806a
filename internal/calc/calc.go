package calc

import "errors"

// Validation errors returned by Compute.
var (
	ErrUnknownKind          = errors.New("unknown operation kind")
	ErrInsufficientOperands = errors.New("at least 2 operands are required")
	ErrDivisionByZero       = errors.New("division by zero is not allowed")
)

// Kind is the closed set of supported operations.
type Kind int

const (
	Soma Kind = iota
	Subtracao
	Multiplicacao
	Divisao
)

var kindNames = map[Kind]string{
	Soma:          "soma",
	Subtracao:     "subtracao",
	Multiplicacao: "multiplicacao",
	Divisao:       "divisao",
}

var kindSymbols = map[Kind]string{
	Soma:          "+",
	Subtracao:     "-",
	Multiplicacao: "×",
	Divisao:       "÷",
}

// ParseKind maps a wire value (tipo_operacao) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, ErrUnknownKind
}

// String returns the wire value of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "?"
}

// Symbol returns the display symbol of the kind.
func (k Kind) Symbol() string {
	if sym, ok := kindSymbols[k]; ok {
		return sym
	}
	return "?"
}

// Compute reduces the operand list left to right and returns the result at
// full float64 precision. Rounding to the stored precision is the caller's
// concern. Soma sums all operands. Subtracao and divisao use the first
// operand as seed and fold the rest. Multiplicacao seeds with 1, so the
// first operand takes part in the product.
func Compute(kind Kind, operands []float64) (float64, error) {
	if len(operands) < 2 {
		return 0, ErrInsufficientOperands
	}

	switch kind {
	case Soma:
		var result float64
		for _, n := range operands {
			result += n
		}
		return result, nil

	case Subtracao:
		result := operands[0]
		for _, n := range operands[1:] {
			result -= n
		}
		return result, nil

	case Multiplicacao:
		result := 1.0
		for _, n := range operands {
			result *= n
		}
		return result, nil

	case Divisao:
		for _, n := range operands[1:] {
			if n == 0 {
				return 0, ErrDivisionByZero
			}
		}
		result := operands[0]
		for _, n := range operands[1:] {
			result /= n
		}
		return result, nil

	default:
		return 0, ErrUnknownKind
	}
}
