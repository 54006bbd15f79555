package contracts

// FormulaPrefix marks raw cell text as a formula
const FormulaPrefix = "="

// Error sentinels are plain display strings, dependent formulas read them as non-numeric text
const (
	CircularReferenceSentinel = "#CIRC!"
	DivisionByZeroSentinel    = "#DIV/0!"
	NumberSentinel            = "#NUM!"
	UnknownFunctionSentinel   = "#NAME?"
	ExpressionErrorSentinel   = "#ERROR"
)
