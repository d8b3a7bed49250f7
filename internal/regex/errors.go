package regex

import "errors"

var (
	// ErrEmptyPattern is returned by Compile for a pattern with no characters.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrInvalidSymbol reports a character outside 0 1 ( ) * + ? . |
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrUnbalancedParentheses reports a ')' without '(' or an unclosed '('.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	// ErrMalformedPostfix reports an operator short of operands or a build
	// stack that does not end with exactly one fragment.
	ErrMalformedPostfix = errors.New("malformed postfix expression")
)
