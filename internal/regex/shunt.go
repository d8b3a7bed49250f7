package regex

import (
	"fmt"
	"strings"
)

// precedence of the binary and postfix operators, lowest first.
var precedence = map[Kind]int{
	Union:  1,
	Concat: 2,
	QMark:  3,
	Plus:   4,
	Star:   5,
}

// Shunt converts an infix pattern to postfix with the shunting-yard
// algorithm. Concatenation must be written explicitly with '.'.
func Shunt(pattern string) (string, error) {
	toks, err := Tokenize(pattern)
	if err != nil {
		return "", err
	}
	return shuntTokens(toks)
}

func shuntTokens(toks []Token) (string, error) {
	var out strings.Builder
	stack := make([]Token, 0, len(toks))

	for _, tok := range toks {
		switch tok.Kind {
		case LParen:
			stack = append(stack, tok)
		case RParen:
			for {
				if len(stack) == 0 {
					return "", fmt.Errorf("%w: ')' at offset %d has no matching '('", ErrUnbalancedParentheses, tok.Pos)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LParen {
					break
				}
				out.WriteRune(top.Ch)
			}
		case Symbol:
			out.WriteRune(tok.Ch)
		default:
			prec := precedence[tok.Kind]
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == LParen || precedence[top.Kind] < prec {
					break
				}
				out.WriteRune(top.Ch)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == LParen {
			return "", fmt.Errorf("%w: '(' at offset %d is never closed", ErrUnbalancedParentheses, top.Pos)
		}
		out.WriteRune(top.Ch)
	}
	return out.String(), nil
}
