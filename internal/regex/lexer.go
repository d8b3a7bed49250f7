package regex

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Kind classifies a pattern token.
type Kind int

const (
	Symbol Kind = iota // 0 or 1
	LParen             // (
	RParen             // )
	Star               // *
	Plus               // +
	QMark              // ?
	Concat             // .
	Union              // |
)

var kindNames = [...]string{"Symbol", "LParen", "RParen", "Star", "Plus", "QMark", "Concat", "Union"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one character of a pattern together with its byte offset.
type Token struct {
	Kind Kind
	Ch   rune
	Pos  int
}

var (
	patternLexer    *lexmachine.Lexer
	patternLexerErr error
	patternLexerOne sync.Once
)

func compiledLexer() (*lexmachine.Lexer, error) {
	patternLexerOne.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`0|1`), tokAction(Symbol))
		l.Add([]byte(`[(]`), tokAction(LParen))
		l.Add([]byte(`[)]`), tokAction(RParen))
		l.Add([]byte(`[*]`), tokAction(Star))
		l.Add([]byte(`[+]`), tokAction(Plus))
		l.Add([]byte(`[?]`), tokAction(QMark))
		l.Add([]byte(`[.]`), tokAction(Concat))
		l.Add([]byte(`[|]`), tokAction(Union))
		if err := l.Compile(); err != nil {
			patternLexerErr = err
			return
		}
		patternLexer = l
	})
	return patternLexer, patternLexerErr
}

func tokAction(kind Kind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		r, _ := utf8.DecodeRune(m.Bytes)
		return Token{Kind: kind, Ch: r, Pos: m.TC}, nil
	}
}

// Tokenize splits pattern into tokens. Any character outside the pattern
// alphabet fails with ErrInvalidSymbol.
func Tokenize(pattern string) ([]Token, error) {
	l, err := compiledLexer()
	if err != nil {
		return nil, fmt.Errorf("compile pattern lexer: %w", err)
	}
	scanner, err := l.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}
	toks := make([]Token, 0, len(pattern))
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) && ui.StartTC < len(pattern) {
				r, _ := utf8.DecodeRuneInString(pattern[ui.StartTC:])
				return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, r, ui.StartTC)
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidSymbol, err)
		}
		toks = append(toks, tok.(Token))
	}
	return toks, nil
}
