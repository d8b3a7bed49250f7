// Package regex compiles binary regular expressions over {0,1} into
// Thompson NFAs and matches strings against them.
//
// Patterns use explicit concatenation ('.'), alternation ('|'), grouping,
// and the postfix operators '*', '+' and '?'.
package regex

import "fmt"

// Regex is a compiled pattern. Matching never mutates the automaton, so a
// Regex may be shared between goroutines once Compile has returned.
type Regex struct {
	pattern string
	postfix string
	nfa     *NFA
}

// Compile translates pattern to postfix and builds its automaton.
func Compile(pattern string) (*Regex, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	postfix, err := Shunt(pattern)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}
	nfa, err := Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", pattern, err)
	}
	return &Regex{pattern: pattern, postfix: postfix, nfa: nfa}, nil
}

func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Match compiles pattern and reports whether input is in its language.
func Match(pattern, input string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}

func (re *Regex) MatchString(s string) bool { return re.nfa.Match(s) }

// Accepts is MatchString under the name used by the machine simulators.
func (re *Regex) Accepts(s string) bool { return re.nfa.Match(s) }

func (re *Regex) Postfix() string { return re.postfix }
func (re *Regex) NFA() *NFA       { return re.nfa }
func (re *Regex) String() string  { return re.pattern }
