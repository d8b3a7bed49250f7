// Package strength checks passwords against a conjunction of automata.
//
// The built-in policy works over the alphabet {a,b,c,$,*,#,1,2,3}: a strong
// password is at least six symbols long, contains a digit, a letter and a
// special symbol, and never contains the substring "123".
package strength

import (
	"embed"
	"fmt"
	"path"

	"automata/internal/machine"
)

//go:embed machines/*.dfa
var builtin embed.FS

// Rule is one named condition of a policy.
type Rule struct {
	Name        string
	Description string
	Acceptor    machine.Acceptor
}

var defaultRules = []struct {
	name, description string
}{
	{"lensix", "at least 6 symbols"},
	{"digit", "contains one of 1 2 3"},
	{"letter", "contains one of a b c"},
	{"special", "contains one of $ * #"},
	{"no123", "does not contain 123"},
}

// Checker accepts a word when every rule accepts it.
type Checker struct {
	rules []Rule
}

func New(rules ...Rule) *Checker {
	return &Checker{rules: rules}
}

// Default returns the built-in password policy.
func Default() (*Checker, error) {
	rules := make([]Rule, 0, len(defaultRules))
	for _, r := range defaultRules {
		file := path.Join("machines", r.name+".dfa")
		f, err := builtin.Open(file)
		if err != nil {
			return nil, err
		}
		d, err := machine.Parse(file, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		m, err := machine.NewDFA(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		rules = append(rules, Rule{Name: r.name, Description: r.description, Acceptor: m})
	}
	return New(rules...), nil
}

// Report is the outcome of checking one word.
type Report struct {
	Word   string
	Failed []Rule
}

func (r Report) OK() bool { return len(r.Failed) == 0 }

// Check runs every rule, in order, and collects the ones that reject.
func (c *Checker) Check(word string) Report {
	rep := Report{Word: word}
	for _, r := range c.rules {
		if !r.Acceptor.Accepts(word) {
			rep.Failed = append(rep.Failed, r)
		}
	}
	return rep
}

// Accepts makes a Checker usable wherever a machine.Acceptor is.
func (c *Checker) Accepts(word string) bool {
	acceptors := make([]machine.Acceptor, len(c.rules))
	for i, r := range c.rules {
		acceptors[i] = r.Acceptor
	}
	return machine.All(acceptors...).Accepts(word)
}

func (c *Checker) Rules() []Rule { return c.rules }
