package machine

import (
	"fmt"
	"slices"
)

type edge struct {
	from, symbol string
}

// DFA is a validated deterministic automaton with a total transition
// function.
type DFA struct {
	start    string
	accept   map[string]bool
	alphabet map[string]bool
	delta    map[edge]string
}

// NewDFA validates d as a deterministic automaton: the start and accept
// states exist, the alphabet is not empty, and every (state, symbol) pair
// has exactly one transition.
func NewDFA(d *Description) (*DFA, error) {
	states, err := stateSet(d)
	if err != nil {
		return nil, err
	}
	if len(d.Alphabet) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrInvalidMachine)
	}
	m := &DFA{
		start:    d.Start,
		accept:   toSet(d.Accept),
		alphabet: toSet(d.Alphabet),
		delta:    make(map[edge]string, len(d.Transitions)),
	}
	for _, t := range d.Transitions {
		if !states[t.From] || !states[t.To] {
			return nil, fmt.Errorf("%w: transition %q uses an undeclared state", ErrInvalidMachine, t)
		}
		if !m.alphabet[t.Symbol] {
			return nil, fmt.Errorf("%w: transition %q uses symbol outside the alphabet", ErrInvalidMachine, t)
		}
		e := edge{t.From, t.Symbol}
		if _, dup := m.delta[e]; dup {
			return nil, fmt.Errorf("%w: state %s has two transitions on %s", ErrInvalidMachine, t.From, t.Symbol)
		}
		m.delta[e] = t.To
	}
	for _, s := range d.States {
		for _, a := range d.Alphabet {
			if _, ok := m.delta[edge{s, a}]; !ok {
				return nil, fmt.Errorf("%w: state %s has no transition on %s", ErrInvalidMachine, s, a)
			}
		}
	}
	return m, nil
}

// Accepts runs the automaton over input, one rune per symbol. A rune
// outside the alphabet rejects.
func (m *DFA) Accepts(input string) bool {
	cur := m.start
	for _, r := range input {
		sym := string(r)
		if !m.alphabet[sym] {
			return false
		}
		cur = m.delta[edge{cur, sym}]
	}
	return m.accept[cur]
}

// Reachable reports the states reachable from the start state, sorted.
func (m *DFA) Reachable() []string {
	seen := map[string]bool{m.start: true}
	queue := []string{m.start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for a := range m.alphabet {
			next := m.delta[edge{cur, a}]
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// stateSet checks the parts shared by both machine kinds: declared states
// are unique, and the start and accept states are among them.
func stateSet(d *Description) (map[string]bool, error) {
	if len(d.States) == 0 {
		return nil, fmt.Errorf("%w: no states", ErrInvalidMachine)
	}
	states := make(map[string]bool, len(d.States))
	for _, s := range d.States {
		if states[s] {
			return nil, fmt.Errorf("%w: state %s declared twice", ErrInvalidMachine, s)
		}
		states[s] = true
	}
	if !states[d.Start] {
		return nil, fmt.Errorf("%w: start state %s is not declared", ErrInvalidMachine, d.Start)
	}
	for _, s := range d.Accept {
		if !states[s] {
			return nil, fmt.Errorf("%w: accept state %s is not declared", ErrInvalidMachine, s)
		}
	}
	return states, nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
