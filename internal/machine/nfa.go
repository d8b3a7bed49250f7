package machine

import "fmt"

// EpsilonSymbol labels a transition taken without consuming input.
const EpsilonSymbol = "eps"

// NFA is a validated nondeterministic automaton with epsilon moves.
type NFA struct {
	start    string
	accept   map[string]bool
	alphabet map[string]bool
	delta    map[edge][]string
}

// NewNFA validates d as a nondeterministic automaton. Several transitions
// may share a (state, symbol) pair, but the same transition may not be
// listed twice.
func NewNFA(d *Description) (*NFA, error) {
	states, err := stateSet(d)
	if err != nil {
		return nil, err
	}
	m := &NFA{
		start:    d.Start,
		accept:   toSet(d.Accept),
		alphabet: toSet(d.Alphabet),
		delta:    make(map[edge][]string, len(d.Transitions)),
	}
	seen := make(map[Transition]bool, len(d.Transitions))
	for _, t := range d.Transitions {
		if !states[t.From] || !states[t.To] {
			return nil, fmt.Errorf("%w: transition %q uses an undeclared state", ErrInvalidMachine, t)
		}
		if t.Symbol != EpsilonSymbol && !m.alphabet[t.Symbol] {
			return nil, fmt.Errorf("%w: transition %q uses symbol outside the alphabet", ErrInvalidMachine, t)
		}
		if seen[*t] {
			return nil, fmt.Errorf("%w: duplicate transition %q", ErrInvalidMachine, t)
		}
		seen[*t] = true
		e := edge{t.From, t.Symbol}
		m.delta[e] = append(m.delta[e], t.To)
	}
	return m, nil
}

// closure extends set with everything reachable through epsilon moves.
func (m *NFA) closure(set map[string]bool) {
	stack := make([]string, 0, len(set))
	for s := range set {
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range m.delta[edge{cur, EpsilonSymbol}] {
			if !set[next] {
				set[next] = true
				stack = append(stack, next)
			}
		}
	}
}

// Accepts simulates every branch at once, one rune per symbol.
func (m *NFA) Accepts(input string) bool {
	current := map[string]bool{m.start: true}
	m.closure(current)
	for _, r := range input {
		sym := string(r)
		next := make(map[string]bool)
		for s := range current {
			for _, to := range m.delta[edge{s, sym}] {
				next[to] = true
			}
		}
		m.closure(next)
		if len(next) == 0 {
			return false
		}
		current = next
	}
	for s := range current {
		if m.accept[s] {
			return true
		}
	}
	return false
}
