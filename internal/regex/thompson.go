package regex

import "fmt"

// StateID indexes a State inside its NFA arena.
type StateID int

const (
	// NoState marks an absent edge.
	NoState StateID = -1
	// Epsilon is the label of a state that consumes no input.
	Epsilon rune = 0
)

// State is a node of a Thompson NFA. A labelled state leaves through Edge1
// only after consuming Label; an epsilon state may follow Edge1 and Edge2
// freely.
type State struct {
	Label rune
	Edge1 StateID
	Edge2 StateID
}

// NFA owns every state created while building it. Edges are indices into
// States, so the cycles introduced by closures need no pointers.
type NFA struct {
	States  []State
	Initial StateID
	Accept  StateID
}

type fragment struct {
	initial, accept StateID
}

func (n *NFA) newState(label rune) StateID {
	n.States = append(n.States, State{Label: label, Edge1: NoState, Edge2: NoState})
	return StateID(len(n.States) - 1)
}

func (n *NFA) link(from, edge1, edge2 StateID) {
	n.States[from].Edge1 = edge1
	n.States[from].Edge2 = edge2
}

// Build runs Thompson's construction over a postfix expression.
func Build(postfix string) (*NFA, error) {
	n := &NFA{States: make([]State, 0, 2*len(postfix))}
	stack := make([]fragment, 0, len(postfix))

	pop := func(op rune, pos int) (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, fmt.Errorf("%w: %q at offset %d is missing an operand", ErrMalformedPostfix, op, pos)
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for pos, ch := range postfix {
		switch ch {
		case '*':
			f, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			initial, accept := n.newState(Epsilon), n.newState(Epsilon)
			n.link(initial, f.initial, accept)
			n.link(f.accept, f.initial, accept)
			stack = append(stack, fragment{initial, accept})

		case '+':
			f, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			initial, accept := n.newState(Epsilon), n.newState(Epsilon)
			n.link(initial, f.initial, NoState)
			n.link(f.accept, f.initial, accept)
			stack = append(stack, fragment{initial, accept})

		case '?':
			f, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			initial, accept := n.newState(Epsilon), n.newState(Epsilon)
			n.link(initial, f.initial, accept)
			n.link(f.accept, accept, NoState)
			stack = append(stack, fragment{initial, accept})

		case '.':
			g, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			f, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			n.link(f.accept, g.initial, NoState)
			stack = append(stack, fragment{f.initial, g.accept})

		case '|':
			g, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			f, err := pop(ch, pos)
			if err != nil {
				return nil, err
			}
			initial := n.newState(Epsilon)
			n.link(initial, f.initial, g.initial)
			accept := n.newState(Epsilon)
			n.link(f.accept, accept, NoState)
			n.link(g.accept, accept, NoState)
			stack = append(stack, fragment{initial, accept})

		case '0', '1':
			initial, accept := n.newState(ch), n.newState(Epsilon)
			n.link(initial, accept, NoState)
			stack = append(stack, fragment{initial, accept})

		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidSymbol, ch, pos)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments left on the build stack, want 1", ErrMalformedPostfix, len(stack))
	}
	n.Initial, n.Accept = stack[0].initial, stack[0].accept
	return n, nil
}

// Reachable counts the states reachable from Initial along any edge.
func (n *NFA) Reachable() int {
	seen := make([]bool, len(n.States))
	stack := []StateID{n.Initial}
	seen[n.Initial] = true
	count := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, next := range [2]StateID{n.States[id].Edge1, n.States[id].Edge2} {
			if next != NoState && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return count
}
