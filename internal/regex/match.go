package regex

// stateSet is a set of states of one NFA, kept as a membership table plus
// the insertion order so iteration does not depend on map ordering.
type stateSet struct {
	member []bool
	list   []StateID
}

func newStateSet(size int) *stateSet {
	return &stateSet{member: make([]bool, size)}
}

func (s *stateSet) add(id StateID) bool {
	if s.member[id] {
		return false
	}
	s.member[id] = true
	s.list = append(s.list, id)
	return true
}

func (s *stateSet) has(id StateID) bool { return s.member[id] }

func (s *stateSet) reset() {
	for _, id := range s.list {
		s.member[id] = false
	}
	s.list = s.list[:0]
}

// EpsilonClosure returns id and every state reachable from it through
// epsilon states only.
func (n *NFA) EpsilonClosure(id StateID) []StateID {
	set := newStateSet(len(n.States))
	n.closure(set, id)
	return set.list
}

// closure adds the epsilon closure of id to set, skipping states already in
// it. Closures are cyclic under '*' and '+', so the set doubles as the
// visited guard.
func (n *NFA) closure(set *stateSet, id StateID) {
	if !set.add(id) {
		return
	}
	stack := []StateID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st := n.States[cur]
		if st.Label != Epsilon {
			continue
		}
		for _, next := range [2]StateID{st.Edge1, st.Edge2} {
			if next != NoState && set.add(next) {
				stack = append(stack, next)
			}
		}
	}
}

// Match reports whether the automaton accepts the whole of input.
func (n *NFA) Match(input string) bool {
	current := newStateSet(len(n.States))
	next := newStateSet(len(n.States))
	n.closure(current, n.Initial)

	for _, ch := range input {
		for _, id := range current.list {
			st := n.States[id]
			if st.Label != Epsilon && st.Label == ch {
				n.closure(next, st.Edge1)
			}
		}
		current, next = next, current
		next.reset()
		if len(current.list) == 0 {
			return false
		}
	}
	return current.has(n.Accept)
}
