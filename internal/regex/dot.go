package regex

import (
	"bufio"
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz digraph of the automaton to w.
func ExportDOT(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph NFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for id, st := range n.States {
		shape := "circle"
		if StateID(id) == n.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s];\n", id, shape)

		label := "ε"
		if st.Label != Epsilon {
			label = string(st.Label)
		}
		for _, to := range [2]StateID{st.Edge1, st.Edge2} {
			if to != NoState {
				fmt.Fprintf(bw, "    n%d -> n%d [label=\"%s\"];\n", id, to, label)
			}
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", n.Initial)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
