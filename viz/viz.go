package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcbound/autolearn/automaton"
)

// DOT renders g as Graphviz source: double-circled accepting states, a
// dangling "start" arrow into the initial state, and one edge per defined
// transition labeled with its symbol.
func DOT(g *automaton.DFA) string {
	var b strings.Builder

	b.WriteString("digraph DFA {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tstart [shape=point];\n")

	for q := 0; q < g.NumStates(); q++ {
		shape := "circle"
		if g.IsFinal(q) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\t%d [shape=%s];\n", q, shape)
	}
	fmt.Fprintf(&b, "\tstart -> %d;\n", g.Initial())

	for q := 0; q < g.NumStates(); q++ {
		for _, a := range g.Sigma(q) {
			r, _ := g.Delta(q, a)
			fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", q, r, string(a))
		}
	}

	b.WriteString("}\n")

	return b.String()
}

// HTMLTable renders g's transition function as an HTML table: one row per
// state, one column per symbol in its alphabet, accepting states and the
// initial state called out by class name.
func HTMLTable(g *automaton.DFA) string {
	alphabet := g.Alphabet()

	var b strings.Builder
	b.WriteString("<table>\n<tr><th>state</th>")
	for _, a := range alphabet {
		fmt.Fprintf(&b, "<th>%s</th>", string(a))
	}
	b.WriteString("</tr>\n")

	for q := 0; q < g.NumStates(); q++ {
		class := ""
		if q == g.Initial() {
			class += "initial "
		}
		if g.IsFinal(q) {
			class += "final"
		}

		b.WriteString("<tr>")
		if class != "" {
			fmt.Fprintf(&b, "<th class=%q>%d</th>", strings.TrimSpace(class), q)
		} else {
			fmt.Fprintf(&b, "<th>%d</th>", q)
		}

		for _, a := range alphabet {
			r, ok := g.Delta(q, a)
			if !ok {
				b.WriteString("<td>&#x22a5;</td>")
				continue
			}
			b.WriteString("<td>" + strconv.Itoa(r) + "</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>\n")

	return b.String()
}
