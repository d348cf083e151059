package circuit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kegliz/syrecgo/gate"
)

// WriteQASM renders the circuit as OpenQASM 3 text: one quantum register
// `q` of size NumLines, a multi-control `x` per Toffoli (bare `x`/`cx` at
// 0/1 controls), `ctrl(k) @ swap` per Fredkin (bare `swap`/`cswap` at 0/1
// controls), ancilla/garbage metadata and global annotations as header
// comments, and per-gate annotations as trailing `// key=value ...`
// comments.
func (c *Circuit) WriteQASM() string {
	var b strings.Builder
	b.WriteString("OPENQASM 3;\n")
	b.WriteString(fmt.Sprintf("qubit[%d] q;\n", c.numLines))

	for i := 0; i < c.numLines; i++ {
		var parts []string
		if c.constant[i] != nil {
			parts = append(parts, fmt.Sprintf("ancilla=%v", *c.constant[i]))
		}
		if c.garbage[i] {
			parts = append(parts, "garbage")
		}
		if c.inputName[i] != "" || c.outputName[i] != "" {
			parts = append(parts, fmt.Sprintf("%s->%s", c.inputName[i], c.outputName[i]))
		}
		if len(parts) > 0 {
			b.WriteString(fmt.Sprintf("// q[%d]: %s\n", i, strings.Join(parts, " ")))
		}
	}

	for _, k := range sortedKeys(c.globalAnnotations) {
		b.WriteString(fmt.Sprintf("// @%s=%s\n", k, c.globalAnnotations[k]))
	}

	for ref, g := range c.gates {
		line := qasmLine(g)
		if anno := c.annotations[GateRef(ref)]; len(anno) > 0 {
			var kvs []string
			for _, k := range sortedKeys(anno) {
				kvs = append(kvs, fmt.Sprintf("%s=%s", k, anno[k]))
			}
			line += " // " + strings.Join(kvs, " ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func qasmLine(g gate.Gate) string {
	controls := g.Controls()
	targets := g.Targets()
	switch g.Type() {
	case gate.Toffoli:
		switch len(controls) {
		case 0:
			return fmt.Sprintf("x q[%d];", targets[0])
		case 1:
			return fmt.Sprintf("cx q[%d], q[%d];", controls[0], targets[0])
		default:
			return fmt.Sprintf("ctrl(%d) @ x %s, q[%d];", len(controls), qubitList(controls), targets[0])
		}
	case gate.Fredkin:
		switch len(controls) {
		case 0:
			return fmt.Sprintf("swap q[%d], q[%d];", targets[0], targets[1])
		case 1:
			return fmt.Sprintf("cswap q[%d], q[%d], q[%d];", controls[0], targets[0], targets[1])
		default:
			return fmt.Sprintf("ctrl(%d) @ swap %s, q[%d], q[%d];", len(controls), qubitList(controls), targets[0], targets[1])
		}
	default:
		return "// unknown gate"
	}
}

func qubitList(ls []gate.Line) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = fmt.Sprintf("q[%d]", l)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
