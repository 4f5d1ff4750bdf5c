package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/paraset/jtree"
)

// dotWriter collects node and edge statements while walking a tree. Nodes and
// empty-child markers draw their ids from the same counter.
type dotWriter struct {
	nodes, edges strings.Builder
	next         int
}

func (dw *dotWriter) alloc() int {
	dw.next++
	return dw.next
}

// Dot outputs the structure of t in Graphviz DOT format (for debugging
// purposes). Inner nodes are drawn as circles, nodes without children as
// boxes. Missing children of inner nodes appear as small empty circles.
func Dot[K any](w io.Writer, t jtree.Tree[K]) error {
	dw := &dotWriter{}
	if !t.IsEmpty() {
		dotNode(dw, t)
	}
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(dw.nodes.String())
	b.WriteString(dw.edges.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("jtree DOT: %s", err.Error())
		return err
	}
	return nil
}

func dotNode[K any](dw *dotWriter, t jtree.Tree[K]) int {
	id := dw.alloc()
	e := t.Expose()
	leaf := e.Left.IsEmpty() && e.Right.IsEmpty()
	lbl := dotEscape(fmt.Sprint(e.Key))
	fmt.Fprintf(&dw.nodes, "\"%d\" [label=\"%s\\n%d\"%s];\n", id, lbl, t.Size(), nodeDotStyles(leaf))
	if leaf {
		return id
	}
	for _, child := range []jtree.Tree[K]{e.Left, e.Right} {
		if child.IsEmpty() {
			nilid := dw.alloc()
			fmt.Fprintf(&dw.nodes, "\"%d\" %s;\n", nilid, emptyNode)
			fmt.Fprintf(&dw.edges, "\"%d\" -> \"%d\";\n", id, nilid)
			continue
		}
		cid := dotNode(dw, child)
		fmt.Fprintf(&dw.edges, "\"%d\" -> \"%d\";\n", id, cid)
	}
	return id
}

const emptyNode = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"

func nodeDotStyles(leaf bool) string {
	s := ",style=filled"
	if leaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}
