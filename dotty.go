package ivtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T Number] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T Number]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// each walks the partition nodes in pre-order.
func (t *Tree[T, V]) each(fn func(n *node[T], depth int) error) error {
	var walk func(n *node[T], depth int) error
	walk = func(n *node[T], depth int) error {
		if n == nil {
			return nil
		}
		if err := fn(n, depth); err != nil {
			return err
		}
		if err := walk(n.left, depth+1); err != nil {
			return err
		}
		return walk(n.right, depth+1)
	}
	return walk(t.root, 1)
}

// Tree2Dot outputs the partition nodes of an interval tree in Graphviz DOT
// format (for debugging purposes). Every node is labelled with its center
// and the intervals kept at it.
func Tree2Dot[T Number, V any](tree *Tree[T, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[T]()
	nils := 0
	var nodelist, edgelist strings.Builder
	err := tree.each(func(n *node[T], depth int) error {
		ID := ids.alloc(n)
		for _, child := range []*node[T]{n.left, n.right} {
			if n.left == nil && n.right == nil {
				break
			}
			if child == nil {
				nils++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nils, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nils)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		label := fmt.Sprintf("%v", n.center)
		for _, r := range n.byLeft {
			label += "\\n" + tree.records[r].String()
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n, depth))
		return nil
	})
	if err != nil {
		tracer().Errorf("interval tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[T Number](n *node[T], depth int) string {
	s := ",style=filled,shape=box"
	if len(n.byLeft) == 0 {
		s += ",color=black,fillcolor=white"
	} else {
		s += fmt.Sprintf(",color=black,fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors))-1])
	}
	return s
}

var hexcolors = [...]string{"#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
