package rbvec

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbvec/rbtree"
)

type nodeids struct {
	idTable map[rbtree.NodeRef]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[rbtree.NodeRef]int),
		max:     1,
	}
}

func (ids nodeids) find(node rbtree.NodeRef) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node rbtree.NodeRef) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Vector2Dot outputs the internal structure of one or more vectors in Graphviz
// DOT format (for debugging purposes).
//
// Nodes shared between versions are emitted once. They are shaded by the
// number of versions referencing them, which makes structural sharing
// visible.
func Vector2Dot[N Number](w io.Writer, versions ...Vector[N]) error {
	ids := newtable()
	refcnt := make(map[rbtree.NodeRef]int)
	var nodelist, edgelist strings.Builder
	for k, v := range versions {
		tree := treeFromVector(v)
		fmt.Fprintf(&nodelist, "\"v%d\" [label=\"v%d\\nlen=%d\",shape=plaintext];\n", k, k, tree.Len())
		emitted := make(map[rbtree.NodeRef]bool) // nodes first emitted for this version
		err := tree.Walk(func(info rbtree.NodeInfo[N]) error {
			refcnt[info.Ref]++
			ID := ids.alloc(info.Ref)
			if info.Parent.IsZero() {
				fmt.Fprintf(&edgelist, "\"v%d\" -> \"%d\";\n", k, ID)
			} else if emitted[info.Parent] {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ids.find(info.Parent), ID)
			}
			if refcnt[info.Ref] > 1 {
				return nil // shared with an earlier version
			}
			emitted[info.Ref] = true
			if !info.Leaf {
				for slot := info.Children; slot < info.Slots; slot++ {
					nilid := ID*100 + slot + 100000
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode(nilid))
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				}
			}
			return nil
		})
		if err != nil {
			T().Errorf("vector DOT: %s", err.Error())
			return err
		}
	}
	// labels are written last, when reference counts are complete
	done := make(map[rbtree.NodeRef]bool)
	for _, v := range versions {
		_ = treeFromVector(v).Walk(func(info rbtree.NodeInfo[N]) error {
			if done[info.Ref] {
				return nil
			}
			done[info.Ref] = true
			styles := nodeDotStyles(info.Leaf, refcnt[info.Ref])
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ids.find(info.Ref), nodeLabel(info), styles)
			return nil
		})
	}
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func nodeLabel[N Number](info rbtree.NodeInfo[N]) string {
	if info.Leaf {
		return fmt.Sprint(info.Values)
	}
	if !info.HasMin {
		return "min=∞"
	}
	return fmt.Sprintf("min=%v", info.Min)
}

func emptyNode(id int) string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool, refcnt int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	palette := hexcolors
	if refcnt > 1 {
		palette = hexhlcolors
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", palette[min(refcnt, len(palette))-1])
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
