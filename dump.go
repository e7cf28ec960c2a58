package suffixtree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable listing of the tree's edges to w: source
// node, destination node, the destination's suffix-link target (-1 if
// none), the edge's first/last index, and the substring it labels.
//
// Grounded on the original implementation's __repr__, which sorted its
// edge collection in place before printing; Dump sorts a defensive copy
// instead; printing a tree has no effect on subsequent queries or
// construction, and is safe to call from concurrent readers.
func (tr *Tree) Dump(w io.Writer) error {
	if _, err := fmt.Fprint(w, "\tStart \tEnd \tSuf \tFirst \tLast \tString\n"); err != nil {
		return err
	}

	walker := newEdgeWalker(tr)
	for {
		e, ok := walker.next()
		if !ok {
			break
		}

		suf := -1
		if link, has := tr.nodes.suffixLink(e.dest); has {
			suf = int(link)
		}

		top := e.last
		if tr.n < top {
			top = tr.n
		}
		label := tr.text.slice(e.first, top+1)

		if _, err := fmt.Fprintf(w, "\t%d \t%d \t%d \t%d \t%d \t%s\n",
			e.source, e.dest, suf, e.first, e.last, label); err != nil {
			return err
		}
	}
	return nil
}

// String renders the same listing as Dump. Writes to a strings.Builder
// never fail, so the error Dump could return is always nil here.
func (tr *Tree) String() string {
	var b strings.Builder
	_ = tr.Dump(&b)
	return b.String()
}

// LeafCount returns the number of nodes with no outgoing edge.
func (tr *Tree) LeafCount() int {
	hasOutgoing := make([]bool, tr.nodes.len())
	walker := newEdgeWalker(tr)
	for {
		e, ok := walker.next()
		if !ok {
			break
		}
		hasOutgoing[e.source] = true
	}

	count := 0
	for _, v := range hasOutgoing {
		if !v {
			count++
		}
	}
	return count
}

// InternalNodeCount returns the number of nodes with at least one
// outgoing edge, root included.
func (tr *Tree) InternalNodeCount() int {
	return tr.nodes.len() - tr.LeafCount()
}
