// Package suffixtree builds a generalized suffix tree over a single input
// string using Ukkonen's online construction, and answers substring
// queries against it in O(|pattern|) after an O(n) build.
//
// Construction is a batch operation over an already-materialized string:
// New runs to completion and returns an immutable Tree, safe to query
// concurrently from multiple goroutines without synchronization. There is
// no incremental append after construction and no disk-resident variant.
package suffixtree

// Tree is a suffix tree built over a single string by Ukkonen's
// algorithm. The zero value is not usable; construct one with New.
//
// A *Tree is immutable once New returns and may be queried concurrently
// by multiple goroutines.
type Tree struct {
	text   *text
	n      int // len(text)-1; -1 for the empty string
	root   nodeID
	nodes  *nodeStore
	edges  *edgeStore
	active suffix

	observer Observer
}

// New constructs a suffix tree over s. With WithCaseInsensitive, s and
// every later query pattern are folded to a common case before use; New
// returns ErrFoldingChangedLength if that fold would not preserve s's
// byte length.
//
// Construction is total for any string, including the empty string: the
// resulting tree is a sole root with no edges, and every query on it
// returns -1.
func New(s string, opts ...Option) (*Tree, error) {
	cfg := newConfig(opts)

	t, err := newText(s, cfg.caseInsensitive)
	if err != nil {
		return nil, err
	}

	tr := &Tree{
		text:     t,
		n:        t.len() - 1,
		nodes:    newNodeStore(),
		observer: cfg.observer,
	}
	tr.edges = newEdgeStore(t)

	tr.root = tr.newNode()
	tr.active = suffix{source: tr.root, first: 0, last: -1}

	for i := 0; i < t.len(); i++ {
		tr.addPrefix(i)
	}

	return tr, nil
}

func (tr *Tree) newNode() nodeID {
	id := tr.nodes.newNode()
	tr.observer.NodeCreated(int(id))
	return id
}

func (tr *Tree) newEdge(e edge) int {
	id := tr.edges.insert(e)
	tr.observer.EdgeCreated(int(e.source), int(e.dest), e.first, e.last)
	return id
}

// addPrefix processes the extension phase for code unit i: it installs
// every new leaf mandated by appending text[i] to every suffix already in
// the tree, threading suffix links across the inner loop in the order
// the links become knowable.
func (tr *Tree) addPrefix(i int) {
	var lastParent nodeID
	hasLastParent := false
	var parent nodeID

	for {
		parent = tr.active.source

		if tr.active.explicit() {
			if _, ok := tr.edges.lookup(tr.active.source, tr.text.at(i)); ok {
				// The code unit is already represented below the
				// current explicit point.
				break
			}
		} else {
			id, ok := tr.edges.lookup(tr.active.source, tr.text.at(tr.active.first))
			if !ok {
				panic(invariantViolation{"missing edge at implicit active point"})
			}
			e := tr.edges.get(id)
			if tr.text.at(e.first+tr.active.length()+1) == tr.text.at(i) {
				// The code unit extends the implicit point without
				// branching.
				break
			}
			parent = tr.splitEdge(id, tr.active)
		}

		leaf := tr.newNode()
		tr.newEdge(edge{first: i, last: tr.n, source: parent, dest: leaf})

		if hasLastParent {
			tr.nodes.setSuffixLink(lastParent, parent)
		}
		lastParent = parent
		hasLastParent = true

		if tr.active.source == tr.root {
			tr.active.first++
		} else {
			link, ok := tr.nodes.suffixLink(tr.active.source)
			if !ok {
				panic(invariantViolation{"missing suffix link while shifting active point"})
			}
			tr.active.source = link
		}
		tr.canonize(&tr.active)
	}

	if hasLastParent {
		tr.nodes.setSuffixLink(lastParent, parent)
	}
	tr.active.last++
	tr.canonize(&tr.active)
}

// splitEdge splits e at offset active.length from its start, inserting a
// fresh internal node between e's source and destination, and returns
// that node.
func (tr *Tree) splitEdge(id int, active suffix) nodeID {
	e := tr.edges.get(id)

	mid := tr.newNode()
	head := edge{
		first:  e.first,
		last:   e.first + active.length(),
		source: active.source, // == e.source
		dest:   mid,
	}

	// Rekey e off (e.source, e.first) first, freeing that key for head to
	// take: mutate deletes e's old key and inserts its new one, so by the
	// time newEdge(head) runs below, the slot head wants is vacant.
	tr.edges.mutate(id, func(e *edge) {
		e.first += active.length() + 1
		e.source = mid
	})
	tr.newEdge(head)

	// Provisional: overwritten consistently on the next outer-loop
	// iteration that installs this node's real suffix link.
	tr.nodes.setSuffixLink(mid, active.source)

	return mid
}

// canonize normalizes active so its source is the deepest node on its
// path, leaving an implicit remainder strictly shorter than the edge
// that starts it. Written iteratively (not recursively) per the
// package's design notes, so construction over adversarial inputs
// cannot exhaust the call stack.
func (tr *Tree) canonize(active *suffix) {
	for active.implicit() {
		id, ok := tr.edges.lookup(active.source, tr.text.at(active.first))
		if !ok {
			panic(invariantViolation{"missing edge during canonicalization"})
		}
		e := tr.edges.get(id)
		if e.length() > active.length() {
			break
		}
		active.first += e.length() + 1
		active.source = e.dest
	}
}

// Len returns the number of code units in the tree's (possibly
// case-folded) text.
func (tr *Tree) Len() int {
	return tr.text.len()
}

// NodeCount returns the total number of nodes in the tree, root included.
func (tr *Tree) NodeCount() int {
	return tr.nodes.len()
}
