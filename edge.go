package suffixtree

import "sort"

// edgeKey is the edge store's key: a node has at most one outgoing edge
// per starting code unit (spec invariant I2).
type edgeKey struct {
	source nodeID
	first  byte
}

// edge labels the substring text[first..last] (inclusive on both ends).
// Its length is last-first, not +1, matching the canonize comparison.
type edge struct {
	first, last   int
	source, dest  nodeID
}

func (e edge) length() int {
	return e.last - e.first
}

// edgeStore maps (source, first code unit) to an edge. Edges may be
// mutated in place (first advanced, source reassigned during a split) but
// every mutation that changes the key is bracketed by a remove/insert so
// the key invariant (I3) always holds.
type edgeStore struct {
	text  *text
	edges []edge
	index map[edgeKey]int
}

func newEdgeStore(t *text) *edgeStore {
	return &edgeStore{
		text:  t,
		index: make(map[edgeKey]int),
	}
}

func (s *edgeStore) key(source nodeID, first int) edgeKey {
	return edgeKey{source: source, first: s.text.at(first)}
}

// insert adds e to the store, keyed by its current (source, first). A key
// collision means a node already has an outgoing edge for that code unit,
// which cannot happen under the algorithm's invariants.
func (s *edgeStore) insert(e edge) int {
	k := s.key(e.source, e.first)
	if _, exists := s.index[k]; exists {
		panic(invariantViolation{"edge store key collision on insert"})
	}
	s.edges = append(s.edges, e)
	id := len(s.edges) - 1
	s.index[k] = id
	return id
}

func (s *edgeStore) lookup(source nodeID, c byte) (int, bool) {
	id, ok := s.index[edgeKey{source: source, first: c}]
	return id, ok
}

func (s *edgeStore) get(id int) edge {
	return s.edges[id]
}

// mutate applies fn to the edge at id in place and rekeys it in the index
// if the mutation changed its (source, first) key: the old key is deleted
// and the new one installed, so callers never see a stale or doubled entry
// for the mutated edge.
func (s *edgeStore) mutate(id int, fn func(*edge)) {
	e := &s.edges[id]
	oldKey := s.key(e.source, e.first)
	fn(e)
	newKey := s.key(e.source, e.first)
	if oldKey != newKey {
		delete(s.index, oldKey)
		s.index[newKey] = id
	}
}

// outgoing returns the edges whose source is the given node, sorted by
// the code unit that keys them, for deterministic traversal (Dump, leaf
// counting). This is O(number of edges) and is only used off the hot
// construction/query path.
func (s *edgeStore) outgoing(source nodeID) []edge {
	var out []edge
	for k, id := range s.index {
		if k.source == source {
			out = append(out, s.edges[id])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return s.text.at(out[i].first) < s.text.at(out[j].first)
	})
	return out
}

func (s *edgeStore) len() int {
	return len(s.index)
}
