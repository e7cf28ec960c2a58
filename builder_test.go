package suffixtree

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
	"testing/quick"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// randomString mirrors this pack's own random-hex-string test helper.
func randomString(t *testing.T) string {
	var gen [16]byte
	_, err := rand.Read(gen[:])
	require.NoError(t, err)
	return hex.EncodeToString(gen[:])
}

func TestEmptyString(t *testing.T) {
	tr, err := New("")
	require.NoError(t, err)

	require.Equal(t, -1, tr.FindSubstring("not there"))
	require.Equal(t, -1, tr.FindSubstring(""))
	require.False(t, tr.HasSubstring("not there"))
	require.False(t, tr.HasSubstring(""))
}

func TestRepeatedString(t *testing.T) {
	tr, err := New("aaa")
	require.NoError(t, err)

	require.Equal(t, 0, tr.FindSubstring("a"))
	require.Equal(t, 0, tr.FindSubstring("aa"))
	require.Equal(t, 0, tr.FindSubstring("aaa"))
	require.Equal(t, -1, tr.FindSubstring("aaaa"))
	require.Equal(t, -1, tr.FindSubstring("b"))
	// Case sensitive by default.
	require.Equal(t, -1, tr.FindSubstring("A"))

	require.True(t, tr.HasSubstring("a"))
	require.True(t, tr.HasSubstring("aa"))
	require.True(t, tr.HasSubstring("aaa"))
	require.False(t, tr.HasSubstring("aaaa"))
	require.False(t, tr.HasSubstring("b"))
}

func TestRepeatedSubstringEitherOccurrenceAcceptable(t *testing.T) {
	const s = "abcabxabcd"
	tr, err := New(s)
	require.NoError(t, err)

	require.True(t, tr.HasSubstring("abcd"))
	require.False(t, tr.HasSubstring("abcx"))

	i := tr.FindSubstring("bca")
	require.Contains(t, []int{1, 6}, i)
	require.Equal(t, "bca", string(s[i:i+3]))
}

func TestBanana(t *testing.T) {
	const s = "banana"
	tr, err := New(s)
	require.NoError(t, err)

	i := tr.FindSubstring("ana")
	require.Contains(t, []int{1, 3}, i)
	require.Equal(t, "ana", s[i:i+3])

	require.Equal(t, -1, tr.FindSubstring("nab"))
}

// TestLeafCountWithSentinel exercises property P5: when S ends in a byte
// that occurs nowhere else, no suffix is a prefix of another, so the leaf
// count equals len(S).
func TestLeafCountWithSentinel(t *testing.T) {
	const body = "abracadabramirabiliadabracadabra"
	s := body + "$" // '$' appears nowhere in body
	tr, err := New(s)
	require.NoError(t, err)

	require.Equal(t, len(s), tr.LeafCount())
}

// TestSuffixLinksPointAtTheRootPathMinusOneByte is property P6: for every
// internal node whose root-path is a·alpha, its suffix link must point at
// the node whose root-path is alpha. We verify it indirectly and
// cheaply: every root-path that appears as the path to some internal
// node, minus its first byte, must also be the root-path of some node
// (that node being exactly the suffix-link target).
func TestSuffixLinksPointAtTheRootPathMinusOneByte(t *testing.T) {
	const s = "mississippi$"
	tr, err := New(s)
	require.NoError(t, err)

	paths := rootPaths(t, tr)
	byPath := make(map[string]nodeID, len(paths))
	for id, p := range paths {
		byPath[p] = id
	}

	walker := newEdgeWalker(tr)
	for {
		e, ok := walker.next()
		if !ok {
			break
		}
		// Only internal nodes (nodes with further outgoing edges) carry
		// a meaningful suffix link in this construction.
		if len(tr.edges.outgoing(e.dest)) == 0 {
			continue
		}
		link, has := tr.nodes.suffixLink(e.dest)
		require.True(t, has, "internal node %d missing a suffix link", e.dest)

		path := paths[e.dest]
		require.NotEmpty(t, path)
		want := path[1:]
		require.Equal(t, byPath[want], link,
			"suffix link of node with root-path %q should point to root-path %q", path, want)
	}
}

// rootPaths labels every reachable node with the string on its path from
// the root, by walking the same edge set Dump uses.
func rootPaths(t *testing.T, tr *Tree) map[nodeID]string {
	t.Helper()
	paths := map[nodeID]string{tr.root: ""}

	var visit func(id nodeID)
	visit = func(id nodeID) {
		for _, e := range tr.edges.outgoing(id) {
			top := e.last
			if tr.n < top {
				top = tr.n
			}
			paths[e.dest] = paths[id] + string(tr.text.slice(e.first, top+1))
			visit(e.dest)
		}
	}
	visit(tr.root)
	return paths
}

// TestConstructionStress is scenario 6: construction over a large random
// string completes without panicking, and every substring sampled from
// it is found at some consistent position.
func TestConstructionStress(t *testing.T) {
	s := randomBytesString(t, 10_000)
	tr, err := New(s)
	require.NoError(t, err)

	for _, k := range []int{1, 4, 16} {
		for j := 0; j+k <= len(s); j += 137 { // sparse sampling keeps the test fast
			want := s[j : j+k]
			i := tr.FindSubstring(want)
			require.GreaterOrEqual(t, i, 0, "substring %q at %d not found", want, j)
			require.Equal(t, want, s[i:i+k])
		}
	}
}

func randomBytesString(t *testing.T, n int) string {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	// Keep the alphabet small so edges actually branch and split paths
	// get exercised, rather than degenerating into one edge per byte.
	for i, b := range buf {
		buf[i] = 'a' + b%4
	}
	return string(buf)
}

// TestFindSubstringProperty is P1, generated via testing/quick,
// the same property-testing tool this pack's own tests use.
func TestFindSubstringProperty(t *testing.T) {
	f := func(body string, j, k uint8) bool {
		if body == "" {
			return true
		}
		tr, err := New(body)
		if err != nil {
			return false
		}

		start := int(j) % len(body)
		length := int(k)%(len(body)-start) + 1
		p := body[start : start+length]

		i := tr.FindSubstring(p)
		if i < 0 || i+len(p) > len(body) {
			return false
		}
		return body[i:i+len(p)] == p
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 500}))
}

// TestFindSubstringMissProperty is P2 for patterns constructed so that
// they cannot occur in body: a sentinel byte followed by "x", where the
// sentinel occurs nowhere in body.
func TestFindSubstringMissProperty(t *testing.T) {
	f := func(body string) bool {
		const sentinel = '\x00'
		if containsByte(body, sentinel) {
			return true
		}
		tr, err := New(body)
		if err != nil {
			return false
		}
		return tr.FindSubstring(string(sentinel)+"x") == -1
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 500}))
}

func containsByte(s string, b byte) bool {
	return lo.ContainsBy([]byte(s), func(c byte) bool { return c == b })
}
