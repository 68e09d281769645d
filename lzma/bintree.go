package lzma

// binTree is a true binary-tree match finder: every position is a node
// ordered by its suffix's lexicographic rank, reached through a hash4
// bucket that roots one tree per hash. Searching a new position's
// suffix down the tree both finds every candidate whose match length
// exceeds the best seen so far, in order, and locates the node's own
// insertion point in the same pass, the classic BT4 trick of combining
// search and insert into one walk. Grounded on the teacher's
// lzma/bintree.go, replaced rather than reused because that file only
// ever discriminates nodes on a fixed 4-byte prefix and so cannot report
// a match's true length, only whether one exists.
type binTree struct {
	w        *window
	head     []int64 // hashSize entries: root position per hash bucket, or -1
	left     []int64 // ring of dictSize entries: left child (lexicographically smaller suffix)
	right    []int64 // ring of dictSize entries: right child (lexicographically larger suffix)
	dictSize int64
	maxDepth int
	inserted int64 // one past the highest position already indexed
}

func newBinTree(w *window, maxDepth int) *binTree {
	t := &binTree{
		w:        w,
		head:     make([]int64, hashSize),
		left:     make([]int64, w.dictSize),
		right:    make([]int64, w.dictSize),
		dictSize: w.dictSize,
		maxDepth: maxDepth,
		inserted: w.pos,
	}
	for i := range t.head {
		t.head[i] = -1
	}
	return t
}

func (t *binTree) ring(pos int64) int64 { return pos % t.dictSize }

// walk inserts pos into the tree, returning candidate matches found
// along the way if collect is true. It is a no-op if pos was already
// inserted.
func (t *binTree) walk(pos int64, limit int, collect bool) []match {
	if pos < t.inserted {
		return nil
	}
	t.inserted = pos + 1

	if t.w.remaining(pos) < 4 {
		return nil
	}
	hv := hash4(t.w.slice(pos))
	cur := t.head[hv]
	t.head[hv] = pos

	// leftEdge/rightEdge are the child slots of the new node that the
	// walk will wire up once it runs out of tree to descend into: the
	// deepest node found to have a smaller suffix becomes our left
	// child (nothing further right of it remains unexplored on that
	// side), and symmetrically for the right.
	selfRing := t.ring(pos)
	leftEdge, rightEdge := &t.left[selfRing], &t.right[selfRing]

	var out []match
	bestLen := matchMinLen - 1
	lenLeft, lenRight := 0, 0

	for depth := 0; cur >= 0 && depth < t.maxDepth; depth++ {
		dist := pos - cur
		if dist <= 0 || dist > t.dictSize {
			break
		}
		prefix := lenLeft
		if lenRight < prefix {
			prefix = lenRight
		}
		n := t.w.matchLen(cur+int64(prefix), pos+int64(prefix), limit-prefix)
		matched := prefix + n
		if matched > bestLen && matched >= matchMinLen {
			bestLen = matched
			if collect {
				out = append(out, match{dist: uint32(dist), length: matched})
			}
			if matched >= limit {
				// Exact prefix match up to the lookahead limit: no
				// point telling either child apart further.
				*leftEdge, *rightEdge = -1, -1
				return out
			}
		}

		curRing := t.ring(cur)
		var curLess bool
		if matched >= limit {
			curLess = false
		} else {
			curLess = t.w.at(cur+int64(matched)) < t.w.at(pos+int64(matched))
		}
		if curLess {
			// cur's suffix sorts before pos's: cur and everything to
			// its left can only ever be pos's left subtree; descend
			// into cur's right child looking for closer candidates.
			*leftEdge = cur
			leftEdge = &t.right[curRing]
			lenLeft = matched
			cur = t.right[curRing]
		} else {
			*rightEdge = cur
			rightEdge = &t.left[curRing]
			lenRight = matched
			cur = t.left[curRing]
		}
	}
	*leftEdge, *rightEdge = -1, -1
	return out
}

func (t *binTree) matches(pos int64, limit int) []match { return t.walk(pos, limit, true) }
func (t *binTree) insert(pos int64)                     { t.walk(pos, matchMaxLen, false) }
func (t *binTree) skip(pos int64)                       { t.walk(pos, matchMaxLen, false) }
