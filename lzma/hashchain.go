package lzma

// hashChain is the classic hash-table-plus-linked-list match finder:
// every 4-byte prefix hashes to the most recent position sharing it, and
// each position remembers the previous one in the same bucket so a
// search walks backwards through time. Grounded on the teacher's
// lzb/hashtable.go, generalized from its fixed-size slot ring to an
// unbounded chain walked up to maxDepth steps, which is what lets it
// report a match's true length instead of only its presence.
type hashChain struct {
	w        *window
	head     []int64 // hashSize entries, most recent position or -1
	prev     []int64 // ring of dictSize entries, previous position in chain
	dictSize int64
	maxDepth int
}

func newHashChain(w *window, maxDepth int) *hashChain {
	h := &hashChain{
		w:        w,
		head:     make([]int64, hashSize),
		prev:     make([]int64, w.dictSize),
		dictSize: w.dictSize,
		maxDepth: maxDepth,
	}
	for i := range h.head {
		h.head[i] = -1
	}
	return h
}

func (h *hashChain) ringIndex(pos int64) int64 { return pos % h.dictSize }

func (h *hashChain) insert(pos int64) {
	if h.w.remaining(pos) < 4 {
		return
	}
	b := h.w.slice(pos)
	hv := hash4(b)
	h.prev[h.ringIndex(pos)] = h.head[hv]
	h.head[hv] = pos
}

func (h *hashChain) skip(pos int64) { h.insert(pos) }

func (h *hashChain) matches(pos int64, limit int) []match {
	if h.w.remaining(pos) < 4 {
		return nil
	}
	b := h.w.slice(pos)
	hv := hash4(b)
	cand := h.head[hv]

	var out []match
	bestLen := matchMinLen - 1
	for depth := 0; cand >= 0 && depth < h.maxDepth; depth++ {
		cpos := cand
		dist := pos - cpos
		if dist <= 0 || dist > h.dictSize {
			break
		}
		n := h.w.matchLen(cpos, pos, limit)
		if n > bestLen && n >= matchMinLen {
			bestLen = n
			out = append(out, match{dist: uint32(dist), length: n})
			if n >= limit {
				break
			}
		}
		cand = h.prev[h.ringIndex(cpos)]
	}
	return out
}
