package lzma

// window is the encoder's view of the input: a growing buffer fed by
// successive Write calls, match-found against with distances up to
// dictSize, and trimmed from the front once bytes fall further back
// than dictSize behind the current position so memory stays bounded
// regardless of input size. Grounded on the teacher's lzbase/dict.go, adapted from
// its ring-buffer design to a trim-on-append slice because the match
// finders need contiguous byte slices to compare, not a wrap-around
// index.
type window struct {
	data     []byte // data[i] is the byte at absolute position base+i
	base     int64  // absolute position of data[0]
	pos      int64  // absolute position of the next byte to encode
	dictSize int64
}

func newWindow(dictSize int64) *window {
	return &window{dictSize: dictSize}
}

// append adds newly read input bytes to the tail of the window.
func (w *window) append(p []byte) {
	w.data = append(w.data, p...)
}

// avail is how many unencoded bytes are currently buffered.
func (w *window) avail() int {
	return len(w.data) - int(w.pos-w.base)
}

// remaining is how many buffered bytes lie at or after absolute position
// p, the bound match finders must check before slicing at p: during the
// optimal parser's forward look-ahead p can run ahead of w.pos, so
// avail() (which measures from w.pos) is not a safe proxy for it.
func (w *window) remaining(p int64) int {
	return len(w.data) - int(p-w.base)
}

// at returns the byte at absolute position p, which must be within
// [w.base, w.base+len(w.data)).
func (w *window) at(p int64) byte {
	return w.data[p-w.base]
}

// slice returns the buffered bytes starting at absolute position p.
func (w *window) slice(p int64) []byte {
	return w.data[p-w.base:]
}

// advance marks n bytes starting at the current position as encoded.
func (w *window) advance(n int) {
	w.pos += int64(n)
}

// trim drops buffered bytes that lie further back than dictSize from
// the current position, bounding memory use on long inputs. It must only be called between operations, never while
// a match finder holds positions computed against the old base.
func (w *window) trim() {
	keepFrom := w.pos - w.dictSize
	if keepFrom <= w.base {
		return
	}
	drop := keepFrom - w.base
	if drop <= 0 {
		return
	}
	w.data = w.data[drop:]
	w.base += drop
}

// matchLen returns how many bytes starting at position a equal the
// bytes starting at position b, capped at max.
func (w *window) matchLen(a, b int64, max int) int {
	da := w.data[a-w.base:]
	db := w.data[b-w.base:]
	n := len(da)
	if len(db) < n {
		n = len(db)
	}
	if max < n {
		n = max
	}
	i := 0
	for i < n && da[i] == db[i] {
		i++
	}
	return i
}
