package lzma

import "io"

// dictionary is the decoder's view of the last dictSize bytes of plain
// output: a circular buffer matches are copied out of, and literals are
// appended to, as the bit stream is decoded. Output bytes are forwarded
// to w as soon as they are produced; checksumming is the caller's
// concern (wrap w with a CRC-computing writer), matching the teacher's
// preference for composing io.Writer rather than baking checksums into
// the codec. Grounded on the teacher's lzbase/dict.go.
type dictionary struct {
	w    io.Writer
	buf  []byte
	pos  int64 // absolute count of bytes produced so far
	size int64 // dictionary size (buf's capacity)
}

func newDictionary(w io.Writer, dictSize int64) *dictionary {
	return &dictionary{w: w, buf: make([]byte, dictSize), size: dictSize}
}

func (d *dictionary) index() int64 { return d.pos % d.size }

// byteAt returns the byte dist bytes before the current position. dist
// must be in [1, min(pos, size)].
func (d *dictionary) byteAt(dist uint32) byte {
	i := d.pos - int64(dist)
	return d.buf[i%d.size]
}

// putByte appends b to the dictionary and forwards it downstream.
func (d *dictionary) putByte(b byte) error {
	d.buf[d.index()] = b
	d.pos++
	_, err := d.w.Write([]byte{b})
	return err
}

// copyMatch appends length bytes copied from dist bytes back, one byte
// at a time since a match may overlap itself (dist < length is the
// common case that produces runs).
func (d *dictionary) copyMatch(dist uint32, length uint32) error {
	for i := uint32(0); i < length; i++ {
		if err := d.putByte(d.byteAt(dist)); err != nil {
			return err
		}
	}
	return nil
}

// checkDistance reports whether dist is a distance the dictionary can
// currently satisfy: it must reach no further back than what has
// actually been produced, and no further than the dictionary size.
func (d *dictionary) checkDistance(dist uint32) bool {
	if int64(dist) > d.size {
		return false
	}
	return int64(dist) <= d.pos
}
