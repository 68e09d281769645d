package lzma

import (
	"errors"
	"io"

	"github.com/deepin-community/go-lzip/rc"
)

// ErrDataError is returned when a decoded bit stream is internally
// inconsistent: a rep-match distance with no history yet, a distance
// reaching further back than the dictionary, or a range-coder state
// that never settles to zero at the claimed end of stream.
var ErrDataError = errors.New("lzma: data error")

// Decoder decompresses a raw LZMA bit stream (no lzip framing) onto an
// io.Writer, one packet at a time. Grounded on the teacher's
// lzbase/reader.go.
type Decoder struct {
	rc   *rc.Decoder
	op   *opCodec
	dict *dictionary
}

// NewDecoder creates a decoder that reads a raw LZMA stream from r and
// writes decompressed bytes to w as they are produced. dictSize bounds
// how far back a match may reference and must match the value the
// encoder used.
func NewDecoder(r io.Reader, w io.Writer, props Properties, dictSize int64) (*Decoder, error) {
	if err := props.Verify(); err != nil {
		return nil, err
	}
	if dictSize < minDictSize {
		dictSize = minDictSize
	}
	rd := rc.NewDecoder(r)
	if err := rd.Init(); err != nil {
		return nil, err
	}
	return &Decoder{
		rc:   rd,
		op:   newOpCodec(props),
		dict: newDictionary(w, dictSize),
	}, nil
}

// DecodeStream decodes packets until it reaches an explicit end-of-stream
// marker (a match with distance 0xffffffff) or, when size >= 0,
// until exactly size bytes have been produced. Passing size < 0 means
// decode to the end-of-stream marker.
func (d *Decoder) DecodeStream(size int64) error {
	for size < 0 || d.dict.pos < size {
		eos, err := d.decodePacket()
		if err != nil {
			return err
		}
		if eos {
			if !d.rc.AtEnd() {
				return ErrDataError
			}
			return nil
		}
	}
	return nil
}

// decodePacket decodes a single packet, returning true if it was the
// end-of-stream marker.
func (d *Decoder) decodePacket() (bool, error) {
	c := d.op
	pos := d.dict.pos
	pState := c.posState(pos)

	b, err := d.rc.DecodeBit(&c.isMatch[c.st][pState])
	if err != nil {
		return false, err
	}
	if b == 0 {
		return false, d.decodeLiteral(pos)
	}

	b, err = d.rc.DecodeBit(&c.isRep[c.st])
	if err != nil {
		return false, err
	}
	if b == 0 {
		return d.decodeMatch(pos, pState)
	}
	return d.decodeRep(pos, pState)
}

func (d *Decoder) decodeLiteral(pos int64) error {
	c := d.op
	var prevByte byte
	if pos > 0 {
		prevByte = d.dict.byteAt(1)
	}
	var b byte
	var err error
	if c.st.isLiteral() {
		b, err = c.litCodec.decode(d.rc, pos, prevByte)
	} else {
		matchByte := d.dict.byteAt(c.reps[0] + 1)
		b, err = c.litCodec.decodeMatched(d.rc, pos, prevByte, matchByte)
	}
	if err != nil {
		return err
	}
	c.st = c.st.afterLiteral()
	return d.dict.putByte(b)
}

func (d *Decoder) decodeMatch(pos int64, pState uint32) (bool, error) {
	c := d.op
	length, err := c.matchLenCodec.decode(d.rc, pState)
	if err != nil {
		return false, err
	}
	dist, err := c.distCodec.decode(d.rc, lenToPosState(length))
	if err != nil {
		return false, err
	}
	if dist == 0xffffffff {
		return true, nil
	}
	c.reps[3], c.reps[2], c.reps[1], c.reps[0] = c.reps[2], c.reps[1], c.reps[0], dist
	c.st = c.st.afterMatch()
	return false, d.copyMatch(dist+1, length)
}

func (d *Decoder) decodeRep(pos int64, pState uint32) (bool, error) {
	c := d.op
	b, err := d.rc.DecodeBit(&c.isRepG0[c.st])
	if err != nil {
		return false, err
	}
	var dist uint32
	if b == 0 {
		b, err = d.rc.DecodeBit(&c.isRep0Long[c.st][pState])
		if err != nil {
			return false, err
		}
		if b == 0 {
			c.st = c.st.afterShortRep()
			return false, d.copyMatch(c.reps[0]+1, 1)
		}
		dist = c.reps[0]
	} else {
		var idx int
		b, err = d.rc.DecodeBit(&c.isRepG1[c.st])
		if err != nil {
			return false, err
		}
		if b == 0 {
			idx = 1
		} else {
			b, err = d.rc.DecodeBit(&c.isRepG2[c.st])
			if err != nil {
				return false, err
			}
			if b == 0 {
				idx = 2
			} else {
				idx = 3
			}
		}
		dist = c.reps[idx]
		copy(c.reps[1:idx+1], c.reps[0:idx])
		c.reps[0] = dist
	}
	length, err := c.repLenCodec.decode(d.rc, pState)
	if err != nil {
		return false, err
	}
	c.st = c.st.afterRep()
	return false, d.copyMatch(dist+1, length)
}

func (d *Decoder) copyMatch(dist uint32, length uint32) error {
	if !d.dict.checkDistance(dist) {
		return ErrDataError
	}
	return d.dict.copyMatch(dist, length)
}
