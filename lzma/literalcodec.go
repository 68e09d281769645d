package lzma

import "github.com/deepin-community/go-lzip/rc"

// literalCodec models literal bytes with a per-context bit tree of 256
// leaves. The context is selected by lc bits of the previous output byte
// and lp bits of the current position; coming out of a match packet the
// tree is additionally matched bit-by-bit against the byte at the most
// recent match distance, the classic LZMA "matched literal" trick that
// lets the coder spend almost nothing on a byte that merely differs from
// the reference by a bit flip. Grounded on the teacher's
// lzma/literal_codec.go.
type literalCodec struct {
	lc, lp uint32
	probs  [][0x300]rc.Prob
}

func newLiteralCodec(lc, lp uint32) *literalCodec {
	n := 1 << (lc + lp)
	c := &literalCodec{lc: lc, lp: lp, probs: make([][0x300]rc.Prob, n)}
	for i := range c.probs {
		for j := range c.probs[i] {
			c.probs[i][j] = rc.ProbInit
		}
	}
	return c
}

func (c *literalCodec) state(pos int64, prevByte byte) uint32 {
	lpMask := uint32(1<<c.lp) - 1
	lit := uint32(pos) & lpMask
	return (lit << c.lc) | (uint32(prevByte) >> (8 - c.lc))
}

func (c *literalCodec) encode(e *rc.Encoder, pos int64, prevByte, b byte) error {
	probs := &c.probs[c.state(pos, prevByte)]
	m := uint32(1)
	for i := 7; i >= 0; i-- {
		bit := uint32(b>>uint(i)) & 1
		if err := e.EncodeBit(&probs[m], bit); err != nil {
			return err
		}
		m = (m << 1) | bit
	}
	return nil
}

// encodeMatched encodes a literal immediately after a match packet,
// shadowing each bit against the corresponding bit of matchByte (the
// byte at the distance of the match just emitted) until the two
// diverge, after which it falls back to the plain per-bit contexts.
func (c *literalCodec) encodeMatched(e *rc.Encoder, pos int64, prevByte, matchByte, b byte) error {
	probs := &c.probs[c.state(pos, prevByte)]
	m := uint32(1)
	diverged := false
	for i := 7; i >= 0; i-- {
		bit := uint32(b>>uint(i)) & 1
		var idx uint32
		if diverged {
			idx = m
		} else {
			matchBit := uint32(matchByte>>uint(i)) & 1
			idx = ((1 + matchBit) << 8) + m
			if matchBit != bit {
				diverged = true
			}
		}
		if err := e.EncodeBit(&probs[idx], bit); err != nil {
			return err
		}
		m = (m << 1) | bit
	}
	return nil
}

// price estimates the bit cost of encode, without mutating any
// probability, for use by the optimal-parsing encoder.
func (c *literalCodec) price(pos int64, prevByte, b byte) uint32 {
	probs := &c.probs[c.state(pos, prevByte)]
	m := uint32(1)
	price := uint32(0)
	for i := 7; i >= 0; i-- {
		bit := uint32(b>>uint(i)) & 1
		price += probs[m].Price(bit)
		m = (m << 1) | bit
	}
	return price
}

// priceMatched estimates the bit cost of encodeMatched.
func (c *literalCodec) priceMatched(pos int64, prevByte, matchByte, b byte) uint32 {
	probs := &c.probs[c.state(pos, prevByte)]
	m := uint32(1)
	price := uint32(0)
	diverged := false
	for i := 7; i >= 0; i-- {
		bit := uint32(b>>uint(i)) & 1
		var idx uint32
		if diverged {
			idx = m
		} else {
			matchBit := uint32(matchByte>>uint(i)) & 1
			idx = ((1 + matchBit) << 8) + m
			if matchBit != bit {
				diverged = true
			}
		}
		price += probs[idx].Price(bit)
		m = (m << 1) | bit
	}
	return price
}

func (c *literalCodec) decode(d *rc.Decoder, pos int64, prevByte byte) (byte, error) {
	probs := &c.probs[c.state(pos, prevByte)]
	m := uint32(1)
	for m < 0x100 {
		bit, err := d.DecodeBit(&probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | bit
	}
	return byte(m), nil
}

// decodeMatched is the decoding counterpart of encodeMatched.
func (c *literalCodec) decodeMatched(d *rc.Decoder, pos int64, prevByte, matchByte byte) (byte, error) {
	probs := &c.probs[c.state(pos, prevByte)]
	m := uint32(1)
	diverged := false
	for m < 0x100 {
		var idx uint32
		if diverged {
			idx = m
		} else {
			matchBit := uint32(matchByte>>7) & 1
			matchByte <<= 1
			idx = ((1 + matchBit) << 8) + m
		}
		bit, err := d.DecodeBit(&probs[idx])
		if err != nil {
			return 0, err
		}
		if !diverged {
			prevMatchBit := (idx >> 8) - 1
			if prevMatchBit != bit {
				diverged = true
			}
		}
		m = (m << 1) | bit
	}
	return byte(m), nil
}
