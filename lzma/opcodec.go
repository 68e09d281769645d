package lzma

import "github.com/deepin-community/go-lzip/rc"

// opCodec bundles every probability context that is not specific to a
// single packet kind's payload: the packet-kind switches (isMatch,
// isRep, isRepG0/G1/G2, isRep0Long), the two length codecs (one for
// fresh matches, one for rep-matches), the distance codec, and the
// literal codec. Encoder and decoder each keep one, seeded identically,
// and mutate it bit by bit so the two stay in lock-step. Grounded on the
// teacher's lzbase/op_codec.go.
type opCodec struct {
	props Properties

	st   state
	reps [4]uint32

	isMatch    [numStates][numPosStatesMax]rc.Prob
	isRep      [numStates]rc.Prob
	isRepG0    [numStates]rc.Prob
	isRepG1    [numStates]rc.Prob
	isRepG2    [numStates]rc.Prob
	isRep0Long [numStates][numPosStatesMax]rc.Prob

	matchLenCodec *lengthCodec
	repLenCodec   *lengthCodec
	distCodec     *distCodec
	litCodec      *literalCodec
}

func newOpCodec(props Properties) *opCodec {
	c := &opCodec{
		props:         props,
		reps:          [4]uint32{0, 0, 0, 0},
		matchLenCodec: newLengthCodec(),
		repLenCodec:   newLengthCodec(),
		distCodec:     newDistCodec(),
		litCodec:      newLiteralCodec(props.LC, props.LP),
	}
	for i := range c.isMatch {
		for j := range c.isMatch[i] {
			c.isMatch[i][j] = rc.ProbInit
			c.isRep0Long[i][j] = rc.ProbInit
		}
		c.isRep[i] = rc.ProbInit
		c.isRepG0[i] = rc.ProbInit
		c.isRepG1[i] = rc.ProbInit
		c.isRepG2[i] = rc.ProbInit
	}
	return c
}

func (c *opCodec) posState(pos int64) uint32 { return posState(pos, c.props.PB) }

// priceMatch estimates the cost of a fresh match packet of length bytes
// at a 0-based distance code dist, from state st, without mutating any
// probability. Used by the optimal-parsing encoder to compare
// candidate operations.
func (c *opCodec) priceMatch(st state, pState uint32, dist uint32, length uint32) uint32 {
	price := c.isMatch[st][pState].Price(1) + c.isRep[st].Price(0)
	price += c.matchLenCodec.price(length, pState)
	price += c.distCodec.price(dist, lenToPosState(length))
	return price
}

// priceRep estimates the cost of a rep-match packet reusing reps[idx].
func (c *opCodec) priceRep(st state, pState uint32, idx int, length uint32) uint32 {
	price := c.isMatch[st][pState].Price(1) + c.isRep[st].Price(1)
	switch idx {
	case 0:
		price += c.isRepG0[st].Price(0) + c.isRep0Long[st][pState].Price(1)
	case 1:
		price += c.isRepG0[st].Price(1) + c.isRepG1[st].Price(0)
	case 2:
		price += c.isRepG0[st].Price(1) + c.isRepG1[st].Price(1) + c.isRepG2[st].Price(0)
	default:
		price += c.isRepG0[st].Price(1) + c.isRepG1[st].Price(1) + c.isRepG2[st].Price(1)
	}
	price += c.repLenCodec.price(length, pState)
	return price
}

// priceShortRep estimates the cost of a length-1 rep-match against
// reps[0].
func (c *opCodec) priceShortRep(st state, pState uint32) uint32 {
	return c.isMatch[st][pState].Price(1) + c.isRep[st].Price(1) +
		c.isRepG0[st].Price(0) + c.isRep0Long[st][pState].Price(0)
}

// shiftReps returns the rep history that results from using reps[idx]
// as a rep-match distance.
func shiftReps(reps [4]uint32, idx int) [4]uint32 {
	d := reps[idx]
	switch idx {
	case 1:
		reps[1] = reps[0]
	case 2:
		reps[2], reps[1] = reps[1], reps[0]
	case 3:
		reps[3], reps[2], reps[1] = reps[2], reps[1], reps[0]
	}
	reps[0] = d
	return reps
}
