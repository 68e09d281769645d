package lzma

import "github.com/deepin-community/go-lzip/rc"

// lengthCodec models a match length as one of three sub-ranges: 8 short
// lengths, 8 medium lengths, and 256 long lengths, chosen by a leading
// low/mid/high switch of its own probabilities. It is shared, with its
// own probability set, between normal matches and rep-matches. Grounded
// on the teacher's lzbase/length_codec.go.
type lengthCodec struct {
	choice  rc.Prob
	choice2 rc.Prob

	lowTrees [numPosStatesMax][1 << 3]rc.Prob
	midTrees [numPosStatesMax][1 << 3]rc.Prob
	highTree [1 << 8]rc.Prob
}

const numPosStatesMax = 1 << 4

func newLengthCodec() *lengthCodec {
	lc := &lengthCodec{
		choice:  rc.ProbInit,
		choice2: rc.ProbInit,
		highTree: newProbArray(1 << 8),
	}
	for i := range lc.lowTrees {
		lc.lowTrees[i] = newProbTree3()
		lc.midTrees[i] = newProbTree3()
	}
	return lc
}

func newProbTree3() [1 << 3]rc.Prob {
	var a [1 << 3]rc.Prob
	for i := range a {
		a[i] = rc.ProbInit
	}
	return a
}

func newProbArray(n int) [1 << 8]rc.Prob {
	var a [1 << 8]rc.Prob
	for i := range a {
		a[i] = rc.ProbInit
	}
	return a
}

func (lc *lengthCodec) encode(e *rc.Encoder, length uint32, posState uint32) error {
	l := length - matchLenMin
	if l < 8 {
		if err := e.EncodeBit(&lc.choice, 0); err != nil {
			return err
		}
		return treeEncode(e, lc.lowTrees[posState][:], 3, l)
	}
	if err := e.EncodeBit(&lc.choice, 1); err != nil {
		return err
	}
	l -= 8
	if l < 8 {
		if err := e.EncodeBit(&lc.choice2, 0); err != nil {
			return err
		}
		return treeEncode(e, lc.midTrees[posState][:], 3, l)
	}
	if err := e.EncodeBit(&lc.choice2, 1); err != nil {
		return err
	}
	l -= 8
	return treeEncode(e, lc.highTree[:], 8, l)
}

func (lc *lengthCodec) decode(d *rc.Decoder, posState uint32) (uint32, error) {
	b, err := d.DecodeBit(&lc.choice)
	if err != nil {
		return 0, err
	}
	if b == 0 {
		l, err := treeDecode(d, lc.lowTrees[posState][:], 3)
		if err != nil {
			return 0, err
		}
		return l + matchLenMin, nil
	}
	b2, err := d.DecodeBit(&lc.choice2)
	if err != nil {
		return 0, err
	}
	if b2 == 0 {
		l, err := treeDecode(d, lc.midTrees[posState][:], 3)
		if err != nil {
			return 0, err
		}
		return l + 8 + matchLenMin, nil
	}
	l, err := treeDecode(d, lc.highTree[:], 8)
	if err != nil {
		return 0, err
	}
	return l + 16 + matchLenMin, nil
}
