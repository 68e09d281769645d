package lzma

import "github.com/deepin-community/go-lzip/rc"

// distCodec models a match distance as a 6-bit slot (decoded with a
// length-dependent tree) followed, for slots >= 4, by footer bits:
// slots 4-13 code them with a reversed tree of per-slot probabilities;
// higher slots code all but the low 4 as direct bits and those low 4
// with a reversed align-bit tree. Grounded on the teacher's
// lzma/dist_codec.go.
type distCodec struct {
	slotCoders [numLenToPosStates][1 << numPosSlotBits]rc.Prob
	alignCoder [1 << numAlignBits]rc.Prob
	posCoders  [1 + numFullDistances - endPosModelIndex]rc.Prob
}

func newDistCodec() *distCodec {
	dc := &distCodec{}
	for i := range dc.slotCoders {
		for j := range dc.slotCoders[i] {
			dc.slotCoders[i][j] = rc.ProbInit
		}
	}
	for i := range dc.alignCoder {
		dc.alignCoder[i] = rc.ProbInit
	}
	for i := range dc.posCoders {
		dc.posCoders[i] = rc.ProbInit
	}
	return dc
}

// distSlot returns the 6-bit slot a distance falls into: the top two
// bits of its binary representation plus its bit length, the same
// encoding the teacher's DistSlot helper computes.
func distSlot(dist uint32) uint32 {
	if dist < 4 {
		return dist
	}
	n := uint32(31 - nlz32(dist))
	return (n << 1) | ((dist >> (n - 1)) & 1)
}

func (dc *distCodec) encode(e *rc.Encoder, dist uint32, lenState uint32) error {
	slot := distSlot(dist)
	if err := treeEncode(e, dc.slotCoders[lenState][:], numPosSlotBits, slot); err != nil {
		return err
	}
	if slot < startPosModelIndex {
		return nil
	}
	footerBits := int(slot>>1) - 1
	base := (2 | (slot & 1)) << uint(footerBits)
	rest := dist - base
	if slot < endPosModelIndex {
		off := base - slot
		return treeReverseEncode(e, dc.posCoders[off:], footerBits, rest)
	}
	if err := encodeDirectBits(e, rest>>numAlignBits, footerBits-numAlignBits); err != nil {
		return err
	}
	return treeReverseEncode(e, dc.alignCoder[:], numAlignBits, rest&(alignTableSize-1))
}

func (dc *distCodec) decode(d *rc.Decoder, lenState uint32) (uint32, error) {
	slot, err := treeDecode(d, dc.slotCoders[lenState][:], numPosSlotBits)
	if err != nil {
		return 0, err
	}
	if slot < startPosModelIndex {
		return slot, nil
	}
	footerBits := int(slot>>1) - 1
	base := (2 | (slot & 1)) << uint(footerBits)
	if slot < endPosModelIndex {
		off := base - slot
		rest, err := treeReverseDecode(d, dc.posCoders[off:], footerBits)
		if err != nil {
			return 0, err
		}
		return base + rest, nil
	}
	high, err := decodeDirectBits(d, footerBits-numAlignBits)
	if err != nil {
		return 0, err
	}
	low, err := treeReverseDecode(d, dc.alignCoder[:], numAlignBits)
	if err != nil {
		return 0, err
	}
	return base + (high << numAlignBits) + low, nil
}
