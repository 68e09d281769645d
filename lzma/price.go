package lzma

import "github.com/deepin-community/go-lzip/rc"

// directBitPrice is the cost of one direct-coded bit: always exactly 1
// bit, since it is coded at a fixed probability of one half. Scaled to
// rc's 12-bit fractional price unit.
const directBitPrice = 1 << 12

func treePrice(probs []rc.Prob, numBits int, v uint32) uint32 {
	price := uint32(0)
	m := uint32(1)
	for i := numBits - 1; i >= 0; i-- {
		b := (v >> uint(i)) & 1
		price += probs[m].Price(b)
		m = (m << 1) | b
	}
	return price
}

func treeReversePrice(probs []rc.Prob, numBits int, v uint32) uint32 {
	price := uint32(0)
	m := uint32(1)
	for i := 0; i < numBits; i++ {
		b := v & 1
		v >>= 1
		price += probs[m].Price(b)
		m = (m << 1) | b
	}
	return price
}

func (lc *lengthCodec) price(length uint32, posState uint32) uint32 {
	l := length - matchLenMin
	if l < 8 {
		return lc.choice.Price(0) + treePrice(lc.lowTrees[posState][:], 3, l)
	}
	if l -= 8; l < 8 {
		return lc.choice.Price(1) + lc.choice2.Price(0) + treePrice(lc.midTrees[posState][:], 3, l)
	}
	l -= 8
	return lc.choice.Price(1) + lc.choice2.Price(1) + treePrice(lc.highTree[:], 8, l)
}

func (dc *distCodec) price(dist uint32, lenState uint32) uint32 {
	slot := distSlot(dist)
	price := treePrice(dc.slotCoders[lenState][:], numPosSlotBits, slot)
	if slot < startPosModelIndex {
		return price
	}
	footerBits := int(slot>>1) - 1
	base := (2 | (slot & 1)) << uint(footerBits)
	rest := dist - base
	if slot < endPosModelIndex {
		off := base - slot
		return price + treeReversePrice(dc.posCoders[off:], footerBits, rest)
	}
	price += uint32(footerBits-numAlignBits) * directBitPrice
	return price + treeReversePrice(dc.alignCoder[:], numAlignBits, rest&(alignTableSize-1))
}
