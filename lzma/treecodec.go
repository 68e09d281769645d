package lzma

import "github.com/deepin-community/go-lzip/rc"

// treeEncode writes the low numBits bits of v, most-significant bit
// first, through a binary tree of probabilities of size 1<<numBits. Each
// tree node's probability is conditioned by the path taken to reach it,
// the same bit-tree construction the teacher's lzma/tree_codecs.go uses
// for length, distance-slot and literal contexts.
func treeEncode(e *rc.Encoder, probs []rc.Prob, numBits int, v uint32) error {
	m := uint32(1)
	for i := numBits - 1; i >= 0; i-- {
		b := (v >> uint(i)) & 1
		if err := e.EncodeBit(&probs[m], b); err != nil {
			return err
		}
		m = (m << 1) | b
	}
	return nil
}

// treeDecode is the decoding counterpart of treeEncode.
func treeDecode(d *rc.Decoder, probs []rc.Prob, numBits int) (uint32, error) {
	m := uint32(1)
	for i := 0; i < numBits; i++ {
		b, err := d.DecodeBit(&probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
	}
	return m - (1 << uint(numBits)), nil
}

// treeReverseEncode writes the low numBits bits of v, least-significant
// bit first. Used for the direct-bit align model and the low distance
// slots, whose bits are emitted in reverse order.
func treeReverseEncode(e *rc.Encoder, probs []rc.Prob, numBits int, v uint32) error {
	m := uint32(1)
	for i := 0; i < numBits; i++ {
		b := v & 1
		v >>= 1
		if err := e.EncodeBit(&probs[m], b); err != nil {
			return err
		}
		m = (m << 1) | b
	}
	return nil
}

// treeReverseDecode is the decoding counterpart of treeReverseEncode.
func treeReverseDecode(d *rc.Decoder, probs []rc.Prob, numBits int) (uint32, error) {
	m := uint32(1)
	var v uint32
	for i := 0; i < numBits; i++ {
		b, err := d.DecodeBit(&probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
		v |= b << uint(i)
	}
	return v, nil
}
