package lzma

import "fmt"

// Properties are the three parameters that shape the literal and
// distance-slot probability contexts. lzip always uses lc=3, lp=0, pb=2,
// the same defaults the classic LZMA1 header encodes as a single byte,
// but the codec itself is general over any valid combination.
type Properties struct {
	LC uint32 // literal context bits, 0..8
	LP uint32 // literal position bits, 0..4
	PB uint32 // position bits, 0..4
}

// Default returns the fixed lc=3, lp=0, pb=2 properties lzip always uses.
func Default() Properties { return Properties{LC: 3, LP: 0, PB: 2} }

// Verify reports whether p holds parameters the codec can operate on.
func (p Properties) Verify() error {
	if p.LC > 8 {
		return fmt.Errorf("lzma: lc %d out of range", p.LC)
	}
	if p.LP > 4 {
		return fmt.Errorf("lzma: lp %d out of range", p.LP)
	}
	if p.PB > 4 {
		return fmt.Errorf("lzma: pb %d out of range", p.PB)
	}
	return nil
}

// byte packs the properties into the single header byte LZMA1 streams use:
// (pb * 5 + lp) * 9 + lc.
func (p Properties) byte() byte {
	return byte((p.PB*5+p.LP)*9 + p.LC)
}

// propertiesFromByte unpacks a header byte into Properties, mirroring the
// teacher's decoding in lzma/header.go.
func propertiesFromByte(b byte) (Properties, error) {
	v := uint32(b)
	if v >= 9*5*5 {
		return Properties{}, fmt.Errorf("lzma: invalid properties byte %#02x", b)
	}
	lc := v % 9
	v /= 9
	lp := v % 5
	pb := v / 5
	return Properties{LC: lc, LP: lp, PB: pb}, nil
}

const (
	minDictSize = 1 << 12
	maxDictSize = 1<<32 - 1

	// matchMinLen and matchMaxLen bound the length a match operation can
	// encode. The length codec picks one of three stacked sub-ranges: an
	// 8-value (3-bit) low tree covering the first 8 lengths, an 8-value
	// (3-bit) mid tree covering the next 8, and a 256-value (8-bit) high
	// tree covering the remaining 256, so the true span is
	// 2..(2+8+8+256-1) = 2..273.
	matchMinLen = 2
	matchMaxLen = matchMinLen + 1<<3 + 1<<3 + 1<<8 - 1

	// numStates is the size of the packet-history state machine.
	numStates = 12

	numLenToPosStates = 4
	numFullDistances  = 1 << (endPosModelIndex >> 1)
	numAlignBits      = 4
	alignTableSize    = 1 << numAlignBits
	endPosModelIndex  = 14
	startPosModelIndex = 4
	numPosSlotBits    = 6
	numPosModels      = endPosModelIndex - startPosModelIndex

	matchLenMin = matchMinLen
)
