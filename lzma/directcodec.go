package lzma

import "github.com/deepin-community/go-lzip/rc"

// encodeDirectBits writes the low numBits bits of v, most-significant
// bit first, each coded at fixed probability one half. Used for the
// distance bits above the align model.
func encodeDirectBits(e *rc.Encoder, v uint32, numBits int) error {
	for i := numBits - 1; i >= 0; i-- {
		if err := e.EncodeDirect((v >> uint(i)) & 1); err != nil {
			return err
		}
	}
	return nil
}

// decodeDirectBits is the decoding counterpart of encodeDirectBits.
func decodeDirectBits(d *rc.Decoder, numBits int) (uint32, error) {
	var v uint32
	for i := 0; i < numBits; i++ {
		b, err := d.DecodeDirect()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | b
	}
	return v, nil
}
