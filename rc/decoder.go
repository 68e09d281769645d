package rc

import (
	"io"
)

// byteReader adapts an io.Reader lacking ReadByte, mirroring the teacher's
// bReader helper in lzma/rangecodec.go.
type byteReader struct {
	io.Reader
	buf [1]byte
}

func (r *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(r, r.buf[:])
	return r.buf[0], err
}

func asByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteReader{Reader: r}
}

// Decoder consumes a range-coded bit stream produced by Encoder. Create one
// with NewDecoder and call Init before decoding any bits.
type Decoder struct {
	r      io.ByteReader
	nrange uint32
	code   uint32
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: asByteReader(r)}
}

// Init reads the 5 leading bytes that seed the decoder. The first byte
// encoded by Encoder is always zero; any other value marks a corrupt
// stream.
func (d *Decoder) Init() error {
	d.nrange = 0xffffffff
	d.code = 0

	b, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if b != 0 {
		return errFirstByte
	}
	for i := 0; i < 4; i++ {
		if err = d.updateCode(); err != nil {
			return err
		}
	}
	return nil
}

// AtEnd reports whether the decoder's internal code register is exactly
// zero, the condition a correctly terminated stream leaves behind. It is
// used to distinguish a genuine end-of-stream marker from data truncated
// mid-packet.
func (d *Decoder) AtEnd() bool {
	return d.code == 0
}

func (d *Decoder) updateCode() error {
	b, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	d.code = (d.code << 8) | uint32(b)
	return nil
}

func (d *Decoder) normalize() error {
	const top = 1 << 24
	if d.nrange < top {
		d.nrange <<= 8
		if err := d.updateCode(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBit decodes a bit under probability p, updating p by the same rule
// Encoder.EncodeBit applies.
func (d *Decoder) DecodeBit(p *Prob) (b uint32, err error) {
	bound := p.bound(d.nrange)
	if d.code < bound {
		d.nrange = bound
		p.inc()
		b = 0
	} else {
		d.code -= bound
		d.nrange -= bound
		p.dec()
		b = 1
	}
	if err = d.normalize(); err != nil {
		return 0, err
	}
	return b, nil
}

// DecodeDirect decodes a bit coded with fixed probability one half.
func (d *Decoder) DecodeDirect() (b uint32, err error) {
	d.nrange >>= 1
	d.code -= d.nrange
	t := 0 - (d.code >> 31)
	d.code += d.nrange & t
	if err = d.normalize(); err != nil {
		return 0, err
	}
	return (t + 1) & 1, nil
}
