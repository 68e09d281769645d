package rc

import "io"

// byteWriter adapts an io.Writer lacking WriteByte, mirroring the teacher's
// bWriter helper in lzma/rangecodec.go.
type byteWriter struct {
	io.Writer
	buf [1]byte
}

func (w *byteWriter) WriteByte(c byte) error {
	w.buf[0] = c
	_, err := w.Write(w.buf[:])
	return err
}

func asByteWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &byteWriter{Writer: w}
}

// Encoder produces a range-coded bit stream. The zero value is not usable;
// create one with NewEncoder.
type Encoder struct {
	w      io.ByteWriter
	nrange uint32
	low    uint64
	cache  byte
	// cacheSize counts pending cache bytes, including the implicit leading
	// one written by the very first shiftLow call.
	cacheSize int64
	// n is the number of bytes actually written so far.
	n int64
}

// NewEncoder creates a range encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:         asByteWriter(w),
		nrange:    0xffffffff,
		cacheSize: 1,
	}
}

// Written reports how many bytes the encoder has emitted so far; bytes
// still held in the cache pending a possible carry are not counted.
func (e *Encoder) Written() int64 { return e.n }

func (e *Encoder) writeByte(c byte) error {
	if err := e.w.WriteByte(c); err != nil {
		return err
	}
	e.n++
	return nil
}

// shiftLow flushes the top byte of low once it can no longer be affected by
// a future carry, propagating any pending carry across a run of cached
// 0xff bytes.
func (e *Encoder) shiftLow() error {
	if uint32(e.low) < 0xff000000 || (e.low>>32) != 0 {
		carry := byte(e.low >> 32)
		b := e.cache
		for {
			if err := e.writeByte(b + carry); err != nil {
				return err
			}
			b = 0xff
			e.cacheSize--
			if e.cacheSize <= 0 {
				break
			}
		}
		e.cache = byte(e.low >> 24)
	}
	e.cacheSize++
	e.low = uint64(uint32(e.low) << 8)
	return nil
}

func (e *Encoder) normalize() error {
	const top = 1 << 24
	if e.nrange >= top {
		return nil
	}
	e.nrange <<= 8
	return e.shiftLow()
}

// EncodeBit encodes the least significant bit of b under probability p,
// updating p by the asymmetric shift-5 rule.
func (e *Encoder) EncodeBit(p *Prob, b uint32) error {
	bound := p.bound(e.nrange)
	if b&1 == 0 {
		e.nrange = bound
		p.inc()
	} else {
		e.low += uint64(bound)
		e.nrange -= bound
		p.dec()
	}
	return e.normalize()
}

// EncodeDirect encodes the least significant bit of b with fixed
// probability one half; used for the direct distance bits above the
// modeled distance slots.
func (e *Encoder) EncodeDirect(b uint32) error {
	e.nrange >>= 1
	e.low += uint64(e.nrange) & (0 - (uint64(b) & 1))
	return e.normalize()
}

// Flush writes the 5 bytes needed to unambiguously terminate the stream.
func (e *Encoder) Flush() error {
	for i := 0; i < 5; i++ {
		if err := e.shiftLow(); err != nil {
			return err
		}
	}
	return nil
}
