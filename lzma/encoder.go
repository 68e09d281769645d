package lzma

import (
	"io"

	"github.com/deepin-community/go-lzip/rc"
)

// EncoderMode selects the trade-off between compression speed and
// ratio: ModeFast runs a greedy parser; ModeOptimal runs a price-model
// dynamic-programming parser. The match finder is picked by level, not
// by mode (see newMatchFinder). Presets 0-3 use ModeFast, 4-9 use
// ModeOptimal.
type EncoderMode int

const (
	ModeFast EncoderMode = iota
	ModeOptimal
)

// Encoder compresses bytes written to it into a raw LZMA bit stream (no
// lzip framing) written to an underlying io.Writer. Create one with
// NewEncoder, write plain data to it with Write, and call Close to flush
// the final packets and the end-of-stream marker. Grounded on the
// teacher's lzbase/writer.go, split here into the fast and optimal
// encode loops in fastencoder.go and optimalencoder.go, which share the
// packet-emitting helpers below.
type Encoder struct {
	rc  *rc.Encoder
	op  *opCodec
	win *window
	mf  matchFinder

	mode    EncoderMode
	niceLen int

	closed bool
}

// NewEncoder creates an encoder in the given mode. level selects the
// match finder and its search depth (see newMatchFinder). niceLen is
// stored on the Encoder (values below matchMinLen become 64), but
// neither encoder reads it: match searches are bounded only by the
// match finder's depth and by matchMaxLen.
func NewEncoder(w io.Writer, props Properties, dictSize int64, level int, mode EncoderMode, niceLen int) (*Encoder, error) {
	if err := props.Verify(); err != nil {
		return nil, err
	}
	if dictSize < minDictSize {
		dictSize = minDictSize
	}
	if niceLen < matchMinLen {
		niceLen = 64
	}
	win := newWindow(dictSize)
	return &Encoder{
		rc:      rc.NewEncoder(w),
		op:      newOpCodec(props),
		win:     win,
		mf:      newMatchFinder(level, win),
		mode:    mode,
		niceLen: niceLen,
	}, nil
}

// Write buffers p and compresses as much of it as can be processed while
// keeping enough look-ahead for the match finder to evaluate the tail of
// the window; Close drains what remains.
func (e *Encoder) Write(p []byte) (int, error) {
	e.win.append(p)
	if err := e.drain(false); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close compresses every remaining buffered byte, emits the
// end-of-stream marker, and flushes the range coder.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.drain(true); err != nil {
		return err
	}
	if err := e.writeEndMarker(); err != nil {
		return err
	}
	return e.rc.Flush()
}

func (e *Encoder) drain(final bool) error {
	if e.mode == ModeOptimal {
		return e.drainOptimal(final)
	}
	return e.drainFast(final)
}

// reserve is how much look-ahead the encoders keep past the current
// position when more input may still arrive.
func (e *Encoder) reserve(final bool) int {
	if final {
		return 0
	}
	return matchMaxLen
}

func (e *Encoder) posState() uint32 { return e.op.posState(e.win.pos) }

func (e *Encoder) writeLiteral(b byte) error {
	c := e.op
	pos := e.win.pos
	pState := e.posState()
	if err := e.rc.EncodeBit(&c.isMatch[c.st][pState], 0); err != nil {
		return err
	}
	var prevByte byte
	if pos > 0 {
		prevByte = e.win.at(pos - 1)
	}
	var err error
	if c.st.isLiteral() {
		err = c.litCodec.encode(e.rc, pos, prevByte, b)
	} else {
		matchByte := e.win.at(pos - int64(c.reps[0]) - 1)
		err = c.litCodec.encodeMatched(e.rc, pos, prevByte, matchByte, b)
	}
	if err != nil {
		return err
	}
	c.st = c.st.afterLiteral()
	e.win.advance(1)
	e.mf.insert(pos)
	return nil
}

// writeMatch emits a fresh (non-rep) match of length bytes at distance
// dist (1-based) and advances the window past it.
func (e *Encoder) writeMatch(dist uint32, length int) error {
	c := e.op
	pos := e.win.pos
	pState := e.posState()
	if err := e.rc.EncodeBit(&c.isMatch[c.st][pState], 1); err != nil {
		return err
	}
	if err := e.rc.EncodeBit(&c.isRep[c.st], 0); err != nil {
		return err
	}
	d := dist - 1
	if err := c.matchLenCodec.encode(e.rc, uint32(length), pState); err != nil {
		return err
	}
	if err := c.distCodec.encode(e.rc, d, lenToPosState(uint32(length))); err != nil {
		return err
	}
	c.reps[3], c.reps[2], c.reps[1], c.reps[0] = c.reps[2], c.reps[1], c.reps[0], d
	c.st = c.st.afterMatch()
	e.advancePast(pos, length)
	return nil
}

// writeRep emits a rep-match reusing reps[idx] (after the customary
// history reshuffle) with the given length.
func (e *Encoder) writeRep(idx int, length int) error {
	c := e.op
	pos := e.win.pos
	pState := e.posState()
	if err := e.rc.EncodeBit(&c.isMatch[c.st][pState], 1); err != nil {
		return err
	}
	if err := e.rc.EncodeBit(&c.isRep[c.st], 1); err != nil {
		return err
	}
	dist := c.reps[idx]
	switch idx {
	case 0:
		if err := e.rc.EncodeBit(&c.isRepG0[c.st], 0); err != nil {
			return err
		}
		if err := e.rc.EncodeBit(&c.isRep0Long[c.st][pState], 1); err != nil {
			return err
		}
	case 1, 2, 3:
		if err := e.rc.EncodeBit(&c.isRepG0[c.st], 1); err != nil {
			return err
		}
		if idx == 1 {
			if err := e.rc.EncodeBit(&c.isRepG1[c.st], 0); err != nil {
				return err
			}
		} else {
			if err := e.rc.EncodeBit(&c.isRepG1[c.st], 1); err != nil {
				return err
			}
			if idx == 2 {
				if err := e.rc.EncodeBit(&c.isRepG2[c.st], 0); err != nil {
					return err
				}
			} else {
				if err := e.rc.EncodeBit(&c.isRepG2[c.st], 1); err != nil {
					return err
				}
			}
		}
		copy(c.reps[1:idx+1], c.reps[0:idx])
		c.reps[0] = dist
	}
	if err := c.repLenCodec.encode(e.rc, uint32(length), pState); err != nil {
		return err
	}
	c.st = c.st.afterRep()
	e.advancePast(pos, length)
	return nil
}

// writeShortRep emits a length-1 rep-match against reps[0], the cheapest
// possible back-reference packet.
func (e *Encoder) writeShortRep() error {
	c := e.op
	pos := e.win.pos
	pState := e.posState()
	if err := e.rc.EncodeBit(&c.isMatch[c.st][pState], 1); err != nil {
		return err
	}
	if err := e.rc.EncodeBit(&c.isRep[c.st], 1); err != nil {
		return err
	}
	if err := e.rc.EncodeBit(&c.isRepG0[c.st], 0); err != nil {
		return err
	}
	if err := e.rc.EncodeBit(&c.isRep0Long[c.st][pState], 0); err != nil {
		return err
	}
	c.st = c.st.afterShortRep()
	e.advancePast(pos, 1)
	return nil
}

// advancePast indexes the bytes of a just-emitted match into the match
// finder and advances the window past it.
func (e *Encoder) advancePast(pos int64, length int) {
	e.win.advance(length)
	for i := 0; i < length; i++ {
		e.mf.skip(pos + int64(i))
	}
}

func (e *Encoder) writeEndMarker() error {
	c := e.op
	pState := e.posState()
	if err := e.rc.EncodeBit(&c.isMatch[c.st][pState], 1); err != nil {
		return err
	}
	if err := e.rc.EncodeBit(&c.isRep[c.st], 0); err != nil {
		return err
	}
	if err := c.matchLenCodec.encode(e.rc, matchMinLen, pState); err != nil {
		return err
	}
	return c.distCodec.encode(e.rc, 0xffffffff, lenToPosState(matchMinLen))
}
