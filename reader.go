package lzip

import (
	"bufio"
	"io"
	"sync"
)

// TrailingPolicy controls how Reader treats bytes following the last
// well-formed member in a stream.
type TrailingPolicy int

const (
	// TrailingStrict rejects any trailing data as an error.
	TrailingStrict TrailingPolicy = iota
	// TrailingIgnore silently discards trailing data.
	TrailingIgnore
	// TrailingLoose accepts trailing data that merely looks like it
	// could be the start of another member (a magic-like prefix)
	// without treating it as an error, but still stops decoding there.
	TrailingLoose
)

// Reader decompresses a stream of one or more concatenated lzip
// members. Grounded on the teacher's top-level reader.go, which
// iterates xz streams the same way; lzip's simpler single-CRC framing
// replaces xz's per-stream index and footer.
type Reader struct {
	src    io.Reader
	policy TrailingPolicy

	once sync.Once
	pr   *io.PipeReader
}

// NewReader creates a Reader with TrailingStrict policy.
func NewReader(r io.Reader) *Reader {
	return NewReaderPolicy(r, TrailingStrict)
}

// NewReaderPolicy creates a Reader using the given trailing-data policy.
func NewReaderPolicy(r io.Reader, policy TrailingPolicy) *Reader {
	return &Reader{src: r, policy: policy}
}

func (zr *Reader) start() {
	pr, pw := io.Pipe()
	zr.pr = pr
	go func() {
		pw.CloseWithError(decodeAllMembers(bufio.NewReader(zr.src), pw, zr.policy))
	}()
}

// Read decompresses the stream into p, decoding one member's packets at
// a time into an internal pipe as the caller drains it.
func (zr *Reader) Read(p []byte) (int, error) {
	zr.once.Do(zr.start)
	return zr.pr.Read(p)
}

// decodeAllMembers decodes every member in r, writing their
// concatenated plain bytes to w, and applies policy to whatever follows
// the last member.
func decodeAllMembers(r *bufio.Reader, w io.Writer, policy TrailingPolicy) error {
	sawMember := false
	for {
		if _, err := r.Peek(1); err != nil {
			if err == io.EOF {
				return nil
			}
			return wrapErr(KindIO, "reading stream", err)
		}
		if sawMember {
			// Fewer bytes than a header remain, so they cannot start
			// another member: they are trailing data.
			if _, err := r.Peek(headerSize); err == io.EOF {
				if policy == TrailingStrict {
					return errTrailingGarbage
				}
				return nil
			}
		}
		_, err := decodeMember(r, w)
		if err == nil {
			sawMember = true
			continue
		}
		if err == io.EOF {
			return nil
		}
		if e, ok := err.(*Error); ok && e.Kind == KindBadMagic && sawMember {
			switch policy {
			case TrailingIgnore, TrailingLoose:
				return nil
			}
			return errTrailingGarbage
		}
		return err
	}
}
