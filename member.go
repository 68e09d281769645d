package lzip

import (
	"io"

	"github.com/deepin-community/go-lzip/lzma"
)

// memberWriter compresses one member's worth of plain bytes: it hashes
// them into a CRC-32 as they pass through, counts them, and feeds them
// to an lzma.Encoder. The header is written when the memberWriter is
// created; Close flushes the compressed payload and appends the
// trailer. Grounded on the teacher's
// cmd/lzmago/lzma.go member-at-a-time driving loop.
type memberWriter struct {
	w        io.Writer
	counter  *countingWriter
	crc      crc32Writer
	enc      *lzma.Encoder
	dictSize int64
	dataSize int64
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type crc32Writer struct {
	h interface {
		io.Writer
		Sum32() uint32
	}
}

func (c crc32Writer) Write(p []byte) (int, error) { return c.h.Write(p) }
func (c crc32Writer) Sum32() uint32               { return c.h.Sum32() }

func newMemberWriter(w io.Writer, preset Preset) (*memberWriter, error) {
	counter := &countingWriter{w: w}
	if err := writeHeader(counter, preset.DictSize); err != nil {
		return nil, wrapErr(KindIO, "writing member header", err)
	}
	crc := crc32Writer{h: newCRC()}
	props := lzma.Default()
	enc, err := lzma.NewEncoder(counter, props, preset.DictSize, preset.Level, preset.Mode, preset.NiceLen)
	if err != nil {
		return nil, wrapErr(KindInternalError, "creating lzma encoder", err)
	}
	return &memberWriter{w: w, counter: counter, crc: crc, enc: enc, dictSize: preset.DictSize}, nil
}

// Write compresses p, accumulating the running checksum lzip's trailer
// records over the plain (pre-compression) bytes.
func (mw *memberWriter) Write(p []byte) (int, error) {
	if _, err := mw.crc.Write(p); err != nil {
		return 0, wrapErr(KindInternalError, "hashing input", err)
	}
	n, err := mw.enc.Write(p)
	mw.dataSize += int64(n)
	if err != nil {
		return n, wrapErr(KindIO, "compressing data", err)
	}
	return n, nil
}

// Close flushes the lzma stream and appends the trailer, completing the
// member.
func (mw *memberWriter) Close() error {
	if err := mw.enc.Close(); err != nil {
		return wrapErr(KindIO, "flushing lzma stream", err)
	}
	t := trailer{
		dataCRC:  mw.crc.Sum32(),
		dataSize: uint64(mw.dataSize),
	}
	t.memberSize = uint64(mw.counter.n) + trailerSize
	if err := writeTrailer(mw.counter, t); err != nil {
		return wrapErr(KindIO, "writing trailer", err)
	}
	return nil
}

// memberReader groups the state of one member being decoded. It has no
// methods and nothing uses it; decodeMember below reads the header to
// learn the dictionary size, decodes the lzma payload into a
// CRC-32-hashing sink, and validates the trailer once the stream's
// end-of-stream marker is reached. Grounded on the teacher's lzbase/reader.go loop,
// adapted to lzip's explicit trailer validation in place of xz's
// footer/index scheme.
type memberReader struct {
	r        countingReader
	crcSink  crc32Writer
	dataSize int64
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// decodeMember reads one full member from r (header through trailer),
// writing its decompressed bytes to out, and returns the member's
// on-wire size. It returns io.EOF if r is already at end of stream
// before any header bytes are read, letting callers distinguish a clean
// stream end from a truncated member.
func decodeMember(r io.Reader, out io.Writer) (int64, error) {
	cr := &countingReader{r: r}
	dictSize, err := readHeader(cr)
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		if e, ok := err.(*Error); ok {
			return 0, e
		}
		return 0, wrapErr(KindIO, "reading header", err)
	}

	crc := crc32Writer{h: newCRC()}
	counting := &countingWriter{w: io.MultiWriter(out, crc)}

	dec, err := lzma.NewDecoder(cr, counting, lzma.Default(), dictSize)
	if err != nil {
		return 0, wrapErr(KindInternalError, "creating lzma decoder", err)
	}
	if err := dec.DecodeStream(-1); err != nil {
		return 0, wrapErr(KindDataError, "decoding lzma stream", err)
	}

	t, err := readTrailer(cr)
	if err != nil {
		return 0, wrapErr(KindDataError, "reading trailer", err)
	}
	if t.dataCRC != crc.Sum32() {
		return 0, newErr(KindDataError, "trailer CRC does not match decompressed data")
	}
	if t.dataSize != uint64(counting.n) {
		return 0, newErr(KindDataError, "trailer data size does not match decompressed data")
	}
	total := cr.n
	if t.memberSize != uint64(total) {
		return 0, newErr(KindDataError, "trailer member size does not match bytes consumed")
	}
	return total, nil
}
