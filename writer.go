package lzip

import "io"

// Writer compresses a byte stream into one or more concatenated lzip
// members, starting a fresh member whenever the current one's
// uncompressed size would exceed its configured ceiling. Grounded on
// the teacher's cmd/lzmago temp-file-then-rename driver, simplified
// here to the io.WriteCloser shape idiomatic Go compressors (compress/
// gzip, compress/flate) expose.
type Writer struct {
	w      io.Writer
	cfg    Config
	preset Preset

	cur        *memberWriter
	memberSize int64
	closed     bool
	wroteAny   bool
}

// NewWriter creates a Writer with default settings (preset level 6).
func NewWriter(w io.Writer) *Writer {
	return NewWriterConfig(w, Config{Level: 6})
}

// NewWriterConfig creates a Writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg Config) *Writer {
	return &Writer{w: w, cfg: cfg, preset: cfg.preset(), memberSize: cfg.memberSize()}
}

// Write compresses p, splitting across member boundaries as needed so
// that no single member's uncompressed size exceeds the configured
// limit.
func (zw *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		if zw.cur == nil {
			mw, err := newMemberWriter(zw.w, zw.preset)
			if err != nil {
				return total, err
			}
			zw.cur = mw
			zw.wroteAny = true
		}
		room := zw.memberSize - zw.cur.dataSize
		chunk := p
		if int64(len(chunk)) > room {
			chunk = chunk[:room]
		}
		if len(chunk) == 0 {
			if err := zw.cur.Close(); err != nil {
				return total, err
			}
			zw.cur = nil
			continue
		}
		n, err := zw.cur.Write(chunk)
		total += n
		p = p[n:]
		if err != nil {
			return total, err
		}
		if zw.cur.dataSize >= zw.memberSize {
			if err := zw.cur.Close(); err != nil {
				return total, err
			}
			zw.cur = nil
		}
	}
	return total, nil
}

// Close flushes and closes the current member. It does not close the
// underlying writer.
func (zw *Writer) Close() error {
	if zw.closed {
		return nil
	}
	zw.closed = true
	if zw.cur == nil {
		if zw.wroteAny {
			return nil
		}
		// An empty stream is still a single valid member with
		// data_size 0, per the format's documented edge case.
		mw, err := newMemberWriter(zw.w, zw.preset)
		if err != nil {
			return err
		}
		return mw.Close()
	}
	err := zw.cur.Close()
	zw.cur = nil
	return err
}
