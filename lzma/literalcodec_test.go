package lzma

import (
	"bytes"
	"testing"

	"github.com/deepin-community/go-lzip/rc"
)

func TestLiteralCodecEncodeDecode(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")

	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	c := newLiteralCodec(3, 0)
	var prev byte
	for pos, b := range text {
		if err := c.encode(e, int64(pos), prev, b); err != nil {
			t.Fatalf("encode byte %d: %v", pos, err)
		}
		prev = b
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := rc.NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c = newLiteralCodec(3, 0)
	prev = 0
	for pos, want := range text {
		got, err := c.decode(d, int64(pos), prev)
		if err != nil {
			t.Fatalf("decode byte %d: %v", pos, err)
		}
		if got != want {
			t.Fatalf("byte %d: got %q; want %q", pos, got, want)
		}
		prev = got
	}
}

func TestLiteralCodecMatchedEncodeDecode(t *testing.T) {
	reference := []byte("abcdefgh")
	text := []byte("abcdXfgh")

	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	c := newLiteralCodec(3, 0)
	var prev byte
	for pos, b := range text {
		if err := c.encodeMatched(e, int64(pos), prev, reference[pos], b); err != nil {
			t.Fatalf("encodeMatched byte %d: %v", pos, err)
		}
		prev = b
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := rc.NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c = newLiteralCodec(3, 0)
	prev = 0
	for pos, want := range text {
		got, err := c.decodeMatched(d, int64(pos), prev, reference[pos])
		if err != nil {
			t.Fatalf("decodeMatched byte %d: %v", pos, err)
		}
		if got != want {
			t.Fatalf("byte %d: got %q; want %q", pos, got, want)
		}
		prev = got
	}
}
