package lzma

import (
	"bytes"
	"testing"

	"github.com/deepin-community/go-lzip/rc"
)

func TestLengthCodecEncodeDecode(t *testing.T) {
	lengths := []uint32{matchMinLen, matchMinLen + 5, matchMinLen + 8, matchMinLen + 15, matchMinLen + 16, matchMaxLen}
	const posState = 3

	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	lc := newLengthCodec()
	for _, l := range lengths {
		if err := lc.encode(e, l, posState); err != nil {
			t.Fatalf("encode(%d): %v", l, err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := rc.NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	lc = newLengthCodec()
	for i, want := range lengths {
		got, err := lc.decode(d, posState)
		if err != nil {
			t.Fatalf("decode(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("length %d: got %d; want %d", i, got, want)
		}
	}
}

func TestLengthCodecPriceDecreasesWithUse(t *testing.T) {
	lc := newLengthCodec()
	const posState = 0
	before := lc.price(matchMinLen, posState)
	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	for i := 0; i < 64; i++ {
		if err := lc.encode(e, matchMinLen, posState); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	after := lc.price(matchMinLen, posState)
	if after >= before {
		t.Fatalf("price did not drop after repeated use: before %d, after %d", before, after)
	}
}
