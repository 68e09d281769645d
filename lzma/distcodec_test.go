package lzma

import (
	"bytes"
	"testing"

	"github.com/deepin-community/go-lzip/rc"
)

func TestDistSlot(t *testing.T) {
	cases := []struct {
		dist uint32
		slot uint32
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 4},
		{5, 5},
		{6, 6},
		{7, 7},
		{8, 8},
		{1 << 10, 20},
		{1<<10 + 1<<9, 21},
	}
	for _, c := range cases {
		if got := distSlot(c.dist); got != c.slot {
			t.Fatalf("distSlot(%d): got %d; want %d", c.dist, got, c.slot)
		}
	}
}

func TestDistCodecEncodeDecode(t *testing.T) {
	dists := []uint32{0, 1, 2, 3, 4, 5, 127, 1023, 1 << 20, 1<<29 - 1}
	const lenState = 2

	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	dc := newDistCodec()
	for _, dist := range dists {
		if err := dc.encode(e, dist, lenState); err != nil {
			t.Fatalf("encode(%d): %v", dist, err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := rc.NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dc = newDistCodec()
	for i, want := range dists {
		got, err := dc.decode(d, lenState)
		if err != nil {
			t.Fatalf("decode(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("dist %d: got %d; want %d", i, got, want)
		}
	}
}
