package lzma

import (
	"bytes"
	"testing"

	"github.com/deepin-community/go-lzip/rc"
)

func newProbs(n int) []rc.Prob {
	p := make([]rc.Prob, n)
	for i := range p {
		p[i] = rc.ProbInit
	}
	return p
}

func TestTreeEncodeDecode(t *testing.T) {
	const numBits = 6
	values := []uint32{0, 1, 17, 31, 62, 63}

	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	probs := newProbs(1 << numBits)
	for _, v := range values {
		if err := treeEncode(e, probs, numBits, v); err != nil {
			t.Fatalf("treeEncode(%d): %v", v, err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := rc.NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	probs = newProbs(1 << numBits)
	for i, want := range values {
		got, err := treeDecode(d, probs, numBits)
		if err != nil {
			t.Fatalf("treeDecode(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("value %d: got %d; want %d", i, got, want)
		}
	}
}

func TestTreeReverseEncodeDecode(t *testing.T) {
	const numBits = 5
	values := []uint32{0, 3, 9, 18, 31}

	var buf bytes.Buffer
	e := rc.NewEncoder(&buf)
	probs := newProbs(1 << numBits)
	for _, v := range values {
		if err := treeReverseEncode(e, probs, numBits, v); err != nil {
			t.Fatalf("treeReverseEncode(%d): %v", v, err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := rc.NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	probs = newProbs(1 << numBits)
	for i, want := range values {
		got, err := treeReverseDecode(d, probs, numBits)
		if err != nil {
			t.Fatalf("treeReverseDecode(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("value %d: got %d; want %d", i, got, want)
		}
	}
}
