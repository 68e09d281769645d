package rc

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestEncodeDecodeBit(t *testing.T) {
	bits := make([]uint32, 2000)
	r := rand.New(rand.NewSource(1))
	for i := range bits {
		bits[i] = uint32(r.Intn(2))
	}

	var buf bytes.Buffer
	e := NewEncoder(&buf)
	p := ProbInit
	for _, b := range bits {
		if err := e.EncodeBit(&p, b); err != nil {
			t.Fatalf("EncodeBit: %v", err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	p = ProbInit
	for i, want := range bits {
		got, err := d.DecodeBit(&p)
		if err != nil {
			t.Fatalf("DecodeBit(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d: got %d; want %d", i, got, want)
		}
	}
}

func TestEncodeDecodeDirect(t *testing.T) {
	bits := []uint32{0, 1, 1, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1}

	var buf bytes.Buffer
	e := NewEncoder(&buf)
	for _, b := range bits {
		if err := e.EncodeDirect(b); err != nil {
			t.Fatalf("EncodeDirect: %v", err)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	d := NewDecoder(&buf)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for i, want := range bits {
		got, err := d.DecodeDirect()
		if err != nil {
			t.Fatalf("DecodeDirect(%d): %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d: got %d; want %d", i, got, want)
		}
	}
}

func TestDecoderInitBadFirstByte(t *testing.T) {
	buf := bytes.NewReader([]byte{1, 0, 0, 0, 0})
	d := NewDecoder(buf)
	if err := d.Init(); err == nil {
		t.Fatal("Init: expected error for non-zero first byte")
	}
}
