package lzma

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/kr/pretty"
)

func roundtrip(t *testing.T, mode EncoderMode, level int, data []byte) []byte {
	t.Helper()
	var compressed bytes.Buffer
	enc, err := NewEncoder(&compressed, Default(), 1<<20, level, mode, 64)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	if _, err := enc.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var decompressed bytes.Buffer
	dec, err := NewDecoder(&compressed, &decompressed, Default(), 1<<20)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if err := dec.DecodeStream(-1); err != nil {
		t.Fatalf("DecodeStream: %v", err)
	}
	return decompressed.Bytes()
}

func TestRoundtripFastEncoder(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("hello\n"),
		bytes.Repeat([]byte("abcd"), 1<<16),
		[]byte("abababababababababababababababab"),
	}
	for i, in := range inputs {
		got := roundtrip(t, ModeFast, 1, in)
		if !bytes.Equal(got, in) {
			t.Fatalf("case %d (fast): roundtrip mismatch:\n%# v", i, pretty.Formatter(diff(in, got)))
		}
	}
}

func TestRoundtripOptimalEncoder(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("hello\n"),
		bytes.Repeat([]byte("abcd"), 1<<14),
		[]byte("the quick brown fox jumps over the lazy dog, again and again and again"),
	}
	for i, in := range inputs {
		got := roundtrip(t, ModeOptimal, 6, in)
		if !bytes.Equal(got, in) {
			t.Fatalf("case %d (optimal): roundtrip mismatch:\n%# v", i, pretty.Formatter(diff(in, got)))
		}
	}
}

func TestRoundtripRandomData(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	data := make([]byte, 1<<17)
	r.Read(data)
	for _, mode := range []EncoderMode{ModeFast, ModeOptimal} {
		got := roundtrip(t, mode, 6, data)
		if !bytes.Equal(got, data) {
			t.Fatalf("mode %v: roundtrip mismatch on random data", mode)
		}
	}
}

// diff reports the first byte where want and got differ, for a compact
// failure message instead of dumping both buffers whole.
func diff(want, got []byte) struct{ Pos int; Want, Got byte } {
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			return struct{ Pos int; Want, Got byte }{i, want[i], got[i]}
		}
	}
	return struct{ Pos int; Want, Got byte }{n, 0, 0}
}
