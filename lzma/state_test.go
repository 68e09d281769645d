package lzma

import "testing"

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		name string
		s    state
		next state
		fn   func(state) state
	}{
		{"literal after literal 0", 0, 0, state.afterLiteral},
		{"literal after literal 6", 6, 3, state.afterLiteral},
		{"literal after match-derived 7", 7, 4, state.afterLiteral},
		{"literal after match-derived 11", 11, 5, state.afterLiteral},
		{"match after literal", 3, 7, state.afterMatch},
		{"match after match", 9, 10, state.afterMatch},
		{"rep after literal", 2, 8, state.afterRep},
		{"rep after match", 10, 11, state.afterRep},
		{"shortrep after literal", 5, 9, state.afterShortRep},
		{"shortrep after match", 8, 11, state.afterShortRep},
	}
	for _, c := range cases {
		if got := c.fn(c.s); got != c.next {
			t.Fatalf("%s: got %d; want %d", c.name, got, c.next)
		}
	}
}

func TestStateIsLiteral(t *testing.T) {
	for s := state(0); s < numStates; s++ {
		want := s < 7
		if got := s.isLiteral(); got != want {
			t.Fatalf("state %d: isLiteral got %v; want %v", s, got, want)
		}
	}
}

func TestLenToPosStateSaturates(t *testing.T) {
	if got := lenToPosState(matchMinLen); got != 0 {
		t.Fatalf("lenToPosState(min): got %d; want 0", got)
	}
	if got := lenToPosState(uint32(matchMaxLen)); got != numLenToPosStates-1 {
		t.Fatalf("lenToPosState(max): got %d; want %d", got, numLenToPosStates-1)
	}
}

func TestPosState(t *testing.T) {
	if got := posState(5, 2); got != 1 {
		t.Fatalf("posState(5,2): got %d; want 1", got)
	}
	if got := posState(8, 2); got != 0 {
		t.Fatalf("posState(8,2): got %d; want 0", got)
	}
}
