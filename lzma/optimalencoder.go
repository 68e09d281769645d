package lzma

// optimalHorizon bounds how many positions ahead the DP plans before it
// must commit and restart; this keeps a single pass O(horizon) instead
// of growing with the whole input.
const optimalHorizon = 256

// opKind tags which packet an optStep's incoming edge represents.
type opKind int

const (
	opLiteral opKind = iota
	opShortRep
	opRep
	opMatch
)

// optStep is one node of the forward price DP: the cheapest known way
// to reach a given position, the resulting coder state and rep history
// that path leaves behind, and enough information about its incoming
// edge to replay the operation once the winning path is known.
type optStep struct {
	valid bool
	price uint32
	state state
	reps  [4]uint32

	kind   opKind
	length int
	dist   uint32 // opMatch: 1-based distance, as writeMatch takes it
	repIdx int     // opRep/opShortRep
	edgeLen int    // length of the edge arriving here, for backtracking
}

// drainOptimal runs the price-model optimal parser: a forward dynamic
// program over a bounded horizon that, at every reachable position,
// tracks the cheapest (state, rep-history) path found so far, then
// replays the winning path's operations through the same emitters the
// fast encoder uses. No corpus example implements this kind of parser;
// it is modeled on the dispatch shape of the teacher's lzbase/writer.go
// packet emitters, driven here by price.go instead of by greedy length.
func (e *Encoder) drainOptimal(final bool) error {
	reserve := e.reserve(final)
	for e.win.avail() > reserve {
		n, err := e.runOptimalPass(reserve)
		if err != nil {
			return err
		}
		e.win.trim()
		if n == 0 {
			break
		}
	}
	return nil
}

func (e *Encoder) runOptimalPass(reserve int) (int, error) {
	basePos := e.win.pos
	c := e.op

	horizon := optimalHorizon
	if a := e.win.avail() - reserve; a < horizon {
		horizon = a
	}
	if horizon <= 0 {
		return 0, nil
	}

	opt := make([]optStep, horizon+1)
	opt[0] = optStep{valid: true, state: c.st, reps: c.reps}

	relax := func(target int, price uint32, step optStep) {
		if target > horizon {
			return
		}
		if !opt[target].valid || price < opt[target].price {
			step.valid = true
			step.price = price
			opt[target] = step
		}
	}

	for i := 0; i < horizon; i++ {
		pos := basePos + int64(i)
		limit := matchMaxLen
		if a := horizon - i; a < limit {
			limit = a
		}
		cands := e.mf.matches(pos, limit)

		if !opt[i].valid {
			continue
		}
		cur := opt[i]
		pState := c.posState(pos)

		var prevByte byte
		if pos > 0 {
			prevByte = e.win.at(pos - 1)
		}
		b := e.win.at(pos)

		litPrice := cur.price + c.isMatch[cur.state][pState].Price(0)
		if cur.state.isLiteral() {
			litPrice += c.litCodec.price(pos, prevByte, b)
		} else {
			matchByte := e.win.at(pos - int64(cur.reps[0]) - 1)
			litPrice += c.litCodec.priceMatched(pos, prevByte, matchByte, b)
		}
		relax(i+1, litPrice, optStep{
			state: cur.state.afterLiteral(), reps: cur.reps,
			kind: opLiteral, length: 1, edgeLen: 1,
		})

		for idx := 0; idx < 4; idx++ {
			repLen := e.repMatchLen(pos, cur.reps[idx], limit)
			if repLen < 1 {
				continue
			}
			if idx == 0 {
				price := cur.price + c.priceShortRep(cur.state, pState)
				relax(i+1, price, optStep{
					state: cur.state.afterShortRep(), reps: cur.reps,
					kind: opShortRep, repIdx: 0, length: 1, edgeLen: 1,
				})
			}
			if repLen < matchMinLen {
				continue
			}
			newReps := shiftReps(cur.reps, idx)
			for length := matchMinLen; length <= repLen; length++ {
				price := cur.price + c.priceRep(cur.state, pState, idx, uint32(length))
				relax(i+length, price, optStep{
					state: cur.state.afterRep(), reps: newReps,
					kind: opRep, repIdx: idx, length: length, edgeLen: length,
				})
			}
		}

		for _, m := range cands {
			maxLen := m.length
			if maxLen > limit {
				maxLen = limit
			}
			if maxLen < matchMinLen {
				continue
			}
			dist := m.dist - 1
			newReps := [4]uint32{dist, cur.reps[0], cur.reps[1], cur.reps[2]}
			for length := matchMinLen; length <= maxLen; length++ {
				price := cur.price + c.priceMatch(cur.state, pState, dist, uint32(length))
				relax(i+length, price, optStep{
					state: cur.state.afterMatch(), reps: newReps,
					kind: opMatch, dist: m.dist, length: length, edgeLen: length,
				})
			}
		}
	}

	end := horizon
	for end > 0 && !opt[end].valid {
		end--
	}
	if end == 0 {
		// Nothing beyond a single literal was reachable (shouldn't
		// happen since opt[1] is always relaxed from opt[0], but stay
		// safe rather than loop forever).
		end = 1
		opt[1] = optStep{valid: true, state: c.st.afterLiteral(), reps: c.reps,
			kind: opLiteral, length: 1, edgeLen: 1}
	}

	var ops []optStep
	for i := end; i > 0; i -= opt[i].edgeLen {
		ops = append(ops, opt[i])
	}
	for i := len(ops) - 1; i >= 0; i-- {
		step := ops[i]
		var err error
		switch step.kind {
		case opLiteral:
			err = e.writeLiteral(e.win.at(e.win.pos))
		case opShortRep:
			err = e.writeShortRep()
		case opRep:
			err = e.writeRep(step.repIdx, step.length)
		case opMatch:
			err = e.writeMatch(step.dist, step.length)
		}
		if err != nil {
			return 0, err
		}
	}
	return end, nil
}
