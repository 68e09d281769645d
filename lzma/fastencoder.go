package lzma

// repMatchLen reports how many bytes at pos agree with the bytes at
// reps[idx]'s distance, capped at limit. It returns 0 if that distance
// reaches further back than data actually produced or than the
// dictionary.
func (e *Encoder) repMatchLen(pos int64, repCode uint32, limit int) int {
	dist := int64(repCode) + 1
	if dist > pos || dist > e.win.dictSize {
		return 0
	}
	return e.win.matchLen(pos-dist, pos, limit)
}

// drainFast runs a greedy parse: at every position it picks the longest
// available rep-match or fresh match, preferring a rep-match whenever it
// is close in length to the best fresh match since rep packets cost
// fewer bits, and falls back to a literal otherwise. Grounded on the
// teacher's lzb/writer.go.
func (e *Encoder) drainFast(final bool) error {
	reserve := e.reserve(final)
	for e.win.avail() > reserve {
		pos := e.win.pos
		limit := matchMaxLen
		if a := e.win.avail(); a < limit {
			limit = a
		}
		if limit < matchMinLen {
			if err := e.writeLiteral(e.win.at(pos)); err != nil {
				return err
			}
			e.win.trim()
			continue
		}

		bestRepIdx, bestRepLen := -1, 0
		for i := 0; i < 4; i++ {
			l := e.repMatchLen(pos, e.op.reps[i], limit)
			if l >= matchMinLen && l > bestRepLen {
				bestRepLen, bestRepIdx = l, i
			}
		}

		cands := e.mf.matches(pos, limit)
		var best match
		if len(cands) > 0 {
			best = cands[len(cands)-1]
		}

		switch {
		case bestRepLen >= matchMinLen && bestRepLen+1 >= best.length:
			if err := e.writeRep(bestRepIdx, bestRepLen); err != nil {
				return err
			}
		case best.length >= matchMinLen:
			if err := e.writeMatch(best.dist, best.length); err != nil {
				return err
			}
		case e.repMatchLen(pos, e.op.reps[0], limit) >= 1:
			if err := e.writeShortRep(); err != nil {
				return err
			}
		default:
			if err := e.writeLiteral(e.win.at(pos)); err != nil {
				return err
			}
		}
		e.win.trim()
	}
	return nil
}
