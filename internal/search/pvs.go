/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/suhasj2003/juujfish/internal/config"
	"github.com/suhasj2003/juujfish/internal/moveorder"
	"github.com/suhasj2003/juujfish/internal/movegen"
	"github.com/suhasj2003/juujfish/internal/tt"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// nodeType distinguishes a PV node, which keeps a full alpha-beta window
// to collect the principal variation, from a NonPV node searched with a
// null window. Root is handled separately by the iterative-deepening
// driver's own move loop; search itself only ever sees PV or NonPV.
type nodeType uint8

const (
	pvNode nodeType = iota
	nonPVNode
)

// maxQPly bounds how many additional plies qsearch may recurse beyond the
// frontier, preventing a position with an unbounded capture sequence
// (vanishingly rare but not impossible to construct) from recursing forever.
const maxQPly = 32

// fiftyMoveSuppressThreshold is how close to the 100-halfmove draw limit
// the fifty-move counter must be before a TT cutoff is suppressed, to
// avoid a stored score masking an imminent draw.
const fiftyMoveSuppressThreshold = 90

// search implements search<Nt>(pos, alpha, beta, depth, cut_node). ply is
// the distance from the root; lastMove is the move that led to pos, used
// for counter-move ordering.
func (w *Worker) search(nt nodeType, alpha, beta Value, depth, ply int, lastMove Move) Value {
	if w.stopped() {
		return ValueDraw
	}
	if ply > 0 && w.pos.IsDraw() {
		return ValueDraw
	}

	isPV := nt == pvNode

	if config.Settings.Search.UseMDP {
		if a := MatedIn(ply); alpha < a {
			alpha = a
		}
		if b := MateIn(ply); beta > b {
			beta = b
		}
		if alpha >= beta {
			return alpha
		}
	}

	key := w.pos.Zobrist()
	secondary := w.pos.SecondaryKey()
	origAlpha := alpha

	var ttHit bool
	var ttData tt.Data
	var ttWriter tt.Writer
	if config.Settings.Search.UseTT {
		ttHit, ttData, ttWriter = w.tt.Probe(key, secondary)
	}

	ttMove := MoveNone
	if ttHit {
		ttMove = ttData.Move
		suppressed := w.pos.HalfMoveClock() >= fiftyMoveSuppressThreshold
		if !suppressed && ttData.Depth >= depth && config.Settings.Search.UseTTValue {
			score := Value(ttData.Score)
			switch {
			case ttData.Bound == tt.BoundExact:
				return score
			case ttData.Bound == tt.BoundLower && score >= beta:
				return score
			case ttData.Bound == tt.BoundUpper && score <= alpha:
				return score
			}
		}
	}

	if depth <= 0 {
		if config.Settings.Search.UseQuiescence {
			return w.qsearch(alpha, beta, ply, 0, lastMove)
		}
		return w.evaluator.Evaluate(w.pos)
	}

	orderer := moveorder.New(w.pos, w.tables, ply, ttMove, lastMove)

	bestScore := -ValueInfinite
	bestMove := MoveNone
	legalMoves := 0
	first := true

	for {
		m := orderer.Next()
		if m == MoveNone {
			break
		}
		if !w.pos.Legal(m) {
			continue
		}
		legalMoves++

		w.pos.MakeMove(m)
		w.nodes++

		var score Value
		switch {
		case first:
			score = -w.search(nt, -beta, -alpha, depth-1, ply+1, m)
		case isPV:
			score = -w.search(nonPVNode, -alpha-1, -alpha, depth-1, ply+1, m)
			if score > alpha && score < beta {
				score = -w.search(pvNode, -beta, -alpha, depth-1, ply+1, m)
			}
		default:
			score = -w.search(nonPVNode, -alpha-1, -alpha, depth-1, ply+1, m)
		}

		w.pos.UnmakeMove()
		first = false

		if w.stopped() {
			return ValueDraw
		}

		isQuiet := !w.pos.IsCapturingMove(m) && m.MoveType() != Promotion

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			if isPV {
				w.setPV(ply, m)
			}
		}
		if score >= beta {
			if isQuiet {
				w.tables.StoreKiller(ply, m)
				w.tables.UpdateHistory(w.pos.SideToMove(), m.From(), m.To(), depth)
				w.tables.StoreCounterMove(lastMove, m)
			}
			break
		}
		if isQuiet {
			w.tables.PenalizeHistory(w.pos.SideToMove(), m.From(), m.To(), depth)
		}
	}

	if legalMoves == 0 {
		if w.pos.InCheck() {
			return MatedIn(ply)
		}
		return ValueDraw
	}

	if config.Settings.Search.UseTT {
		bound := tt.BoundExact
		switch {
		case bestScore <= origAlpha:
			bound = tt.BoundUpper
		case bestScore >= beta:
			bound = tt.BoundLower
		}
		ttWriter.Write(depth, bound, bestScore, w.evaluator.Evaluate(w.pos), bestMove)
	}

	return bestScore
}

// qsearch is the capture-only extension beyond the frontier: a stand-pat
// cutoff followed by captures (all moves, if in check), bounded by
// maxQPly additional plies. Stored TT entries use depth 0, matching the
// main search's own TT layout.
func (w *Worker) qsearch(alpha, beta Value, ply, qply int, lastMove Move) Value {
	if w.stopped() {
		return ValueDraw
	}
	if w.pos.IsDraw() {
		return ValueDraw
	}

	inCheck := w.pos.InCheck()

	key := w.pos.Zobrist()
	secondary := w.pos.SecondaryKey()

	var ttHit bool
	var ttData tt.Data
	var ttWriter tt.Writer
	if config.Settings.Search.UseQSTT {
		ttHit, ttData, ttWriter = w.tt.Probe(key, secondary)
		if ttHit {
			score := Value(ttData.Score)
			switch {
			case ttData.Bound == tt.BoundExact:
				return score
			case ttData.Bound == tt.BoundLower && score >= beta:
				return score
			case ttData.Bound == tt.BoundUpper && score <= alpha:
				return score
			}
		}
	}

	standPat := w.evaluator.Evaluate(w.pos)
	if !inCheck {
		if config.Settings.Search.UseQSStandpat {
			if standPat >= beta {
				return standPat
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	}

	if qply >= maxQPly {
		return standPat
	}

	var cat movegen.Category
	if inCheck {
		cat = movegen.Evasions
	} else {
		cat = movegen.Captures
	}

	moves := movegen.Generate(w.pos, cat)
	moves.SortDescending()

	bestScore := standPat
	if inCheck {
		bestScore = -ValueInfinite
	}
	bestMove := MoveNone
	legalMoves := 0

	for _, gm := range moves {
		m := gm.Move
		if !w.pos.Legal(m) {
			continue
		}
		legalMoves++

		w.pos.MakeMove(m)
		w.nodes++
		score := -w.qsearch(-beta, -alpha, ply+1, qply+1, m)
		w.pos.UnmakeMove()

		if w.stopped() {
			return ValueDraw
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if score >= beta {
			break
		}
	}

	if inCheck && legalMoves == 0 {
		return MatedIn(ply)
	}

	if config.Settings.Search.UseQSTT {
		bound := tt.BoundUpper
		if bestScore >= beta {
			bound = tt.BoundLower
		}
		ttWriter.Write(0, bound, bestScore, standPat, bestMove)
	}

	return bestScore
}
