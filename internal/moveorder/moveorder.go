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

// Package moveorder feeds a search node one move at a time, in the order
// most likely to cause a beta cutoff: the transposition-table move first,
// then good captures, quiets scored zero or above by killer/history/threat
// heuristics, captures judged losing by MVV-LVA, and finally the quiets
// scored below zero.
package moveorder

import (
	"github.com/suhasj2003/juujfish/internal/heuristics"
	"github.com/suhasj2003/juujfish/internal/movegen"
	"github.com/suhasj2003/juujfish/internal/position"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// stage is a state in the orderer's internal state machine.
type stage uint8

const (
	stageTT stage = iota
	stageCapturesGen
	stageCapture
	stageQuietsGen
	stageQuiet
	stageBadCapture
	stageBadQuiet
	stageEnd

	stageEvasionGen
	stageEvasion
)

// Bonuses applied on top of a quiet move's plain history score.
const (
	checkBonus          = 10
	threatQueenPenalty  = -20
	threatRookPenalty   = -10
	threatMinorPenalty  = -5
	escapeQueenBonus    = 30
	escapeRookBonus     = 15
	escapeMinorBonus    = 7
	counterMoveBonus    = 60_000
	evasionCaptureShift = 1 << 20
)

// Orderer is a one-shot, per-node staged move feed. Create a fresh
// Orderer for each search node; it is not reusable across nodes.
type Orderer struct {
	pos       *position.Position
	tables    *heuristics.Tables
	ply       int
	ttMove    Move
	lastMove  Move
	inCheck   bool
	st        stage
	captures  movegen.GradedMoveList
	quiets    movegen.GradedMoveList
	bad       movegen.GradedMoveList
	badQuiets movegen.GradedMoveList
	evasions  movegen.GradedMoveList
	idx       int
	ttEmitted bool
}

// New creates an orderer for pos at the given search ply. ttMove may be
// MoveNone if the transposition table had no entry or no stored move.
// lastMove is the move that led to pos, used for counter-move scoring.
func New(pos *position.Position, tables *heuristics.Tables, ply int, ttMove, lastMove Move) *Orderer {
	return &Orderer{
		pos:      pos,
		tables:   tables,
		ply:      ply,
		ttMove:   ttMove,
		lastMove: lastMove,
		inCheck:  pos.InCheck(),
		st:       stageTT,
	}
}

// Next returns the next move to try, or MoveNone once the orderer is
// exhausted.
func (o *Orderer) Next() Move {
	for {
		switch o.st {
		case stageTT:
			if o.inCheck {
				o.st = stageEvasionGen
			} else {
				o.st = stageCapturesGen
			}
			if o.ttMove != MoveNone && o.isPseudoLegalTT() {
				o.ttEmitted = true
				return o.ttMove
			}
		case stageEvasionGen:
			o.evasions = movegen.Generate(o.pos, movegen.Evasions)
			o.scoreEvasions()
			o.idx = 0
			o.st = stageEvasion
		case stageEvasion:
			if m, ok := o.nextFrom(o.evasions, &o.idx); ok {
				return m
			}
			o.st = stageEnd
		case stageCapturesGen:
			o.captures = movegen.Generate(o.pos, movegen.Captures)
			o.splitCaptures()
			o.idx = 0
			o.st = stageCapture
		case stageCapture:
			if m, ok := o.nextFrom(o.captures, &o.idx); ok {
				return m
			}
			o.st = stageQuietsGen
		case stageQuietsGen:
			o.quiets = movegen.Generate(o.pos, movegen.Quiets)
			o.splitQuiets()
			o.idx = 0
			o.st = stageQuiet
		case stageQuiet:
			if m, ok := o.nextFrom(o.quiets, &o.idx); ok {
				return m
			}
			o.idx = 0
			o.st = stageBadCapture
		case stageBadCapture:
			if m, ok := o.nextFrom(o.bad, &o.idx); ok {
				return m
			}
			o.idx = 0
			o.st = stageBadQuiet
		case stageBadQuiet:
			if m, ok := o.nextFrom(o.badQuiets, &o.idx); ok {
				return m
			}
			o.st = stageEnd
		case stageEnd:
			return MoveNone
		}
	}
}

// nextFrom partial-insertion-sorts the remaining suffix of list to bring
// the highest-scoring unvisited move to *idx, then returns it. This lifts
// the best move to the front without paying for a full sort when only a
// handful of moves end up consumed (e.g. an early beta cutoff).
func (o *Orderer) nextFrom(list movegen.GradedMoveList, idx *int) (Move, bool) {
	for {
		if *idx >= len(list) {
			return MoveNone, false
		}
		best := *idx
		for j := *idx + 1; j < len(list); j++ {
			if list[j].Score > list[best].Score {
				best = j
			}
		}
		list[*idx], list[best] = list[best], list[*idx]
		m := list[*idx].Move
		*idx++
		if o.ttEmitted && m == o.ttMove {
			continue
		}
		return m, true
	}
}

func (o *Orderer) isPseudoLegalTT() bool {
	if o.ttMove == MoveNone {
		return false
	}
	cat := movegen.NonEvasions
	if o.inCheck {
		cat = movegen.Evasions
	}
	for _, gm := range movegen.Generate(o.pos, cat) {
		if gm.Move == o.ttMove {
			return o.pos.Legal(o.ttMove) || !requiresLegalCheck(o.pos, o.ttMove)
		}
	}
	return false
}

func requiresLegalCheck(pos *position.Position, m Move) bool {
	from := m.From()
	us := pos.SideToMove()
	return pos.PieceOn(from).TypeOf() == King || m.MoveType() == EnPassant || pos.Blockers(us).Has(from)
}

// mvvLva scores a capture as victim value minus attacker value; a queen
// promotion that also captures adds the captured piece's value on top of
// the promotion's own queen-vs-pawn delta.
func mvvLva(pos *position.Position, m Move) int32 {
	attacker := pos.PieceOn(m.From())
	if m.MoveType() == Promotion && m.PromotionType() == Queen {
		base := int32(Queen.ValueOf()) - int32(Pawn.ValueOf())
		if pos.IsCapturingMove(m) {
			base += int32(pos.PieceOn(m.To()).ValueOf())
		}
		return base
	}
	if m.MoveType() == EnPassant {
		return 0
	}
	victim := pos.PieceOn(m.To())
	return int32(victim.ValueOf()) - int32(attacker.ValueOf())
}

// splitCaptures re-scores the category-C capture list by MVV-LVA and
// partitions it into winning/even captures (score >= 0, tried early) and
// losing captures (score < 0, deferred to the bad-capture stage).
func (o *Orderer) splitCaptures() {
	o.bad = o.bad[:0]
	kept := o.captures[:0]
	for _, gm := range o.captures {
		score := mvvLva(o.pos, gm.Move)
		gm.Score = score
		if score < 0 {
			o.bad = append(o.bad, gm)
		} else {
			kept = append(kept, gm)
		}
	}
	o.captures = kept
}

func (o *Orderer) scoreEvasions() {
	for i := range o.evasions {
		m := o.evasions[i].Move
		if o.pos.IsCapturingMove(m) {
			o.evasions[i].Score = mvvLva(o.pos, m) + evasionCaptureShift
		} else {
			o.evasions[i].Score = o.quietScore(m)
		}
	}
}

// splitQuiets scores every quiet move and partitions it into the regular
// quiet list (score >= 0) and a deferred bad-quiet list (score < 0, moves
// judged worse than doing nothing by history/threat heuristics), mirroring
// splitCaptures' good/bad partition by score sign.
func (o *Orderer) splitQuiets() {
	o.badQuiets = o.badQuiets[:0]
	kept := o.quiets[:0]
	for _, gm := range o.quiets {
		gm.Score = o.quietScore(gm.Move)
		if gm.Score < 0 {
			o.badQuiets = append(o.badQuiets, gm)
		} else {
			kept = append(kept, gm)
		}
	}
	o.quiets = kept
}

// quietScore scores a quiet move by summing a killer bonus, plain
// history, a counter-move bonus, a bonus for giving check, and
// threat/escape adjustments based on whether the moving piece is
// fleeing an attacker or walking into one.
func (o *Orderer) quietScore(m Move) int32 {
	us := o.pos.SideToMove()
	var score int32

	switch {
	case o.tables.Killers(o.ply)[0] == m:
		score += heuristics.KillerBonus1
	case o.tables.Killers(o.ply)[1] == m:
		score += heuristics.KillerBonus2
	}

	score += o.tables.History(us, m.From(), m.To())

	if o.tables.CounterMove(o.lastMove) == m {
		score += counterMoveBonus
	}

	if o.pos.GivesCheck(m) {
		score += checkBonus
	}

	score += o.threatAdjustment(m)

	return score
}

// threatAdjustment adjusts a queen, rook or minor-piece move: a penalty
// when the destination is attacked by any enemy piece, and a bonus when
// the origin is. The attacker's value is not compared with the mover's,
// and the bonus is given whether or not the destination is attacked.
func (o *Orderer) threatAdjustment(m Move) int32 {
	us := o.pos.SideToMove()
	them := us.Flip()
	pt := o.pos.PieceOn(m.From()).TypeOf()

	var adj int32
	if o.pos.IsAttacked(m.From(), them) {
		switch pt {
		case Queen:
			adj += escapeQueenBonus
		case Rook:
			adj += escapeRookBonus
		case Bishop, Knight:
			adj += escapeMinorBonus
		}
	}
	if o.pos.IsAttacked(m.To(), them) {
		switch pt {
		case Queen:
			adj += threatQueenPenalty
		case Rook:
			adj += threatRookPenalty
		case Bishop, Knight:
			adj += threatMinorPenalty
		}
	}
	return adj
}
