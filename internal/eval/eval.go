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

// Package eval computes a static, side-relative value for a position:
// material with a bishop-pair bonus, mobility, king safety, pawn structure
// and a tempo term for the side to move, blended between middlegame and endgame weights by a game
// phase estimate.
package eval

import (
	"github.com/suhasj2003/juujfish/internal/attacks"
	"github.com/suhasj2003/juujfish/internal/config"
	"github.com/suhasj2003/juujfish/internal/movegen"
	"github.com/suhasj2003/juujfish/internal/position"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// Score is a pair of middlegame/endgame centipawn values, blended by game
// phase at the end of evaluation.
type Score struct {
	MidGame int32
	EndGame int32
}

// Add accumulates other into s.
func (s *Score) Add(other Score) {
	s.MidGame += other.MidGame
	s.EndGame += other.EndGame
}

// Sub subtracts other from s.
func (s *Score) Sub(other Score) {
	s.MidGame -= other.MidGame
	s.EndGame -= other.EndGame
}

// gamePhaseMax is the sum of every piece type's GamePhaseValue() weighted
// by its starting count, used to normalize the phase estimate to [0,1].
const gamePhaseMax = 24

// Evaluator holds reusable scratch state (the pawn cache) across many
// Evaluate calls from the same search worker. Not safe for concurrent use;
// Lazy-SMP gives each worker its own instance (see internal/engine).
type Evaluator struct {
	pawns *pawnCache
}

// NewEvaluator creates an Evaluator, with its pawn-structure cache enabled
// or disabled per config.Settings.Eval.UsePawnCache.
func NewEvaluator() *Evaluator {
	e := &Evaluator{}
	if config.Settings.Eval.UsePawnCache {
		e.pawns = newPawnCache(config.Settings.Eval.PawnCacheSizeInMB)
	}
	return e
}

// Evaluate returns a side-relative score: positive favors the side to
// move. This keeps negamax search from having to negate the static
// score on every odd ply, unlike an always-from-White convention.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	if pos.HasInsufficientMaterial() {
		return ValueDraw
	}

	us := pos.SideToMove()
	them := us.Flip()

	var score Score
	score.Add(materialScore(pos, us))
	sub := materialScore(pos, them)
	score.Sub(sub)

	if config.Settings.Eval.UsePawnStruct {
		score.Add(pawnScore(e.pawns, pos, us))
		sub = pawnScore(e.pawns, pos, them)
		score.Sub(sub)
	}

	if config.Settings.Eval.UseMobility {
		mob := mobilityScore(pos, us) - mobilityScore(pos, them)
		score.MidGame += mob
		score.EndGame += mob
	}

	if config.Settings.Eval.UseKingSafety {
		score.Add(kingSafetyScore(pos, us))
		sub = kingSafetyScore(pos, them)
		score.Sub(sub)
	}

	legalMoves := len(movegen.Generate(pos, movegen.Legal))
	score.MidGame += int32(legalMoves) * int32(config.Settings.Eval.TempoBonus)

	phase := gamePhase(pos)
	blended := (int64(score.MidGame)*int64(phase) + int64(score.EndGame)*int64(gamePhaseMax-phase)) / gamePhaseMax
	return Value(blended)
}

// gamePhase returns a value in [0, gamePhaseMax]: gamePhaseMax at the
// starting material count, descending toward 0 as pieces come off.
func gamePhase(pos *position.Position) int {
	phase := 0
	for pt := Knight; pt <= Queen; pt++ {
		count := (pos.PiecesBb(White, pt) | pos.PiecesBb(Black, pt)).PopCount()
		phase += count * pt.GamePhaseValue()
	}
	if phase > gamePhaseMax {
		phase = gamePhaseMax
	}
	return phase
}

func materialScore(pos *position.Position, c Color) Score {
	var s Score
	for pt := Pawn; pt <= Queen; pt++ {
		count := int32(pos.PiecesBb(c, pt).PopCount())
		v := int32(pt.ValueOf())
		s.MidGame += count * v
		s.EndGame += count * v
	}
	if pos.PiecesBb(c, Bishop).PopCount() > 1 {
		s.MidGame += bishopPairBonus
		s.EndGame += bishopPairBonus
	}
	return s
}

const bishopPairBonus = 30

// mobilityScore counts pseudo-legal destination squares (excluding
// squares occupied by friendly pieces) for every non-pawn, non-king
// piece.
func mobilityScore(pos *position.Position, c Color) int32 {
	occupied := pos.Occupied()
	own := pos.OccupiedBy(c)
	var total int32
	for pt := Knight; pt <= Queen; pt++ {
		bb := pos.PiecesBb(c, pt)
		for bb != BbZero {
			sq := bb.PopLsb()
			total += int32((attacks.GetAttacksBb(pt, sq, occupied) &^ own).PopCount())
		}
	}
	return total * mobilityWeight
}

const mobilityWeight = 2

// kingSafetyScore rewards c's pawns on squares adjacent to its king,
// wherever the king stands, and penalizes each king-ring square the enemy
// attacks; defenders of the ring are not counted.
func kingSafetyScore(pos *position.Position, c Color) Score {
	var s Score
	them := c.Flip()
	ksq := pos.KingSquare(c)

	shield := attacks.GetPseudoAttacks(King, ksq) & pos.PiecesBb(c, Pawn)
	s.MidGame += int32(shield.PopCount()) * pawnShieldBonus

	kingRing := attacks.GetPseudoAttacks(King, ksq)
	enemyAttackers := 0
	ring := kingRing
	for ring != BbZero {
		sq := ring.PopLsb()
		if pos.IsAttacked(sq, them) {
			enemyAttackers++
		}
	}
	s.MidGame -= int32(enemyAttackers) * kingDangerMalus
	s.EndGame -= int32(enemyAttackers) * kingDangerMalus / 2

	return s
}

const (
	pawnShieldBonus = 6
	kingDangerMalus = 8
)
