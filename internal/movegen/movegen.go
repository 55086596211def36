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

// Package movegen generates pseudo-legal and legal moves for a position,
// staged by category (captures, quiets, evasions) the way the search's
// move orderer consumes them.
package movegen

import (
	"regexp"
	"strings"

	"github.com/suhasj2003/juujfish/internal/attacks"
	"github.com/suhasj2003/juujfish/internal/position"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// Category selects which subset of pseudo-legal moves Generate produces.
type Category uint8

// Category constants.
const (
	Captures Category = iota
	Quiets
	Evasions
	NonEvasions
	Legal
)

// Generate produces the moves of the requested category for pos.
func Generate(pos *position.Position, cat Category) GradedMoveList {
	switch cat {
	case Legal:
		return generateLegal(pos)
	case Evasions:
		return generateEvasions(pos)
	default:
		moves := NewGradedMoveList()
		wantCaptures := cat == Captures || cat == NonEvasions
		wantQuiets := cat == Quiets || cat == NonEvasions
		genPawnMoves(pos, wantCaptures, wantQuiets, BbAll, &moves)
		genPieceMoves(pos, Knight, wantCaptures, wantQuiets, BbAll, &moves)
		genPieceMoves(pos, Bishop, wantCaptures, wantQuiets, BbAll, &moves)
		genPieceMoves(pos, Rook, wantCaptures, wantQuiets, BbAll, &moves)
		genPieceMoves(pos, Queen, wantCaptures, wantQuiets, BbAll, &moves)
		genKingMoves(pos, wantCaptures, wantQuiets, &moves)
		if wantQuiets {
			genCastling(pos, &moves)
		}
		return moves
	}
}

// generateLegal generates and filters down to fully legal moves. Only
// king moves, en-passant captures and moves whose origin is a blocker
// need the full Legal simulation; everything else is already guaranteed
// legal by construction.
func generateLegal(pos *position.Position) GradedMoveList {
	var base GradedMoveList
	if pos.InCheck() {
		base = generateEvasions(pos)
	} else {
		base = Generate(pos, NonEvasions)
	}
	us := pos.SideToMove()
	legal := NewGradedMoveList()
	for _, gm := range base {
		from := gm.Move.From()
		needsCheck := pos.PieceOn(from).TypeOf() == King ||
			gm.Move.MoveType() == EnPassant ||
			pos.Blockers(us).Has(from)
		if !needsCheck || pos.Legal(gm.Move) {
			legal = append(legal, gm)
		}
	}
	return legal
}

// generateEvasions generates pseudo-legal moves while the side to move is
// in check: always king moves, plus (with a single checker) captures of
// the checker and blocks along the checking ray.
func generateEvasions(pos *position.Position) GradedMoveList {
	moves := NewGradedMoveList()
	us := pos.SideToMove()
	ksq := pos.KingSquare(us)

	genKingMoves(pos, true, true, &moves)

	checkers := pos.Checkers()
	if checkers.MoreThanOne() {
		return moves
	}

	checkerSq := checkers.Lsb()
	checkerPt := pos.PieceOn(checkerSq).TypeOf()
	var target Bitboard
	if checkerPt == Knight || checkerPt == Pawn {
		target = checkerSq.Bb()
	} else {
		target = attacks.Intermediate(ksq, checkerSq) | checkerSq.Bb()
	}

	genPawnMoves(pos, true, true, target, &moves)
	genPieceMoves(pos, Knight, true, true, target, &moves)
	genPieceMoves(pos, Bishop, true, true, target, &moves)
	genPieceMoves(pos, Rook, true, true, target, &moves)
	genPieceMoves(pos, Queen, true, true, target, &moves)
	return moves
}

// pawnCaptureDirs holds the two diagonal directions a pawn of each color
// captures along.
var pawnCaptureDirs = [ColorLength][2]Direction{
	{Northwest, Northeast},
	{Southwest, Southeast},
}

// oppositeDirection maps a direction to the one pointing the opposite way,
// used to walk a destination square back to its origin.
var oppositeDirection = [8]Direction{South, West, North, East, Southwest, Northwest, Northeast, Southeast}

// genPawnMoves appends pseudo-legal pawn moves (including promotions and
// en passant) restricted to the given target mask. target is BbAll for
// ordinary categories and the checker/blocking-ray mask for evasions. An
// en passant capture only resolves check if the captured pawn is itself
// the checker, so it is gated on target containing the captured pawn's
// square rather than the destination square.
func genPawnMoves(pos *position.Position, wantCaptures, wantQuiets bool, target Bitboard, moves *GradedMoveList) {
	us := pos.SideToMove()
	dir := us.MoveDirection()
	myPawns := pos.PiecesBb(us, Pawn)
	oppPieces := pos.OccupiedBy(us.Flip())
	promRank := us.PromotionRankBb()

	if wantCaptures {
		for _, d := range pawnCaptureDirs[us] {
			caps := ShiftBitboard(myPawns, d) & oppPieces & target
			back := oppositeDirection[d]
			promCaps := caps & promRank
			for promCaps != BbZero {
				to := promCaps.PopLsb()
				from := to.To(back)
				addPromotions(from, to, true, moves)
			}
			caps &^= promRank
			for caps != BbZero {
				to := caps.PopLsb()
				from := to.To(back)
				moves.append(CreateMove(Normal, from, to, PtNone), captureScore(pos, from, to))
			}
		}

		if ep := pos.EnPassantSquare(); ep != SqNone {
			capturedSq := ep.To(oppositeDirection[dir])
			if target.Has(capturedSq) {
				for _, d := range pawnCaptureDirs[us] {
					src := ShiftBitboard(ep.Bb(), oppositeDirection[d]) & myPawns
					if src != BbZero {
						from := src.Lsb()
						moves.append(CreateMove(EnPassant, from, ep, PtNone), 0)
					}
				}
			}
		}
	}

	if wantQuiets {
		empty := ^pos.Occupied()
		back := oppositeDirection[dir]
		single := ShiftBitboard(myPawns, dir) & empty
		startRankSingle := ShiftBitboard(myPawns&us.PawnStartRank(), dir) & empty
		double := ShiftBitboard(startRankSingle, dir) & empty & target

		promPush := single & promRank & target
		for promPush != BbZero {
			to := promPush.PopLsb()
			from := to.To(back)
			addPromotions(from, to, false, moves)
		}

		single &^= promRank
		single &= target
		for single != BbZero {
			to := single.PopLsb()
			from := to.To(back)
			moves.append(CreateMove(Normal, from, to, PtNone), 0)
		}

		for double != BbZero {
			to := double.PopLsb()
			from := to.To(back).To(back)
			moves.append(CreateMove(Normal, from, to, PtNone), 0)
		}
	}
}

func addPromotions(from, to Square, isCapture bool, moves *GradedMoveList) {
	base := int32(0)
	if !isCapture {
		base = -10_000
	}
	moves.append(CreateMove(Promotion, from, to, Queen), base+int32(Queen.ValueOf()))
	moves.append(CreateMove(Promotion, from, to, Knight), base+int32(Knight.ValueOf()))
	moves.append(CreateMove(Promotion, from, to, Rook), base+int32(Rook.ValueOf())-2000)
	moves.append(CreateMove(Promotion, from, to, Bishop), base+int32(Bishop.ValueOf())-2000)
}

func captureScore(pos *position.Position, from, to Square) int32 {
	return int32(pos.PieceOn(to).ValueOf()) - int32(pos.PieceOn(from).ValueOf())
}

// genPieceMoves appends pseudo-legal moves for knights, bishops, rooks and
// queens (not pawns or the king), restricted to target.
func genPieceMoves(pos *position.Position, pt PieceType, wantCaptures, wantQuiets bool, target Bitboard, moves *GradedMoveList) {
	us := pos.SideToMove()
	occupied := pos.Occupied()
	pieces := pos.PiecesBb(us, pt)
	for pieces != BbZero {
		from := pieces.PopLsb()
		attacked := attacks.GetAttacksBb(pt, from, occupied) & target
		if wantCaptures {
			caps := attacked & pos.OccupiedBy(us.Flip())
			for caps != BbZero {
				to := caps.PopLsb()
				moves.append(CreateMove(Normal, from, to, PtNone), captureScore(pos, from, to))
			}
		}
		if wantQuiets {
			quiets := attacked &^ occupied
			for quiets != BbZero {
				to := quiets.PopLsb()
				moves.append(CreateMove(Normal, from, to, PtNone), 0)
			}
		}
	}
}

// genKingMoves appends pseudo-legal (non-castling) king moves; safety from
// check is left to Position.Legal.
func genKingMoves(pos *position.Position, wantCaptures, wantQuiets bool, moves *GradedMoveList) {
	us := pos.SideToMove()
	from := pos.KingSquare(us)
	attacked := attacks.GetPseudoAttacks(King, from)
	if wantCaptures {
		caps := attacked & pos.OccupiedBy(us.Flip())
		for caps != BbZero {
			to := caps.PopLsb()
			moves.append(CreateMove(Normal, from, to, PtNone), captureScore(pos, from, to))
		}
	}
	if wantQuiets {
		quiets := attacked &^ pos.Occupied()
		for quiets != BbZero {
			to := quiets.PopLsb()
			moves.append(CreateMove(Normal, from, to, PtNone), 0)
		}
	}
}

// genCastling appends pseudo-legal castling moves: the path must be clear
// of pieces and the right must still be held. Whether the king passes
// through or ends on an attacked square is checked later by Position.Legal.
func genCastling(pos *position.Position, moves *GradedMoveList) {
	cr := pos.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occupied := pos.Occupied()
	if pos.SideToMove() == White {
		if cr.Has(WhiteOO) && attacks.Intermediate(SqE1, SqH1)&occupied == BbZero {
			moves.append(CreateMove(Castling, SqE1, SqG1, PtNone), -5000)
		}
		if cr.Has(WhiteOOO) && attacks.Intermediate(SqE1, SqA1)&occupied == BbZero {
			moves.append(CreateMove(Castling, SqE1, SqC1, PtNone), -5000)
		}
	} else {
		if cr.Has(BlackOO) && attacks.Intermediate(SqE8, SqH8)&occupied == BbZero {
			moves.append(CreateMove(Castling, SqE8, SqG8, PtNone), -5000)
		}
		if cr.Has(BlackOOO) && attacks.Intermediate(SqE8, SqA8)&occupied == BbZero {
			moves.append(CreateMove(Castling, SqE8, SqC8, PtNone), -5000)
		}
	}
}

func (l *GradedMoveList) append(m Move, score int32) {
	*l = append(*l, GradedMove{Move: m, Score: score})
}

// HasLegalMove reports whether pos has at least one legal move, without
// materializing the full legal move list.
func HasLegalMove(pos *position.Position) bool {
	var base GradedMoveList
	if pos.InCheck() {
		base = generateEvasions(pos)
	} else {
		base = Generate(pos, NonEvasions)
	}
	us := pos.SideToMove()
	for _, gm := range base {
		from := gm.Move.From()
		needsCheck := pos.PieceOn(from).TypeOf() == King ||
			gm.Move.MoveType() == EnPassant ||
			pos.Blockers(us).Has(from)
		if !needsCheck || pos.Legal(gm.Move) {
			return true
		}
	}
	return false
}

var regexUciMove = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrqNBRQ])?$`)

// MoveFromUci parses a long-algebraic move string such as "e2e4" or
// "e7e8q" and resolves it against pos's legal moves, disambiguating by
// origin/destination/promotion. Returns MoveNone on no match.
func MoveFromUci(pos *position.Position, s string) Move {
	match := regexUciMove.FindStringSubmatch(s)
	if match == nil {
		return MoveNone
	}
	from := MakeSquare(match[1])
	to := MakeSquare(match[2])
	promo := strings.ToUpper(match[3])

	for _, gm := range Generate(pos, Legal) {
		m := gm.Move
		if m.From() != from || m.To() != to {
			continue
		}
		if m.MoveType() == Promotion {
			if promo == "" || m.PromotionType().Char() != promo {
				continue
			}
		} else if promo != "" {
			continue
		}
		return m
	}
	return MoveNone
}

var regexSanMove = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?[!?+#]*$`)

// MoveFromSan parses a standard-algebraic move string and resolves it
// against pos's legal moves. Returns MoveNone on no match or an ambiguous
// match.
func MoveFromSan(pos *position.Position, s string) Move {
	match := regexSanMove.FindStringSubmatch(s)
	if match == nil {
		return MoveNone
	}
	pieceChar := match[1]
	disambFile := match[2]
	disambRank := match[3]
	dest := match[4]
	promo := match[6]

	var found Move
	count := 0
	for _, gm := range Generate(pos, Legal) {
		m := gm.Move
		if m.MoveType() == Castling {
			var castleStr string
			switch m.To() {
			case SqG1, SqG8:
				castleStr = "O-O"
			case SqC1, SqC8:
				castleStr = "O-O-O"
			}
			if castleStr == dest {
				found, count = m, count+1
			}
			continue
		}
		if m.To().String() != dest {
			continue
		}
		fromPt := pos.PieceOn(m.From()).TypeOf()
		if pieceChar == "" {
			if fromPt != Pawn {
				continue
			}
		} else if fromPt.Char() != pieceChar {
			continue
		}
		if disambFile != "" && byte(m.From().FileOf())+'a' != disambFile[0] {
			continue
		}
		if disambRank != "" && byte(m.From().RankOf())+'1' != disambRank[0] {
			continue
		}
		if m.MoveType() == Promotion {
			if promo == "" || m.PromotionType().Char() != promo {
				continue
			}
		} else if promo != "" {
			continue
		}
		found, count = m, count+1
	}
	if count != 1 {
		return MoveNone
	}
	return found
}
