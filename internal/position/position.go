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

// Package position represents the chess board: a piece-array plus bitboards,
// a growable per-ply State stack for make/unmake, and the blockers/pinners/
// check-squares bookkeeping that lets legality and check detection avoid a
// do/undo simulation on the hot path.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/suhasj2003/juujfish/internal/assert"
	"github.com/suhasj2003/juujfish/internal/attacks"
	"github.com/suhasj2003/juujfish/internal/zobrist"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func init() {
	attacks.Init()
}

// Position is the board: piece placement, piece/color bitboards and the
// State stack. All fields other than the State stack are mutated in place
// by MakeMove/UnmakeMove and fully restored by UnmakeMove.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	colorBb    [ColorLength]Bitboard
	kingSquare [ColorLength]Square

	states []State
	ply    int
}

// New creates the standard starting position.
func New() *Position {
	p, _ := NewFromFen(StartFen)
	return p
}

// NewFromFen creates a position from a FEN string.
func NewFromFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.Set(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) current() *State {
	return &p.states[p.ply]
}

func (p *Position) ensureCapacity(idx int) {
	for len(p.states) <= idx {
		p.states = append(p.states, State{})
	}
}

// ////////////////////////////////////////////////////////////////////////
// Accessors
// ////////////////////////////////////////////////////////////////////////

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.current().SideToMove
}

// PieceOn returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceOn(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedBy returns the bitboard of all pieces of color c.
func (p *Position) OccupiedBy(c Color) Bitboard {
	return p.colorBb[c]
}

// Occupied returns the bitboard of all pieces on the board.
func (p *Position) Occupied() Bitboard {
	return p.colorBb[White] | p.colorBb[Black]
}

// KingSquare returns the square of the king of color c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// Zobrist returns the full Zobrist key of the current position.
func (p *Position) Zobrist() zobrist.Key {
	return p.current().Zobrist
}

// PawnKey returns the pawn-structure sub-hash of the current position.
func (p *Position) PawnKey() zobrist.Key {
	return p.current().PawnKey
}

// MinorKey returns the minor-piece (knight/bishop) placement sub-hash of
// the current position.
func (p *Position) MinorKey() zobrist.Key {
	return p.current().MinorKey
}

// MajorKey returns the major-piece (rook/queen) placement sub-hash of the
// current position.
func (p *Position) MajorKey() zobrist.Key {
	return p.current().MajorKey
}

// SecondaryKey combines the minor- and major-piece sub-hashes into a key
// independent of the full Zobrist key, used as the transposition table's
// secondary tag to make an undetected index/tag collision vanishingly
// rare without needing a wider primary key.
func (p *Position) SecondaryKey() zobrist.Key {
	return p.MinorKey() ^ p.MajorKey()
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.current().CastlingRights
}

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.current().EnPassantSquare
}

// HalfMoveClock returns the fifty-move-rule counter.
func (p *Position) HalfMoveClock() int {
	return p.current().HalfMoveClock
}

// PliesFromStart returns the number of half-moves played since the root.
func (p *Position) PliesFromStart() int {
	return p.current().PliesFromStart
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.current().InCheck()
}

// Checkers returns the bitboard of pieces currently giving check.
func (p *Position) Checkers() Bitboard {
	return p.current().Checkers
}

// Blockers returns the bitboard of pieces (either color) standing between
// color c's king and a would-be pinning slider.
func (p *Position) Blockers(c Color) Bitboard {
	return p.current().Blockers[c]
}

// IsCapturingMove reports whether m, if played, would capture a piece
// (including en passant).
func (p *Position) IsCapturingMove(m Move) bool {
	return m.MoveType() == EnPassant || p.board[m.To()] != PieceNone
}

// LastMove returns the most recently made move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if p.ply == 0 {
		return MoveNone
	}
	return p.current().Move
}

// ////////////////////////////////////////////////////////////////////////
// Board mutation primitives
// ////////////////////////////////////////////////////////////////////////

func (p *Position) putPiece(piece Piece, sq Square, st *State) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece: square %s already occupied", sq.String())
	}
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt].PushSquare(sq)
	p.colorBb[color].PushSquare(sq)
	st.Zobrist ^= zobrist.PieceKey(piece, sq)
	st.PawnKey ^= zobrist.PawnKey(piece, sq)
	st.MinorKey ^= zobrist.MinorKey(piece, sq)
	st.MajorKey ^= zobrist.MajorKey(piece, sq)
}

func (p *Position) removePiece(sq Square, st *State) Piece {
	removed := p.board[sq]
	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "removePiece: square %s is empty", sq.String())
	}
	color := removed.ColorOf()
	pt := removed.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.colorBb[color].PopSquare(sq)
	st.Zobrist ^= zobrist.PieceKey(removed, sq)
	st.PawnKey ^= zobrist.PawnKey(removed, sq)
	st.MinorKey ^= zobrist.MinorKey(removed, sq)
	st.MajorKey ^= zobrist.MajorKey(removed, sq)
	return removed
}

func (p *Position) movePiece(from, to Square, st *State) {
	p.putPiece(p.removePiece(from, st), to, st)
}

// raw variants are used only by UnmakeMove, which restores the Zobrist key
// (and everything else in State) simply by stepping p.ply back; touching
// the incremental hash again there would be wasted work.
func (p *Position) rawPut(piece Piece, sq Square) {
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt].PushSquare(sq)
	p.colorBb[color].PushSquare(sq)
}

func (p *Position) rawRemove(sq Square) Piece {
	removed := p.board[sq]
	color := removed.ColorOf()
	pt := removed.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.colorBb[color].PopSquare(sq)
	return removed
}

func (p *Position) rawMove(from, to Square) {
	p.rawPut(p.rawRemove(from), to)
}

// ////////////////////////////////////////////////////////////////////////
// Make / unmake
// ////////////////////////////////////////////////////////////////////////

// MakeMove applies m to the position. The caller is responsible for only
// passing pseudo-legal moves generated against this exact position; use
// Legal to filter before committing a move from a staged generator.
func (p *Position) MakeMove(m Move) {
	prev := p.current()
	us := prev.SideToMove
	them := us.Flip()
	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	capturedPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "MakeMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "MakeMove: no piece on %s", fromSq.String())
		assert.Assert(fromPc.ColorOf() == us, "MakeMove: piece on %s does not belong to side to move", fromSq.String())
		assert.Assert(capturedPc.TypeOf() != King, "MakeMove: king cannot be captured")
	}

	idx := p.ply + 1
	p.ensureCapacity(idx)
	ns := &p.states[idx]
	*ns = State{
		Zobrist:         prev.Zobrist,
		PawnKey:         prev.PawnKey,
		MinorKey:        prev.MinorKey,
		MajorKey:        prev.MajorKey,
		CastlingRights:  prev.CastlingRights,
		EnPassantSquare: SqNone,
		HalfMoveClock:   prev.HalfMoveClock + 1,
		PliesFromStart:  prev.PliesFromStart + 1,
		SideToMove:      them,
		Move:            m,
		CapturedPiece:   capturedPc,
	}
	if prev.EnPassantSquare != SqNone {
		ns.Zobrist ^= zobrist.EnPassantFile[prev.EnPassantSquare.FileOf()]
	}

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(ns, fromSq, toSq, fromPc, capturedPc, us)
	case Promotion:
		p.doPromotionMove(ns, m, fromSq, toSq, capturedPc, us)
	case EnPassant:
		p.doEnPassantMove(ns, fromSq, toSq, us)
	case Castling:
		p.doCastlingMove(ns, fromSq, toSq, us)
	}

	ns.Zobrist ^= zobrist.NextPlayer
	p.ply = idx
	p.updateCheckInfo()
}

func (p *Position) doNormalMove(ns *State, from, to Square, fromPc, capturedPc Piece, us Color) {
	p.updateCastlingRights(ns, CastlingRightsLost(from)|CastlingRightsLost(to))
	if capturedPc != PieceNone {
		p.removePiece(to, ns)
		ns.HalfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		ns.HalfMoveClock = 0
		if SquareDistance(from, to) == 2 {
			epSq := to.To(us.Flip().MoveDirection())
			if epSq.NeighbourFilesMask()&epSq.RankOf().Bb()&p.piecesBb[us.Flip()][Pawn] != BbZero {
				ns.EnPassantSquare = epSq
				ns.Zobrist ^= zobrist.EnPassantFile[epSq.FileOf()]
			}
		}
	}
	p.movePiece(from, to, ns)
}

func (p *Position) doPromotionMove(ns *State, m Move, from, to Square, capturedPc Piece, us Color) {
	if capturedPc != PieceNone {
		p.removePiece(to, ns)
	}
	p.updateCastlingRights(ns, CastlingRightsLost(from)|CastlingRightsLost(to))
	p.removePiece(from, ns)
	p.putPiece(MakePiece(us, m.PromotionType()), to, ns)
	ns.HalfMoveClock = 0
}

func (p *Position) doEnPassantMove(ns *State, from, to Square, us Color) {
	capSq := to.To(us.Flip().MoveDirection())
	ns.CapturedPiece = p.removePiece(capSq, ns)
	p.movePiece(from, to, ns)
	ns.HalfMoveClock = 0
}

func (p *Position) doCastlingMove(ns *State, from, to Square, us Color) {
	p.movePiece(from, to, ns)
	var rookFrom, rookTo Square
	switch to {
	case SqG1:
		rookFrom, rookTo = SqH1, SqF1
	case SqC1:
		rookFrom, rookTo = SqA1, SqD1
	case SqG8:
		rookFrom, rookTo = SqH8, SqF8
	case SqC8:
		rookFrom, rookTo = SqA8, SqD8
	default:
		panic("doCastlingMove: invalid castling destination")
	}
	p.movePiece(rookFrom, rookTo, ns)
	p.updateCastlingRights(ns, CastlingRightsLost(from))
	ns.HalfMoveClock++
}

func (p *Position) updateCastlingRights(ns *State, lost CastlingRights) {
	if ns.CastlingRights&lost != CastlingNone {
		ns.Zobrist ^= zobrist.CastlingRights[ns.CastlingRights]
		ns.CastlingRights = ns.CastlingRights.Remove(lost)
		ns.Zobrist ^= zobrist.CastlingRights[ns.CastlingRights]
	}
}

// UnmakeMove reverts the most recent MakeMove.
func (p *Position) UnmakeMove() {
	if assert.DEBUG {
		assert.Assert(p.ply > 0, "UnmakeMove: no move to undo")
	}
	st := p.current()
	m := st.Move
	us := st.SideToMove.Flip()
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case Normal:
		p.rawMove(to, from)
		if st.CapturedPiece != PieceNone {
			p.rawPut(st.CapturedPiece, to)
		}
	case Promotion:
		p.rawRemove(to)
		p.rawPut(MakePiece(us, Pawn), from)
		if st.CapturedPiece != PieceNone {
			p.rawPut(st.CapturedPiece, to)
		}
	case EnPassant:
		p.rawMove(to, from)
		capSq := to.To(us.Flip().MoveDirection())
		p.rawPut(st.CapturedPiece, capSq)
	case Castling:
		p.rawMove(to, from)
		switch to {
		case SqG1:
			p.rawMove(SqF1, SqH1)
		case SqC1:
			p.rawMove(SqD1, SqA1)
		case SqG8:
			p.rawMove(SqF8, SqH8)
		case SqC8:
			p.rawMove(SqD8, SqA8)
		}
	}
	p.ply--
}

// MakeNullMove passes the move without changing the board, used by
// null-window and future null-move-based search techniques.
func (p *Position) MakeNullMove() {
	prev := p.current()
	idx := p.ply + 1
	p.ensureCapacity(idx)
	ns := &p.states[idx]
	*ns = *prev
	ns.Move = MoveNone
	ns.CapturedPiece = PieceNone
	ns.SideToMove = prev.SideToMove.Flip()
	ns.HalfMoveClock = prev.HalfMoveClock + 1
	ns.PliesFromStart = prev.PliesFromStart + 1
	if prev.EnPassantSquare != SqNone {
		ns.Zobrist ^= zobrist.EnPassantFile[prev.EnPassantSquare.FileOf()]
		ns.EnPassantSquare = SqNone
	}
	ns.Zobrist ^= zobrist.NextPlayer
	p.ply = idx
	p.updateCheckInfo()
}

// UnmakeNullMove reverts MakeNullMove.
func (p *Position) UnmakeNullMove() {
	if assert.DEBUG {
		assert.Assert(p.ply > 0, "UnmakeNullMove: no null move to undo")
	}
	p.ply--
}

// ////////////////////////////////////////////////////////////////////////
// Attacks, check info, legality
// ////////////////////////////////////////////////////////////////////////

// attackersTo returns all pieces of either color attacking sq given the
// supplied occupancy (which may differ from the real board, e.g. with the
// moving king's origin square removed).
func (p *Position) attackersTo(sq Square, occupied Bitboard) Bitboard {
	bishopsQueens := p.piecesBb[White][Bishop] | p.piecesBb[Black][Bishop] | p.piecesBb[White][Queen] | p.piecesBb[Black][Queen]
	rooksQueens := p.piecesBb[White][Rook] | p.piecesBb[Black][Rook] | p.piecesBb[White][Queen] | p.piecesBb[Black][Queen]
	return (attacks.GetPawnAttacks(Black, sq) & p.piecesBb[White][Pawn]) |
		(attacks.GetPawnAttacks(White, sq) & p.piecesBb[Black][Pawn]) |
		(attacks.GetPseudoAttacks(Knight, sq) & (p.piecesBb[White][Knight] | p.piecesBb[Black][Knight])) |
		(attacks.GetAttacksBb(Bishop, sq, occupied) & bishopsQueens) |
		(attacks.GetAttacksBb(Rook, sq, occupied) & rooksQueens) |
		(attacks.GetPseudoAttacks(King, sq) & (p.piecesBb[White][King] | p.piecesBb[Black][King]))
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.attackersTo(sq, p.Occupied())&p.colorBb[by] != BbZero
}

func (p *Position) sliderBlockers(sliders Color, ksq Square) (blockers, pinners Bitboard) {
	snipers := ((attacks.GetPseudoAttacks(Rook, ksq) & (p.piecesBb[sliders][Rook] | p.piecesBb[sliders][Queen])) |
		(attacks.GetPseudoAttacks(Bishop, ksq) & (p.piecesBb[sliders][Bishop] | p.piecesBb[sliders][Queen])))
	occupied := p.Occupied() &^ snipers
	kingColor := sliders.Flip()
	for s := snipers; s != BbZero; {
		sniperSq := s.PopLsb()
		between := attacks.Intermediate(ksq, sniperSq) & occupied
		if between != BbZero && !between.MoreThanOne() {
			blockers |= between
			if between&p.colorBb[kingColor] != BbZero {
				pinners |= sniperSq.Bb()
			}
		}
	}
	return blockers, pinners
}

// updateCheckInfo recomputes checkers, check-squares, blockers and pinners
// for the current state after a move has changed the board.
func (p *Position) updateCheckInfo() {
	st := p.current()
	us := st.SideToMove
	them := us.Flip()
	ourKing := p.kingSquare[us]
	theirKing := p.kingSquare[them]
	occupied := p.Occupied()

	st.Checkers = p.attackersTo(ourKing, occupied) & p.colorBb[them]

	st.CheckSquares[Pawn] = attacks.GetPawnAttacks(them, theirKing)
	st.CheckSquares[Knight] = attacks.GetPseudoAttacks(Knight, theirKing)
	st.CheckSquares[Bishop] = attacks.GetAttacksBb(Bishop, theirKing, occupied)
	st.CheckSquares[Rook] = attacks.GetAttacksBb(Rook, theirKing, occupied)
	st.CheckSquares[Queen] = st.CheckSquares[Bishop] | st.CheckSquares[Rook]
	st.CheckSquares[King] = BbZero

	st.Blockers[us], st.Pinners[us] = p.sliderBlockers(them, ourKing)
	st.Blockers[them], st.Pinners[them] = p.sliderBlockers(us, theirKing)
}

// Legal reports whether the pseudo-legal move m can be played without
// leaving the mover's own king in check.
func (p *Position) Legal(m Move) bool {
	st := p.current()
	us := st.SideToMove
	them := us.Flip()
	ksq := p.kingSquare[us]
	from, to := m.From(), m.To()

	switch m.MoveType() {
	case Castling:
		if p.IsAttacked(from, them) {
			return false
		}
		step := East
		if to < from {
			step = West
		}
		for s := from; s != to; s = s.To(step) {
			if p.IsAttacked(s, them) {
				return false
			}
		}
		return !p.IsAttacked(to, them)

	case EnPassant:
		capSq := to.To(them.MoveDirection())
		occupied := p.Occupied()
		occupied.PopSquare(from)
		occupied.PopSquare(capSq)
		occupied.PushSquare(to)
		bishopsQueens := p.piecesBb[them][Bishop] | p.piecesBb[them][Queen]
		rooksQueens := p.piecesBb[them][Rook] | p.piecesBb[them][Queen]
		return attacks.GetAttacksBb(Bishop, ksq, occupied)&bishopsQueens == BbZero &&
			attacks.GetAttacksBb(Rook, ksq, occupied)&rooksQueens == BbZero

	default:
		if from == ksq {
			occupied := p.Occupied()
			occupied.PopSquare(from)
			return !(p.attackersTo(to, occupied)&p.colorBb[them] != BbZero)
		}
		if st.Blockers[us]&from.Bb() == BbZero {
			return true
		}
		return attacks.Line(ksq, from).Has(to)
	}
}

// GivesCheck reports whether playing the pseudo-legal move m would give
// check to the opponent.
func (p *Position) GivesCheck(m Move) bool {
	st := p.current()
	us := st.SideToMove
	them := us.Flip()
	theirKing := p.kingSquare[them]

	from, to := m.From(), m.To()
	fromPt := p.board[from].TypeOf()
	moveType := m.MoveType()

	switch moveType {
	case Promotion:
		fromPt = m.PromotionType()
	case Castling:
		fromPt = Rook
		switch to {
		case SqG1:
			to = SqF1
		case SqC1:
			to = SqD1
		case SqG8:
			to = SqF8
		case SqC8:
			to = SqD8
		}
	}

	if moveType != Castling && moveType != EnPassant && st.CheckSquares[fromPt].Has(to) {
		return true
	}

	if st.Blockers[them]&from.Bb() != BbZero && !attacks.Line(theirKing, from).Has(m.To()) {
		return true
	}

	switch moveType {
	case Promotion:
		occ := p.Occupied()
		occ.PopSquare(from)
		occ.PushSquare(m.To())
		return attacks.GetAttacksBb(fromPt, m.To(), occ).Has(theirKing)
	case EnPassant:
		capSq := m.To().To(them.MoveDirection())
		occ := p.Occupied()
		occ.PopSquare(from)
		occ.PopSquare(capSq)
		occ.PushSquare(m.To())
		bishopsQueens := p.piecesBb[us][Bishop] | p.piecesBb[us][Queen]
		rooksQueens := p.piecesBb[us][Rook] | p.piecesBb[us][Queen]
		return attacks.GetAttacksBb(Bishop, theirKing, occ)&bishopsQueens != BbZero ||
			attacks.GetAttacksBb(Rook, theirKing, occ)&rooksQueens != BbZero
	case Castling:
		return st.CheckSquares[Rook].Has(to)
	}
	return false
}

// ////////////////////////////////////////////////////////////////////////
// Draws
// ////////////////////////////////////////////////////////////////////////

// CheckRepetitions reports whether the current position has occurred at
// least reps times earlier in the game, scanning backward in strides of two
// plies and stopping as soon as an irreversible move (a pawn move or a
// capture, either of which resets the half-move clock) is crossed.
func (p *Position) CheckRepetitions(reps int) bool {
	count := 0
	lastHalfMove := p.current().HalfMoveClock
	for i := p.ply - 2; i >= 0; i -= 2 {
		if p.states[i].HalfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.states[i].HalfMoveClock
		if p.states[i].Zobrist == p.current().Zobrist {
			count++
			if count >= reps {
				return true
			}
		}
	}
	return false
}

func (p *Position) nonPawnMaterial(c Color) Value {
	var v Value
	for pt := Knight; pt <= Queen; pt++ {
		v += Value(p.piecesBb[c][pt].PopCount()) * pt.ValueOf()
	}
	return v
}

// HasInsufficientMaterial reports whether neither side has enough material
// to force a checkmate (ignoring help-mate curiosities where the losing
// side could cooperate into being mated).
func (p *Position) HasInsufficientMaterial() bool {
	wNP := p.nonPawnMaterial(White)
	bNP := p.nonPawnMaterial(Black)
	wPawns := p.piecesBb[White][Pawn].PopCount()
	bPawns := p.piecesBb[Black][Pawn].PopCount()

	if wNP == 0 && bNP == 0 && wPawns == 0 && bPawns == 0 {
		return true
	}
	majors := p.piecesBb[White][Rook] | p.piecesBb[Black][Rook] | p.piecesBb[White][Queen] | p.piecesBb[Black][Queen]
	if wPawns == 0 && bPawns == 0 && majors == BbZero {
		knight := Knight.ValueOf()
		bishop := Bishop.ValueOf()
		if wNP < 400 && bNP < 400 {
			return true
		}
		if (wNP == 2*knight && bNP <= bishop) || (bNP == 2*knight && wNP <= bishop) {
			return true
		}
		if (wNP == 2*bishop && bNP == bishop) || (bNP == 2*bishop && wNP == bishop) {
			return true
		}
		if wNP == 2*bishop || bNP == 2*bishop {
			return false
		}
		if (wNP < 2*bishop && bNP <= bishop) || (wNP <= bishop && bNP < 2*bishop) {
			return true
		}
	}
	return false
}

// IsDraw reports whether the position is a draw by the fifty-move rule,
// by repetition (the current position already occurred at least once since
// the last pawn move or capture) or by insufficient material.
func (p *Position) IsDraw() bool {
	return p.current().HalfMoveClock >= 100 || p.CheckRepetitions(1) || p.HasInsufficientMaterial()
}

// ////////////////////////////////////////////////////////////////////////
// FEN
// ////////////////////////////////////////////////////////////////////////

var (
	regexFenPos          = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexSideToMove      = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassantSquare = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// Set replaces the position's contents with the position encoded by fen.
func (p *Position) Set(fen string) error {
	fen = strings.TrimSpace(fen)
	parts := strings.Split(fen, " ")
	if len(parts) == 0 || parts[0] == "" {
		return errors.New("position: fen must not be empty")
	}
	if !regexFenPos.MatchString(parts[0]) {
		return errors.New("position: fen piece placement has invalid characters")
	}

	*p = Position{states: []State{{}}}

	sq := SqA8
	for _, c := range parts[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0'))
		case c == '/':
			// sq sits one file past the rank just finished; drop down a
			// full rank plus that one file to reach file A of the next.
			sq = Square(int(sq) - 16)
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("position: invalid piece character %q", c)
			}
			p.putPiece(piece, sq, p.current())
			sq++
		}
	}
	if sq != SqA2 {
		return errors.New("position: fen piece placement did not cover all 64 squares")
	}

	st := p.current()
	st.SideToMove = White
	st.PliesFromStart = 0
	st.EnPassantSquare = SqNone

	if len(parts) >= 2 {
		if !regexSideToMove.MatchString(parts[1]) {
			return errors.New("position: fen side to move has invalid characters")
		}
		if parts[1] == "b" {
			st.SideToMove = Black
			st.Zobrist ^= zobrist.NextPlayer
			st.PliesFromStart = 1
		}
	}

	if len(parts) >= 3 {
		if !regexCastlingRights.MatchString(parts[2]) {
			return errors.New("position: fen castling rights have invalid characters")
		}
		st.CastlingRights = CastlingRightsFromString(parts[2])
		st.Zobrist ^= zobrist.CastlingRights[st.CastlingRights]
	}

	if len(parts) >= 4 {
		if !regexEnPassantSquare.MatchString(parts[3]) {
			return errors.New("position: fen en passant field has invalid characters")
		}
		if parts[3] != "-" {
			st.EnPassantSquare = MakeSquare(parts[3])
			st.Zobrist ^= zobrist.EnPassantFile[st.EnPassantSquare.FileOf()]
		}
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil {
			return fmt.Errorf("position: invalid half-move clock: %w", err)
		}
		st.HalfMoveClock = n
	}

	if len(parts) >= 6 {
		moveNumber, err := strconv.Atoi(parts[5])
		if err != nil {
			return fmt.Errorf("position: invalid full-move number: %w", err)
		}
		if moveNumber < 1 {
			moveNumber = 1
		}
		plies := 2 * (moveNumber - 1)
		if st.SideToMove == Black {
			plies++
		}
		st.PliesFromStart = plies
	}

	p.updateCheckInfo()
	return nil
}

// Fen renders the current position as a FEN string.
func (p *Position) Fen() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}
	st := p.current()
	b.WriteString(" ")
	b.WriteString(st.SideToMove.String())
	b.WriteString(" ")
	b.WriteString(st.CastlingRights.String())
	b.WriteString(" ")
	b.WriteString(st.EnPassantSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(st.HalfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(st.PliesFromStart/2 + 1))
	return b.String()
}

// String renders the FEN followed by an 8x8 ascii board.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.Fen())
	b.WriteString("\n")
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			b.WriteString("| ")
			b.WriteString(p.board[SquareOf(f, r)].String())
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return b.String()
}
