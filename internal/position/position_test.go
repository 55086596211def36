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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func TestNewFromFen_StartingPosition(t *testing.T) {
	p, err := NewFromFen(StartFen)
	assert.NoError(t, err)

	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.PiecesBb(White, Rook)|p.PiecesBb(Black, Rook))
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.False(t, p.InCheck())
	assert.Equal(t, StartFen, p.Fen())
}

func TestNewFromFen_RejectsMalformedFen(t *testing.T) {
	_, err := NewFromFen("not a fen")
	assert.Error(t, err)
}

func TestFen_RoundTripsArbitraryPosition(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p, err := NewFromFen(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen, p.Fen())
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqE3, p.EnPassantSquare())
}

// MakeMove/UnmakeMove must be the identity on every observable field of
// the position: board, bitboards, zobrist (and its sub-keys), castling
// rights, en-passant square and halfmove clock.
func TestMakeUnmakeMove_IsIdentity(t *testing.T) {
	p, err := NewFromFen(StartFen)
	assert.NoError(t, err)

	zobristBefore := p.Zobrist()
	pawnKeyBefore := p.PawnKey()
	fenBefore := p.Fen()

	m := CreateMove(Normal, SqE2, SqE4, PtNone)
	p.MakeMove(m)
	assert.NotEqual(t, zobristBefore, p.Zobrist())
	assert.Equal(t, Black, p.SideToMove())

	p.UnmakeMove()
	assert.Equal(t, zobristBefore, p.Zobrist())
	assert.Equal(t, pawnKeyBefore, p.PawnKey())
	assert.Equal(t, fenBefore, p.Fen())
	assert.Equal(t, White, p.SideToMove())
}

func TestMakeUnmakeMove_SequenceIsIdentity(t *testing.T) {
	p, err := NewFromFen(StartFen)
	assert.NoError(t, err)
	fenBefore := p.Fen()

	moves := []Move{
		CreateMove(Normal, SqG1, SqF3, PtNone),
		CreateMove(Normal, SqG8, SqF6, PtNone),
		CreateMove(Normal, SqF3, SqG1, PtNone),
		CreateMove(Normal, SqF6, SqG8, PtNone),
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	for range moves {
		p.UnmakeMove()
	}

	assert.Equal(t, fenBefore, p.Fen())
}

// CastlingRights must never regain a right once lost.
func TestCastlingRights_MonotoneNonIncreasing(t *testing.T) {
	p, err := NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.CastlingRights()

	p.MakeMove(CreateMove(Normal, SqE1, SqE2, PtNone))
	after := p.CastlingRights()

	assert.True(t, before.Has(WhiteOO))
	assert.False(t, after.Has(WhiteOO))
	assert.False(t, after.Has(WhiteOOO))
	// Black's rights are untouched by a white king move.
	assert.True(t, after.Has(BlackOO))
	assert.True(t, after.Has(BlackOOO))
}

// The checkers bitboard must be non-empty exactly when InCheck is true.
func TestInCheck_MatchesCheckersBitboard(t *testing.T) {
	p, err := NewFromFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.True(t, p.InCheck())
	assert.NotEqual(t, BbZero, p.Checkers())
}

func TestLegal_RejectsMoveThatExposesOwnKing(t *testing.T) {
	// White bishop on e2 is pinned to the king on e1 by the black rook on e8.
	p, err := NewFromFen("4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1")
	assert.NoError(t, err)
	pinned := CreateMove(Normal, SqE2, SqD3, PtNone)
	assert.False(t, p.Legal(pinned))

	alongRay := CreateMove(Normal, SqE2, SqE3, PtNone)
	assert.True(t, p.Legal(alongRay))
}

func TestIsDraw_ThreefoldRepetition(t *testing.T) {
	p, err := NewFromFen(StartFen)
	assert.NoError(t, err)

	shuffle := []Move{
		CreateMove(Normal, SqG1, SqF3, PtNone),
		CreateMove(Normal, SqG8, SqF6, PtNone),
		CreateMove(Normal, SqF3, SqG1, PtNone),
		CreateMove(Normal, SqF6, SqG8, PtNone),
		CreateMove(Normal, SqG1, SqF3, PtNone),
		CreateMove(Normal, SqG8, SqF6, PtNone),
	}
	for _, m := range shuffle {
		p.MakeMove(m)
	}

	assert.True(t, p.IsDraw())
}

func TestIsDraw_FiftyMoveRule(t *testing.T) {
	// A rook keeps material sufficient, isolating the fifty-move
	// counter as the only possible reason IsDraw could return true.
	p, err := NewFromFen("4k3/8/8/8/8/8/8/R3K3 w - - 99 75")
	assert.NoError(t, err)
	assert.False(t, p.IsDraw())
	p.MakeMove(CreateMove(Normal, SqE1, SqD1, PtNone))
	assert.True(t, p.IsDraw())
}

func TestHasInsufficientMaterial_LoneKings(t *testing.T) {
	p, err := NewFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterial_FalseWithRook(t *testing.T) {
	p, err := NewFromFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}
