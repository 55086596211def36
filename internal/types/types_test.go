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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboard_PushPopSquare(t *testing.T) {
	var b Bitboard
	b.PushSquare(SqD4)
	assert.True(t, b.Has(SqD4))
	b.PopSquare(SqD4)
	assert.False(t, b.Has(SqD4))
}

func TestBitboard_PopLsbReturnsLowestSquare(t *testing.T) {
	b := SqD4.Bb() | SqA1.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	sq := b.PopLsb()
	assert.Equal(t, SqA1, sq)
	assert.False(t, b.Has(SqA1))
	assert.True(t, b.Has(SqD4))
}

func TestBitboard_PopCount(t *testing.T) {
	b := SqA1.Bb() | SqB2.Bb() | SqC3.Bb()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, 0, BbZero.PopCount())
}

func TestBitboard_MoreThanOne(t *testing.T) {
	assert.False(t, SqA1.Bb().MoreThanOne())
	assert.True(t, (SqA1.Bb() | SqB2.Bb()).MoreThanOne())
}

func TestSquare_ToRespectsBoardEdges(t *testing.T) {
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqA2, SqA1.To(North))
}

func TestSquare_FileOfAndRankOf(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
}

func TestSquare_MakeSquareRoundTrips(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, "e4", SqE4.String())
}

func TestSquareDistance_Diagonal(t *testing.T) {
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 0, SquareDistance(SqD4, SqD4))
}

func TestCreateMove_EncodesAndDecodes(t *testing.T) {
	m := CreateMove(Normal, SqE2, SqE4, PtNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.MoveType())
	assert.True(t, m.IsValid())
}

func TestCreateMove_PromotionEncodesPieceType(t *testing.T) {
	m := CreateMove(Promotion, SqE7, SqE8, Queen)
	assert.Equal(t, Promotion, m.MoveType())
	assert.Equal(t, Queen, m.PromotionType())
}

func TestMove_StringUci(t *testing.T) {
	m := CreateMove(Normal, SqE2, SqE4, PtNone)
	assert.Equal(t, "e2e4", m.StringUci())
	promo := CreateMove(Promotion, SqE7, SqE8, Queen)
	assert.Equal(t, "e7e8q", promo.StringUci())
}

func TestMove_SetValuePreservesMoveIdentity(t *testing.T) {
	m := CreateMove(Normal, SqE2, SqE4, PtNone)
	withValue := m.SetValue(42)
	assert.Equal(t, 42, withValue.ValueOf())
	assert.Equal(t, m, withValue.MoveOf())
}

func TestMoveNone_IsNotValid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
}

func TestCastlingRights_HasAndRemove(t *testing.T) {
	cr := CastlingAny
	assert.True(t, cr.Has(WhiteOO))
	remaining := cr.Remove(WhiteOO)
	assert.False(t, remaining.Has(WhiteOO))
	assert.True(t, remaining.Has(WhiteOOO))
	assert.True(t, remaining.Has(BlackOO))
}

func TestCastlingRightsFromString_ParsesAllFour(t *testing.T) {
	assert.Equal(t, CastlingAny, CastlingRightsFromString("KQkq"))
	assert.Equal(t, CastlingNone, CastlingRightsFromString("-"))
	assert.Equal(t, WhiteOO, CastlingRightsFromString("K"))
}

func TestCastlingRightsLost_KingMoveClearsBothSides(t *testing.T) {
	lost := CastlingRightsLost(SqE1)
	assert.True(t, lost.Has(WhiteOO))
	assert.True(t, lost.Has(WhiteOOO))
	assert.False(t, lost.Has(BlackOO))
}

func TestCastlingRightsLost_RookSquareClearsOneSide(t *testing.T) {
	lost := CastlingRightsLost(SqA1)
	assert.True(t, lost.Has(WhiteOOO))
	assert.False(t, lost.Has(WhiteOO))
}

func TestValue_MateInDecreasesWithPly(t *testing.T) {
	closer := MateIn(1)
	farther := MateIn(3)
	assert.Greater(t, closer, farther)
	assert.True(t, closer.IsMateScore())
	assert.True(t, MatedIn(1).IsMateScore())
}
