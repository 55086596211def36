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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func TestPieceKey_DistinctForDistinctSquares(t *testing.T) {
	wp := MakePiece(White, Pawn)
	assert.NotEqual(t, PieceKey(wp, SqE2), PieceKey(wp, SqE4))
}

func TestPieceKey_DistinctForDistinctPieces(t *testing.T) {
	assert.NotEqual(t, PieceKey(MakePiece(White, Pawn), SqE4), PieceKey(MakePiece(Black, Pawn), SqE4))
	assert.NotEqual(t, PieceKey(MakePiece(White, Pawn), SqE4), PieceKey(MakePiece(White, Knight), SqE4))
}

func TestPawnKey_ZeroForNonPawn(t *testing.T) {
	assert.Equal(t, Key(0), PawnKey(MakePiece(White, Knight), SqE4))
	assert.NotEqual(t, Key(0), PawnKey(MakePiece(White, Pawn), SqE4))
}

func TestMinorKey_OnlyKnightsAndBishops(t *testing.T) {
	assert.NotEqual(t, Key(0), MinorKey(MakePiece(White, Knight), SqC3))
	assert.NotEqual(t, Key(0), MinorKey(MakePiece(Black, Bishop), SqF5))
	assert.Equal(t, Key(0), MinorKey(MakePiece(White, Rook), SqA1))
	assert.Equal(t, Key(0), MinorKey(MakePiece(White, Pawn), SqE4))
}

func TestMajorKey_OnlyRooksAndQueens(t *testing.T) {
	assert.NotEqual(t, Key(0), MajorKey(MakePiece(White, Rook), SqA1))
	assert.NotEqual(t, Key(0), MajorKey(MakePiece(Black, Queen), SqD8))
	assert.Equal(t, Key(0), MajorKey(MakePiece(White, Knight), SqC3))
}

func TestCastlingRightsKeys_AreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		k := CastlingRights[cr]
		assert.False(t, seen[k])
		seen[k] = true
	}
}

func TestEnPassantFileKeys_AreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for f := FileA; f <= FileH; f++ {
		k := EnPassantFile[f]
		assert.False(t, seen[k])
		seen[k] = true
	}
}

func TestRandom_IsDeterministicForASeed(t *testing.T) {
	a := newRandom(1070372)
	b := newRandom(1070372)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.rand64(), b.rand64())
	}
}
