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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suhasj2003/juujfish/internal/position"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func TestEvaluator_StartPositionIsSymmetric(t *testing.T) {
	e := NewEvaluator()
	pos := position.New()
	v := e.Evaluate(pos)
	assert.InDelta(t, 40, int(v), 4, "starting position should score only the tempo term: 20 legal moves times the default TempoBonus of 2")
}

func TestEvaluator_MaterialAdvantageIsPositive(t *testing.T) {
	e := NewEvaluator()
	// White is up a rook.
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	assert.NoError(t, err)
	v := e.Evaluate(pos)
	assert.Greater(t, int(v), 0)
}

func TestEvaluator_MaterialDisadvantageIsNegative(t *testing.T) {
	e := NewEvaluator()
	// Black to move, down a rook against White.
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/8/R3K3 b Q - 0 1")
	assert.NoError(t, err)
	v := e.Evaluate(pos)
	assert.Less(t, int(v), 0)
}

func TestEvaluator_InsufficientMaterialIsDraw(t *testing.T) {
	e := NewEvaluator()
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, ValueDraw, e.Evaluate(pos))
}

func TestPawnCache_RoundTrips(t *testing.T) {
	pc := newPawnCache(1)
	pos := position.New()
	key := pos.PawnKey()

	_, ok := pc.get(key)
	assert.False(t, ok)

	want := Score{MidGame: 12, EndGame: -4}
	pc.put(key, want)

	got, ok := pc.get(key)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestIsPassedPawn(t *testing.T) {
	// White pawn on e5, no black pawns anywhere: passed.
	pos, err := position.NewFromFen("4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, isPassedPawn(White, SqE5, pos.PiecesBb(Black, Pawn)))

	// White pawn on e5, black pawn on e6 blocks it: not passed.
	pos2, err := position.NewFromFen("4k3/8/4p3/4P3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, isPassedPawn(White, SqE5, pos2.PiecesBb(Black, Pawn)))
}
