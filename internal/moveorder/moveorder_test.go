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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suhasj2003/juujfish/internal/heuristics"
	"github.com/suhasj2003/juujfish/internal/position"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// drain collects every move the orderer yields, in order.
func drain(o *Orderer) []Move {
	var out []Move
	for {
		m := o.Next()
		if m == MoveNone {
			return out
		}
		out = append(out, m)
	}
}

func TestOrderer_TTMoveComesFirst(t *testing.T) {
	pos, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)
	tables := heuristics.NewTables()
	ttMove := CreateMove(Normal, SqG1, SqF3, PtNone)

	o := New(pos, tables, 0, ttMove, MoveNone)
	moves := drain(o)
	assert.NotEmpty(t, moves)
	assert.Equal(t, ttMove, moves[0])
}

func TestOrderer_TTMoveNotEmittedTwice(t *testing.T) {
	pos, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)
	tables := heuristics.NewTables()
	ttMove := CreateMove(Normal, SqG1, SqF3, PtNone)

	o := New(pos, tables, 0, ttMove, MoveNone)
	moves := drain(o)
	count := 0
	for _, m := range moves {
		if m.MoveOf() == ttMove.MoveOf() {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestOrderer_CapturesBeforeQuiets(t *testing.T) {
	// White to move: pawn on e4 can capture the black knight on d5;
	// every other move from this position is quiet.
	pos, err := position.NewFromFen("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	tables := heuristics.NewTables()

	o := New(pos, tables, 0, MoveNone, MoveNone)
	moves := drain(o)
	assert.NotEmpty(t, moves)

	capture := CreateMove(Normal, SqE4, SqD5, PtNone)
	captureIdx, quietIdx := -1, -1
	for i, m := range moves {
		if m.MoveOf() == capture.MoveOf() {
			captureIdx = i
		} else if quietIdx == -1 {
			quietIdx = i
		}
	}
	assert.GreaterOrEqual(t, captureIdx, 0)
	assert.GreaterOrEqual(t, quietIdx, 0)
	assert.Less(t, captureIdx, quietIdx)
}

func TestOrderer_EvasionsOnlyWhenInCheck(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, pos.InCheck())
	tables := heuristics.NewTables()

	o := New(pos, tables, 0, MoveNone, MoveNone)
	moves := drain(o)
	assert.NotEmpty(t, moves)
	// The orderer yields pseudo-legal evasions: with only the king able to
	// move, a king step is legal exactly when the destination is not
	// attacked by Black.
	for _, m := range moves {
		assert.Equal(t, !pos.IsAttacked(m.To(), Black), pos.Legal(m))
	}
}

func TestOrderer_KillerQuietOrderedBeforeNonKillerQuiet(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/3PPP2/4K3 w - - 0 1")
	assert.NoError(t, err)
	tables := heuristics.NewTables()

	killer := CreateMove(Normal, SqF2, SqF3, PtNone)
	tables.StoreKiller(0, killer)

	o := New(pos, tables, 0, MoveNone, MoveNone)
	moves := drain(o)

	killerIdx := -1
	for i, m := range moves {
		if m.MoveOf() == killer.MoveOf() {
			killerIdx = i
			break
		}
	}
	assert.Equal(t, 0, killerIdx, "killer quiet move should be the very first quiet move returned")
}

func TestOrderer_ExhaustsToMoveNone(t *testing.T) {
	pos, err := position.NewFromFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	tables := heuristics.NewTables()
	o := New(pos, tables, 0, MoveNone, MoveNone)
	// Stalemate: the orderer still yields the pseudo-legal king steps, none
	// of which is legal, and then stays at MoveNone.
	for _, m := range drain(o) {
		assert.False(t, pos.Legal(m))
	}
	assert.Equal(t, MoveNone, o.Next())
}
