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

package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func TestStoreKiller_ShiftsPreviousIntoSecondSlot(t *testing.T) {
	tb := NewTables()
	m1 := CreateMove(Normal, SqE2, SqE4, PtNone)
	m2 := CreateMove(Normal, SqD2, SqD4, PtNone)

	tb.StoreKiller(3, m1)
	assert.True(t, tb.IsKiller(3, m1))

	tb.StoreKiller(3, m2)
	killers := tb.Killers(3)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])
	assert.True(t, tb.IsKiller(3, m1))
	assert.True(t, tb.IsKiller(3, m2))
}

func TestStoreKiller_SameMoveTwiceDoesNotDuplicate(t *testing.T) {
	tb := NewTables()
	m := CreateMove(Normal, SqE2, SqE4, PtNone)
	tb.StoreKiller(1, m)
	tb.StoreKiller(1, m)
	killers := tb.Killers(1)
	assert.Equal(t, m, killers[0])
	assert.Equal(t, MoveNone, killers[1])
}

func TestClearKillers_RemovesAllPlies(t *testing.T) {
	tb := NewTables()
	m := CreateMove(Normal, SqE2, SqE4, PtNone)
	tb.StoreKiller(0, m)
	tb.StoreKiller(5, m)
	tb.ClearKillers()
	assert.False(t, tb.IsKiller(0, m))
	assert.False(t, tb.IsKiller(5, m))
}

func TestUpdateHistory_AccumulatesAndClamps(t *testing.T) {
	tb := NewTables()
	tb.UpdateHistory(White, SqE2, SqE4, 3)
	first := tb.History(White, SqE2, SqE4)
	assert.Equal(t, int32(1<<3), first)

	for i := 0; i < 50; i++ {
		tb.UpdateHistory(White, SqE2, SqE4, 20)
	}
	assert.Equal(t, int32(HistoryMax), tb.History(White, SqE2, SqE4))
}

func TestPenalizeHistory_ClampsAtNegativeMax(t *testing.T) {
	tb := NewTables()
	for i := 0; i < 50; i++ {
		tb.PenalizeHistory(Black, SqA2, SqA4, 20)
	}
	assert.Equal(t, int32(-HistoryMax), tb.History(Black, SqA2, SqA4))
}

func TestCounterMove_NoneForMoveNone(t *testing.T) {
	tb := NewTables()
	assert.Equal(t, MoveNone, tb.CounterMove(MoveNone))
}

func TestCounterMove_RoundTrips(t *testing.T) {
	tb := NewTables()
	last := CreateMove(Normal, SqG8, SqF6, PtNone)
	reply := CreateMove(Normal, SqD2, SqD4, PtNone)
	tb.StoreCounterMove(last, reply)
	assert.Equal(t, reply, tb.CounterMove(last))
}

func TestStoreCounterMove_IgnoresMoveNoneLastMove(t *testing.T) {
	tb := NewTables()
	reply := CreateMove(Normal, SqD2, SqD4, PtNone)
	tb.StoreCounterMove(MoveNone, reply)
	assert.Equal(t, MoveNone, tb.CounterMove(MoveNone))
}
