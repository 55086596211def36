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

package search

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suhasj2003/juujfish/internal/config"
	"github.com/suhasj2003/juujfish/internal/position"
	"github.com/suhasj2003/juujfish/internal/tt"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func init() {
	config.Setup()
}

func newTestWorker(fen string) *Worker {
	pos, err := position.NewFromFen(fen)
	if err != nil {
		panic(err)
	}
	table := tt.New(4)
	var stop atomic.Bool
	return NewWorker(pos, table, &stop)
}

func TestSearch_FindsMateInOne(t *testing.T) {
	// Classic back-rank mate: Re1-e8# boxes the king in with its own pawns.
	w := newTestWorker("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	result := w.Search(3)
	assert.True(t, result.BestScore.IsMateScore())
	assert.Greater(t, result.BestScore, ValueZero)
}

func TestSearch_StalemateIsDraw(t *testing.T) {
	// Black to move, stalemated (classic king-in-corner stalemate).
	w := newTestWorker("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	result := w.Search(2)
	assert.Equal(t, ValueDraw, result.BestScore)
}

func TestSearch_PrefersWinningMaterial(t *testing.T) {
	// White can capture a hanging rook.
	w := newTestWorker("4k3/8/8/8/8/4r3/4Q3/4K3 w - - 0 1")
	result := w.Search(3)
	assert.True(t, result.BestMove.IsValid())
	assert.Greater(t, result.BestScore, Value(400))
}

func TestSearch_ReturnsPlayableMoveAtDepthOne(t *testing.T) {
	w := newTestWorker("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	result := w.Search(1)
	assert.True(t, result.BestMove.IsValid())
	assert.Equal(t, 1, result.Depth)
}

func TestSearch_StopFlagHaltsIteration(t *testing.T) {
	pos, err := position.NewFromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	table := tt.New(4)
	var stop atomic.Bool
	w := NewWorker(pos, table, &stop)
	stop.Store(true)

	result := w.Search(10)
	assert.True(t, result.BestMove.IsValid())
}

func TestSearch_QuietPositionReturnsLegalMove(t *testing.T) {
	// No captures available at the frontier: qsearch falls through to its
	// stand-pat score with no further recursion.
	w := newTestWorker("4k3/8/8/8/8/8/3Q4/4K3 w - - 0 1")
	result := w.Search(2)
	assert.True(t, result.BestMove.IsValid())
}
