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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suhasj2003/juujfish/internal/config"
	"github.com/suhasj2003/juujfish/internal/position"
	"github.com/suhasj2003/juujfish/internal/search"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func init() {
	config.Setup()
}

func TestPool_IsSearchingAndWait(t *testing.T) {
	pos, err := position.NewFromFen("6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	assert.NoError(t, err)

	p := NewPool(1)
	assert.False(t, p.IsSearching())

	p.Start(pos, 3)
	assert.True(t, pos.Fen() != "", "caller's position must still be usable after Start returns")

	result := p.Wait()
	assert.False(t, p.IsSearching())
	assert.True(t, result.BestMove.IsValid())
	assert.True(t, result.BestScore.IsMateScore())
}

func TestPool_StopHaltsEarly(t *testing.T) {
	pos, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)

	p := NewPool(1)
	p.Start(pos, 64)
	p.Stop()

	assert.False(t, p.IsSearching())
}

func TestPool_CopiesPositionSoCallerCanReuseIt(t *testing.T) {
	pos, err := position.NewFromFen(position.StartFen)
	assert.NoError(t, err)
	fenBefore := pos.Fen()

	p := NewPool(1)
	p.Start(pos, 2)

	// Start returns only once every worker holds its own FEN-derived
	// copy, so the caller's position is untouched by the running search.
	assert.Equal(t, fenBefore, pos.Fen())

	result := p.Wait()
	assert.True(t, result.BestMove.IsValid())
}

func TestPickBestMove_PrefersMainThreadOnNoConsensus(t *testing.T) {
	results := []workerResult{
		{result: search.Result{BestMove: Move(1), BestScore: Value(10), Depth: 5}},
		{result: search.Result{BestMove: Move(2), BestScore: Value(1), Depth: 3}},
		{result: search.Result{BestMove: Move(3), BestScore: Value(1), Depth: 4}},
	}
	best := pickBestMove(results)
	assert.Equal(t, Move(1), best.BestMove)
	assert.Equal(t, Value(10), best.BestScore)
	assert.Equal(t, 5, best.Depth)
}

func TestPickBestMove_MajorityVoteOverridesMain(t *testing.T) {
	results := []workerResult{
		{result: search.Result{BestMove: Move(1), BestScore: Value(10), Depth: 5}},
		{result: search.Result{BestMove: Move(2), BestScore: Value(1), Depth: 3}},
		{result: search.Result{BestMove: Move(2), BestScore: Value(1), Depth: 3}},
		{result: search.Result{BestMove: Move(2), BestScore: Value(1), Depth: 3}},
	}
	best := pickBestMove(results)
	assert.Equal(t, Move(2), best.BestMove)
	// Score/depth are always reported from the main thread's own result.
	assert.Equal(t, Value(10), best.BestScore)
	assert.Equal(t, 5, best.Depth)
}
