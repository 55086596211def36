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

// Package search implements the engine's iterative-deepening, principal
// variation search: a single-threaded worker that walks a position with
// PVS, aspiration windows, a capture-only quiescence extension, and mate-
// distance pruning, consulting a shared transposition table and its own
// private move-ordering heuristics. internal/engine fans out many Workers
// over one TT for Lazy-SMP.
package search

import (
	"sort"
	"sync/atomic"

	"github.com/suhasj2003/juujfish/internal/eval"
	"github.com/suhasj2003/juujfish/internal/heuristics"
	"github.com/suhasj2003/juujfish/internal/logx"
	"github.com/suhasj2003/juujfish/internal/movegen"
	"github.com/suhasj2003/juujfish/internal/position"
	"github.com/suhasj2003/juujfish/internal/tt"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// rootMove is one candidate move at the root, carrying the running score
// and mean-square statistic the aspiration-window delta is derived from.
type rootMove struct {
	move   Move
	score  Value
	meanSq float64
}

// Result is a completed (or interrupted) search's outcome.
type Result struct {
	BestMove  Move
	BestScore Value
	Depth     int
	Nodes     uint64
}

// Worker runs iterative deepening over a position against a shared
// transposition table. It owns its own heuristic tables and evaluator, so
// multiple Workers can search the same TT concurrently (see
// internal/engine); a Worker itself is not safe for concurrent use.
type Worker struct {
	pos       *position.Position
	tt        *tt.Table
	tables    *heuristics.Tables
	evaluator *eval.Evaluator
	stop      *atomic.Bool

	nodes uint64
	pv    [MaxPly + 1][]Move

	root   []rootMove
	bestPV []Move
}

// NewWorker creates a Worker searching pos against table. stop is a
// shared flag the caller (or another worker) can set to interrupt the
// search at its next check point; pass a fresh *atomic.Bool per search
// if workers should not be able to stop each other early.
func NewWorker(pos *position.Position, table *tt.Table, stop *atomic.Bool) *Worker {
	return &Worker{
		pos:       pos,
		tt:        table,
		tables:    heuristics.NewTables(),
		evaluator: eval.NewEvaluator(),
		stop:      stop,
	}
}

// Nodes returns the number of nodes visited since the worker was created.
func (w *Worker) Nodes() uint64 {
	return w.nodes
}

// PV returns the principal variation from the most recently completed
// iteration, root move first.
func (w *Worker) PV() []Move {
	return w.bestPV
}

func (w *Worker) stopped() bool {
	return w.stop.Load()
}

func (w *Worker) setPV(ply int, m Move) {
	line := make([]Move, 0, len(w.pv[ply+1])+1)
	line = append(line, m)
	line = append(line, w.pv[ply+1]...)
	w.pv[ply] = line
}

// Search runs iterative deepening up to maxDepth plies (or until stop is
// set) and returns the best move found. The caller is responsible for
// calling the shared Table's NewSearch once per new search before
// invoking Search on any worker sharing that table — Search itself does
// not call it, since a Lazy-SMP pool must bump the generation counter
// exactly once per search regardless of how many workers share the
// table, not once per worker.
func (w *Worker) Search(maxDepth int) Result {
	w.tables.ClearKillers()

	legal := movegen.Generate(w.pos, movegen.Legal)
	if len(legal) == 0 {
		if w.pos.InCheck() {
			return Result{BestScore: MatedIn(0)}
		}
		return Result{BestScore: ValueDraw}
	}

	w.root = make([]rootMove, len(legal))
	for i, gm := range legal {
		w.root[i] = rootMove{move: gm.Move, score: -ValueInfinite}
	}

	var lastCompletedDepth int
	var lastResult Result

	for depth := 1; depth <= maxDepth && !w.stopped(); depth++ {
		completed := w.searchRootDepth(depth)
		if !completed {
			break
		}
		lastCompletedDepth = depth
		lastResult = Result{
			BestMove:  w.root[0].move,
			BestScore: w.root[0].score,
			Depth:     depth,
			Nodes:     w.nodes,
		}
		logx.Get().Debugf("depth %d complete: best=%s score=%d nodes=%d",
			depth, w.root[0].move.StringUci(), w.root[0].score, w.nodes)
	}

	if lastCompletedDepth == 0 {
		// Stopped before depth 1 finished: report the unsearched root's
		// first legal move so callers always get a playable result.
		return Result{BestMove: w.root[0].move, BestScore: ValueDraw, Nodes: w.nodes}
	}
	return lastResult
}

// searchRootDepth runs one iterative-deepening iteration at depth,
// widening the aspiration window around the previous iteration's best
// score each time the search fails high or low. Returns false if the
// search was stopped mid-iteration (the caller should discard any
// partial result and keep the previous completed depth's PV).
func (w *Worker) searchRootDepth(depth int) bool {
	if depth <= 3 || w.root[0].meanSq == 0 {
		return w.searchRootWindow(depth, -ValueInfinite, ValueInfinite)
	}

	delta := Value(5 + int(w.root[0].meanSq)/10_000)
	alpha := w.root[0].score - delta
	beta := w.root[0].score + delta

	for {
		ok := w.searchRootWindow(depth, alpha, beta)
		if !ok {
			return false
		}
		score := w.root[0].score
		switch {
		case score <= alpha:
			alpha = alpha - delta
			if alpha < -ValueInfinite {
				alpha = -ValueInfinite
			}
		case score >= beta:
			beta = beta + delta
			if beta > ValueInfinite {
				beta = ValueInfinite
			}
		default:
			return true
		}
		delta += delta / 3
	}
}

// searchRootWindow performs one root move loop at depth within [alpha,
// beta], mirroring search<Root>. It returns false if stopped before
// every root move had at least a shallow look (depth 1 always completes
// so callers always have a usable PV).
func (w *Worker) searchRootWindow(depth int, alpha, beta Value) bool {
	for i := range w.root {
		m := w.root[i].move

		w.pos.MakeMove(m)
		w.nodes++

		var score Value
		if i == 0 {
			score = -w.search(pvNode, -beta, -alpha, depth-1, 1, m)
		} else {
			score = -w.search(nonPVNode, -alpha-1, -alpha, depth-1, 1, m)
			if score > alpha && score < beta {
				score = -w.search(pvNode, -beta, -alpha, depth-1, 1, m)
			}
		}

		w.pos.UnmakeMove()

		if w.stopped() && depth > 1 {
			return false
		}

		w.root[i].score = score
		w.root[i].meanSq = (w.root[i].meanSq*float64(depth-1) + float64(score)*float64(score)) / float64(depth)

		if score > alpha {
			alpha = score
		}
	}

	sort.SliceStable(w.root, func(i, j int) bool {
		return w.root[i].score > w.root[j].score
	})
	w.bestPV = append([]Move{w.root[0].move}, w.pv[1]...)
	return true
}
