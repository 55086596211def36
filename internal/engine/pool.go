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

// Package engine implements the Lazy-SMP thread pool: a set of
// search.Worker goroutines that independently search the same position
// against one shared transposition table, so that deeper/shallower
// iterations and move-ordering noise across workers cross-pollinate
// through TT hits rather than through any direct communication.
package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/suhasj2003/juujfish/internal/config"
	"github.com/suhasj2003/juujfish/internal/logx"
	"github.com/suhasj2003/juujfish/internal/position"
	"github.com/suhasj2003/juujfish/internal/search"
	"github.com/suhasj2003/juujfish/internal/tt"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// workerResult pairs a finished worker's outcome with the depth it
// reached; pickBestMove counts each result's best move as one vote.
type workerResult struct {
	result search.Result
	depth  int
}

// Pool is a Lazy-SMP thread pool: N workers sharing one transposition
// table. Thread 0 is the main thread; its PV, score and depth are the ones
// reported, and its move is reported unless another move is the best move
// of strictly more workers, the main thread counted. Pool is not safe to Start
// again until the previous search has Stopped or finished on its own.
type Pool struct {
	table   *tt.Table
	threads int

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	stop *atomic.Bool

	last   search.Result
	lastPV []Move
}

// NewPool creates a Pool with a table of tableSizeMB megabytes and
// config.Settings.Engine.Threads workers (at least 1).
func NewPool(tableSizeMB int) *Pool {
	threads := config.Settings.Engine.Threads
	if threads < 1 {
		threads = 1
	}
	return &Pool{
		table:         tt.New(tableSizeMB),
		threads:       threads,
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// Table returns the pool's shared transposition table, for callers
// that want to report hashfull or resize/clear it between searches.
func (p *Pool) Table() *tt.Table {
	return p.table
}

// IsSearching reports whether a search is currently running.
func (p *Pool) IsSearching() bool {
	if !p.isRunning.TryAcquire(1) {
		return true
	}
	p.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (p *Pool) WaitWhileSearching() {
	_ = p.isRunning.Acquire(context.TODO(), 1)
	p.isRunning.Release(1)
}

// Start launches a Lazy-SMP search of pos up to maxDepth across every
// configured thread and returns once every worker has a private copy of
// the root position, so the caller can safely mutate pos afterwards.
// Call Stop or Wait to retrieve the result.
func (p *Pool) Start(pos *position.Position, maxDepth int) {
	_ = p.initSemaphore.Acquire(context.TODO(), 1)
	go p.run(pos, maxDepth)
	_ = p.initSemaphore.Acquire(context.TODO(), 1)
	p.initSemaphore.Release(1)
}

// run is launched by Start in its own goroutine. It copies the root
// position into each worker, bumps the shared TT's generation exactly
// once for the whole pool (never once per worker), then runs the main
// thread's own iterative deepening while the other workers run theirs
// in the background, joining them all before reporting a result.
func (p *Pool) run(pos *position.Position, maxDepth int) {
	if !p.isRunning.TryAcquire(1) {
		logx.Get().Error("engine: search already running")
		p.initSemaphore.Release(1)
		return
	}
	defer p.isRunning.Release(1)

	var stop atomic.Bool
	p.stop = &stop

	p.table.NewSearch()

	fen := pos.Fen()
	workers := make([]*search.Worker, p.threads)
	for i := 0; i < p.threads; i++ {
		wpos, err := position.NewFromFen(fen)
		if err != nil {
			logx.Get().Errorf("engine: failed to copy root position for worker %d: %v", i, err)
			p.initSemaphore.Release(1)
			return
		}
		workers[i] = search.NewWorker(wpos, p.table, &stop)
	}

	// All workers hold a private position now; Start's caller may
	// safely resume mutating the position it passed in.
	p.initSemaphore.Release(1)

	results := make([]workerResult, p.threads)
	var wg sync.WaitGroup
	for i := 1; i < p.threads; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := workers[i].Search(maxDepth)
			results[i] = workerResult{result: r, depth: r.Depth}
		}()
	}

	mainResult := workers[0].Search(maxDepth)
	results[0] = workerResult{result: mainResult, depth: mainResult.Depth}

	// The main thread's own termination is the pool's termination rule;
	// signal every other worker to unwind at its next check point.
	stop.Store(true)
	wg.Wait()

	p.last = pickBestMove(results)
	p.lastPV = workers[0].PV()
	logx.Get().Infof("engine: best=%s score=%d depth=%d nodes=%d",
		p.last.BestMove.StringUci(), p.last.BestScore, p.last.Depth, totalNodes(workers))
}

// pickBestMove picks the Lazy-SMP pool's reported move by a vote in which
// every worker with a valid move, the main thread included, counts once:
// the main thread's move is reported unless another move has strictly
// more votes, so a tie keeps the main thread's move. Depth and score always come from the main thread's own result,
// since only its own aspiration-window history makes them trustworthy.
func pickBestMove(results []workerResult) search.Result {
	main := results[0].result
	votes := make(map[Move]int, len(results))
	for _, r := range results {
		if r.result.BestMove.IsValid() {
			votes[r.result.BestMove]++
		}
	}

	best := main.BestMove
	bestVotes := votes[main.BestMove]
	for move, count := range votes {
		if count > bestVotes {
			best = move
			bestVotes = count
		}
	}

	return search.Result{
		BestMove:  best,
		BestScore: main.BestScore,
		Depth:     main.Depth,
		Nodes:     totalNodesFromResults(results),
	}
}

func totalNodesFromResults(results []workerResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.result.Nodes
	}
	return total
}

func totalNodes(workers []*search.Worker) uint64 {
	var total uint64
	for _, w := range workers {
		if w != nil {
			total += w.Nodes()
		}
	}
	return total
}

// Stop requests cooperative cancellation of any running search and
// blocks until it has unwound.
func (p *Pool) Stop() {
	if p.stop != nil {
		p.stop.Store(true)
	}
	p.WaitWhileSearching()
}

// Wait blocks until the current search finishes on its own and returns
// its result. Equivalent to Stop without requesting early cancellation.
func (p *Pool) Wait() search.Result {
	p.WaitWhileSearching()
	return p.last
}

// PV returns the main thread's principal variation from the most
// recently finished search, root move first.
func (p *Pool) PV() []Move {
	return p.lastPV
}
