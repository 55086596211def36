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

// Package heuristics holds the move-ordering tables a search worker updates
// as it searches and the move orderer queries to rank quiet moves: killer
// moves per ply, a butterfly history table, and a counter-move table.
package heuristics

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/suhasj2003/juujfish/internal/types"
)

var out = message.NewPrinter(language.English)

// Killer-move and history-score bounds. Killer bonuses rank above any
// history score so a verified killer always sorts ahead of a merely
// frequently-good quiet move.
const (
	KillerBonus1 = 90_000
	KillerBonus2 = 80_000
	HistoryMax   = 8_192
	ButterflyMax = 1_024
)

// Tables is the set of heuristic tables a single search worker owns. It is
// not safe for concurrent use across workers; Lazy-SMP gives each worker
// its own instance (see internal/engine).
type Tables struct {
	killers  [MaxPly][2]Move
	history  [ColorLength][SqLength][SqLength]int32
	counters [SqLength][SqLength]Move
}

// NewTables creates an empty heuristic table set.
func NewTables() *Tables {
	return &Tables{}
}

// Killers returns the two killer moves stored for ply.
func (t *Tables) Killers(ply int) [2]Move {
	return t.killers[ply]
}

// IsKiller reports whether m is one of the killer moves stored for ply.
func (t *Tables) IsKiller(ply int, m Move) bool {
	k := t.killers[ply]
	return k[0] == m || k[1] == m
}

// StoreKiller records m as a killer move at ply, shifting the previous
// first killer into the second slot. Only quiet moves should be passed;
// the caller (the search worker) is responsible for that check since
// Tables has no position to consult.
func (t *Tables) StoreKiller(ply int, m Move) {
	if t.killers[ply][0] == m {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// ClearKillers clears the killer slots of every ply, used when the
// iterative-deepening driver starts a new root search.
func (t *Tables) ClearKillers() {
	for i := range t.killers {
		t.killers[i] = [2]Move{MoveNone, MoveNone}
	}
}

// History returns the butterfly history score for a quiet move by side c.
func (t *Tables) History(c Color, from, to Square) int32 {
	return t.history[c][from][to]
}

// UpdateHistory rewards a quiet move that caused a beta cutoff at the
// given depth, scaled exponentially with depth (2^depth, Stockfish-style),
// clamped to HistoryMax so a deep, repeatedly-successful move cannot
// overflow the table or dominate move ordering indefinitely.
func (t *Tables) UpdateHistory(c Color, from, to Square, depth int) {
	bonus := int32(1) << uint(min(depth, 20))
	v := t.history[c][from][to] + bonus
	if v > HistoryMax {
		v = HistoryMax
	}
	t.history[c][from][to] = v
}

// PenalizeHistory decays a quiet move that was searched but did not cause
// a cutoff, the counterpart to UpdateHistory that keeps the table from
// saturating toward moves that only occasionally cut off.
func (t *Tables) PenalizeHistory(c Color, from, to Square, depth int) {
	bonus := int32(1) << uint(min(depth, 20))
	v := t.history[c][from][to] - bonus
	if v < -HistoryMax {
		v = -HistoryMax
	}
	t.history[c][from][to] = v
}

// CounterMove returns the recorded reply to the opponent's last move.
func (t *Tables) CounterMove(lastMove Move) Move {
	if lastMove == MoveNone {
		return MoveNone
	}
	return t.counters[lastMove.From()][lastMove.To()]
}

// StoreCounterMove records m as the reply that cut off against lastMove.
func (t *Tables) StoreCounterMove(lastMove, m Move) {
	if lastMove == MoveNone {
		return
	}
	t.counters[lastMove.From()][lastMove.To()] = m
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (t *Tables) String() string {
	var sb strings.Builder
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			wc := t.history[White][sf][st]
			bc := t.history[Black][sf][st]
			if wc == 0 && bc == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: w=%-6d b=%-6d cm=%s\n",
				sf.String(), st.String(), wc, bc, t.counters[sf][st].StringUci()))
		}
	}
	return sb.String()
}
