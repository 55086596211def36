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

package movegen

import (
	"sort"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// GradedMove pairs a Move with a 32-bit ordering score. The score range
// needs to comfortably hold MVV-LVA deltas plus killer/history/counter-move
// bonuses, which exceed the range of the Move type's own embedded 16-bit
// value field (see internal/types/move.go) — hence a separate wrapper
// rather than reusing Move.SetValue here.
type GradedMove struct {
	Move  Move
	Score int32
}

// GradedMoveList is a contiguous, capacity-bounded list of GradedMove,
// bounded the same way Move generation caps a position's legal-move count.
type GradedMoveList []GradedMove

// NewGradedMoveList creates an empty list with capacity MaxMoves.
func NewGradedMoveList() GradedMoveList {
	return make(GradedMoveList, 0, MaxMoves)
}

// SortDescending orders the list by score, highest first.
func (l GradedMoveList) SortDescending() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Score > l[j].Score
	})
}
