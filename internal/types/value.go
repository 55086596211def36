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

package types

// Value is a centipawn-scale evaluation or search score.
type Value int16

// Value constants.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueMate      Value = 32000
	ValueInfinite  Value = 32001
	ValueNA        Value = 32002
	ValueMaxMate   Value = ValueMate - 1
)

// MateIn returns the score for delivering mate at the given ply.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the score for being mated at the given ply.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// IsMateScore reports whether v represents a forced mate in either direction.
func (v Value) IsMateScore() bool {
	return v >= ValueMate-Value(MaxPly) || v <= -ValueMate+Value(MaxPly)
}

// MaxPly is the hard upper bound on search ply used for array sizing and
// mate-distance pruning.
const MaxPly = 128

// MaxMoves bounds the number of pseudo-legal moves generated for any
// position; 256 comfortably exceeds any reachable legal chess position.
const MaxMoves = 256
