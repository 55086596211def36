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

package position

import (
	"github.com/suhasj2003/juujfish/internal/zobrist"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// State is the per-ply snapshot of everything that is not trivially
// recoverable from the board array and piece bitboards. The stack of
// States is owned by the Position itself (a growable slice indexed by
// ply, not a pointer-linked list) so every MakeMove/UnmakeMove pair
// restores the exact prior state without reconstruction and without the
// allocation churn of one node per ply.
type State struct {
	Zobrist  zobrist.Key
	PawnKey  zobrist.Key
	MinorKey zobrist.Key
	MajorKey zobrist.Key

	CastlingRights  CastlingRights
	EnPassantSquare Square
	HalfMoveClock   int
	PliesFromStart  int

	SideToMove    Color
	Move          Move
	CapturedPiece Piece

	Checkers     Bitboard
	CheckSquares [PtLength]Bitboard
	Blockers     [ColorLength]Bitboard
	Pinners      [ColorLength]Bitboard
}

// InCheck reports whether the side to move in this state is in check.
func (s *State) InCheck() bool {
	return s.Checkers != BbZero
}
