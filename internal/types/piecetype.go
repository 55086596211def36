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

// PieceType is one of the six piece kinds, plus a sentinel NONE.
//  test for non sliding pt & 0b0100 == 0 (must also be non zero)
//  test for sliding pt & 0b0100 != 0 (must also be < 7)
type PieceType uint8

// PieceType constants.
const (
	PtNone PieceType = 0b0000
	King   PieceType = 0b0001
	Pawn   PieceType = 0b0010
	Knight PieceType = 0b0011
	Bishop PieceType = 0b0100
	Rook   PieceType = 0b0101
	Queen  PieceType = 0b0110
	PtLength PieceType = 0b0111
)

// IsValid reports whether pt is a real piece type.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns the weight this piece type contributes to the
// opening/middlegame/endgame phase estimate.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"none", "king", "pawn", "knight", "bishop", "rook", "queen"}

// String renders the piece type name.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = "-KPNBRQ"

// Char renders a single upper-case FEN-style letter for the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
