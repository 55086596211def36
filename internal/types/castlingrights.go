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

import "strings"

// CastlingRights is a 4-bit set of the remaining castling rights.
type CastlingRights uint8

// CastlingRights bit constants.
const (
	CastlingNone CastlingRights = 0
	WhiteOO      CastlingRights = 1 << 0
	WhiteOOO     CastlingRights = 1 << 1
	BlackOO      CastlingRights = 1 << 2
	BlackOOO     CastlingRights = 1 << 3
	CastlingAny  CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Has reports whether all bits of other are set in cr.
func (cr CastlingRights) Has(other CastlingRights) bool {
	return cr&other == other
}

// Remove clears the given bits from cr, returning the new value.
func (cr CastlingRights) Remove(other CastlingRights) CastlingRights {
	return cr &^ other
}

// String renders the castling rights in FEN form, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(WhiteOO) {
		b.WriteByte('K')
	}
	if cr.Has(WhiteOOO) {
		b.WriteByte('Q')
	}
	if cr.Has(BlackOO) {
		b.WriteByte('k')
	}
	if cr.Has(BlackOOO) {
		b.WriteByte('q')
	}
	return b.String()
}

// CastlingRightsFromString parses a FEN castling field such as "KQkq" or "-".
func CastlingRightsFromString(s string) CastlingRights {
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr |= WhiteOO
		case 'Q':
			cr |= WhiteOOO
		case 'k':
			cr |= BlackOO
		case 'q':
			cr |= BlackOOO
		}
	}
	return cr
}

// castlingRightsForSquare clears the castling right(s) associated with a
// king or rook leaving (or a rook being captured on) the given square.
var castlingRightsForSquare [SqLength]CastlingRights

func init() {
	castlingRightsForSquare[SqE1] = WhiteOO | WhiteOOO
	castlingRightsForSquare[SqA1] = WhiteOOO
	castlingRightsForSquare[SqH1] = WhiteOO
	castlingRightsForSquare[SqE8] = BlackOO | BlackOOO
	castlingRightsForSquare[SqA8] = BlackOOO
	castlingRightsForSquare[SqH8] = BlackOO
}

// CastlingRightsLost returns the castling rights that are retracted when a
// piece moves from or a capture lands on the given square.
func CastlingRightsLost(sq Square) CastlingRights {
	return castlingRightsForSquare[sq]
}
