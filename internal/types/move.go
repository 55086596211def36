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

import (
	"fmt"

	"github.com/suhasj2003/juujfish/internal/assert"
)

// MoveType is the kind of move encoded in a Move.
type MoveType uint32

// MoveType constants.
const (
	Normal MoveType = iota
	EnPassant
	Promotion
	Castling
)

// Move is a 32-bit packed move: bits 0-5 destination square, bits 6-11
// origin square, bits 12-13 promotion piece code (0=knight..3=queen), bits
// 14-15 move kind, bits 16-31 a transient sort/value field used only while
// the move sits in a move-ordering context. MoveOf masks the value field
// off; the wire/TT encoding of a move is always the low 16 bits.
//
//  bit:    31...........16 15 14 13 12 11...6 5....0
//  field:  value (offset)  move-type  promo   from   to
type Move uint32

// MoveNone is the null move: the all-zero encoding.
const MoveNone Move = 0

const (
	toMask       Move = 0x3f
	fromShift         = 6
	fromMask     Move = 0x3f << fromShift
	promTypeShift     = 12
	promTypeMask Move = 0x3 << promTypeShift
	typeShift         = 14
	moveTypeMask Move = 0x3 << typeShift
	moveMask     Move = 0xffff
	valueShift        = 16
	valueMask    Move = 0xffff << valueShift
)

// promoTypes maps the 2-bit promotion code to a PieceType (knight..queen).
var promoTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// promoCode is the inverse of promoTypes.
func promoCode(pt PieceType) Move {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0 // Knight
	}
}

// CreateMove builds a Move with no embedded sort value.
func CreateMove(mt MoveType, from, to Square, promo PieceType) Move {
	return Move(to) | Move(from)<<fromShift | promoCode(promo)<<promTypeShift | Move(mt)<<typeShift
}

// CreateMoveValue builds a Move with an embedded sort value, offset so that
// the stored field is never negative (the value is biased by ValueNA before
// packing and un-biased on read, the standard trick for fitting a signed
// range into an unsigned bitfield).
func CreateMoveValue(mt MoveType, from, to Square, promo PieceType, value int) Move {
	m := CreateMove(mt, from, to, promo)
	return m.SetValue(value)
}

// MoveType returns the move kind.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the promotion piece type (only meaningful when
// MoveType() == Promotion).
func (m Move) PromotionType() PieceType {
	return promoTypes[(m&promTypeMask)>>promTypeShift]
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// MoveOf masks off the embedded sort value, returning the bare 16-bit wire
// encoding of the move.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the embedded sort value (-ValueNA if never set).
func (m Move) ValueOf() int {
	return int((m&valueMask)>>valueShift) - int(ValueNA)
}

// SetValue returns a copy of m with the embedded sort value set. A no-op on
// the null move.
func (m Move) SetValue(v int) Move {
	if m == MoveNone {
		return m
	}
	if assert.DEBUG {
		assert.Assert(v >= int(-ValueNA) && v <= int(ValueNA), "move sort value out of range: %d", v)
	}
	offset := Move(v + int(ValueNA))
	return m.MoveOf() | (offset << valueShift)
}

// IsValid reports whether m is not the null move and encodes two distinct
// squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// StringUci renders the move in long-algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings_ToLowerChar(m.PromotionType().Char())
	}
	return s
}

func strings_ToLowerChar(s string) string {
	if len(s) != 1 {
		return s
	}
	c := s[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return string(c)
}

// String renders the move for debugging, including its move type and
// embedded sort value.
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	return fmt.Sprintf("%s (%v)", m.StringUci(), m.MoveType())
}

// String renders the move kind name.
func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "normal"
	case EnPassant:
		return "enpassant"
	case Promotion:
		return "promotion"
	case Castling:
		return "castling"
	default:
		return "unknown"
	}
}
