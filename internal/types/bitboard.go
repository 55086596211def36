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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i represents square i.
type Bitboard uint64

// Bitboard constants.
const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = ^Bitboard(0)
)

// File bitboards.
var (
	FileABb = fileBb(FileA)
	FileBBb = fileBb(FileB)
	FileCBb = fileBb(FileC)
	FileDBb = fileBb(FileD)
	FileEBb = fileBb(FileE)
	FileFBb = fileBb(FileF)
	FileGBb = fileBb(FileG)
	FileHBb = fileBb(FileH)
)

// Rank bitboards.
var (
	Rank1Bb = rankBb(Rank1)
	Rank2Bb = rankBb(Rank2)
	Rank3Bb = rankBb(Rank3)
	Rank4Bb = rankBb(Rank4)
	Rank5Bb = rankBb(Rank5)
	Rank6Bb = rankBb(Rank6)
	Rank7Bb = rankBb(Rank7)
	Rank8Bb = rankBb(Rank8)
)

func fileBb(f File) Bitboard {
	var b Bitboard
	for r := Rank1; r <= Rank8; r++ {
		b.PushSquare(SquareOf(f, r))
	}
	return b
}

func rankBb(r Rank) Bitboard {
	var b Bitboard
	for f := FileA; f <= FileH; f++ {
		b.PushSquare(SquareOf(f, r))
	}
	return b
}

var fileBbOf [FileLength]Bitboard
var rankBbOf [RankLength]Bitboard

func init() {
	fileBbOf = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
	rankBbOf = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}
}

// Bb returns the bitboard of all squares on this file.
func (f File) Bb() Bitboard {
	return fileBbOf[f]
}

// Bb returns the bitboard of all squares on this rank.
func (r Rank) Bb() Bitboard {
	return rankBbOf[r]
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets sq in b.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears sq in b.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns and clears the least-significant set square.
func (b *Bitboard) PopLsb() Square {
	lsb := b.Lsb()
	if lsb != SqNone {
		*b &= *b - 1
	}
	return lsb
}

// PopCount returns the number of set squares in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// MoreThanOne reports whether b has two or more set squares, without a
// full popcount.
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != 0
}

// String renders the raw 64-bit pattern.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ascii board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var s strings.Builder
	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				s.WriteString("| X ")
			} else {
				s.WriteString("|   ")
			}
		}
		s.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return s.String()
}

// ShiftBitboard shifts b one step in direction d, masking off wrap-around.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	}
	return b
}

// FileDistance returns the absolute distance in files between two squares.
func FileDistance(a, b Square) int {
	return absInt(int(a.FileOf()) - int(b.FileOf()))
}

// RankDistance returns the absolute distance in ranks between two squares.
func RankDistance(a, b Square) int {
	return absInt(int(a.RankOf()) - int(b.RankOf()))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var squareDistance [SqLength][SqLength]int

func init() {
	for a := SqA1; a <= SqH8; a++ {
		for b := SqA1; b <= SqH8; b++ {
			fd := FileDistance(a, b)
			rd := RankDistance(a, b)
			if fd > rd {
				squareDistance[a][b] = fd
			} else {
				squareDistance[a][b] = rd
			}
		}
	}
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	return squareDistance[a][b]
}

// NeighbourFilesMask returns the bitboard of the files immediately west and
// east of the square's file (used for isolated-pawn and en-passant checks).
func (sq Square) NeighbourFilesMask() Bitboard {
	var b Bitboard
	f := sq.FileOf()
	if f > FileA {
		b |= (f - 1).Bb()
	}
	if f < FileH {
		b |= (f + 1).Bb()
	}
	return b
}

// AdjacentFilesMask returns the bitboard of the square's own file plus its
// immediate neighbours (used for passed-pawn checks).
func (sq Square) AdjacentFilesMask() Bitboard {
	return sq.FileOf().Bb() | sq.NeighbourFilesMask()
}
