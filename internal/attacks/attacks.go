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

// Package attacks precomputes piece-attack bitboards (knight, king, pawn and,
// via magic bitboards, sliding pieces) and the derived ray/line/passed-pawn
// masks the rest of the engine queries at search time.
package attacks

import (
	"fmt"
	"sync"

	. "github.com/suhasj2003/juujfish/internal/types"
)

// Orientation is one of the eight ray directions radiating from a square,
// used to index precomputed ray bitboards.
type Orientation uint8

// Orientation constants.
const (
	N Orientation = iota
	E
	S
	W
	NE
	SE
	SW
	NW
)

var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	filesWestMask  [SqLength]Bitboard
	filesEastMask  [SqLength]Bitboard
	ranksNorthMask [SqLength]Bitboard
	ranksSouthMask [SqLength]Bitboard

	rays         [8][SqLength]Bitboard
	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [ColorLength][SqLength]Bitboard
	squaresBb      [ColorLength]Bitboard

	once sync.Once
)

// Init precomputes all attack tables. Safe to call repeatedly; the actual
// work happens once.
func Init() {
	once.Do(func() {
		neighbourMasksPreCompute()
		pseudoAttacksPreCompute()
		raysPreCompute()
		intermediatePreCompute()
		passedPawnMaskPreCompute()
		squareColorsPreCompute()
		initMagicBitboards()
	})
}

func neighbourMasksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[sq] |= File(j).Bb()
			}
			if j > f {
				filesEastMask[sq] |= File(j).Bb()
			}
			if j > r {
				ranksNorthMask[sq] |= Rank(j).Bb()
			}
			if j < r {
				ranksSouthMask[sq] |= Rank(j).Bb()
			}
		}
	}
}

// pseudoAttacksPreCompute fills in knight/king/pawn attacks (step pieces, via
// single board-edge-respecting steps) and bishop/rook/queen pseudo attacks on
// an empty board (via a direct ray walk, reusing slidingAttack).
func pseudoAttacksPreCompute() {
	kingSteps := []Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}
	knightDeltas := [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingSteps {
			if to := sq.To(d); to != SqNone {
				pseudoAttacks[King][sq].PushSquare(to)
			}
		}
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf <= 7 && nr >= 0 && nr <= 7 {
				pseudoAttacks[Knight][sq].PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		if to := sq.To(Northwest); to != SqNone {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Northeast); to != SqNone {
			pawnAttacks[White][sq].PushSquare(to)
		}
		if to := sq.To(Southwest); to != SqNone {
			pawnAttacks[Black][sq].PushSquare(to)
		}
		if to := sq.To(Southeast); to != SqNone {
			pawnAttacks[Black][sq].PushSquare(to)
		}

		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]
		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBb := to.Bb()
			for o := Orientation(0); o < 8; o++ {
				if rays[o][from]&toBb != BbZero {
					intermediate[from][to] |= rays[o][from] &^ rays[o][to] &^ toBb
				}
			}
		}
	}
}

func passedPawnMaskPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()
		passedPawnMask[White][sq] |= rays[N][sq]
		if f < FileH && r < Rank8 {
			passedPawnMask[White][sq] |= rays[N][sq.To(East)]
		}
		if f > FileA && r < Rank8 {
			passedPawnMask[White][sq] |= rays[N][sq.To(West)]
		}
		passedPawnMask[Black][sq] |= rays[S][sq]
		if f < FileH && r > Rank1 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(East)]
		}
		if f > FileA && r > Rank1 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(West)]
		}
	}
}

func squareColorsPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black].PushSquare(sq)
		} else {
			squaresBb[White].PushSquare(sq)
		}
	}
}

// GetAttacksBb returns the attack bitboard of a piece of type pt (not Pawn)
// standing on sq, given the full board occupancy. Sliding pieces consult the
// magic tables; knight and king ignore occupied (pseudo attacks only).
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].attacks[rookMagics[sq].index(occupied)]
	case King, Knight:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb: unsupported piece type %v", pt))
	}
}

// GetPseudoAttacks returns the attack bitboard of a piece of type pt on an
// otherwise empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Ray returns the ray of squares from sq in the given orientation, stopping
// at the board edge (empty-board pseudo attack, not blocker-aware).
func Ray(o Orientation, sq Square) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between from and to if they lie
// on a common rank, file or diagonal; otherwise BbZero.
func Intermediate(from, to Square) Bitboard {
	return intermediate[from][to]
}

// opposite maps each ray orientation to the one pointing the other way
// along the same axis.
var opposite = [8]Orientation{S, W, N, E, SW, NW, NE, SE}

// Line returns the full rank, file or diagonal through a and b (extended to
// the board edges in both directions, including a and b themselves) if the
// two squares are aligned; otherwise BbZero. Used to test whether a pinned
// piece's destination square keeps it on the pin line.
func Line(a, b Square) Bitboard {
	for o := Orientation(0); o < 8; o++ {
		if rays[o][a].Has(b) {
			return rays[o][a] | rays[opposite[o]][a] | a.Bb()
		}
	}
	return BbZero
}

// PassedPawnMask returns the squares on which an opposing pawn would stop a
// pawn of color c on sq from being passed.
func PassedPawnMask(c Color, sq Square) Bitboard {
	return passedPawnMask[c][sq]
}

// SquaresBb returns all light (White) or dark (Black) squares.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}
