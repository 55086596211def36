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

// Package zobrist holds the pre-computed random keys used to maintain a
// position's incremental Zobrist hash, plus the structural sub-hashes
// (pawn, minor, major) used by the pawn-structure cache and the
// transposition table's secondary key.
package zobrist

import (
	. "github.com/suhasj2003/juujfish/internal/types"
)

// Key is a 64-bit Zobrist hash value.
type Key uint64

var (
	Pieces         [PieceLength][SqLength]Key
	CastlingRights [int(CastlingAny) + 1]Key
	EnPassantFile  [FileLength]Key
	NextPlayer     Key
)

// isMinor/isMajor classify piece types for the structural sub-hashes: minors
// are knights and bishops, majors are rooks and queens.
func isMinor(pt PieceType) bool { return pt == Knight || pt == Bishop }
func isMajor(pt PieceType) bool { return pt == Rook || pt == Queen }

func init() {
	r := newRandom(1070372)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			Pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		CastlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		EnPassantFile[f] = Key(r.rand64())
	}
	NextPlayer = Key(r.rand64())
}

// PieceKey returns the XOR term for placing/removing piece p on sq.
func PieceKey(p Piece, sq Square) Key {
	return Pieces[p][sq]
}

// PawnKey returns the XOR term contributing to the pawn-structure sub-hash
// for placing/removing piece p on sq, or zero if p is not a pawn.
func PawnKey(p Piece, sq Square) Key {
	if p.TypeOf() != Pawn {
		return 0
	}
	return Pieces[p][sq]
}

// MinorKey returns the XOR term contributing to the minor-piece sub-hash.
func MinorKey(p Piece, sq Square) Key {
	if !isMinor(p.TypeOf()) {
		return 0
	}
	return Pieces[p][sq]
}

// MajorKey returns the XOR term contributing to the major-piece sub-hash.
func MajorKey(p Piece, sq Square) Key {
	if !isMajor(p.TypeOf()) {
		return 0
	}
	return Pieces[p][sq]
}

// random is the xorshift64star generator (public-domain design by
// Sebastiano Vigna), the same PRNG Stockfish uses to seed its Zobrist
// tables.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	return random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
