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

package eval

import (
	"math"
	"unsafe"

	"github.com/suhasj2003/juujfish/internal/logx"
	"github.com/suhasj2003/juujfish/internal/position"
	"github.com/suhasj2003/juujfish/internal/zobrist"

	. "github.com/suhasj2003/juujfish/internal/types"
)

const (
	// pawnCacheMaxSizeInMB caps resize requests to a sane upper bound.
	pawnCacheMaxSizeInMB = 1_024
	pawnCacheEntrySize   = 16
	mb                   = 1024 * 1024
)

type pawnCacheEntry struct {
	key   zobrist.Key
	score Score
}

// pawnCache is a direct-mapped, power-of-2-sized cache from pawn
// structure Zobrist key to its computed Score. Pawn structure changes
// far less often than the rest of the position, so caching it saves
// most of pawnScore's work on a cache hit.
type pawnCache struct {
	data        []pawnCacheEntry
	mask        uint64
	entries     uint64
	hits        uint64
	misses      uint64
	replacements uint64
}

func newPawnCache(sizeInMB int) *pawnCache {
	if sizeInMB > pawnCacheMaxSizeInMB {
		sizeInMB = pawnCacheMaxSizeInMB
	}
	numEntries := uint64(0)
	if sizeInMB > 0 {
		numEntries = uint64(1) << uint(math.Floor(math.Log2(float64(sizeInMB*mb)/pawnCacheEntrySize)))
	}
	pc := &pawnCache{
		data: make([]pawnCacheEntry, numEntries),
		mask: numEntries - 1,
	}
	logx.Get().Infof("pawn cache sized to %d entries (%d bytes each)", numEntries, unsafe.Sizeof(pawnCacheEntry{}))
	return pc
}

func (pc *pawnCache) get(key zobrist.Key) (Score, bool) {
	e := &pc.data[uint64(key)&pc.mask]
	if e.key == key {
		pc.hits++
		return e.score, true
	}
	pc.misses++
	return Score{}, false
}

func (pc *pawnCache) put(key zobrist.Key, score Score) {
	e := &pc.data[uint64(key)&pc.mask]
	if e.key != 0 && e.key != key {
		pc.replacements++
	} else if e.key == 0 {
		pc.entries++
	}
	e.key = key
	e.score = score
}

// pawnScore returns c's pawn structure score: passed-pawn bonuses scaled
// toward the endgame, and penalties for doubled and isolated pawns. When
// cache is non-nil the result is looked up and stored by pawn Zobrist key
// so repeated positions with identical pawn structure (a common case,
// since pawn moves are comparatively rare) skip recomputation.
func pawnScore(cache *pawnCache, pos *position.Position, c Color) Score {
	var key zobrist.Key
	if cache != nil {
		key = pos.PawnKey()
		if c == Black {
			key ^= zobrist.NextPlayer
		}
		if s, ok := cache.get(key); ok {
			return s
		}
	}

	pawns := pos.PiecesBb(c, Pawn)
	enemyPawns := pos.PiecesBb(c.Flip(), Pawn)

	var s Score
	bb := pawns
	for bb != BbZero {
		sq := bb.PopLsb()
		rank := sq.RankOf()

		fileBb := sq.FileOf().Bb()
		neighborFiles := sq.NeighbourFilesMask()

		if (pawns & fileBb).PopCount() > 1 {
			s.MidGame += doubledPawnPenalty
			s.EndGame += doubledPawnPenalty
		}

		if pawns&neighborFiles == BbZero {
			s.MidGame += isolatedPawnPenalty
			s.EndGame += isolatedPawnPenalty
		}

		if isPassedPawn(c, sq, enemyPawns) {
			bonus := passedPawnBonus[relativeRank(c, rank)]
			s.MidGame += bonus
			s.EndGame += bonus * 2
		}
	}

	if cache != nil {
		cache.put(key, s)
	}
	return s
}

const (
	doubledPawnPenalty  = -10
	isolatedPawnPenalty = -8
)

// passedPawnBonus is indexed by rank relative to the pawn's own side, Rank2
// through Rank7; Rank1/Rank8 never hold a pawn that hasn't already promoted.
var passedPawnBonus = [RankLength]int32{0, 5, 10, 20, 35, 60, 100, 0}

func relativeRank(c Color, r Rank) Rank {
	if c == White {
		return r
	}
	return Rank8 - r
}

// isPassedPawn reports whether no enemy pawn occupies sq's file or either
// adjacent file on a rank ahead of sq, from c's perspective.
func isPassedPawn(c Color, sq Square, enemyPawns Bitboard) bool {
	span := sq.AdjacentFilesMask()
	var ahead Bitboard
	if c == White {
		for r := int(sq.RankOf()) + 1; r <= int(Rank8); r++ {
			ahead |= Rank(r).Bb()
		}
	} else {
		for r := int(sq.RankOf()) - 1; r >= int(Rank1); r-- {
			ahead |= Rank(r).Bb()
		}
	}
	return enemyPawns&span&ahead == BbZero
}
