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

package tt

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/suhasj2003/juujfish/internal/zobrist"

	. "github.com/suhasj2003/juujfish/internal/types"
)

func TestEntrySize(t *testing.T) {
	assert.EqualValues(t, 16, unsafe.Sizeof(entry{}))
}

func TestNew_SizesToPowerOfTwoBuckets(t *testing.T) {
	// 1 MB / (8 entries * 16 bytes per bucket) = 8192 buckets exactly.
	table := New(1)
	assert.Equal(t, uint64(8192), uint64(len(table.buckets)))

	// 2 MB doubles it.
	table = New(2)
	assert.Equal(t, uint64(16384), uint64(len(table.buckets)))
}

func TestProbe_MissOnEmptyTable(t *testing.T) {
	table := New(1)
	hit, _, writer := table.Probe(zobrist.Key(12345), zobrist.Key(1))
	assert.False(t, hit)
	assert.NotNil(t, writer.e)
}

func TestProbe_RoundTripsAWrite(t *testing.T) {
	table := New(1)
	key := zobrist.Key(0xDEADBEEF)
	secondary := zobrist.Key(0xCAFE)

	hit, _, writer := table.Probe(key, secondary)
	assert.False(t, hit)
	writer.Write(5, BoundExact, Value(123), Value(100), MoveNone)

	hit, data, _ := table.Probe(key, secondary)
	assert.True(t, hit)
	assert.Equal(t, Value(123), data.Score)
	assert.Equal(t, Value(100), data.Eval)
	assert.Equal(t, 5, data.Depth)
	assert.Equal(t, BoundExact, data.Bound)
}

func TestProbe_DifferentSecondaryIsAMiss(t *testing.T) {
	table := New(1)
	key := zobrist.Key(0xDEADBEEF)

	_, _, writer := table.Probe(key, zobrist.Key(1))
	writer.Write(3, BoundLower, Value(50), Value(50), MoveNone)

	hit, _, _ := table.Probe(key, zobrist.Key(2))
	assert.False(t, hit)
}

func TestHashfull_TracksStoredEntries(t *testing.T) {
	table := New(1)
	assert.Equal(t, 0, table.Hashfull())

	// A single write is too small a fraction of 65536 slots to move the
	// per-mille counter off zero; write enough scattered entries to observe
	// a change.
	for i := uint64(0); i < 200; i++ {
		_, _, writer := table.Probe(zobrist.Key(i<<16), zobrist.Key(0))
		writer.Write(1, BoundExact, ValueDraw, ValueDraw, MoveNone)
	}

	assert.Greater(t, table.Hashfull(), 0)
}

func TestNewSearch_AgesExistingEntries(t *testing.T) {
	table := New(1)
	key := zobrist.Key(1)

	_, _, writer := table.Probe(key, zobrist.Key(0))
	writer.Write(10, BoundExact, ValueDraw, ValueDraw, MoveNone)

	table.NewSearch()

	hit, data, _ := table.Probe(key, zobrist.Key(0))
	assert.True(t, hit)
	assert.Equal(t, 10, data.Depth)
}

func TestReplacementVictim_PrefersShallowerEntry(t *testing.T) {
	table := New(1)

	// All these keys share a bucket index: only the bits above the 16-bit
	// shift affect the index, and they're all zero here, while the low
	// bits (which don't affect the index) give each one a distinct tag.
	deepKeys := make([]zobrist.Key, entriesPerBucket-1)
	for i := range deepKeys {
		deepKeys[i] = zobrist.Key(100 + uint64(i))
		_, _, w := table.Probe(deepKeys[i], zobrist.Key(0))
		w.Write(10, BoundExact, ValueDraw, ValueDraw, MoveNone)
	}
	shallowKey := zobrist.Key(200)
	_, _, w := table.Probe(shallowKey, zobrist.Key(0))
	w.Write(1, BoundExact, ValueDraw, ValueDraw, MoveNone)

	// The bucket is now full. A probe for a brand new tag in the same
	// bucket must select the shallow entry as its victim, not one of the
	// depth-10 entries.
	newKey := zobrist.Key(300)
	_, _, victim := table.Probe(newKey, zobrist.Key(0))
	victim.Write(5, BoundExact, ValueDraw, ValueDraw, MoveNone)

	hit, _, _ := table.Probe(shallowKey, zobrist.Key(0))
	assert.False(t, hit, "shallow entry should have been evicted")

	for _, k := range deepKeys {
		hit, data, _ := table.Probe(k, zobrist.Key(0))
		assert.True(t, hit, "deep entries should survive")
		assert.Equal(t, 10, data.Depth)
	}
}
