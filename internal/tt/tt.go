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

// Package tt implements the search's transposition table: a fixed-size,
// bucketed cache keyed on Zobrist hashes, written without per-bucket
// locking so every Lazy-SMP worker can probe and store concurrently.
// Readers tolerate the occasional torn read; a wide tag plus the
// caller-supplied secondary key make an undetected collision
// vanishingly rare, and the search worker re-validates any TT move as
// pseudo-legal before trusting it.
package tt

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/suhasj2003/juujfish/internal/logx"
	"github.com/suhasj2003/juujfish/internal/zobrist"

	. "github.com/suhasj2003/juujfish/internal/types"
)

var out = message.NewPrinter(language.English)

// Bound classifies how a stored score relates to the true minimax value.
type Bound uint8

const (
	BoundNone  Bound = iota
	BoundExact       // the stored score is the position's exact value
	BoundLower       // the stored score is a lower bound (from a beta cutoff)
	BoundUpper       // the stored score is an upper bound (best score <= alpha)
)

const (
	// MaxSizeInMB caps a resize request to a sane upper bound.
	MaxSizeInMB = 65_536

	// entriesPerBucket is fixed at 8, matching a typical 128-byte cache
	// line for 16-byte entries.
	entriesPerBucket = 8

	// entrySize is the packed size in bytes of one entry: 8(tag) + 2(move)
	// + 2(score) + 2(eval) + 1(depth) + 1(age<<2|bound) = 16.
	entrySize = 16

	ageBits = 6
	ageMax  = 1<<ageBits - 1
)

// entry is one slot in a bucket. The zero value is the empty sentinel
// (tag == 0); a real zobrist key colliding with 0 is astronomically
// unlikely and not worth a dedicated occupied flag.
type entry struct {
	tag      uint64
	move     uint16
	score    int16
	eval     int16
	depth    uint8
	genBound uint8 // top 6 bits: age (mod 64); low 2 bits: Bound
}

func (e *entry) age() uint8 {
	return e.genBound >> 2
}

func (e *entry) bound() Bound {
	return Bound(e.genBound & 0b11)
}

type bucket struct {
	entries [entriesPerBucket]entry
}

// Data is a snapshot of a matched entry returned by Probe.
type Data struct {
	Move  Move
	Score Value
	Eval  Value
	Depth int
	Bound Bound
}

// Table is the transposition table. The zero value is not usable; create
// one with New. Probe/Write are safe to call concurrently from multiple
// search workers; Resize and Clear are not and must only run between
// searches.
type Table struct {
	buckets    []bucket
	mask       uint64
	generation uint32 // holds a uint8 value; atomic for concurrent NewSearch callers
	entries    uint64 // atomic
}

// New creates a Table sized to at most sizeInMB megabytes.
func New(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize rebuilds the table to the largest power-of-2 bucket count that
// fits within sizeInMB. All entries are lost. Must not be called while a
// search is using the table.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		logx.Get().Warningf("transposition table size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB)
		sizeInMB = MaxSizeInMB
	}
	bucketSize := uint64(entriesPerBucket * entrySize)
	sizeInBytes := uint64(sizeInMB) * 1024 * 1024
	numBuckets := uint64(0)
	if sizeInBytes >= bucketSize {
		numBuckets = uint64(1) << uint(math.Floor(math.Log2(float64(sizeInBytes/bucketSize))))
	}
	t.buckets = make([]bucket, numBuckets)
	if numBuckets > 0 {
		t.mask = numBuckets - 1
	} else {
		t.mask = 0
	}
	atomic.StoreUint64(&t.entries, 0)
	logx.Get().Infof("transposition table sized to %d buckets (%d bytes each, %d MB total, entry size %d bytes)",
		numBuckets, bucketSize, numBuckets*bucketSize/(1024*1024), unsafe.Sizeof(entry{}))
}

// Clear empties every entry. Must not be called while a search is using
// the table.
func (t *Table) Clear() {
	t.buckets = make([]bucket, len(t.buckets))
	atomic.StoreUint64(&t.entries, 0)
}

// NewSearch advances the table's generation counter, making every entry
// written by a previous search progressively cheaper to evict without
// clearing the table. The counter wraps at 6 bits, matching genBound's
// packed age field.
func (t *Table) NewSearch() {
	atomic.AddUint32(&t.generation, 1)
}

func (t *Table) currentAge() uint8 {
	return uint8(atomic.LoadUint32(&t.generation)) & ageMax
}

func (t *Table) index(key zobrist.Key) uint64 {
	// A middle slice of the key: the low 16 bits and the top 16 bits stay
	// free to vary independently of the index, so that entries aliasing to
	// the same bucket are unlikely to also share a tag.
	return (uint64(key) >> 16) & t.mask
}

// tagFor combines the full Zobrist key with the caller's secondary key
// into the value stored and compared in place of a truncated tag.
func tagFor(key, secondary zobrist.Key) uint64 {
	tag := uint64(key) ^ uint64(secondary)
	if tag == 0 {
		// Preserve the empty-entry sentinel: an all-zero tag is
		// astronomically unlikely from real keys but must never be
		// confused with an empty slot.
		tag = 1
	}
	return tag
}

// Writer stores a pending write location inside a bucket. It is cheap,
// single-use, and should not outlive the node that obtained it from
// Probe.
type Writer struct {
	table *Table
	e     *entry
	tag   uint64
	age   uint8
}

// Write stores depth, bound, score, eval and move into the slot the
// Writer was bound to, stamping the table's current age. move may be
// MoveNone when no best move was found at a node that still wants its
// bound cached (e.g. a fail-low with no improving move).
func (w Writer) Write(depth int, bound Bound, score, eval Value, move Move) {
	if w.e == nil {
		return
	}
	wasEmpty := w.e.tag == 0
	w.e.tag = w.tag
	w.e.move = uint16(move.MoveOf())
	w.e.score = int16(score)
	w.e.eval = int16(eval)
	if depth < 0 {
		depth = 0
	}
	if depth > 0xFF {
		depth = 0xFF
	}
	w.e.depth = uint8(depth)
	w.e.genBound = w.age<<2 | uint8(bound)
	if wasEmpty {
		w.table.noteWrite(true)
	}
}

// Probe looks up key/secondary. On a hit, data holds the stored entry and
// writer targets that same slot for an update. On a miss, writer targets
// an empty slot if the bucket has one, otherwise the best replacement
// victim by the depth-minus-staleness rule; data is the zero value.
func (t *Table) Probe(key, secondary zobrist.Key) (hit bool, data Data, writer Writer) {
	if len(t.buckets) == 0 {
		return false, Data{}, Writer{}
	}
	tag := tagFor(key, secondary)
	age := t.currentAge()
	b := &t.buckets[t.index(key)]

	for i := range b.entries {
		e := &b.entries[i]
		if e.tag == tag {
			return true, Data{
				Move:  Move(e.move),
				Score: Value(e.score),
				Eval:  Value(e.eval),
				Depth: int(e.depth),
				Bound: e.bound(),
			}, Writer{table: t, e: e, tag: tag, age: age}
		}
	}

	for i := range b.entries {
		e := &b.entries[i]
		if e.tag == 0 {
			return false, Data{}, Writer{table: t, e: e, tag: tag, age: age}
		}
	}

	victim := &b.entries[0]
	victimScore := replacementScore(victim, age)
	for i := 1; i < len(b.entries); i++ {
		e := &b.entries[i]
		if s := replacementScore(e, age); s < victimScore {
			victim = e
			victimScore = s
		}
	}
	return false, Data{}, Writer{table: t, e: victim, tag: tag, age: age}
}

// replacementScore implements depth - (current_age - entry_age): shallow,
// stale entries are evicted first, favoring entries that are both deep
// and recent.
func replacementScore(e *entry, currentAge uint8) int {
	staleness := int(currentAge-e.age()) & ageMax
	return int(e.depth) - staleness
}

// noteWrite bumps the entries counter when a Write filled a previously
// empty slot (wasEmpty), keeping the counter accurate without a full table
// scan.
func (t *Table) noteWrite(wasEmpty bool) {
	if wasEmpty {
		atomic.AddUint64(&t.entries, 1)
	}
}

// Hashfull reports table occupancy in per-mille, as UCI's "hashfull" info
// field expects.
func (t *Table) Hashfull() int {
	if len(t.buckets) == 0 {
		return 0
	}
	total := uint64(len(t.buckets) * entriesPerBucket)
	return int(1000 * atomic.LoadUint64(&t.entries) / total)
}

// AgeEntries is kept as an explicit alias for callers that expect a
// dedicated aging step. This table stores each entry's absolute
// write-time generation and recomputes staleness against the current
// generation inside replacementScore, so NewSearch's single atomic
// increment already ages every entry for free; a bulk rewrite here
// would revisit every slot to reach the same state NewSearch produces
// in O(1).
func (t *Table) AgeEntries() {
	t.NewSearch()
}

// String returns a short diagnostic summary of table occupancy.
func (t *Table) String() string {
	total := uint64(len(t.buckets) * entriesPerBucket)
	return out.Sprintf("TT: %d buckets (%d entries cap), %d stored (%d permille)",
		len(t.buckets), total, atomic.LoadUint64(&t.entries), t.Hashfull())
}
