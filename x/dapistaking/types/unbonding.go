package types

import (
	"sort"

	"cosmossdk.io/math"
)

// UnlockingChunk is an amount undergoing the unbonding process, withdrawable
// once the unlock era is reached.
type UnlockingChunk struct {
	Amount    math.Int `json:"amount"`
	UnlockEra uint64   `json:"unlock_era"`
}

// UnbondingQueue holds an account's unlocking chunks, sorted ascending by
// unlock era. Chunks with the same unlock era are merged.
type UnbondingQueue struct {
	Chunks []UnlockingChunk `json:"chunks"`
}

// Len returns the number of unlocking chunks.
func (q UnbondingQueue) Len() uint32 {
	return uint32(len(q.Chunks))
}

// IsEmpty is true when no unlocking chunks exist.
func (q UnbondingQueue) IsEmpty() bool {
	return len(q.Chunks) == 0
}

// Sum returns the total amount across all chunks.
func (q UnbondingQueue) Sum() math.Int {
	sum := math.ZeroInt()
	for _, chunk := range q.Chunks {
		sum = sum.Add(chunk.Amount)
	}
	return sum
}

// Add inserts a chunk preserving the unlock-era ordering, merging with an
// existing chunk when the unlock eras match. The unbonding period can change
// over time, so insertion is a binary search rather than a plain append.
func (q *UnbondingQueue) Add(chunk UnlockingChunk) {
	pos := sort.Search(len(q.Chunks), func(i int) bool {
		return q.Chunks[i].UnlockEra >= chunk.UnlockEra
	})
	if pos < len(q.Chunks) && q.Chunks[pos].UnlockEra == chunk.UnlockEra {
		q.Chunks[pos].Amount = q.Chunks[pos].Amount.Add(chunk.Amount)
		return
	}
	q.Chunks = append(q.Chunks, UnlockingChunk{})
	copy(q.Chunks[pos+1:], q.Chunks[pos:])
	q.Chunks[pos] = chunk
}

// Partition splits the queue into the chunks with unlock era less than or
// equal to era (withdrawable) and the rest, preserving order in each half.
func (q UnbondingQueue) Partition(era uint64) (UnbondingQueue, UnbondingQueue) {
	var matured, remaining UnbondingQueue
	for _, chunk := range q.Chunks {
		if chunk.UnlockEra <= era {
			matured.Chunks = append(matured.Chunks, chunk)
		} else {
			remaining.Chunks = append(remaining.Chunks, chunk)
		}
	}
	return matured, remaining
}
