// Package bucketqueue implements a monotone bucket priority queue specialised
// to integer distances with edge weights bounded by [1, 100]. It is
// intrusive: membership links live inside the hex arena it serves rather
// than in the queue's own storage, so a query never allocates.
package bucketqueue

import "github.com/gravitas-015/hexroute/internal/hexgrid"

// numBuckets is one more than the maximum edge weight, the minimum span
// that keeps every live tentative distance within one full cycle of the
// currently-popped distance.
const numBuckets = 101

const none = -1

// Queue is a 101-slot monotone bucket queue over hex indices, keyed by
// tentative distance modulo numBuckets. It holds a reference to the grid
// arena whose Cell.BucketIndex/BucketNext/BucketVersion fields back its
// linked lists.
type Queue struct {
	grid    *hexgrid.Grid
	head    [numBuckets]int
	current int
	distance uint32
	count   int
	version uint32
}

// New creates a bucket queue bound to grid. The queue is not usable until
// Initialize is called.
func New(grid *hexgrid.Grid) *Queue {
	return &Queue{grid: grid}
}

// Initialize starts a fresh epoch: it bumps the queue's own bucket_version
// (independent of the grid's CurrentVersion) and clears all 101 bucket
// heads. On bucket_version overflow it walks the arena once, resetting
// every cell's BucketVersion to 0, then restarts the epoch at 1.
func (q *Queue) Initialize() {
	q.version++
	if q.version == 0 {
		for i := range q.grid.Cells {
			q.grid.Cells[i].BucketVersion = 0
		}
		q.version = 1
	}
	q.count = 0
	q.current = 0
	q.distance = 0
	for i := range q.head {
		q.head[i] = none
	}
}

// Push inserts idx keyed by the grid cell's current Distance. If idx is
// already a live member of this epoch, it is first spliced out of its prior
// bucket so the queue never holds more than one live entry per cell.
func (q *Queue) Push(idx int) {
	cell := &q.grid.Cells[idx]
	if cell.BucketVersion == q.version {
		q.spliceOut(idx, cell)
	} else {
		cell.BucketVersion = q.version
		cell.BucketIndex = none
		cell.BucketNext = none
	}

	bucket := int(cell.Distance % numBuckets)
	cell.BucketNext = q.head[bucket]
	q.head[bucket] = idx
	cell.BucketIndex = bucket
	q.count++
}

// spliceOut removes idx from the bucket list it currently occupies, a linear
// walk bounded by the (short, by construction) length of that single bucket.
func (q *Queue) spliceOut(idx int, cell *hexgrid.Cell) {
	bucket := cell.BucketIndex
	if bucket == none {
		return
	}
	link := &q.head[bucket]
	for *link != none && *link != idx {
		link = &q.grid.Cells[*link].BucketNext
	}
	if *link == idx {
		*link = cell.BucketNext
		q.count--
	}
}

// Pop advances the current bucket (wrapping modulo numBuckets) until it
// finds a non-empty one, detaches its head, and returns the detached index.
func (q *Queue) Pop() int {
	for q.head[q.current] == none {
		q.current = (q.current + 1) % numBuckets
		q.distance++
	}
	idx := q.head[q.current]
	cell := &q.grid.Cells[idx]
	q.head[q.current] = cell.BucketNext
	cell.BucketNext = none
	cell.BucketIndex = none
	q.count--
	return idx
}

// Empty reports whether the queue holds no live entries.
func (q *Queue) Empty() bool { return q.count == 0 }
