package meshing

import (
	"runtime"
	"sync"
	"sync/atomic"

	"voxelmesh/internal/voxel"
)

// DefaultCapacity is the per-chunk output region size in records. Generous
// for real terrain; adversarial inputs (a full checkerboard needs 98,304)
// truncate and report the true count instead.
const DefaultCapacity = 65536

// Result is the packed output of a batch: one fixed-capacity record region
// plus one exact quad count per chunk.
type Result struct {
	records  []PackedQuad
	counts   []uint32
	capacity int
}

func (r *Result) Chunks() int   { return len(r.counts) }
func (r *Result) Capacity() int { return r.capacity }

// Count returns the true quad count for chunk i, even when it exceeds the
// region capacity.
func (r *Result) Count(i int) int { return int(r.counts[i]) }

// Truncated reports whether chunk i produced more quads than its region
// could hold.
func (r *Result) Truncated(i int) bool { return int(r.counts[i]) > r.capacity }

// Records returns the valid records written for chunk i. Their order
// depends on worker completion order; the multiset matches MeshChunk.
func (r *Result) Records(i int) []PackedQuad {
	n := int(r.counts[i])
	if n > r.capacity {
		n = r.capacity
	}
	return r.records[i*r.capacity : i*r.capacity+n]
}

// BatchMesher fans independent (chunk, face, layer) slices across a fixed
// number of workers. Slices share nothing except the per-chunk output
// region, which a finished slice claims with a single atomic add before
// writing its records without further synchronization.
type BatchMesher struct {
	workers  int
	capacity int
}

// NewBatchMesher creates a batch mesher. Non-positive workers defaults to
// the core count, non-positive capacity to DefaultCapacity.
func NewBatchMesher(workers, capacity int) *BatchMesher {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &BatchMesher{workers: workers, capacity: capacity}
}

// Mesh meshes every chunk and returns the aggregated packed output.
func (b *BatchMesher) Mesh(chunks []*voxel.Chunk) *Result {
	res := &Result{
		records:  make([]PackedQuad, len(chunks)*b.capacity),
		counts:   make([]uint32, len(chunks)),
		capacity: b.capacity,
	}
	if len(chunks) == 0 {
		return res
	}

	// Phase 1: visibility masks, one unit of work per chunk. Each column
	// writes exactly one mask slot, so chunks are fully independent.
	masks := make([]*FaceMasks, len(chunks))
	b.fanOut(len(chunks), func(i int) {
		masks[i] = BuildFaceMasks(chunks[i])
	})

	// Phase 2: merge and pack, one unit of work per slice.
	perChunk := FaceCount * cs
	b.fanOut(len(chunks)*perChunk, func(j int) {
		ci := j / perChunk
		rem := j % perChunk
		quads := meshSlice(chunks[ci], masks[ci], Face(rem/cs), rem%cs)
		if len(quads) > 0 {
			res.write(ci, quads)
		}
	})
	return res
}

// write reserves room for the slice's quads with one atomic add, then
// copies the packed records in. Records past capacity are dropped; the
// counter keeps the uncapped total so callers can detect truncation.
func (r *Result) write(chunk int, quads []Quad) {
	n := uint32(len(quads))
	start := int(atomic.AddUint32(&r.counts[chunk], n) - n)
	base := chunk * r.capacity
	for i, q := range quads {
		slot := start + i
		if slot >= r.capacity {
			break
		}
		r.records[base+slot] = Pack(q)
	}
}

// fanOut runs fn over [0,n) on the configured number of workers, handing
// out indices from a shared atomic cursor.
func (b *BatchMesher) fanOut(n int, fn func(int)) {
	workers := b.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(cursor.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
