package meshing

import (
	"context"
	"sync"

	"voxelmesh/internal/voxel"
)

// MeshJob represents a meshing job request
type MeshJob struct {
	Chunk *voxel.Chunk
	ID    int
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	ID      int
	Records []PackedQuad
	// Count is the true quad count; greater than len(Records) when the
	// pool's capacity truncated the output.
	Count int
}

// WorkerPool manages goroutines for mesh generation. It is the streaming
// counterpart to BatchMesher: callers submit chunks one at a time and
// collect packed results from their own channels.
type WorkerPool struct {
	jobQueue chan MeshJob
	workers  int
	capacity int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a new mesh worker pool. Non-positive capacity
// defaults to DefaultCapacity.
func NewWorkerPool(workers, queueSize, capacity int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		workers:  workers,
		capacity: capacity,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool.
// Returns true if job was submitted successfully, false if queue is full.
func (p *WorkerPool) SubmitJob(job MeshJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued.
func (p *WorkerPool) SubmitJobBlocking(job MeshJob) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

// worker processes mesh jobs until the pool shuts down.
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			records, count := MeshChunkPacked(job.Chunk, p.capacity)

			select {
			case job.ResultChan <- MeshResult{ID: job.ID, Records: records, Count: count}:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown gracefully shuts down the worker pool.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// GetQueueLength returns the current number of jobs in the queue.
func (p *WorkerPool) GetQueueLength() int {
	return len(p.jobQueue)
}
