package renderer

import (
	"fmt"
	"sync"
)

// ScanlineTask represents one image row to render
type ScanlineTask struct {
	Row  int   // Row in camera space, 0 = bottom of the image
	Seed int64 // Seed for this row's random generator
}

// ScanlineResult contains the result from rendering a row
type ScanlineResult struct {
	Row     int
	Samples int
	Error   error
}

// ScanlineFunc renders a single task
type ScanlineFunc func(task ScanlineTask) ScanlineResult

// WorkerPool manages parallel scanline rendering over a fixed set of goroutines
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline tasks
type Worker struct {
	ID          int
	render      ScanlineFunc
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds how many tasks and results can be queued without blocking.
func NewWorkerPool(numWorkers, maxTasks int, render ScanlineFunc) (*WorkerPool, error) {
	if numWorkers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, numWorkers)
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, maxTasks),
		resultQueue: make(chan ScanlineResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			render:      render,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp, nil
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue and blocks until every submitted task has finished
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results drains the completed results. Only valid after Stop.
func (wp *WorkerPool) Results() []ScanlineResult {
	var results []ScanlineResult
	for result := range wp.resultQueue {
		results = append(results, result)
	}
	return results
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.render(task)
	}
}
