package renderer

import (
	"sync"
)

// ColumnTask represents a column rendering task for the worker pool
type ColumnTask struct {
	X     int    // Column to render
	Image *Image // Shared buffer to write to
}

// ColumnResult contains the result from rendering a column
type ColumnResult struct {
	X     int
	Stats RenderStats
}

// WorkerPool manages parallel column rendering
type WorkerPool struct {
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual column rendering tasks
type Worker struct {
	ID          int
	rasterizer  *Rasterizer
	taskQueue   chan ColumnTask
	resultQueue chan ColumnResult
}

// NewWorkerPool creates a worker pool able to queue maxTasks columns without blocking
func NewWorkerPool(rasterizer *Rasterizer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ColumnTask, maxTasks),
		resultQueue: make(chan ColumnResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			rasterizer:  rasterizer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a column task to the worker pool
func (wp *WorkerPool) SubmitTask(task ColumnTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed column result
func (wp *WorkerPool) GetResult() (ColumnResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Columns own disjoint buffer slots, so writes need no locking
		stats := w.rasterizer.RenderColumn(task.X, task.Image)
		w.resultQueue <- ColumnResult{X: task.X, Stats: stats}
	}
}
