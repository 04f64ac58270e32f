package systems

import (
	"context"
	"errors"
	"sync"

	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

type JobSystem struct {
	numWorkers int
	jobQueue   chan metadata.JobTask
	wg         sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var (
	ErrNoWorkers           = errors.New("attempting to create worker pool with less than 1 worker")
	ErrNegativeChannelSize = errors.New("attempting to create worker pool with a negative channel size")
	ErrJobSystemClosed     = errors.New("job system has been shut down")
	ErrNoEntryPoint        = errors.New("job has no entry point")
)

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	jq := make(chan metadata.JobTask, channelSize)
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   jq,
	}

	js.start()

	core.LogDebug("job system started with %d workers", numWorkers)
	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				run(job)
			}
		}()
	}
}

func run(job metadata.JobTask) {
	results := make(chan interface{}, 1)
	// Run the job and handle potential errors
	err := job.OnStart(job.InputParams, results)
	if err != nil {
		core.LogError("%s", err)
		if job.OnFailure != nil {
			// On failure the channel carries the error instead of a result.
			select {
			case <-results:
			default:
			}
			results <- err
			job.OnFailure(results)
		}
	} else if job.OnComplete != nil {
		job.OnComplete(results)
	}

	// Call the completion callback if set
	if job.OnCompletionCallback != nil {
		job.OnCompletionCallback()
	}
}

// Workers is the number of goroutines serving the queue.
func (js *JobSystem) Workers() int {
	return js.numWorkers
}

/**
 * @brief Shuts the job system down. Jobs already queued still run.
 */
func (js *JobSystem) Shutdown() error {
	js.mu.Lock()
	if js.closed {
		js.mu.Unlock()
		return nil
	}
	js.closed = true
	close(js.jobQueue)
	js.mu.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full, until ctx is done.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(ctx context.Context, jt metadata.JobTask) error {
	if jt.OnStart == nil {
		return ErrNoEntryPoint
	}

	js.mu.RLock()
	defer js.mu.RUnlock()
	if js.closed {
		return ErrJobSystemClosed
	}

	select {
	case js.jobQueue <- jt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
