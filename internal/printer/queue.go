package printer

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultQueueDepth bounds how many jobs may wait for the printer before
// submissions are rejected.
const defaultQueueDepth = 32

// RenderJob emits a ticket's operation stream against an open device.
type RenderJob func(dev Device) error

// Queue serializes print jobs onto the single physical printer: one
// worker, strict arrival order, at most one open session at a time.
// Receipt delivery is best-effort: a failed job is logged and dropped,
// never retried. The printer may be left mid-receipt; the next job's
// style reset brings it back to a known state.
type Queue struct {
	opener    Opener
	vendorID  uint16
	productID uint16
	profile   string
	log       *zap.Logger

	jobs chan queuedJob
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

type queuedJob struct {
	id     uuid.UUID
	render RenderJob
}

// NewQueue builds a stopped queue; call Start to begin processing.
func NewQueue(opener Opener, vendorID, productID uint16, profile string, log *zap.Logger) *Queue {
	return &Queue{
		opener:    opener,
		vendorID:  vendorID,
		productID: productID,
		profile:   profile,
		log:       log,
		jobs:      make(chan queuedJob, defaultQueueDepth),
	}
}

// Start launches the worker. The worker exits when ctx is cancelled or
// Stop is called; queued jobs drain first on Stop, not on cancellation.
func (q *Queue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case job, ok := <-q.jobs:
				if !ok {
					return
				}
				q.process(job)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Submit enqueues a job and returns its id. Fails when the queue is
// stopped or full; the caller logs and drops.
func (q *Queue) Submit(render RenderJob) (uuid.UUID, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return uuid.Nil, fmt.Errorf("print queue is stopped")
	}

	job := queuedJob{id: uuid.New(), render: render}
	select {
	case q.jobs <- job:
		return job.id, nil
	default:
		return uuid.Nil, fmt.Errorf("print queue is full (%d jobs waiting)", defaultQueueDepth)
	}
}

// Stop closes the queue and waits for queued jobs to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

// process runs one job inside a session: open, emit, close. Close runs
// on every exit path so the handle never leaks.
func (q *Queue) process(job queuedJob) {
	log := q.log.With(zap.String("job", job.id.String()))

	session, err := OpenSession(q.opener, q.vendorID, q.productID, q.profile, log)
	if err != nil {
		log.Error("print job failed: cannot open printer", zap.Error(err))
		return
	}
	defer session.Close()

	if err := job.render(session.Device()); err != nil {
		log.Error("print job failed mid-stream", zap.Error(err))
		return
	}

	log.Info("print job completed")
}
