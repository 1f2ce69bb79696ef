/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// Fixed worker pool size and per-message deadline of the service.
	DefaultWorkers    = 4
	DefaultJobTimeout = 120 * time.Second

	queueCapacity = 64
)

// Job is one inbound WhatsApp message awaiting processing.
type Job struct {
	ID   string
	From string
	To   string
	Text string
}

type ProcessFunc func(ctx context.Context, from, to, text string) error

// Dispatcher fans inbound messages out to a fixed pool of workers. The
// webhook handler enqueues and returns immediately; each job runs under
// its own deadline.
type Dispatcher struct {
	process  ProcessFunc
	jobs     chan Job
	workers  int
	timeout  time.Duration
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func New(process ProcessFunc) *Dispatcher {
	return &Dispatcher{
		process: process,
		jobs:    make(chan Job, queueCapacity),
		workers: DefaultWorkers,
		timeout: DefaultJobTimeout,
	}
}

func (d *Dispatcher) Start() {
	slog.Debug("Starting dispatcher", "workers", d.workers, "timeout", d.timeout)

	for i := range d.workers {
		d.wg.Add(1)
		go d.work(i)
	}
}

// Enqueue hands a job to the pool. Returns false when the queue is
// full; the caller decides what to do with the dropped event.
func (d *Dispatcher) Enqueue(job Job) bool {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}

	select {
	case d.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop drains the queue and waits for in-flight jobs, bounded by ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		close(d.jobs)
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()

	for job := range d.jobs {
		slog.Debug("Worker picked up job", "worker", id, "job", job.ID, "from", job.From)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.process(ctx, job.From, job.To, job.Text); err != nil {
			slog.Error("Job failed", "worker", id, "job", job.ID, "error", err)
		}
		cancel()
	}
}
