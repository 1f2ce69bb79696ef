/*
Copyright (c) 2025 Proyecto Rodrigo. All rights reserved.
Licensed under the MIT License, see LICENSE file in the project root for details.
*/
package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_DispatcherProcessesJobs(t *testing.T) {
	var mu sync.Mutex
	processed := []string{}

	d := New(func(ctx context.Context, from, to, text string) error {
		mu.Lock()
		defer mu.Unlock()
		processed = append(processed, text)
		return nil
	})
	d.Start()

	assert.True(t, d.Enqueue(Job{From: "+521", To: "+525", Text: "uno"}))
	assert.True(t, d.Enqueue(Job{From: "+521", To: "+525", Text: "dos"}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, d.Stop(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"uno", "dos"}, processed)
}

func Test_DispatcherAssignsJobIDs(t *testing.T) {
	seen := make(chan string, 1)

	d := New(func(ctx context.Context, from, to, text string) error {
		return nil
	})

	job := Job{From: "+521", To: "+525", Text: "hola"}
	assert.True(t, d.Enqueue(job))

	queued := <-d.jobs
	seen <- queued.ID
	assert.NotEmpty(t, <-seen, "job id should be assigned on enqueue")
}

func Test_EnqueueReturnsFalse_QueueFull(t *testing.T) {
	// No workers started, so the queue only drains by capacity.
	d := New(func(ctx context.Context, from, to, text string) error {
		return nil
	})

	for range queueCapacity {
		assert.True(t, d.Enqueue(Job{Text: "relleno"}))
	}

	assert.False(t, d.Enqueue(Job{Text: "desbordado"}))
}

func Test_JobsRunUnderDeadline(t *testing.T) {
	deadlines := make(chan bool, 1)

	d := New(func(ctx context.Context, from, to, text string) error {
		_, ok := ctx.Deadline()
		deadlines <- ok
		return nil
	})
	d.Start()

	assert.True(t, d.Enqueue(Job{Text: "hola"}))

	select {
	case ok := <-deadlines:
		assert.True(t, ok, "job context should carry a deadline")
	case <-time.After(5 * time.Second):
		t.Fatal("job was not processed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, d.Stop(ctx))
}

func Test_StopWaitsForInFlightJobs(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	finished := false

	d := New(func(ctx context.Context, from, to, text string) error {
		close(started)
		<-release
		finished = true
		return nil
	})
	d.Start()

	assert.True(t, d.Enqueue(Job{Text: "lento"}))
	<-started

	go func() {
		time.Sleep(100 * time.Millisecond)
		close(release)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, d.Stop(ctx))
	assert.True(t, finished, "in-flight job should complete before stop returns")
}

func Test_StopReturnsError_DeadlineExceeded(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})

	d := New(func(ctx context.Context, from, to, text string) error {
		close(started)
		<-release
		return nil
	})
	d.Start()

	assert.True(t, d.Enqueue(Job{Text: "atascado"}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Stop(ctx), context.DeadlineExceeded)
}
