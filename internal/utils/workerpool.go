package utils

import (
	"context"
	"sync"
)

// Task is one unit of work and its outcome
type Task[T, R any] struct {
	Index  int
	Data   T
	Result R
	Err    error
}

// Worker is a function that processes a task
type Worker[T, R any] func(ctx context.Context, data T) (R, error)

// Pool runs a worker over a slice of items with bounded concurrency
type Pool[T, R any] struct {
	workers int
	worker  Worker[T, R]
}

// NewPool creates a new worker pool. workers below 1 means 1.
func NewPool[T, R any](workers int, worker Worker[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		worker:  worker,
	}
}

// Workers returns the concurrency limit
func (p *Pool[T, R]) Workers() int {
	return p.workers
}

// Process runs the worker on every item and returns one task per item, in
// input order. When ctx is cancelled no further items are started; the
// ones never started carry ctx.Err() and Process returns it.
func (p *Pool[T, R]) Process(ctx context.Context, items []T) ([]*Task[T, R], error) {
	tasks := make([]*Task[T, R], len(items))
	for i, item := range items {
		tasks[i] = &Task[T, R]{Index: i, Data: item}
	}
	if len(tasks) == 0 {
		return tasks, nil
	}

	queue := make(chan *Task[T, R])
	var wg sync.WaitGroup
	for i := 0; i < min(p.workers, len(tasks)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				task.Result, task.Err = p.worker(ctx, task.Data)
			}
		}()
	}

	submitted := 0
submit:
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			break submit
		case queue <- task:
			submitted++
		}
	}
	close(queue)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for _, task := range tasks[submitted:] {
			task.Err = err
		}
		return tasks, err
	}
	return tasks, nil
}

// CollectErrors collects all non-nil task errors
func CollectErrors[T, R any](tasks []*Task[T, R]) []error {
	var result []error
	for _, task := range tasks {
		if task.Err != nil {
			result = append(result, task.Err)
		}
	}
	return result
}
