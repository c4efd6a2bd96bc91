package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vanshika/campusroute/internal/domain"
)

// TaskError accumulates multiple errors produced during bulk seeding.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *TaskError) Unwrap() []error {
	return e.Errors
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// BulkLoader writes edge lists into a store using a pool of workers.
type BulkLoader struct {
	writer  EdgeWriter
	workers int
}

// NewBulkLoader creates a BulkLoader with the provided concurrency.
func NewBulkLoader(writer EdgeWriter, workers int) *BulkLoader {
	if workers <= 0 {
		workers = 4
	}
	return &BulkLoader{
		writer:  writer,
		workers: workers,
	}
}

// LoadEdges validates the edges and upserts them concurrently. Validation
// failures abort before anything is written. Repeated location pairs, in
// either direction, are collapsed to their last record first, so the store
// ends up with the same weights Build would produce from the same list.
func (bl *BulkLoader) LoadEdges(ctx context.Context, edges []domain.Edge) error {
	if err := ValidateEdges(edges); err != nil {
		return err
	}
	edges = CollapseEdges(edges)
	return bl.run(ctx, len(edges), func(idx int) error {
		return bl.writer.UpsertEdge(ctx, edges[idx])
	})
}

type locationPair struct {
	a, b string
}

func pairOf(e domain.Edge) locationPair {
	if e.Destination < e.Source {
		return locationPair{a: e.Destination, b: e.Source}
	}
	return locationPair{a: e.Source, b: e.Destination}
}

// CollapseEdges keeps one edge per unordered location pair: the last one in
// edges. Pairs stay in order of first appearance.
func CollapseEdges(edges []domain.Edge) []domain.Edge {
	index := make(map[locationPair]int, len(edges))
	out := make([]domain.Edge, 0, len(edges))
	for _, e := range edges {
		key := pairOf(e)
		if i, ok := index[key]; ok {
			out[i] = e
			continue
		}
		index[key] = len(out)
		out = append(out, e)
	}
	return out
}

func (bl *BulkLoader) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if err := workerFn(idx); err != nil {
				errCh <- err
			}
		}
	}

	for i := 0; i < bl.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	if err := ctx.Err(); err != nil {
		return err
	}

	var taskErr TaskError
	for err := range errCh {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	return taskErr.asError()
}
