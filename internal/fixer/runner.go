package fixer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FixAll processes files concurrently, one worker per file up to
// opts.Jobs. Documents share no state, so the only coordination is the
// result slot per input index; one file's failure lands in its own
// result and never affects the others.
func FixAll(ctx context.Context, paths []string, opts Options) []FileResult {
	if len(paths) == 0 {
		return nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}

	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, path := range paths {
		emit(opts.Progress, Event{Path: path, Status: StatusQueued})
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = FileResult{Path: path, Err: gctx.Err()}
				emit(opts.Progress, Event{Path: path, Status: StatusError})
				return nil
			default:
			}
			emit(opts.Progress, Event{Path: path, Status: StatusWorking})
			results[i] = FixFile(gctx, path, opts)
			emit(opts.Progress, resultEvent(&results[i]))
			return nil
		})
	}

	// Workers never return errors; per-file failures live in results.
	_ = g.Wait()
	return results
}

func resultEvent(res *FileResult) Event {
	evt := Event{Path: res.Path}
	switch {
	case res.Err != nil:
		evt.Status = StatusError
	case res.Skipped:
		evt.Status = StatusSkipped
	default:
		evt.Status = StatusDone
		evt.Removals = res.Log.Removals()
	}
	return evt
}
