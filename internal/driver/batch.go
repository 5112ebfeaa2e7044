package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"opusc/internal/source"
)

// Stage names a pipeline phase for progress reporting.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageCheck    Stage = "check"
)

// Status captures a file's progress within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file in a batch run.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// BatchResult pairs a file path with its full pipeline Result.
type BatchResult struct {
	Path   string
	Result Result
}

// CheckAll fans CheckFile out across every file in paths. Opus source files
// never reference one another, so
// each file is compiled fully independently and the work parallelizes
// cleanly with no shared mutable state beyond the FileSet's own loading.
// Progress events are sent to events, if non-nil, as each file starts and
// finishes; events is closed when every file is done.
func CheckAll(ctx context.Context, paths []string, maxDiagnostics, jobs int, events chan<- Event) ([]BatchResult, error) {
	if events != nil {
		defer close(events)
	}
	if len(paths) == 0 {
		return nil, nil
	}

	fs := source.NewFileSet()
	fileIDs := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	for i, path := range paths {
		id, err := fs.Load(path)
		fileIDs[i] = id
		loadErrs[i] = err
		sendEvent(events, Event{File: path, Stage: StageTokenize, Status: StatusQueued})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErrs[i] != nil {
				sendEvent(events, Event{File: path, Stage: StageTokenize, Status: StatusError})
				results[i] = BatchResult{Path: path, Result: Result{Path: path, OK: false}}
				return nil
			}

			sendEvent(events, Event{File: path, Stage: StageCheck, Status: StatusWorking})
			res := CheckFile(fs, fileIDs[i], maxDiagnostics)
			status := StatusDone
			if !res.OK {
				status = StatusError
			}
			sendEvent(events, Event{File: path, Stage: StageCheck, Status: status})
			results[i] = BatchResult{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func sendEvent(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
