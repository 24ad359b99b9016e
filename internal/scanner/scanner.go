// Package scanner implements the parallel filesystem walk: a fixed pool of
// goroutine workers drains a shared directory queue, building an in-memory
// ScanNode tree under cancellation, depth limits, and per-entry error
// tolerance.
package scanner

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/prenomnom/dux/internal/fsadapter"
	"github.com/prenomnom/dux/internal/model"
)

// ProgressFunc is an advisory callback: the scanner makes no ordering or
// at-least-once guarantee on calls to it, and it must tolerate being
// invoked concurrently from multiple worker goroutines.
type ProgressFunc func(currentPath string, files, directories int64)

// Options configures one Scan call.
type Options struct {
	// Workers is the worker pool size. Values < 1 are treated as 1.
	Workers int
	// MaxDepth, if non-nil, bounds recursion: the root is depth 0, and a
	// directory at depth d yields child tasks at d+1 only if d < *MaxDepth.
	MaxDepth *int
	// Progress, if non-nil, is invoked roughly every 100 entries processed
	// by a worker since that worker's last report.
	Progress ProgressFunc
	// CancelCheck, if non-nil, is polled before each task and during
	// directory iteration. Once it returns true, the scan finishes with a
	// Cancelled error instead of a partial tree.
	CancelCheck func() bool
}

const progressInterval = 100

// Scan walks root with the FS adapter fsys and returns a finalized snapshot
// (sizes summed and children sorted by the size finalizer, see finalize.go)
// or a fatal ScanError. Per-entry failures never surface here; they
// accumulate in Stats.AccessErrors instead.
func Scan(ctx context.Context, fsys fsadapter.FS, root string, opts Options) (*model.ScanSnapshot, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	expanded, err := fsys.ExpandUser(root)
	if err != nil {
		return nil, &model.ScanError{Code: model.Internal, Path: root, Message: "expanding root path", Err: err}
	}
	normalized := normalizePath(expanded)

	if !fsys.Exists(normalized) {
		return nil, &model.ScanError{Code: model.NotFound, Path: normalized}
	}
	rootStat, err := fsys.StatPath(normalized)
	if err != nil {
		return nil, &model.ScanError{Code: model.RootStatFailed, Path: normalized, Err: err}
	}
	if !rootStat.IsDir {
		return nil, &model.ScanError{Code: model.NotDirectory, Path: normalized}
	}

	rootNode := &model.ScanNode{
		Path: normalized,
		Name: path.Base(normalized),
		Kind: model.Directory,
	}

	s := &scan{ctx: ctx, fs: fsys, q: newQueue(), opts: opts}

	s.wg.Add(1)
	s.q.push(task{path: normalized, parent: rootNode, depth: 0})

	var workerWG sync.WaitGroup
	workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer workerWG.Done()
			s.worker()
		}()
	}

	// Once every enqueued task has been processed (wg back to zero), wake
	// each blocked worker with one poison task so it can exit — the Go
	// analogue of queue.join() followed by N sentinel puts.
	go func() {
		s.wg.Wait()
		for i := 0; i < workers; i++ {
			s.q.push(task{poison: true})
		}
	}()
	workerWG.Wait()

	if s.isCancelled() {
		return nil, &model.ScanError{Code: model.Cancelled, Path: normalized}
	}

	finalize(rootNode)

	return &model.ScanSnapshot{Root: rootNode, Stats: s.stats}, nil
}

// scan holds the state shared by every worker goroutine for one Scan call.
type scan struct {
	ctx  context.Context
	fs   fsadapter.FS
	q    *queue
	opts Options
	wg   sync.WaitGroup

	statsMu sync.Mutex
	stats   model.ScanStats

	cancelledMu sync.Mutex
	cancelled   bool
}

func (s *scan) isCancelled() bool {
	s.cancelledMu.Lock()
	defer s.cancelledMu.Unlock()
	if s.cancelled {
		return true
	}
	select {
	case <-s.ctx.Done():
		s.cancelled = true
		return true
	default:
	}
	if s.opts.CancelCheck != nil && s.opts.CancelCheck() {
		s.cancelled = true
		return true
	}
	return false
}

// flush folds one worker's local counters into the shared stats under a
// single lock acquisition, skipped entirely when there is nothing to add —
// the standard per-thread-local-counter pattern for keeping the lock cold.
func (s *scan) flush(localFiles, localDirs, localErrors int64) {
	if localFiles == 0 && localDirs == 0 && localErrors == 0 {
		return
	}
	s.statsMu.Lock()
	s.stats.Files += localFiles
	s.stats.Directories += localDirs
	s.stats.AccessErrors += localErrors
	s.statsMu.Unlock()
}

func (s *scan) totals() (files, dirs int64) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.stats.Files, s.stats.Directories
}

// worker repeatedly pops a task and processes it until it receives a
// poison task.
func (s *scan) worker() {
	var sinceReport int64
	for {
		t := s.q.pop()
		if t.poison {
			return
		}
		if s.isCancelled() {
			s.wg.Done()
			continue
		}
		s.processDirectory(t, &sinceReport)
		s.wg.Done()
	}
}

func (s *scan) processDirectory(t task, sinceReport *int64) {
	var localFiles, localDirs, localErrors int64
	defer func() { s.flush(localFiles, localDirs, localErrors) }()

	next, err := s.fs.Scandir(s.ctx, t.path)
	if err != nil {
		localErrors++
		return
	}

	canDescend := s.opts.MaxDepth == nil || t.depth < *s.opts.MaxDepth

	for {
		if s.isCancelled() {
			return
		}
		entry, ok, err := next()
		if err != nil {
			localErrors++
			return
		}
		if !ok {
			break
		}
		if entry.Stat == nil {
			localErrors++
			continue
		}

		child := &model.ScanNode{Path: normalizePath(entry.Path), Name: entry.Name}
		if entry.Stat.IsDir {
			child.Kind = model.Directory
			localDirs++
		} else {
			child.Kind = model.File
			child.SizeBytes = entry.Stat.Size
			child.DiskUsage = entry.Stat.DiskUsage
			localFiles++
		}

		t.parent.Children = append(t.parent.Children, child)

		*sinceReport++
		if *sinceReport >= progressInterval && s.opts.Progress != nil {
			*sinceReport = 0
			files, dirs := s.totals()
			s.opts.Progress(child.Path, files+localFiles, dirs+localDirs)
		}

		if child.IsDir() && canDescend {
			s.wg.Add(1)
			s.q.push(task{path: child.Path, parent: child, depth: t.depth + 1})
		}
	}
}

// normalizePath canonicalizes path separators to forward slashes, as
// required of every ScanNode.Path.
func normalizePath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
