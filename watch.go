// Package hotglsl tracks changes to GLSL shader files and recompiles the
// touched set to SPIR-V on demand.
//
// See the Watch and WatchPaths constructor functions.
package hotglsl

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// rawEvent is a single notification from the filesystem observation layer.
// It carries either a non-empty set of affected paths or an error.
type rawEvent struct {
	paths []string
	err   error
}

// Watcher observes one or more paths for changes to GLSL shader files.
//
// Exactly one goroutine (the pump, owned by the notification layer) produces
// events; the consumer side is whatever goroutine calls the Watcher's
// methods. The pending buffer is guarded by a mutex, so calls from multiple
// goroutines will not corrupt state, but the intended contract is a single
// consumer at a time: interleaving drains from several goroutines gives each
// of them an arbitrary subset of the paths.
type Watcher struct {
	events <-chan rawEvent

	mu      sync.Mutex
	pending []string

	fw       *fsnotify.Watcher
	compiler Compiler

	// recursive is true when at least one watched root is a directory, in
	// which case directories created under a watched tree are registered
	// as they appear.
	recursive bool
}

// Option configures a Watcher at construction time.
type Option func(*Watcher)

// WithCompiler overrides the compiler used by CompileTouched and defaults
// to NewGlslang().
func WithCompiler(c Compiler) Option {
	return func(w *Watcher) {
		w.compiler = c
	}
}

// Watch observes the given file or directory. Directories are observed
// recursively.
func Watch(path string, opts ...Option) (*Watcher, error) {
	return WatchPaths([]string{path}, opts...)
}

// WatchPaths observes each of the given files or directories. Each path is
// classified independently: paths that currently resolve to a directory are
// observed recursively, everything else is observed as a single file.
//
// On success, observation starts immediately on a background goroutine and
// no historical events are replayed. Construction fails if the underlying
// notification mechanism cannot be initialized for any of the paths; the
// returned error wraps the cause.
func WatchPaths(paths []string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create filesystem watcher")
	}

	w := &Watcher{
		fw:       fw,
		compiler: NewGlslang(),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, path := range paths {
		info, statErr := os.Stat(path)
		if statErr == nil && info.IsDir() {
			w.recursive = true
			if err := addTree(fw, path); err != nil {
				_ = fw.Close()
				return nil, zerr.Wrap(err, "failed to watch directory "+path)
			}
		} else if err := fw.Add(path); err != nil {
			_ = fw.Close()
			return nil, zerr.Wrap(err, "failed to watch "+path)
		}
	}

	events := make(chan rawEvent)
	w.events = events
	go w.pump(events)

	return w, nil
}

// Close stops observation and releases the underlying watcher. Any call
// blocked in AwaitEvent returns ErrChannelClosed once buffered events have
// been drained. Close must not race a blocked AwaitEvent from the closing
// goroutine's point of view; close from the consumer side once no other
// goroutine is waiting.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// AwaitEvent blocks the calling goroutine until some filesystem event has
// been received.
//
// On a change event, every affected path that is a shader file is appended
// to the pending buffer, so a following TryNextPath or PathsTouched call
// will not miss it. AwaitEvent surfaces no paths itself.
//
// This is useful when running the hot-reload loop on its own goroutine:
// block here, then drain with CompileTouched.
func (w *Watcher) AwaitEvent() error {
	ev, ok := <-w.events
	if !ok {
		return ErrChannelClosed
	}
	if ev.err != nil {
		return zerr.Wrap(ev.err, ErrNotify.Error())
	}
	w.mu.Lock()
	w.pending = append(w.pending, shaderPaths(ev.paths)...)
	w.mu.Unlock()
	return nil
}

// TryNextPath returns the next changed shader path without blocking.
//
// Buffered paths are returned first, oldest first, duplicates preserved.
// When the buffer is empty the event channel is polled: an event whose
// paths include shader files refills the buffer, an event with no relevant
// paths is skipped, and no event at all yields ("", nil). That is how
// "nothing yet" is distinguished from ErrChannelClosed.
func (w *Watcher) TryNextPath() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		if len(w.pending) > 0 {
			path := w.pending[0]
			w.pending = w.pending[1:]
			return path, nil
		}
		select {
		case ev, ok := <-w.events:
			if !ok {
				return "", ErrChannelClosed
			}
			if ev.err != nil {
				return "", zerr.Wrap(ev.err, ErrNotify.Error())
			}
			w.pending = append(w.pending, shaderPaths(ev.paths)...)
		default:
			return "", nil
		}
	}
}

// PathsTouched returns all unique shader paths that changed at least once
// since the last call to PathsTouched or CompileTouched.
//
// Calling it again immediately, with no intervening filesystem activity,
// returns an empty set. Any error from the underlying channel aborts the
// whole call; paths gathered so far are discarded.
func (w *Watcher) PathsTouched() (map[string]struct{}, error) {
	touched := make(map[string]struct{})
	for {
		path, err := w.TryNextPath()
		if err != nil {
			return nil, err
		}
		if path == "" {
			return touched, nil
		}
		touched[path] = struct{}{}
	}
}

// CompileResult pairs compiled SPIR-V bytecode with the error that
// prevented it, exactly one of which is set.
type CompileResult struct {
	SPIRV []byte
	Err   error
}

// CompileTouched drains the touched set and returns a lazy sequence that
// compiles each touched shader to SPIR-V as it is pulled.
//
// The sequence is finite, single-pass, and performs file I/O plus an
// external compiler invocation per element, only when that element is
// consumed. Iteration order across paths is unspecified. A failed drain
// aborts before any sequence is produced; a failed compilation does not
// abort the sequence, it is reported as that element's CompileResult.
func (w *Watcher) CompileTouched(ctx context.Context) (iter.Seq2[string, CompileResult], error) {
	touched, err := w.PathsTouched()
	if err != nil {
		return nil, err
	}
	seq := func(yield func(string, CompileResult) bool) {
		for path := range touched {
			spirv, compileErr := CompileFile(ctx, w.compiler, path)
			if !yield(path, CompileResult{SPIRV: spirv, Err: compileErr}) {
				return
			}
		}
	}
	return seq, nil
}

// pump merges fsnotify's event and error channels into the Watcher's single
// ordered channel. The queue between the two is unbounded so the producer
// side never blocks on a slow consumer. When fsnotify closes both channels
// the queue is drained and the output channel closed, which is what turns a
// Close call into ErrChannelClosed on the consumer side.
func (w *Watcher) pump(out chan<- rawEvent) {
	defer close(out)

	var queue []rawEvent
	events, errs := w.fw.Events, w.fw.Errors
	for events != nil || errs != nil || len(queue) > 0 {
		var send chan<- rawEvent
		var head rawEvent
		if len(queue) > 0 {
			send = out
			head = queue[0]
		}
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if w.recursive && ev.Op.Has(fsnotify.Create) {
				// New directories under a watched tree must be
				// registered or edits inside them go unseen.
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addTree(w.fw, ev.Name)
				}
			}
			queue = append(queue, rawEvent{paths: []string{ev.Name}})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			queue = append(queue, rawEvent{err: err})
		case send <- head:
			queue = queue[1:]
		}
	}
}

// addTree walks root and registers every directory with the watcher.
// Directories that cannot be read are skipped rather than failing the
// whole walk.
func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable entries, keep walking
		}
		if !d.IsDir() {
			return nil
		}
		return fw.Add(path)
	})
}
