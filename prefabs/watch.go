package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultQuietPeriod is how long a spec file must stay untouched after a
// change before it is re-read.
const DefaultQuietPeriod = 100 * time.Millisecond

// SpecUpdate is a fresh read of a watched spec. When Err is set the file no
// longer loads and Spec is nil.
type SpecUpdate struct {
	Spec    *SimSpec
	ModTime time.Time
	Err     error
}

// SpecWatcher re-reads one spec file whenever it changes on disk and
// delivers the decoded result on Updates. Bursts of writes are coalesced
// into a single read once the file has been quiet for the quiet period.
type SpecWatcher struct {
	fs    *fsnotify.Watcher
	path  string
	quiet time.Duration
	last  time.Time

	Updates chan SpecUpdate

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// WatchSpec watches name inside dir.
func WatchSpec(dir, name string, quiet time.Duration) (*SpecWatcher, error) {
	path := filepath.Join(dir, filepath.FromSlash(cleanPrefabPath(name)))
	// The baseline is taken before watching starts so an edit landing
	// right after WatchSpec returns is still newer than it.
	last, _ := modTime(path)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
	}
	// Watch the directory, not the file, so saves that replace the file
	// are still seen.
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
	}
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}

	w := &SpecWatcher{
		fs:      fw,
		path:    path,
		quiet:   quiet,
		last:    last,
		Updates: make(chan SpecUpdate, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *SpecWatcher) Path() string {
	return w.path
}

func (w *SpecWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
		<-w.done
		close(w.Updates)
	})
	return err
}

func (w *SpecWatcher) run() {
	defer close(w.done)

	last := w.last
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.quiet)
			} else {
				timer.Reset(w.quiet)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if !w.send(SpecUpdate{Err: fmt.Errorf("prefabs: watch %s: %w", w.path, err)}) {
				return
			}
		case <-fire:
			fire = nil
			mod, ok := modTime(w.path)
			if ok && !mod.After(last) {
				continue
			}
			last = mod
			if !w.send(w.read(mod)) {
				return
			}
		case <-w.stop:
			return
		}
	}
}

func (w *SpecWatcher) read(mod time.Time) SpecUpdate {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return SpecUpdate{ModTime: mod, Err: fmt.Errorf("prefabs: read %s: %w", w.path, err)}
	}
	spec, err := DecodeSimSpec(data)
	if err != nil {
		return SpecUpdate{ModTime: mod, Err: fmt.Errorf("prefabs: %s: %w", w.path, err)}
	}
	return SpecUpdate{Spec: spec, ModTime: mod}
}

func (w *SpecWatcher) send(u SpecUpdate) bool {
	select {
	case w.Updates <- u:
		return true
	case <-w.stop:
		return false
	}
}

func modTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
