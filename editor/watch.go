package editor

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// fileWatchEvent is posted into the tcell event queue when the open
// file changes on disk, so the notification is consumed on the run
// loop like any other input.
type fileWatchEvent struct {
	tcell.EventTime
	op fsnotify.Op
}

type fileWatcher struct {
	watcher *fsnotify.Watcher
}

// newFileWatcher watches the directory containing path (watching the
// file itself misses editors that replace it atomically) and posts an
// event whenever the file is written, created, or renamed over.
func newFileWatcher(screen tcell.Screen, path string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for event := range w.Events {
			if event.Name != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			ev := &fileWatchEvent{op: event.Op}
			ev.SetEventNow()
			screen.PostEvent(ev)
		}
	}()

	return &fileWatcher{watcher: w}, nil
}

func (f *fileWatcher) Close() error {
	return f.watcher.Close()
}
