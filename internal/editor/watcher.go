package editor

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/logging"
)

// watchDebounce lets a burst of file events settle before one
// document-changed notification goes out.
const watchDebounce = 100 * time.Millisecond

// Watcher observes one document file and publishes document.changed events.
// It watches the containing directory because editors commonly replace files
// via rename, which drops a watch placed on the file itself.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	bus     *eventbus.EventBus
	log     zerolog.Logger
	done    chan struct{}
}

// NewWatcher starts watching the document at path.
func NewWatcher(path string, bus *eventbus.EventBus) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    abs,
		bus:     bus,
		log:     logging.Document("watcher", path),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() {
	close(w.done)
	_ = w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.concerns(event) {
				continue
			}

			// Debounce: wait for changes to settle, then drain the burst.
			time.Sleep(watchDebounce)
			for drained := false; !drained; {
				select {
				case <-w.watcher.Events:
				default:
					drained = true
				}
			}

			w.log.Debug().Str("op", event.Op.String()).Msg("document changed on disk")
			w.bus.PublishDocumentChanged(eventbus.DocumentChangedPayload{DocumentPath: w.path})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Debug().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) concerns(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		name = event.Name
	}
	return name == w.path
}
