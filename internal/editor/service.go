// Package editor wires documents, grid sessions, and syncers together. It
// owns the registry of open table sessions keyed by document path; nothing
// here is a singleton.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridmark/gridmark/internal/core/config"
	"github.com/gridmark/gridmark/internal/core/document"
	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/logging"
	"github.com/gridmark/gridmark/internal/core/syncer"
	"github.com/gridmark/gridmark/internal/core/table"
	"github.com/gridmark/gridmark/pkg/kv"
)

// ErrNoTable indicates the requested location holds no table. This is an
// informational condition, not a failure of the document provider.
var ErrNoTable = errors.New("no table found at this location")

// Handle bundles everything belonging to one open table session.
type Handle struct {
	Doc     document.Provider
	Session *grid.Session
	Syncer  *syncer.Syncer
	Watcher *Watcher
	Span    table.Span // span at open time; stale after the first edit
}

// Close tears the session down: the watcher stops, pending write-backs are
// flushed, and the change-notifier subscription ends with it.
func (h *Handle) Close() {
	if h.Watcher != nil {
		h.Watcher.Close()
	}
	if h.Syncer != nil {
		h.Syncer.Close()
	}
}

// Service opens and tracks table sessions.
type Service struct {
	cfg      *config.Config
	bus      *eventbus.EventBus
	sessions *kv.Store[string, *Handle]
	log      zerolog.Logger
}

// NewService creates the editor service.
func NewService(cfg *config.Config, bus *eventbus.EventBus) *Service {
	return &Service{
		cfg:      cfg,
		bus:      bus,
		sessions: kv.New[string, *Handle](),
		log:      logging.Component("editor"),
	}
}

// Open locates the table at line in the document at path and builds a full
// session around it: grid session, syncer, and file watcher. line < 0 means
// "the first table in the document". Re-opening an already open document
// returns the existing handle.
func (s *Service) Open(path string, line int) (*Handle, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if h, ok := s.sessions.Get(path); ok {
		return h, nil
	}

	doc := document.NewFile(path)
	text, err := doc.Text()
	if err != nil {
		return nil, err
	}

	span, err := locate(text, line)
	if err != nil {
		return nil, err
	}

	g := table.Decode(span.Text)
	if g.IsEmpty() {
		return nil, fmt.Errorf("line %d: %w", span.StartLine, ErrNoTable)
	}

	sess := grid.NewSession(g, grid.Options{
		DefaultColumnWidth: s.cfg.Editor.DefaultColumnWidth,
		RowIndexMode:       s.cfg.Editor.RowIndexMode,
		OnChange: func(snap grid.Snapshot) {
			s.bus.PublishGridChanged(eventbus.GridChangedPayload{
				DocumentPath: path,
				Snapshot:     snap,
			})
		},
	})

	sy := syncer.New(doc, sess, s.bus, span, time.Duration(s.cfg.Editor.DebounceMS)*time.Millisecond)
	sy.Register()

	watcher, err := NewWatcher(path, s.bus)
	if err != nil {
		s.log.Warn().Err(err).Str("doc", path).Msg("file watcher unavailable, external edits will not reconcile")
	}

	h := &Handle{Doc: doc, Session: sess, Syncer: sy, Watcher: watcher, Span: span}
	s.sessions.Set(path, h)

	s.log.Debug().
		Str("doc", path).
		Int("start", span.StartLine).
		Int("end", span.EndLine).
		Msg("table session opened")

	return h, nil
}

// Close tears down the session for path, if open.
func (s *Service) Close(path string) {
	if h, ok := s.sessions.Get(path); ok {
		h.Close()
		s.sessions.Delete(path)
	}
}

// CloseAll tears down every open session.
func (s *Service) CloseAll() {
	s.sessions.Range(func(path string, h *Handle) bool {
		h.Close()
		return true
	})
	for _, path := range s.sessions.Keys() {
		s.sessions.Delete(path)
	}
}

func locate(text string, line int) (table.Span, error) {
	if line >= 0 {
		span, ok := table.FindTableAt(text, line)
		if !ok {
			return table.Span{}, fmt.Errorf("line %d: %w", line, ErrNoTable)
		}
		return span, nil
	}

	spans := table.FindAll(text)
	if len(spans) == 0 {
		return table.Span{}, ErrNoTable
	}
	return spans[0], nil
}
