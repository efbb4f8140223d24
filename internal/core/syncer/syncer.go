// Package syncer reconciles a grid session with the document span it was
// decoded from, in both directions, without update loops or stale-range
// corruption.
package syncer

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gridmark/gridmark/internal/core/document"
	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/logging"
	"github.com/gridmark/gridmark/internal/core/table"
)

// DefaultDebounce is the delay used to coalesce rapid grid mutations into a
// single document write. A tunable, not a correctness requirement.
const DefaultDebounce = 300 * time.Millisecond

// Syncer owns the write-back and reconciliation discipline for one table in
// one document. Outbound: grid mutations are debounced, then encoded and
// written into a freshly re-located span. Inbound: document changes are
// re-located, decoded, and offered to the session's Reconcile.
type Syncer struct {
	doc     document.Provider
	session *grid.Session
	bus     *eventbus.EventBus
	delay   time.Duration
	log     zerolog.Logger

	mu          sync.Mutex
	anchor      int    // table's starting line at last trusted location
	lastWritten string // most recent text this syncer wrote, for echo suppression
	closed      bool
	debounce    *debouncer
}

// New creates a syncer anchored at the given span. delay <= 0 selects
// DefaultDebounce.
func New(doc document.Provider, session *grid.Session, bus *eventbus.EventBus, span table.Span, delay time.Duration) *Syncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Syncer{
		doc:      doc,
		session:  session,
		bus:      bus,
		delay:    delay,
		log:      logging.Component("syncer"),
		anchor:   span.StartLine,
		debounce: newDebouncer(delay),
	}
}

// Register subscribes the syncer to bus events for its document. The bus has
// no unsubscribe; a closed syncer ignores events instead, so a document can
// be reopened without the stale syncer interfering.
func (s *Syncer) Register() {
	s.bus.SubscribeGridChanged(func(p eventbus.GridChangedPayload) {
		if p.DocumentPath == s.doc.Path() && !s.isClosed() {
			s.GridChanged()
		}
	})
	s.bus.SubscribeDocumentChanged(func(p eventbus.DocumentChangedPayload) {
		if p.DocumentPath == s.doc.Path() && !s.isClosed() {
			s.DocumentChanged()
		}
	})
}

func (s *Syncer) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// GridChanged schedules a debounced write-back. Rapid mutations collapse
// into one document edit.
func (s *Syncer) GridChanged() {
	s.debounce.Schedule(s.Flush)
}

// Flush writes the current grid back to the document immediately. The span
// is re-located from the anchor line first; prior writes may have moved the
// table. A span that no longer resolves means the table was removed by the
// user, and the write is silently dropped.
func (s *Syncer) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := table.Encode(s.session.Grid())
	if text == "" {
		return
	}

	docText, err := s.doc.Text()
	if err != nil {
		s.log.Debug().Err(err).Msg("document unavailable, write-back dropped")
		return
	}

	span, ok := table.FindTableAt(docText, s.anchor)
	if !ok {
		s.log.Debug().Int("anchor", s.anchor).Msg("span no longer resolves, write-back dropped")
		s.bus.PublishWriteDropped(eventbus.WriteDroppedPayload{DocumentPath: s.doc.Path()})
		return
	}

	// Encode appends a trailing newline; the span text never carries one.
	if strings.TrimRight(text, "\n") == span.Text {
		return
	}

	if err := s.doc.ReplaceRange(span.StartLine, span.EndLine, text); err != nil {
		s.log.Debug().Err(err).Msg("replace failed, write-back dropped")
		s.bus.PublishWriteDropped(eventbus.WriteDroppedPayload{DocumentPath: s.doc.Path()})
		return
	}

	s.anchor = span.StartLine
	s.lastWritten = strings.TrimRight(text, "\n")
	s.bus.PublishTableSynced(eventbus.TableSyncedPayload{DocumentPath: s.doc.Path(), Span: span})
}

// DocumentChanged reconciles an independent change of the backing text into
// the session. The syncer's own write echo is suppressed, and Reconcile's
// structural-equality guard prevents redundant churn beyond that.
func (s *Syncer) DocumentChanged() {
	s.mu.Lock()
	defer s.mu.Unlock()

	docText, err := s.doc.Text()
	if err != nil {
		s.log.Debug().Err(err).Msg("document unavailable, reconciliation skipped")
		return
	}

	span, ok := table.FindTableAt(docText, s.anchor)
	if !ok {
		// An external edit above the table shifts it off the anchor line.
		// Re-anchor on the nearest surviving table before giving up, or
		// every later write-back would be dropped against a dead anchor.
		span, ok = nearestSpan(docText, s.anchor)
		if !ok {
			return
		}
		s.log.Debug().Int("anchor", s.anchor).Int("start", span.StartLine).Msg("table re-anchored after external shift")
	}

	if span.Text == s.lastWritten {
		return
	}

	s.anchor = span.StartLine
	if s.session.Reconcile(table.Decode(span.Text)) {
		s.log.Debug().Int("start", span.StartLine).Int("end", span.EndLine).Msg("grid reconciled from document")
	}
}

// Close cancels any pending write-back timer, flushes outstanding state, and
// detaches the syncer from bus traffic.
func (s *Syncer) Close() {
	s.debounce.Cancel()
	s.Flush()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// nearestSpan scans the whole document for the table span closest to the
// anchor line. Distance is zero when the anchor falls inside a span.
func nearestSpan(docText string, anchor int) (table.Span, bool) {
	var best table.Span
	bestDist := -1
	for _, span := range table.FindAll(docText) {
		dist := 0
		switch {
		case anchor < span.StartLine:
			dist = span.StartLine - anchor
		case anchor > span.EndLine:
			dist = anchor - span.EndLine
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = span, dist
		}
	}
	return best, bestDist >= 0
}

// Anchor returns the table's last trusted starting line.
func (s *Syncer) Anchor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchor
}
