package eventbus_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/eventbus/testbus"
	"github.com/gridmark/gridmark/internal/core/table"
)

func TestRegisterDebugLogger(t *testing.T) {
	tb := testbus.New(t)

	// Register with a nop logger — verifies no panic.
	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.Nop())

	// Publish a few events to exercise all subscriber paths.
	tb.PublishDocumentChanged(eventbus.DocumentChangedPayload{DocumentPath: "notes.md"})
	tb.PublishTableSynced(eventbus.TableSyncedPayload{
		DocumentPath: "notes.md",
		Span:         table.Span{StartLine: 2, EndLine: 4},
	})
	tb.PublishWriteDropped(eventbus.WriteDroppedPayload{DocumentPath: "notes.md"})

	// Wait for last event to confirm all dispatched without panic.
	tb.AssertPublished(t, eventbus.EventWriteDropped)
}
