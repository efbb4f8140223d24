package eventbus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/eventbus/testbus"
	"github.com/gridmark/gridmark/internal/core/notify"
	"github.com/gridmark/gridmark/internal/core/table"
)

func latestNotificationPayload(tb *testbus.Bus, t *testing.T) eventbus.NotificationPublishedPayload {
	t.Helper()
	tb.AssertPublished(t, eventbus.EventNotificationPublished)

	var payload eventbus.NotificationPublishedPayload
	for _, e := range tb.Events() {
		if e.Event != eventbus.EventNotificationPublished {
			continue
		}
		p, ok := e.Payload.(eventbus.NotificationPublishedPayload)
		require.True(t, ok)
		payload = p
	}

	return payload
}

func TestNotificationRouter_WriteDropped(t *testing.T) {
	tb := testbus.New(t)
	eventbus.NewNotificationRouter(tb.EventBus).Register()

	tb.PublishWriteDropped(eventbus.WriteDroppedPayload{DocumentPath: "tasks.md"})
	p := latestNotificationPayload(tb, t)

	assert.Equal(t, notify.LevelWarning, p.Level)
	assert.Contains(t, p.Message, "tasks.md")
}

func TestNotificationRouter_TableSynced(t *testing.T) {
	tb := testbus.New(t)
	eventbus.NewNotificationRouter(tb.EventBus).Register()

	tb.PublishTableSynced(eventbus.TableSyncedPayload{
		DocumentPath: "tasks.md",
		Span:         table.Span{StartLine: 0, EndLine: 2},
	})
	p := latestNotificationPayload(tb, t)

	assert.Equal(t, notify.LevelInfo, p.Level)
	assert.Contains(t, p.Message, "tasks.md")
}

func TestNotificationRouter_DocumentChanged_doesNotPublish(t *testing.T) {
	tb := testbus.New(t)
	eventbus.NewNotificationRouter(tb.EventBus).Register()

	tb.PublishDocumentChanged(eventbus.DocumentChangedPayload{DocumentPath: "tasks.md"})
	tb.AssertNotPublished(t, eventbus.EventNotificationPublished, 100*time.Millisecond)
}
