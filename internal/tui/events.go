package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/notify"
)

// gridChangedMsg carries a fresh session snapshot for re-render.
type gridChangedMsg struct {
	snapshot grid.Snapshot
}

// syncedMsg reports a completed write-back.
type syncedMsg struct{}

// notificationMsg carries a user-facing notification for the status line.
type notificationMsg struct {
	level   notify.Level
	message string
}

// bridgeEvents subscribes the model's document to bus events and forwards
// them into the Bubble Tea loop through a buffered channel.
func bridgeEvents(bus *eventbus.EventBus, docPath string) chan tea.Msg {
	ch := make(chan tea.Msg, 32)

	forward := func(msg tea.Msg) {
		select {
		case ch <- msg:
		default:
			// Rendering lags; stale snapshots are superseded anyway.
		}
	}

	bus.SubscribeGridChanged(func(p eventbus.GridChangedPayload) {
		if p.DocumentPath == docPath {
			forward(gridChangedMsg{snapshot: p.Snapshot})
		}
	})
	bus.SubscribeTableSynced(func(p eventbus.TableSyncedPayload) {
		if p.DocumentPath == docPath {
			forward(syncedMsg{})
		}
	})
	bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
		forward(notificationMsg{level: p.Level, message: p.Message})
	})

	return ch
}

// waitEvent returns a command that blocks on the next bridged bus event.
func waitEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
