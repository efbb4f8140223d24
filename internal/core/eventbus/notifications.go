package eventbus

import (
	"fmt"

	"github.com/gridmark/gridmark/internal/core/notify"
)

// NotificationRouter maps domain events to user-facing notifications.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-notification mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeWriteDropped(func(p WriteDroppedPayload) {
		r.notifyf(notify.LevelWarning, "table no longer found in %s, edit not written", p.DocumentPath)
	})

	r.bus.SubscribeTableSynced(func(p TableSyncedPayload) {
		r.notifyf(notify.LevelInfo, "table written to %s", p.DocumentPath)
	})
}

func (r *NotificationRouter) notifyf(level notify.Level, format string, args ...any) {
	r.bus.PublishNotificationPublished(NotificationPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}
