package eventbus

import (
	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/notify"
	"github.com/gridmark/gridmark/internal/core/table"
)

// GridChangedPayload is emitted after every grid session mutation with the
// post-mutation snapshot the presentation layer re-renders from.
type GridChangedPayload struct {
	DocumentPath string
	Snapshot     grid.Snapshot
}

// DocumentChangedPayload is emitted when the backing document text changed
// for any reason, including gridmark's own writes.
type DocumentChangedPayload struct {
	DocumentPath string
}

// TableSyncedPayload is emitted after a grid was written back to its document.
type TableSyncedPayload struct {
	DocumentPath string
	Span         table.Span
}

// WriteDroppedPayload is emitted when a write-back was dropped because its
// re-located span no longer resolves to a table.
type WriteDroppedPayload struct {
	DocumentPath string
}

// NotificationPublishedPayload carries a user-facing notification.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}

// PublishGridChanged publishes a grid.changed event.
func (bus *EventBus) PublishGridChanged(p GridChangedPayload) {
	bus.send(EventGridChanged, p)
}

// SubscribeGridChanged registers a handler for grid.changed events.
func (bus *EventBus) SubscribeGridChanged(fn func(GridChangedPayload)) {
	bus.subscribe(EventGridChanged, func(payload any) {
		if p, ok := payload.(GridChangedPayload); ok {
			fn(p)
		}
	})
}

// PublishDocumentChanged publishes a document.changed event.
func (bus *EventBus) PublishDocumentChanged(p DocumentChangedPayload) {
	bus.send(EventDocumentChanged, p)
}

// SubscribeDocumentChanged registers a handler for document.changed events.
func (bus *EventBus) SubscribeDocumentChanged(fn func(DocumentChangedPayload)) {
	bus.subscribe(EventDocumentChanged, func(payload any) {
		if p, ok := payload.(DocumentChangedPayload); ok {
			fn(p)
		}
	})
}

// PublishTableSynced publishes a table.synced event.
func (bus *EventBus) PublishTableSynced(p TableSyncedPayload) {
	bus.send(EventTableSynced, p)
}

// SubscribeTableSynced registers a handler for table.synced events.
func (bus *EventBus) SubscribeTableSynced(fn func(TableSyncedPayload)) {
	bus.subscribe(EventTableSynced, func(payload any) {
		if p, ok := payload.(TableSyncedPayload); ok {
			fn(p)
		}
	})
}

// PublishWriteDropped publishes a write.dropped event.
func (bus *EventBus) PublishWriteDropped(p WriteDroppedPayload) {
	bus.send(EventWriteDropped, p)
}

// SubscribeWriteDropped registers a handler for write.dropped events.
func (bus *EventBus) SubscribeWriteDropped(fn func(WriteDroppedPayload)) {
	bus.subscribe(EventWriteDropped, func(payload any) {
		if p, ok := payload.(WriteDroppedPayload); ok {
			fn(p)
		}
	})
}

// PublishNotificationPublished publishes a notification.published event.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

// SubscribeNotificationPublished registers a handler for notification.published events.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(payload any) {
		if p, ok := payload.(NotificationPublishedPayload); ok {
			fn(p)
		}
	})
}
