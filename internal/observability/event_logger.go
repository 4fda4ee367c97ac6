package observability

import (
	"context"

	"go.uber.org/zap"

	"github.com/helpdesk/sla-ticket-service/internal/events"
)

// EventLogger writes every published domain event to the structured log.
type EventLogger struct {
	logger *zap.Logger
}

// NewEventLogger creates the logger.
func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// RegisterHandlers subscribes to all ticket events.
func (l *EventLogger) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventTicketCreated, l.handle)
	dispatcher.Subscribe(events.EventTicketAssigned, l.handle)
	dispatcher.Subscribe(events.EventTicketStatusChanged, l.handle)
}

func (l *EventLogger) handle(_ context.Context, event events.Event) error {
	l.logger.Info("domain event",
		zap.String("event_type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
