package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/adagency/backoffice/internal/domain/shared"
)

// AuditHandler logs every ledger event for the ledger audit trail.
// It subscribes as a wildcard handler.
type AuditHandler struct {
	logger *zap.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(logger *zap.Logger) *AuditHandler {
	return &AuditHandler{logger: logger.Named("audit")}
}

// Handle logs the event
func (h *AuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty slice so the handler receives all events
func (h *AuditHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*AuditHandler)(nil)
