package service

import (
	"time"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

// record hands a mutation to the audit recorder. A nil recorder disables auditing.
func record(rec ports.AuditRecorder, entity, id string, action domain.AuditAction, actorID string, fields []string, status string) {
	if rec == nil {
		return
	}
	rec.Record(domain.AuditEvent{
		Entity:    entity,
		EntityID:  id,
		Action:    action,
		ActorID:   actorID,
		Fields:    fields,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}
