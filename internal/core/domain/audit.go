package domain

import "time"

// Entity names used in the audit trail.
const (
	EntityUser           = "user"
	EntitySupportRequest = "support_request"
	EntityKnowledgeBase  = "knowledge_base"
	EntitySparePart      = "spare_part"
	EntityJob            = "job"
	EntityTechnician     = "technician"
)

type AuditAction string

const (
	ActionCreated AuditAction = "created"
	ActionUpdated AuditAction = "updated"
	ActionDeleted AuditAction = "deleted"
)

// AuditEvent is an append-only record of a mutation. Status is set when a
// support request mutation leaves the request in a known lifecycle state.
type AuditEvent struct {
	Entity    string      `json:"entity" bson:"entity"`
	EntityID  string      `json:"entityId" bson:"entityId"`
	Action    AuditAction `json:"action" bson:"action"`
	ActorID   string      `json:"actorId,omitempty" bson:"actorId,omitempty"`
	Fields    []string    `json:"fields,omitempty" bson:"fields,omitempty"`
	Status    string      `json:"status,omitempty" bson:"status,omitempty"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
