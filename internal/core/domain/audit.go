package domain

import "time"

// AuditEvent records a successful mutation performed through the API.
type AuditEvent struct {
	ID       string    `json:"id" bson:"_id,omitempty"`
	ActorID  string    `json:"actorId" bson:"actor_id"`
	Action   string    `json:"action" bson:"action"`
	Entity   string    `json:"entity" bson:"entity"`
	EntityID string    `json:"entityId" bson:"entity_id"`
	At       time.Time `json:"at" bson:"at"`
}

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)
