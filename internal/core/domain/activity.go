package domain

import "time"

// Actions recorded in the activity feed.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionCompleted = "completed"
	ActionReopened  = "reopened"
	ActionDeleted   = "deleted"
)

// Resource types referenced by activity events.
const (
	ResourceTodo     = "todo"
	ResourceReminder = "reminder"
)

// ActivityEvent is one entry in the audit trail of resource changes.
type ActivityEvent struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ActorID      string    `json:"actor_id" bson:"actor_id"`
	ActorName    string    `json:"actor_name" bson:"actor_name"`
	Action       string    `json:"action" bson:"action"`
	ResourceType string    `json:"resource_type" bson:"resource_type"`
	ResourceID   string    `json:"resource_id" bson:"resource_id"`
	Text         string    `json:"text,omitempty" bson:"text,omitempty"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
}
