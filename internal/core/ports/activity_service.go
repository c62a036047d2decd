package ports

import (
	"context"
	"time"
)

// ActivityInput is the DTO handed from resource services to the activity
// pipeline.
type ActivityInput struct {
	ActorID      string
	ActorName    string
	Action       string
	ResourceType string
	ResourceID   string
	Text         string
	Timestamp    time.Time
}

// ActivityService processes activity events off the request path.
type ActivityService interface {
	Process(ctx context.Context, event ActivityInput) error
}

// ActivityRecorder is the fire-and-forget hook resource services use to emit
// events. Implementations must never block the request and never surface
// failures to the caller.
type ActivityRecorder interface {
	Record(event ActivityInput)
}
