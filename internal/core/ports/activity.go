package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

// ActivityRepository persists auth activity entries.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}

// ActivityRecorder processes a single activity entry end to end. It sits
// behind the queue dispatcher's workers.
type ActivityRecorder interface {
	Record(ctx context.Context, activity domain.Activity) error
}

// ActivitySink is the fire-and-forget side the services see. Implementations
// must never block the request path for longer than a channel send.
type ActivitySink interface {
	Enqueue(activity domain.Activity)
}
