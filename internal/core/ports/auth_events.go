package ports

import (
	"context"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/core/domain"
)

// AuthEventRecorder persists a single auth event.
type AuthEventRecorder interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuthEventSink accepts auth events for asynchronous recording. Enqueue must
// not block the caller beyond buffering; request handling never waits on
// event persistence.
type AuthEventSink interface {
	Enqueue(event domain.AuthEvent)
}
