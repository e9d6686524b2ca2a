package contract

import (
	"context"

	"banking-assistant-be/pkg/store"
)

// ISessionRepository is the injected session context store. Implementations
// must be safe for concurrent access from independent sessions; ordering of
// concurrent requests on the same session id is the orchestrator's problem,
// not the store's.
//
// Entries carry a TTL so abandoned mid-flow dialogues (a user who never
// picks a bank) do not accumulate for the life of the process.
type ISessionRepository interface {
	Get(ctx context.Context, sessionID string) (*store.SessionContext, bool)
	Save(ctx context.Context, sessionID string, sctx *store.SessionContext)
	// Update applies mutate to the stored context in place. Returns false
	// when no context exists for the session id.
	Update(ctx context.Context, sessionID string, mutate func(*store.SessionContext)) bool
	Delete(ctx context.Context, sessionID string)
}
