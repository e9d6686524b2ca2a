package memory

import (
	"context"
	"time"

	"banking-assistant-be/internal/repository/contract"
	"banking-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps session contexts in process memory with TTL
// eviction, so contexts abandoned mid-dialogue expire instead of leaking.
type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.ISessionRepository = &SessionRepository{}

// NewSessionRepository creates a store whose entries expire after ttl and
// which purges expired items every 10 minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Get(_ context.Context, sessionID string) (*store.SessionContext, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.SessionContext), true
	}
	return nil, false
}

func (r *SessionRepository) Save(_ context.Context, sessionID string, sctx *store.SessionContext) {
	r.cache.Set(sessionID, sctx, cache.DefaultExpiration)
}

func (r *SessionRepository) Update(ctx context.Context, sessionID string, mutate func(*store.SessionContext)) bool {
	sctx, found := r.Get(ctx, sessionID)
	if !found {
		return false
	}
	mutate(sctx)
	// Re-set to refresh the TTL; an active dialogue should not expire.
	r.cache.Set(sessionID, sctx, cache.DefaultExpiration)
	return true
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) {
	r.cache.Delete(sessionID)
}
