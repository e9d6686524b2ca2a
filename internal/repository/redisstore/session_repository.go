package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"banking-assistant-be/internal/repository/contract"
	"banking-assistant-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "assistant:session:"

// SessionRepository keeps session contexts in Redis with a key TTL, for
// deployments where assistant instances share dialogue state.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ contract.ISessionRepository = &SessionRepository{}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*store.SessionContext, bool) {
	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}
	var sctx store.SessionContext
	if err := json.Unmarshal(data, &sctx); err != nil {
		// Corrupt entry; drop it rather than poison the dialogue.
		r.client.Del(ctx, keyPrefix+sessionID)
		return nil, false
	}
	return &sctx, true
}

func (r *SessionRepository) Save(ctx context.Context, sessionID string, sctx *store.SessionContext) {
	data, err := json.Marshal(sctx)
	if err != nil {
		return
	}
	r.client.Set(ctx, keyPrefix+sessionID, data, r.ttl)
}

func (r *SessionRepository) Update(ctx context.Context, sessionID string, mutate func(*store.SessionContext)) bool {
	sctx, found := r.Get(ctx, sessionID)
	if !found {
		return false
	}
	mutate(sctx)
	r.Save(ctx, sessionID, sctx)
	return true
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) {
	r.client.Del(ctx, keyPrefix+sessionID)
}
