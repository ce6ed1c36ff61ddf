package storage

import "context"

// ScratchStore is a flat key/value space for small JSON documents.
type ScratchStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Purger is a store whose entries lapse and must be removed periodically.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionScratch is the view of a ScratchStore that one browser session sees.
// Keys are prefixed with the session id so sessions never share entries.
type SessionScratch struct {
	Store     ScratchStore
	SessionID string
}

func ForSession(store ScratchStore, sessionID string) *SessionScratch {
	return &SessionScratch{Store: store, SessionID: sessionID}
}

func SessionKey(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}

func (s *SessionScratch) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.Store.Get(ctx, SessionKey(s.SessionID, key))
}

func (s *SessionScratch) Set(ctx context.Context, key string, value []byte) error {
	return s.Store.Set(ctx, SessionKey(s.SessionID, key), value)
}

func (s *SessionScratch) Delete(ctx context.Context, key string) error {
	return s.Store.Delete(ctx, SessionKey(s.SessionID, key))
}

var (
	_ ScratchStore = (*MemoryScratchStore)(nil)
	_ ScratchStore = (*RedisScratchStore)(nil)
	_ ScratchStore = (*PostgresScratchStore)(nil)
	_ ScratchStore = (*SessionScratch)(nil)

	_ Purger = (*MemoryScratchStore)(nil)
	_ Purger = (*PostgresScratchStore)(nil)
)
