package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

// PostgresScratchStore keeps entries in the scratch_entries table. Expired
// rows are invisible to Get and removed by PurgeExpired.
type PostgresScratchStore struct {
	DB  *sql.DB
	TTL time.Duration
	now func() time.Time
}

func NewPostgresScratchStore(db *sql.DB, ttl time.Duration) *PostgresScratchStore {
	return &PostgresScratchStore{DB: db, TTL: ttl, now: time.Now}
}

func (s *PostgresScratchStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scratch_entries (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			expires_at TIMESTAMPTZ
		)`,
		"CREATE INDEX IF NOT EXISTS scratch_entries_expires_at_idx ON scratch_entries (expires_at)",
	}
	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to ensure scratch schema")
		}
	}
	return nil
}

func (s *PostgresScratchStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx, `
		SELECT value FROM scratch_entries
		WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`,
		key, s.now()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read scratch entry %s", key)
	}
	return value, true, nil
}

func (s *PostgresScratchStore) Set(ctx context.Context, key string, value []byte) error {
	var expiresAt sql.NullTime
	if s.TTL > 0 {
		expiresAt = sql.NullTime{Time: s.now().Add(s.TTL), Valid: true}
	}
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO scratch_entries (key, value, updated_at, expires_at)
		VALUES ($1, $2, now(), $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now(), expires_at = EXCLUDED.expires_at`,
		key, value, expiresAt)
	if err != nil {
		return errors.Wrapf(err, "failed to write scratch entry %s", key)
	}
	return nil
}

func (s *PostgresScratchStore) Delete(ctx context.Context, key string) error {
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM scratch_entries WHERE key = $1", key); err != nil {
		return errors.Wrapf(err, "failed to delete scratch entry %s", key)
	}
	return nil
}

// PurgeExpired deletes expired rows and reports how many went.
func (s *PostgresScratchStore) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := s.DB.ExecContext(ctx,
		"DELETE FROM scratch_entries WHERE expires_at IS NOT NULL AND expires_at <= $1", s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge scratch entries")
	}
	return result.RowsAffected()
}
