package recordstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PGStore keeps every logical table in a single JSONB relation, which lets
// the loosely-typed record model live in Postgres without per-table DDL.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// EnsureSchema creates the backing relation if missing.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			logical_table text NOT NULL,
			id text NOT NULL,
			data jsonb NOT NULL DEFAULT '{}'::jsonb,
			created_at timestamptz NOT NULL DEFAULT now(),
			PRIMARY KEY (logical_table, id)
		)`)
	return err
}

func (s *PGStore) List(ctx context.Context, table string) ([]Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, data, created_at
		FROM records
		WHERE logical_table = $1
		ORDER BY created_at, id`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var id string
		var raw []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &raw, &createdAt); err != nil {
			return nil, err
		}
		rec := Record{}
		_ = json.Unmarshal(raw, &rec)
		rec["id"] = id
		if _, ok := rec["created_at"]; !ok {
			rec["created_at"] = createdAt.Format("2006-01-02T15:04:05Z07:00")
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PGStore) Create(ctx context.Context, table string, data Record) (Record, error) {
	rec := data.Clone()
	id := rec.ID()
	if id == "" {
		id = uuid.New().String()
	}
	delete(rec, "id")
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var createdAt time.Time
	err = s.pool.QueryRow(ctx, `
		INSERT INTO records (logical_table, id, data)
		VALUES ($1, $2, $3)
		RETURNING created_at`, table, id, raw).Scan(&createdAt)
	if err != nil {
		return nil, err
	}
	rec["id"] = id
	if _, ok := rec["created_at"]; !ok {
		rec["created_at"] = createdAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return rec, nil
}

func (s *PGStore) Update(ctx context.Context, table string, id string, data Record) (Record, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback(ctx)
		}
	}()

	var raw []byte
	err = tx.QueryRow(ctx, `
		SELECT data FROM records
		WHERE logical_table = $1 AND id = $2
		FOR UPDATE`, table, id).Scan(&raw)
	if err != nil {
		return nil, ErrNotFound
	}
	rec := Record{}
	_ = json.Unmarshal(raw, &rec)
	for k, v := range data {
		if k == "id" {
			continue
		}
		rec[k] = v
	}
	merged, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE records SET data = $3
		WHERE logical_table = $1 AND id = $2`, table, id, merged); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true
	rec["id"] = id
	return rec, nil
}

func (s *PGStore) Delete(ctx context.Context, table string, id string) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM records
		WHERE logical_table = $1 AND id = $2`, table, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany removes a batch of records in one statement.
func (s *PGStore) DeleteMany(ctx context.Context, table string, ids []string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM records
		WHERE logical_table = $1 AND id = ANY($2)`, table, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
