package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rcoelho/ythist"
)

// Compile-time interface verification.
var _ ythist.HistoryService = (*HistoryService)(nil)

// HistoryService implements ythist.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// hashRecord computes an xxHash content fingerprint and returns it as hex.
// Duplicate view events hash identically; that is expected and they are
// stored separately by position.
func hashRecord(r *ythist.Record) string {
	h := xxhash.Sum64String(r.Title + "\x00" + r.URL + "\x00" + r.ViewedAtRaw)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveRecords replaces the stored history with the given records, keeping
// their order as positions. The replacement is transactional: the previous
// history survives any mid-save failure.
func (s *HistoryService) SaveRecords(ctx context.Context, records []*ythist.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (id, position, title, url, channel, channel_url, viewed_at, viewed_at_raw, detail, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for i, r := range records {
		var viewedAt any
		if r.ViewedAt != nil {
			viewedAt = r.ViewedAt.Format(time.RFC3339)
		}
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), i, r.Title, r.URL, r.Channel, r.ChannelURL,
			viewedAt, r.ViewedAtRaw, r.Detail, hashRecord(r), createdAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecords returns all stored records in extraction order.
func (s *HistoryService) ListRecords(ctx context.Context) ([]*ythist.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, url, channel, channel_url, viewed_at, viewed_at_raw, detail
		FROM records
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*ythist.Record{}
	for rows.Next() {
		var r ythist.Record
		var viewedAt sql.NullString
		if err := rows.Scan(&r.Title, &r.URL, &r.Channel, &r.ChannelURL,
			&viewedAt, &r.ViewedAtRaw, &r.Detail); err != nil {
			return nil, err
		}
		if viewedAt.Valid {
			t, err := time.Parse(time.RFC3339, viewedAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse viewed_at: %w", err)
			}
			r.ViewedAt = &t
		}
		records = append(records, &r)
	}
	return records, rows.Err()
}
