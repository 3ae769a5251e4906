package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

const historyColumns = `id, database_name, mode, difficulty, data_structure, pattern,
	count, format, output, titles, created_at_ns`

// Record appends a generation record.
func (s *historyStore) Record(ctx context.Context, record domain.GenerationRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}

	titles := record.Titles
	if titles == nil {
		titles = []string{}
	}
	titlesJSON, err := json.Marshal(titles)
	if err != nil {
		return fmt.Errorf("marshalling titles: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO generation_history (`+historyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Database, string(record.Mode),
		nullString(record.Criteria.Difficulty), nullString(record.Criteria.DataStructure),
		nullString(record.Criteria.Pattern), record.Criteria.Count,
		string(record.Format), nullString(record.Output), string(titlesJSON),
		nullableUnixNano(record.CreatedAt))
	if err != nil {
		return fmt.Errorf("recording generation: %w", err)
	}
	return nil
}

// List returns records newest first. A limit <= 0 returns all.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+historyColumns+`
		FROM generation_history
		ORDER BY COALESCE(created_at_ns, 0) DESC, seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	records := []domain.GenerationRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return records, nil
}

// Get retrieves a record by session ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+historyColumns+`
		FROM generation_history WHERE id = ?
	`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Clear removes every record.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM generation_history"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.GenerationRecord, error) {
	var record domain.GenerationRecord
	var mode, format, titlesJSON string
	var difficulty, dataStructure, pattern, output sql.NullString
	var createdAt sql.NullInt64

	if err := row.Scan(&record.ID, &record.Database, &mode,
		&difficulty, &dataStructure, &pattern, &record.Criteria.Count,
		&format, &output, &titlesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning history record: %w", err)
	}

	record.Mode = domain.GenerationMode(mode)
	record.Format = domain.OutputFormat(format)
	record.Criteria.Difficulty = difficulty.String
	record.Criteria.DataStructure = dataStructure.String
	record.Criteria.Pattern = pattern.String
	record.Output = output.String
	if createdAt.Valid {
		record.CreatedAt = time.Unix(0, createdAt.Int64)
	}

	if err := json.Unmarshal([]byte(titlesJSON), &record.Titles); err != nil {
		return nil, fmt.Errorf("unmarshalling titles: %w", err)
	}
	return &record, nil
}

// nullString returns nil for empty strings.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullableUnixNano returns nil for the zero time.
func nullableUnixNano(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixNano()
}
