package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"floorplan-server/internal/shared/database"

	"github.com/google/uuid"
)

// Repository persists generation records. The core pipeline never touches
// it; a nil repository simply means history is unavailable.
type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) RecordGeneration(ctx context.Context, req Request, result *Result) (*Record, error) {
	programJSON, err := json.Marshal(result.Meta.Program)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal program: %w", err)
	}

	record := &Record{
		ID:        uuid.New(),
		Prompt:    req.Prompt,
		Width:     req.Width,
		Depth:     req.Depth,
		Floors:    req.Floors,
		Program:   result.Meta.Program,
		RoomCount: len(result.Rooms),
	}

	query := `
		INSERT INTO generations (id, prompt, width, depth, floors, program, room_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		record.ID, record.Prompt, record.Width, record.Depth, record.Floors,
		programJSON, record.RoomCount,
	).Scan(&record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert generation record: %w", err)
	}

	return record, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, prompt, width, depth, floors, program, room_count, created_at
		FROM generations
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query generations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var programJSON []byte

		err := rows.Scan(&record.ID, &record.Prompt, &record.Width, &record.Depth,
			&record.Floors, &programJSON, &record.RoomCount, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan generation record: %w", err)
		}

		if err := json.Unmarshal(programJSON, &record.Program); err != nil {
			return nil, fmt.Errorf("failed to unmarshal program for record %s: %w", record.ID, err)
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *Repository) PurgeAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM generations")
	if err != nil {
		return 0, fmt.Errorf("failed to purge generations: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read purge row count: %w", err)
	}

	return deleted, nil
}
