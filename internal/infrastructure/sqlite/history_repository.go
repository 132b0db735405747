package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/vimline/internal/history"
)

// entryColumns is the list of columns to select for history queries.
const entryColumns = `id, guid, prompt, value, submitted_at`

// historyRepository implements history.Repository using SQLite.
type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a history repository on an open database.
func NewHistoryRepository(db *sql.DB) history.Repository {
	return &historyRepository{db: db}
}

// Ensure historyRepository implements history.Repository.
var _ history.Repository = (*historyRepository)(nil)

// scanEntry scans a row into an entryModel.
func scanEntry(scanner interface{ Scan(...any) error }) (entryModel, error) {
	var m entryModel
	err := scanner.Scan(&m.ID, &m.GUID, &m.Prompt, &m.Value, &m.SubmittedAt)
	return m, err
}

func (r *historyRepository) Save(ctx context.Context, entry *history.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	m := toEntryModel(entry)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO history (guid, prompt, value, submitted_at) VALUES (?, ?, ?, ?)`,
		m.GUID, m.Prompt, m.Value, m.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	entry.ID = id
	return nil
}

func (r *historyRepository) Recent(ctx context.Context, prompt string, limit int) ([]history.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM history`
	args := []any{}
	if prompt != "" {
		query += ` WHERE prompt = ?`
		args = append(args, prompt)
	}
	query += ` ORDER BY submitted_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []history.Entry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, m.toDomain())
	}
	return entries, rows.Err()
}

func (r *historyRepository) FindByGUID(ctx context.Context, guid string) (history.Entry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM history WHERE guid = ?`, guid)

	m, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return history.Entry{}, history.ErrNotFound
	}
	if err != nil {
		return history.Entry{}, fmt.Errorf("failed to find history entry: %w", err)
	}
	return m.toDomain(), nil
}

func (r *historyRepository) DeleteByGUID(ctx context.Context, guid string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE guid = ?`, guid)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return history.ErrNotFound
	}
	return nil
}

// Prune keeps the newest keep entries per prompt and deletes the rest.
// A keep of zero or less is a no-op (unlimited history).
func (r *historyRepository) Prune(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx, `
		DELETE FROM history WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY prompt ORDER BY submitted_at DESC, id DESC
				) AS rn FROM history
			) WHERE rn <= ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Clear removes all entries.
func (r *historyRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
