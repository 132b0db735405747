package sqlite

import (
	"time"

	"github.com/zjrosen/vimline/internal/history"
)

// entryModel represents the database row for the history table.
// Times are stored as Unix timestamps.
type entryModel struct {
	ID          int64
	GUID        string
	Prompt      string
	Value       string
	SubmittedAt int64
}

// toEntryModel converts a domain history entry to its database row.
func toEntryModel(e *history.Entry) entryModel {
	return entryModel{
		ID:          e.ID,
		GUID:        e.GUID,
		Prompt:      e.Prompt,
		Value:       e.Value,
		SubmittedAt: e.SubmittedAt.Unix(),
	}
}

// toDomain converts a database row back to a domain entry.
func (m entryModel) toDomain() history.Entry {
	return history.Entry{
		ID:          m.ID,
		GUID:        m.GUID,
		Prompt:      m.Prompt,
		Value:       m.Value,
		SubmittedAt: time.Unix(m.SubmittedAt, 0).UTC(),
	}
}
