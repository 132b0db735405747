// Package history holds the domain model for submission history: every value
// submitted through the input is recorded against the prompt that asked for
// it, so hosts can offer recall and auditing.
package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no entry matches the query.
var ErrNotFound = errors.New("history entry not found")

// Entry is one submitted value.
type Entry struct {
	// ID is the storage row id, zero until saved.
	ID int64
	// GUID is the stable external identifier.
	GUID string
	// Prompt is the input title the value was submitted under.
	Prompt string
	// Value is the submitted text.
	Value string
	// SubmittedAt is when the value was submitted.
	SubmittedAt time.Time
}

// NewEntry creates an unsaved entry with a fresh GUID.
func NewEntry(prompt, value string) Entry {
	return Entry{
		GUID:        uuid.NewString(),
		Prompt:      prompt,
		Value:       value,
		SubmittedAt: time.Now().UTC(),
	}
}

// Validate reports whether the entry can be persisted.
func (e Entry) Validate() error {
	if e.GUID == "" {
		return errors.New("entry guid is required")
	}
	if strings.TrimSpace(e.Value) == "" {
		return errors.New("entry value is empty")
	}
	return nil
}

// Repository persists submission history.
type Repository interface {
	// Save inserts the entry and sets its ID.
	Save(ctx context.Context, entry *Entry) error
	// Recent returns up to limit entries for a prompt, newest first.
	// An empty prompt matches all prompts.
	Recent(ctx context.Context, prompt string, limit int) ([]Entry, error)
	// FindByGUID returns the entry with the given GUID, or ErrNotFound.
	FindByGUID(ctx context.Context, guid string) (Entry, error)
	// DeleteByGUID removes the entry with the given GUID, or ErrNotFound.
	DeleteByGUID(ctx context.Context, guid string) error
	// Prune deletes all but the newest keep entries per prompt.
	Prune(ctx context.Context, keep int) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}
