// Package clipboard provides the system clipboard implementations used by
// the editor. Paste and yank degrade gracefully when no system clipboard is
// available (headless terminals, CI).
package clipboard

import (
	"context"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/zjrosen/vimline/internal/log"
)

// System reads and writes the OS clipboard.
type System struct{}

// NewSystem creates a system clipboard.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the current clipboard text, or empty when unavailable.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		log.Warn(log.CatClipboard, "read failed", "error", err)
		return "", err
	}
	return text, nil
}

// WriteText replaces the clipboard contents.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Warn(log.CatClipboard, "write failed", "error", err)
		return err
	}
	log.Debug(log.CatClipboard, "wrote text", "len", len(text))
	return nil
}

// Memory is an in-process clipboard for tests and for sessions where the
// system clipboard is unusable.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadText returns the stored text.
func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
