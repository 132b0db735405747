package app

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimline/internal/cachemanager"
	"github.com/zjrosen/vimline/internal/log"
	"github.com/zjrosen/vimline/internal/ui/shared/markdown"
	"github.com/zjrosen/vimline/internal/ui/styles"
)

const helpMarkdown = `# vimline

A modal single-line input. Open a prompt, edit in vim style, submit with
enter or cancel with esc.

## Prompts

| key | prompt |
|-----|--------|
| r   | rename |
| /   | search |
| n   | note   |

## Inside a prompt

Insert mode: type normally, backspace deletes, esc enters normal mode.

Normal mode motions: h l 0 $ w e b. Operators: d c y with a motion, dd cc
yy for the whole line, v anchors a selection. p and P paste from the
system clipboard, u and ctrl+r undo and redo. i and a re-enter insert
mode, enter submits, esc clears any pending operator.

## Panels

| key | panel |
|-----|-------|
| H   | submission history |
| T   | cycle theme preset |
| L   | log overlay (debug builds) |
| ?   | this help |
`

const helpCacheTTL = 30 * time.Minute

type helpRenderInput struct {
	width int
	style string
}

// helpView lazily renders the help markdown through glamour, caching the
// result per width and style so toggling the panel is instant.
type helpView struct {
	visible bool
	style   string
	width   int
	height  int

	manager cachemanager.CacheManager[string, string]
	cache   *cachemanager.ReadThroughCache[string, string, helpRenderInput]
}

func newHelpView(style string) helpView {
	if style == "" {
		style = "dark"
	}

	manager := cachemanager.NewInMemoryCacheManager[string, string]("help", helpCacheTTL, time.Hour)
	cache := cachemanager.NewReadThroughCache(manager, renderHelp, false)

	return helpView{
		style:   style,
		manager: manager,
		cache:   cache,
	}
}

func renderHelp(_ context.Context, input helpRenderInput) (string, error) {
	r, err := markdown.New(input.width, input.style)
	if err != nil {
		return "", err
	}
	return r.Render(helpMarkdown)
}

func (h *helpView) setSize(width, height int) {
	h.width = width
	h.height = height
}

// invalidate drops cached renders, e.g. after a theme change.
func (h *helpView) invalidate() {
	if h.manager != nil {
		_ = h.manager.Flush(context.Background())
	}
}

func (h helpView) contentWidth() int {
	return max(min(h.width-6, 76), 40)
}

func (h helpView) view() string {
	width := h.contentWidth()
	key := h.style + ":" + strconv.Itoa(width)

	input := helpRenderInput{width: width, style: h.style}
	content, err := h.cache.Get(context.Background(), key, input, helpCacheTTL)
	if err != nil {
		log.ErrorErr(log.CatUI, "failed to render help", err)
		content = helpMarkdown
	}

	box := styles.OverlayBorderStyle.Render(content)
	if h.width > 0 && h.height > 0 {
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
