package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
)

// CardWidth is the wrap width of rendered record cards
const CardWidth = 80

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// CardMarkdown describes a record as a markdown document
func CardMarkdown(rec *models.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Details\n\n", rec.Kind.Title())
	for _, line := range strings.Split(notify.DetailText(rec), "\n") {
		label, value, _ := strings.Cut(line, ": ")
		fmt.Fprintf(&b, "- **%s:** %s\n", label, value)
	}
	return b.String()
}

// RenderCard renders a record card for the terminal.
// The plain detail text is returned when markdown rendering fails.
func RenderCard(rec *models.Record) string {
	renderer, err := getRenderer(CardWidth)
	if err == nil {
		rendered, err := renderer.Render(CardMarkdown(rec))
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return notify.DetailText(rec)
}
