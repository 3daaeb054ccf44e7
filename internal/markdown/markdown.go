// Package markdown formats task descriptions for terminal output.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/taskdeck/taskdeck/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// SafeRender renders markdown, falling back to the normalized input if the
// renderer fails or panics.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			value := internalstrings.TrimTrailingNewlines(
				internalstrings.NormalizeNewlines(string(input)))
			if strings.TrimSpace(value) == "" {
				out = nil
				return
			}
			out = []byte(indentBlock(value, indent))
		}
	}()
	return Render(width, indent, input)
}

// Render formats markdown text for terminal output.
func Render(width, indent int, input []byte) []byte {
	if len(input) == 0 {
		return nil
	}
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	if indent < 0 {
		indent = 0
	}
	renderWidth := width - indent
	if renderWidth < 1 {
		renderWidth = 1
	}

	r := markdownRenderer(renderWidth)
	rendered := value
	if r != nil {
		formatted, err := r.Render(value)
		if err == nil {
			rendered = formatted
		}
	}
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	if indent <= 0 {
		return []byte(rendered)
	}
	return []byte(indentBlock(rendered, indent))
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	style.ImageText.Format = "Image: {{.text}} ->"
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func indentBlock(value string, spaces int) string {
	if spaces <= 0 {
		return value
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
