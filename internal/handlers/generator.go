package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// previewLen is how much payload text the dropdown shows before cutting.
const previewLen = 30

// selectorEntry is one preset row in the selector page view model. Index
// doubles as the navigation target /qr/{Index}.
type selectorEntry struct {
	Index   int
	Name    string
	Text    string
	Preview string
	Color   template.CSS
}

type selectorPageData struct {
	Presets []selectorEntry
}

// SelectorPage renders the generator page: a dropdown of presets, a custom
// text form, and a card grid, all in data-file order.
func (h *Handler) SelectorPage(c *gin.Context) {
	presets, err := h.presets.Load()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load QR data")
		return
	}

	data := selectorPageData{Presets: make([]selectorEntry, 0, len(presets))}
	for i, p := range presets {
		data.Presets = append(data.Presets, selectorEntry{
			Index:   i,
			Name:    p.Name,
			Text:    p.Text,
			Preview: truncate(p.Text, previewLen),
			Color:   template.CSS(p.Color),
		})
	}
	h.renderHTML(c, "generator.html", data)
}

// truncate shortens s to max runes, appending an ellipsis when it cuts.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
