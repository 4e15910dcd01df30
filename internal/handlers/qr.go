package handlers

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"qr-scanner-server/internal/qrgen"
)

// customName and customColor are the fixed display values for /qr/custom
// pages; custom codes never get a pre-generated artifact.
const (
	customName  = "Custom QR Code"
	customColor = "#666666"
)

// qrRouteKind classifies the path remainder after /qr/.
type qrRouteKind int

const (
	qrInvalid qrRouteKind = iota
	qrCustom
	qrIndex
)

// qrRoute is the parsed form of a /qr/ request, built once per request
// instead of slicing the raw path in every branch.
type qrRoute struct {
	kind  qrRouteKind
	index int
}

// parseQRRoute classifies rest, the path remainder after "/qr/". The literal
// segment "custom" selects on-demand encoding; an all-digit segment is an
// ordinal into the preset sequence; anything else is invalid.
func parseQRRoute(rest string) qrRoute {
	rest = strings.TrimPrefix(rest, "/")
	if rest == "custom" {
		return qrRoute{kind: qrCustom}
	}
	if !isDigits(rest) {
		return qrRoute{kind: qrInvalid}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		// Only reachable for absurdly long digit strings that overflow.
		return qrRoute{kind: qrInvalid}
	}
	return qrRoute{kind: qrIndex, index: n}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// qrPageData is the view model for the QR display page.
type qrPageData struct {
	Name     string
	Text     string
	Color    template.CSS
	ImageSrc template.URL
}

// QRPage dispatches /qr/{index} and /qr/custom?text=... requests.
func (h *Handler) QRPage(c *gin.Context) {
	route := parseQRRoute(c.Param("code"))

	switch route.kind {
	case qrCustom:
		// Trim only to detect emptiness; the payload is encoded verbatim.
		text := c.Query("text")
		if strings.TrimSpace(text) == "" {
			c.String(http.StatusBadRequest, "Missing text parameter")
			return
		}
		h.renderQRPage(c, customName, text, customColor, "")

	case qrIndex:
		presets, err := h.presets.Load()
		if err != nil {
			c.String(http.StatusInternalServerError, "Could not load QR data: %v", err)
			return
		}
		if route.index >= len(presets) {
			c.String(http.StatusNotFound, "QR code not found")
			return
		}
		p := presets[route.index]
		h.renderQRPage(c, p.Name, p.Text, p.Color, qrgen.ArtifactName(route.index))

	default:
		c.String(http.StatusBadRequest, "Invalid QR request")
	}
}

// renderQRPage writes the QR display page. When artifact names a file that
// exists under the artifact directory the page references it by URL path;
// otherwise the code is encoded in-process and embedded as a base64 data URI.
func (h *Handler) renderQRPage(c *gin.Context, name, text, color, artifact string) {
	var src template.URL
	if artifact != "" {
		if _, err := os.Stat(filepath.Join(h.rootDir, h.artifactDir, artifact)); err == nil {
			src = template.URL("/" + path.Join(h.artifactDir, artifact))
		}
	}
	if src == "" {
		img, err := h.encoder.Encode(text)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR generation failed: %v", err)
			return
		}
		// typed URL: the template's URL filter rejects the data: scheme
		src = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
	}

	h.renderHTML(c, "qr.html", qrPageData{
		Name:     name,
		Text:     text,
		Color:    template.CSS(color),
		ImageSrc: src,
	})
}
