package qrgen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"qr-scanner-server/internal/preset"
)

// ArtifactName returns the file name of the pre-generated image for the
// preset at index.
func ArtifactName(index int) string {
	return fmt.Sprintf("qr_%d.png", index)
}

// Pregenerator writes one PNG artifact per preset into outDir. It runs once
// at startup, before the listener accepts connections; request handlers only
// ever read outDir.
type Pregenerator struct {
	store  *preset.Store
	enc    Encoder
	outDir string
	log    *slog.Logger
}

// NewPregenerator returns a Pregenerator writing into outDir.
func NewPregenerator(store *preset.Store, enc Encoder, outDir string, log *slog.Logger) *Pregenerator {
	return &Pregenerator{store: store, enc: enc, outDir: outDir, log: log}
}

// Run wipes outDir, then encodes every preset to {outDir}/qr_{index}.png.
// A failure on one preset is logged and skipped; the batch continues. The
// returned count is the number of artifacts written. If the preset file
// cannot be loaded, Run returns an error after recreating the empty
// directory — the server still starts and falls back to inline encoding.
func (g *Pregenerator) Run() (int, error) {
	if err := os.RemoveAll(g.outDir); err != nil {
		return 0, fmt.Errorf("clean artifact dir: %w", err)
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create artifact dir: %w", err)
	}

	presets, err := g.store.Load()
	if err != nil {
		return 0, fmt.Errorf("load presets: %w", err)
	}

	generated := 0
	for i, p := range presets {
		img, err := g.enc.Encode(p.Text)
		if err != nil {
			g.log.Error("qr pre-generation failed", "index", i, "name", p.Name, "error", err)
			continue
		}
		path := filepath.Join(g.outDir, ArtifactName(i))
		if err := os.WriteFile(path, img, 0o644); err != nil {
			g.log.Error("qr artifact write failed", "path", path, "error", err)
			continue
		}
		generated++
	}
	return generated, nil
}
