package handlers

import (
	"qr-scanner-server/internal/preset"
	"qr-scanner-server/internal/qrgen"
)

// Handler holds the dependencies shared by the HTTP handlers: the preset
// store, the injected encoding capability, and the directory layout of the
// served tree.
type Handler struct {
	presets *preset.Store
	encoder qrgen.Encoder

	// rootDir is the directory served by the static file server.
	// artifactDir is the pre-generated image directory, relative to rootDir,
	// so an artifact is reachable both on disk and by URL path.
	rootDir     string
	artifactDir string
}

// New returns a Handler. artifactDir must be relative to rootDir.
func New(presets *preset.Store, encoder qrgen.Encoder, rootDir, artifactDir string) *Handler {
	return &Handler{
		presets:     presets,
		encoder:     encoder,
		rootDir:     rootDir,
		artifactDir: artifactDir,
	}
}
