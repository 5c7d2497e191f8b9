package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sandevgo/veractbot/pkg/log"
)

// Stores are whole-file-replace: every mutation reads the full document,
// changes it in memory and rewrites the file. A missing or unreadable file
// reads as an empty document, never as an error.

func load(ctx context.Context, path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.FromCtx(ctx).Warn().Err(err).Str("path", path).Msg("failed to read store file")
		}
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("path", path).Msg("store file is not valid json, treating as empty")
	}
}

func save(ctx context.Context, path string, v any) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("path", path).Msg("failed to marshal store file")
		return false
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("path", path).Msg("failed to create store directory")
		return false
	}

	// Write-then-rename so readers never observe a half-written file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("path", path).Msg("failed to write store file")
		return false
	}
	if err := os.Rename(tmp, path); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("path", path).Msg("failed to replace store file")
		return false
	}
	return true
}
