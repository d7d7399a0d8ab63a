package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/nodesynth/internal/config"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/fsutil"
	"github.com/specialistvlad/nodesynth/internal/hcl"
	"github.com/specialistvlad/nodesynth/internal/yamlpatch"
)

// loaders maps each supported extension to the loader for it.
func loaders() map[string]config.Loader {
	m := map[string]config.Loader{hcl.Extension: hcl.NewLoader()}
	for _, ext := range yamlpatch.Extensions {
		m[ext] = yamlpatch.NewLoader()
	}
	return m
}

// LoadPatch discovers every patch file below the configured path and merges
// them into one patch, in path order.
func (a *App) LoadPatch(ctx context.Context) (*config.Patch, error) {
	logger := ctxlog.FromContext(ctx)
	byExt := loaders()

	extensions := make([]string, 0, len(byExt))
	for ext := range byExt {
		extensions = append(extensions, ext)
	}
	files, err := fsutil.FindFilesByExtension([]string{a.config.PatchPath}, extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to find patch files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no patch files found in %s", a.config.PatchPath)
	}
	logger.Debug("Discovered patch files.", "count", len(files))

	patch := &config.Patch{}
	for _, file := range files {
		loader := byExt[strings.ToLower(filepath.Ext(file))]
		filePatch, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := patch.Merge(filePatch); err != nil {
			return nil, err
		}
	}
	logger.Info("Patch loaded.", "files", len(files), "nodes", len(patch.Nodes), "wires", len(patch.Wires))
	return patch, nil
}
