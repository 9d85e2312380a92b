// Package configurator builds ECUC configuration skeletons.
//
// A skeleton is the value-side counterpart of a definition path: the
// slash-delimited path is reversed and nested bottom-up so each segment
// becomes a typed node wrapping its children, rooted under "ecuc".
// Requested instance names substitute for raw segment names, letting one
// definition spawn differently-named configuration instances.
package configurator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/guu8hc/ecuckit/internal/export"
)

// Skeleton builds the nested configuration shape for one definition
// path. Each path segment becomes a node {"type": segment} keyed by its
// instance name (the names entry for the segment, or the segment
// itself), with deeper segments nested inside. An empty path yields an
// empty map.
func Skeleton(defPath string, names map[string]string) map[string]any {
	var parts []string
	for _, p := range strings.Split(defPath, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return map[string]any{}
	}

	// Build bottom-up: walk segments deepest-first so the previous
	// subtree attaches under the node being created.
	var current map[string]any
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		name := part
		if n, ok := names[part]; ok {
			name = n
		}
		node := map[string]any{"type": part}
		for k, v := range current {
			node[k] = v
		}
		current = map[string]any{name: node}
	}
	return map[string]any{"ecuc": current}
}

// SaveOrMerge writes cfg to path as tab-indented JSON. When the file
// already exists its content is deep-merged first: maps merge
// recursively and cfg wins at leaves. An existing file that cannot be
// parsed is treated as empty and replaced.
func SaveOrMerge(path string, cfg map[string]any) error {
	merged := cfg
	if data, err := os.ReadFile(path); err == nil {
		existing := decodeObject(data)
		if err := mergo.Merge(&existing, cfg, mergo.WithOverride); err != nil {
			return err
		}
		merged = existing
	}

	out, err := export.Marshal(merged)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func decodeObject(data []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

// MergeOp merges a skeleton into a JSON configuration file through
// SaveOrMerge. It satisfies the generator operation interface, so
// configure runs get the same dry-run and conflict handling as other
// file-producing commands.
type MergeOp struct {
	Path     string
	Skeleton map[string]any
}

// Validate creates the parent directory and, without force, rejects an
// existing target that is not valid JSON.
func (op *MergeOp) Validate(ctx context.Context, force bool) error {
	if op.Skeleton == nil {
		return fmt.Errorf("skeleton is nil for file: %s", op.Path)
	}

	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		data, err := os.ReadFile(op.Path)
		if err == nil && !json.Valid(data) {
			return fmt.Errorf("%s is not valid JSON, refusing to merge", op.Path)
		}
	}

	return nil
}

func (op *MergeOp) Execute(ctx context.Context) error {
	return SaveOrMerge(op.Path, op.Skeleton)
}

func (op *MergeOp) Description() string {
	return fmt.Sprintf("Merge configuration skeleton into %s", op.Path)
}
