package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dario.cat/mergo"

	"github.com/guu8hc/ecuckit/internal/export"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// Some operations may have side effects during validation (e.g., creating parent directories).
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create com_paramdef.json (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a new file with content.
//
// Validation creates parent directories and rejects existing targets
// unless force is set. Empty content is allowed, nil content is not.
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// MergeJSONOp deep-merges Value into the JSON object stored at Path
// and writes the result tab-indented. A missing file starts from an
// empty object, so merging doubles as creation.
//
// By default existing values win and the merge only fills gaps, which
// keeps user edits intact. Override makes incoming values win at
// leaves instead. Maps always merge recursively.
type MergeJSONOp struct {
	Path     string
	Value    map[string]any
	Override bool
}

func (op *MergeJSONOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if op.Value == nil {
		return fmt.Errorf("value is nil for file: %s", op.Path)
	}

	// An unparsable existing file would be silently replaced, so treat
	// it as a conflict unless force is set.
	if !force {
		data, err := os.ReadFile(op.Path)
		if err == nil {
			var obj map[string]any
			if jsonErr := json.Unmarshal(data, &obj); jsonErr != nil {
				return fmt.Errorf("%s is not a JSON object, refusing to merge: %w", op.Path, jsonErr)
			}
		}
	}

	return nil
}

func (op *MergeJSONOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}

	existing := map[string]any{}
	if data, err := os.ReadFile(op.Path); err == nil {
		var obj map[string]any
		if json.Unmarshal(data, &obj) == nil && obj != nil {
			existing = obj
		}
	}

	var opts []func(*mergo.Config)
	if op.Override {
		opts = append(opts, mergo.WithOverride)
	}
	if err := mergo.Merge(&existing, op.Value, opts...); err != nil {
		return err
	}

	out, err := export.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(op.Path, out, 0o644)
}

func (op *MergeJSONOp) Description() string {
	return fmt.Sprintf("Merge %d top-level keys into %s", len(op.Value), op.Path)
}
