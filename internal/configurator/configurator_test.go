package configurator

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkeleton(t *testing.T) {
	names := map[string]string{
		"comipdu":   "ESP_19",
		"comconfig": "ComConfig_0",
	}

	got := Skeleton("/com/comconfig/comipdu", names)

	want := map[string]any{
		"ecuc": map[string]any{
			"com": map[string]any{
				"type": "com",
				"ComConfig_0": map[string]any{
					"type": "comconfig",
					"ESP_19": map[string]any{
						"type": "comipdu",
					},
				},
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestSkeletonDefaultNames(t *testing.T) {
	got := Skeleton("com/comconfig", nil)

	want := map[string]any{
		"ecuc": map[string]any{
			"com": map[string]any{
				"type": "com",
				"comconfig": map[string]any{
					"type": "comconfig",
				},
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestSkeletonEmptyPath(t *testing.T) {
	assert.Equal(t, map[string]any{}, Skeleton("", nil))
	assert.Equal(t, map[string]any{}, Skeleton("///", nil))
}

func TestSkeletonSingleSegment(t *testing.T) {
	got := Skeleton("/nm", map[string]string{"nm": "Nm_0"})

	want := map[string]any{
		"ecuc": map[string]any{
			"Nm_0": map[string]any{"type": "nm"},
		},
	}
	assert.Equal(t, want, got)
}

func TestSaveOrMergeCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecuc_config.json")
	cfg := Skeleton("/com/comconfig", nil)

	require.NoError(t, SaveOrMerge(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\t\"ecuc\""), "output should be tab indented")
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, cfg, got)
}

func TestSaveOrMergeMergesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecuc_config.json")

	existing := map[string]any{
		"ecuc": map[string]any{
			"com": map[string]any{
				"type": "legacy",
				"ComConfig_0": map[string]any{
					"type": "comconfig",
				},
			},
		},
	}
	require.NoError(t, SaveOrMerge(path, existing))

	update := map[string]any{
		"ecuc": map[string]any{
			"com": map[string]any{
				"type": "com",
				"ComConfig_1": map[string]any{
					"type": "comconfig",
				},
			},
		},
	}
	require.NoError(t, SaveOrMerge(path, update))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	com := got["ecuc"].(map[string]any)["com"].(map[string]any)
	assert.Equal(t, "com", com["type"], "incoming value wins at leaves")
	assert.Contains(t, com, "ComConfig_0", "existing siblings survive the merge")
	assert.Contains(t, com, "ComConfig_1")
}

func TestSaveOrMergeReplacesUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecuc_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cfg := Skeleton("/nm", nil)
	require.NoError(t, SaveOrMerge(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, cfg, got)
}

func TestMergeOpExecutesSaveOrMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ecuc_config.json")
	op := &MergeOp{Path: path, Skeleton: Skeleton("/com/comconfig", nil)}

	require.NoError(t, op.Validate(context.Background(), false))
	require.NoError(t, op.Execute(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, op.Skeleton, got)

	assert.Contains(t, op.Description(), path)
}

func TestMergeOpValidate(t *testing.T) {
	t.Run("rejects nil skeleton", func(t *testing.T) {
		op := &MergeOp{Path: filepath.Join(t.TempDir(), "out.json")}
		assert.Error(t, op.Validate(context.Background(), false))
	})

	t.Run("rejects unparsable target without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		op := &MergeOp{Path: path, Skeleton: Skeleton("/nm", nil)}
		assert.Error(t, op.Validate(context.Background(), false))
		assert.NoError(t, op.Validate(context.Background(), true))
	})
}
