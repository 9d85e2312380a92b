package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var comDoc = []byte(`{
	"Com": {
		"ComConfig": {
			"ComMainFunctionPeriod": {
				"type": "BOOLEAN",
				"default": "0.01"
			},
			"ComIPdu": {
				"ComIPduDirection": {
					"type": "ENUMERATION",
					"options": ["SEND", "RECEIVE"]
				}
			}
		}
	}
}`)

func TestCollectKeys(t *testing.T) {
	keys := CollectKeys(comDoc)

	// First-seen document order, duplicates collapsed ("type" appears twice).
	assert.Equal(t, []string{
		"Com",
		"ComConfig",
		"ComMainFunctionPeriod",
		"type",
		"default",
		"ComIPdu",
		"ComIPduDirection",
		"options",
	}, keys)
}

func TestCollectKeysEmptyDocument(t *testing.T) {
	assert.Empty(t, CollectKeys([]byte(`{}`)))
	assert.Empty(t, CollectKeys([]byte(`[1, 2, 3]`)))
}

func TestFindPath(t *testing.T) {
	path, ok := FindPath(comDoc, "ComIPduDirection")

	require.True(t, ok)
	assert.Equal(t, "Com/ComConfig/ComIPdu/ComIPduDirection", path)
}

func TestFindPathCaseInsensitive(t *testing.T) {
	// Matching folds case; the returned path keeps the document casing.
	path, ok := FindPath(comDoc, "comipdudirection")

	require.True(t, ok)
	assert.Equal(t, "Com/ComConfig/ComIPdu/ComIPduDirection", path)
}

func TestFindPathFirstHitWins(t *testing.T) {
	// "type" occurs under two parameters; document order decides.
	path, ok := FindPath(comDoc, "type")

	require.True(t, ok)
	assert.Equal(t, "Com/ComConfig/ComMainFunctionPeriod/type", path)
}

func TestFindPathMissingKey(t *testing.T) {
	_, ok := FindPath(comDoc, "CanIfTxPduCfg")
	assert.False(t, ok)
}

func TestFindPathNonObjectRoot(t *testing.T) {
	_, ok := FindPath([]byte(`["Com"]`), "Com")
	assert.False(t, ok)
}
