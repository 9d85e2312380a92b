package search

import (
	"fmt"
	"sort"

	"github.com/agext/levenshtein"
	"github.com/sahilm/fuzzy"
)

// DefaultCutoff is the minimum similarity a key must reach under the
// levenshtein engine.
const DefaultCutoff = 0.6

// Match is one ranked search hit. File and Path are filled in by the
// Searcher once the key has been located in a document.
type Match struct {
	File  string  `json:"file,omitempty"`
	Key   string  `json:"key"`
	Path  string  `json:"definition_path,omitempty"`
	Score float64 `json:"similarity_score"`
}

// Engine ranks candidate keys against a keyword. Implementations return
// matches ordered by descending score with ties broken by key, carrying
// scores in 0..1.
type Engine interface {
	Name() string
	Rank(keyword string, keys []string) []Match
}

// NewEngine returns the engine registered under the given name. The
// empty name selects the fuzzy engine.
func NewEngine(name string, cutoff float64) (Engine, error) {
	switch name {
	case "", "fuzzy":
		return FuzzyEngine{}, nil
	case "levenshtein":
		return LevenshteinEngine{Cutoff: cutoff}, nil
	default:
		return nil, fmt.Errorf("unknown search engine %q (known: fuzzy, levenshtein)", name)
	}
}

// FuzzyEngine matches keys by subsequence. Raw scores are open-ended, so
// they are normalized against the best hit; the top match is always 1.0
// and penalized matches floor at 0.
type FuzzyEngine struct{}

// Name returns "fuzzy".
func (FuzzyEngine) Name() string { return "fuzzy" }

// Rank implements Engine.
func (FuzzyEngine) Rank(keyword string, keys []string) []Match {
	found := fuzzy.Find(keyword, keys)
	if len(found) == 0 {
		return nil
	}
	best := found[0].Score
	out := make([]Match, 0, len(found))
	for _, fm := range found {
		score := 0.0
		if best > 0 && fm.Score > 0 {
			score = float64(fm.Score) / float64(best)
		}
		out = append(out, Match{Key: fm.Str, Score: score})
	}
	sortMatches(out)
	return out
}

// LevenshteinEngine keeps keys whose edit-distance similarity to the
// keyword reaches the cutoff.
type LevenshteinEngine struct {
	Cutoff float64
}

// Name returns "levenshtein".
func (LevenshteinEngine) Name() string { return "levenshtein" }

// Rank implements Engine.
func (e LevenshteinEngine) Rank(keyword string, keys []string) []Match {
	cutoff := e.Cutoff
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	var out []Match
	for _, key := range keys {
		sim := levenshtein.Similarity(key, keyword, levenshtein.NewParams())
		if sim >= cutoff {
			out = append(out, Match{Key: key, Score: sim})
		}
	}
	sortMatches(out)
	return out
}

// sortMatches orders by descending score, then key, then file, so equal
// inputs always rank identically.
func sortMatches(out []Match) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].File < out[j].File
	})
}
