package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/guu8hc/ecuckit/internal/export"
)

// DefaultLimit caps how many matches one document contributes.
const DefaultLimit = 5

// Searcher ranks keys from parameter documents against keywords.
type Searcher struct {
	engine Engine
	limit  int
}

// NewSearcher creates a Searcher with a per-document match limit.
// Non-positive limits fall back to DefaultLimit.
func NewSearcher(engine Engine, limit int) *Searcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Searcher{engine: engine, limit: limit}
}

// Search ranks every document's keys against the keyword and resolves
// each hit to its definition path. Unreadable or invalid documents are
// skipped rather than failing the whole search. Results are globally
// ordered by descending score, then key, then file.
func (s *Searcher) Search(files []string, keyword string) []Match {
	var all []Match
	for _, file := range files {
		data, err := loadCompact(file)
		if err != nil {
			continue
		}
		ranked := s.engine.Rank(keyword, CollectKeys(data))
		if len(ranked) > s.limit {
			ranked = ranked[:s.limit]
		}
		for _, m := range ranked {
			path, ok := FindPath(data, m.Key)
			if !ok {
				continue
			}
			m.File = file
			m.Path = path
			all = append(all, m)
		}
	}
	sortMatches(all)
	return all
}

// Best returns the highest-ranked match across all documents.
func (s *Searcher) Best(files []string, keyword string) (Match, bool) {
	matches := s.Search(files, keyword)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// Corpus is a loaded document set whose key space can be ranked many
// times over, the access pattern of the interactive picker.
type Corpus struct {
	files []string
	data  map[string][]byte
	keys  []string
}

// LoadCorpus reads the given documents, converting ARXML sources on the
// fly and skipping files that cannot be loaded.
func LoadCorpus(files []string) *Corpus {
	c := &Corpus{data: make(map[string][]byte)}
	seen := make(map[string]bool)
	for _, file := range files {
		data, err := loadCompact(file)
		if err != nil {
			continue
		}
		c.files = append(c.files, file)
		c.data[file] = data
		for _, key := range CollectKeys(data) {
			if !seen[key] {
				seen[key] = true
				c.keys = append(c.keys, key)
			}
		}
	}
	return c
}

// Keys returns the corpus key space in first-seen order.
func (c *Corpus) Keys() []string { return c.keys }

// Len returns how many documents loaded successfully.
func (c *Corpus) Len() int { return len(c.files) }

// Rank orders the corpus keys against the keyword.
func (c *Corpus) Rank(engine Engine, keyword string) []Match {
	return engine.Rank(keyword, c.keys)
}

// Resolve locates the key in load order and returns its first hit.
func (c *Corpus) Resolve(key string) (Match, bool) {
	for _, file := range c.files {
		if path, ok := FindPath(c.data[file], key); ok {
			return Match{File: file, Key: key, Path: path, Score: 1}, true
		}
	}
	return Match{}, false
}

// loadCompact reads one compact JSON document from disk. ARXML inputs
// are parsed and projected first, so both artifact shapes are searchable.
func loadCompact(path string) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".arxml") {
		return export.CompactFromFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("not a valid JSON document: %s", path)
	}
	return data, nil
}
