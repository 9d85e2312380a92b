// Package search finds definition keys in compact parameter documents.
//
// A compact document nests container and parameter names directly as
// object keys, so keyword search reduces to two walks: collect every key
// the document carries, rank the keys against the keyword with a match
// engine, then recover the full path to each hit. Two engines are
// available, a subsequence matcher and an edit-distance matcher.
package search

import (
	"strings"

	"github.com/tidwall/gjson"
)

// CollectKeys returns every object key in the document in first-seen
// document order, without duplicates. The input must be valid JSON.
func CollectKeys(data []byte) []string {
	var keys []string
	seen := make(map[string]bool)
	var walk func(v gjson.Result)
	walk = func(v gjson.Result) {
		if v.IsObject() {
			v.ForEach(func(k, child gjson.Result) bool {
				if !seen[k.String()] {
					seen[k.String()] = true
					keys = append(keys, k.String())
				}
				walk(child)
				return true
			})
			return
		}
		if v.IsArray() {
			v.ForEach(func(_, child gjson.Result) bool {
				walk(child)
				return true
			})
		}
	}
	walk(gjson.ParseBytes(data))
	return keys
}

// FindPath locates the first key equal to target under case folding,
// walking objects in document order, and returns the slash-joined path
// of original-cased keys from the root down to the hit.
func FindPath(data []byte, target string) (string, bool) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return "", false
	}
	return findPath(root, strings.ToLower(target), nil)
}

func findPath(v gjson.Result, lower string, trail []string) (string, bool) {
	var found string
	var ok bool
	v.ForEach(func(k, child gjson.Result) bool {
		next := append(trail, k.String())
		if strings.ToLower(k.String()) == lower {
			found, ok = strings.Join(next, "/"), true
			return false
		}
		if child.IsObject() {
			if p, hit := findPath(child, lower, next); hit {
				found, ok = p, true
				return false
			}
		}
		return true
	})
	return found, ok
}
