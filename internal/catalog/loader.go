// internal/catalog/loader.go
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"franchise-fit/internal/models"
)

// fileDocument is the wrapped form of a catalog file. A file may also hold
// a bare list of franchises.
type fileDocument struct {
	Franchises []models.Franchise `json:"franchises" yaml:"franchises"`
}

// LoadFiles reads every file matching patterns (doublestar globs, "**"
// allowed) and returns the records in path order. Files ending in .json are
// decoded as JSON, everything else as YAML.
func LoadFiles(patterns []string) ([]models.Franchise, error) {
	paths, err := expand(patterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files match %s", strings.Join(patterns, ", "))
	}

	var out []models.Franchise
	for _, p := range paths {
		items, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// LoadFile decodes a single catalog file.
func LoadFile(path string) ([]models.Franchise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	items, err := Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}

// Decode parses catalog bytes as JSON or YAML, accepting either a list or
// a {franchises: [...]} document.
func Decode(data []byte, isJSON bool) ([]models.Franchise, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if isJSON {
		if trimmed[0] == '[' {
			var items []models.Franchise
			err := json.Unmarshal(trimmed, &items)
			return items, err
		}
		var doc fileDocument
		err := json.Unmarshal(trimmed, &doc)
		return doc.Franchises, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, err
	}
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var items []models.Franchise
		err := node.Decode(&items)
		return items, err
	}
	var doc fileDocument
	err := node.Decode(&doc)
	return doc.Franchises, err
}

func expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad catalog pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
