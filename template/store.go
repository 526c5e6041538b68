package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/folium/model"
)

// designsDir is the subdirectory of the store root that holds template files.
const designsDir = "designs"

// extensions lists the recognized template file extensions, in lookup order.
var extensions = []string{".json", ".yaml", ".yml"}

// Store loads and caches design templates from a directory. The cache is
// explicit and owned by the caller; invalidate entries with Invalidate or
// InvalidateAll. A Store is not safe for concurrent use.
type Store struct {
	root  string
	cache map[string]*model.Template
}

// NewStore creates a template store rooted at dir. It fails when the
// directory does not exist.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s: not a directory", dir)
	}

	return &Store{
		root:  dir,
		cache: make(map[string]*model.Template),
	}, nil
}

// Load returns the template with the given name, reading and validating it
// from disk on first use and from the cache afterwards.
func (s *Store) Load(name string) (*model.Template, error) {
	if tmpl, ok := s.cache[name]; ok {
		return tmpl, nil
	}

	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}

	var tmpl model.Template
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &tmpl); err != nil {
			return nil, fmt.Errorf("template %s: invalid JSON: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return nil, fmt.Errorf("template %s: invalid YAML: %w", name, err)
		}
	}

	if err := Validate(&tmpl); err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}

	s.cache[name] = &tmpl
	return &tmpl, nil
}

// resolve finds the template file for name, trying each recognized
// extension in order.
func (s *Store) resolve(name string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(s.root, designsDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("template not found: %s", name)
}

// List returns the names of all templates available in the store, sorted
// and deduplicated across file extensions.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, designsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !recognized(ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Invalidate drops one template from the cache; the next Load re-reads it
// from disk.
func (s *Store) Invalidate(name string) {
	delete(s.cache, name)
}

// InvalidateAll drops every cached template.
func (s *Store) InvalidateAll() {
	s.cache = make(map[string]*model.Template)
}

func recognized(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
