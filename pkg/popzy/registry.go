package popzy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrTemplateNotFound is reported by dialogs whose template ID is unknown.
var ErrTemplateNotFound = errors.New("template not found")

// Format selects how a template body is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Template is the source a dialog's content is built from.
type Template struct {
	ID     string
	Title  string
	Body   string
	Format Format
	Path   string // source file, empty for templates defined inline
}

// Registry holds templates by ID. It is safe for concurrent use so a watcher
// can reload templates while the UI reads them.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry creates a registry seeded with templates.
func NewRegistry(templates ...Template) *Registry {
	r := &Registry{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		r.Add(t)
	}
	return r
}

// Add stores t, replacing any template with the same ID.
func (r *Registry) Add(t Template) {
	if t.Format == "" {
		t.Format = FormatText
	}
	r.mu.Lock()
	r.templates[t.ID] = t
	r.mu.Unlock()
}

// Get returns the template with the given ID.
func (r *Registry) Get(id string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	return t, ok
}

// Remove deletes the template with the given ID.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.templates, id)
	r.mu.Unlock()
}

// IDs returns all template IDs, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Dirs returns the distinct directories of file-backed templates, sorted.
func (r *Registry) Dirs() []string {
	r.mu.RLock()
	seen := make(map[string]bool)
	for _, t := range r.templates {
		if t.Path != "" {
			seen[filepath.Dir(t.Path)] = true
		}
	}
	r.mu.RUnlock()

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// LoadGlob loads every file matching the doublestar patterns. The file name
// without its extension becomes the template ID. Returns the loaded IDs.
func (r *Registry) LoadGlob(patterns ...string) ([]string, error) {
	var loaded []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(ExpandHome(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return loaded, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, path := range matches {
			t, err := r.LoadFile(path)
			if err != nil {
				return loaded, err
			}
			loaded = append(loaded, t.ID)
		}
	}
	return loaded, nil
}

// LoadFile reads a single template file into the registry.
func (r *Registry) LoadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read template %s: %w", path, err)
	}

	fm, body, err := splitFrontMatter(string(data))
	if err != nil {
		return Template{}, fmt.Errorf("template %s: %w", path, err)
	}

	t := Template{
		ID:     TemplateID(path),
		Title:  fm.Title,
		Body:   body,
		Format: FormatForPath(path),
		Path:   path,
	}
	if fm.Format != "" {
		t.Format = fm.Format
	}
	r.Add(t)
	return t, nil
}

type frontMatter struct {
	Title  string `yaml:"title"`
	Format Format `yaml:"format"`
}

const frontMatterFence = "---\n"

// splitFrontMatter separates an optional YAML header fenced by "---" lines from
// the template body.
func splitFrontMatter(src string) (frontMatter, string, error) {
	var fm frontMatter
	if !strings.HasPrefix(src, frontMatterFence) {
		return fm, src, nil
	}

	rest := src[len(frontMatterFence):]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return fm, src, nil
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, "", fmt.Errorf("parse front matter: %w", err)
	}
	return fm, rest[end+1+len(frontMatterFence):], nil
}

// TemplateID derives a template ID from a file path.
func TemplateID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FormatForPath picks markdown for .md and .markdown files and text otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// IsTemplateFile reports whether path has an extension templates are loaded from.
func IsTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt", ".tmpl":
		return true
	}
	return false
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
