package popzy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRegistry_AddGet(t *testing.T) {
	r := NewRegistry(Template{ID: "modal-1", Body: "hello"})

	got, ok := r.Get("modal-1")
	require.True(t, ok)
	assert.Equal(t, "hello", got.Body)
	assert.Equal(t, FormatText, got.Format, "format defaults to text")

	_, ok = r.Get("missing")
	assert.False(t, ok)

	r.Remove("modal-1")
	assert.Empty(t, r.IDs())
}

func TestRegistry_LoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "modal-1.md"), "# One")
	writeFile(t, filepath.Join(dir, "nested", "modal-2.txt"), "Two")
	writeFile(t, filepath.Join(dir, "nested", "deeper", "modal-3.md"), "Three")

	r := NewRegistry()
	loaded, err := r.LoadGlob(filepath.Join(dir, "**", "*.{md,txt}"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"modal-1", "modal-2", "modal-3"}, loaded)
	assert.Equal(t, []string{"modal-1", "modal-2", "modal-3"}, r.IDs())

	one, _ := r.Get("modal-1")
	assert.Equal(t, FormatMarkdown, one.Format)
	assert.Equal(t, filepath.Join(dir, "modal-1.md"), one.Path)

	two, _ := r.Get("modal-2")
	assert.Equal(t, FormatText, two.Format)

	assert.Len(t, r.Dirs(), 3)
}

func TestRegistry_LoadGlobNoMatches(t *testing.T) {
	r := NewRegistry()
	loaded, err := r.LoadGlob(filepath.Join(t.TempDir(), "*.md"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestTemplateID(t *testing.T) {
	assert.Equal(t, "login", TemplateID("/tmp/templates/login.md"))
	assert.Equal(t, "plain", TemplateID("plain"))
}

func TestRegistry_LoadFileFrontMatter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.txt")
	writeFile(t, path, "---\ntitle: Terms of Service\nformat: markdown\n---\n# Terms\n")

	r := NewRegistry()
	tmpl, err := r.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "terms", tmpl.ID)
	assert.Equal(t, "Terms of Service", tmpl.Title)
	assert.Equal(t, FormatMarkdown, tmpl.Format)
	assert.Equal(t, "# Terms\n", tmpl.Body)
}

func TestRegistry_LoadFileBadFrontMatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.md")
	writeFile(t, path, "---\ntitle: [unclosed\n---\nbody")

	_, err := NewRegistry().LoadFile(path)
	assert.Error(t, err)
}

func TestIsTemplateFile(t *testing.T) {
	assert.True(t, IsTemplateFile("a.md"))
	assert.True(t, IsTemplateFile("a.TXT"))
	assert.False(t, IsTemplateFile("a.json"))
}
