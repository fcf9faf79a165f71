package popzy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMarkdownStyle is the glamour style used for markdown templates.
const DefaultMarkdownStyle = "tokyo-night"

const markdownCacheSize = 128

// markdownRenderer renders markdown at a given wrap width, caching output by
// width and source hash.
type markdownRenderer struct {
	style     string
	cache     *lru.Cache[string, string]
	renderers map[int]*glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, string](markdownCacheSize)
	return &markdownRenderer{
		style:     style,
		cache:     cache,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

func (r *markdownRenderer) Render(src string, width int) (string, error) {
	if width < 1 {
		width = 1
	}

	key := strconv.Itoa(width) + ":" + strconv.FormatUint(xxhash.Sum64String(src), 16)
	if out, ok := r.cache.Get(key); ok {
		return out, nil
	}

	tr, ok := r.renderers[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		r.renderers[width] = tr
	}

	out, err := tr.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	out = strings.Trim(out, "\n")
	r.cache.Add(key, out)
	return out, nil
}

// Len returns the number of cached renders.
func (r *markdownRenderer) Len() int { return r.cache.Len() }

// ValidMarkdownStyle reports whether name is a built-in glamour style.
func ValidMarkdownStyle(name string) bool {
	if name == styles.AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[name]
	return ok
}
