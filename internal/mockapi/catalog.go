package mockapi

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/imagesearch/internal/search"
)

var catalogSubjects = []string{"mountains", "ocean", "forest", "city", "desert", "snow", "river", "sunset"}

// Catalog is the fixed set of images the mock backend searches.
type Catalog struct {
	items []search.ResultItem
}

// NewCatalog wraps items, ordered by score descending.
func NewCatalog(items []search.ResultItem) Catalog {
	sorted := make([]search.ResultItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return Catalog{items: sorted}
}

// GenerateCatalog builds n deterministic items spread over a few subjects.
func GenerateCatalog(n int) Catalog {
	items := make([]search.ResultItem, 0, n)
	for i := 0; i < n; i++ {
		subject := catalogSubjects[i%len(catalogSubjects)]
		items = append(items, search.ResultItem{
			ImageID:  int64(i + 1),
			ImageURL: fmt.Sprintf("https://images.example.com/%s/%04d.jpg", subject, i+1),
			Score:    1 - float64(i)/float64(n+1),
		})
	}
	return NewCatalog(items)
}

// LoadCatalog reads a YAML list of items.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var items []search.ResultItem
	if err := yaml.Unmarshal(data, &items); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}

	for i, item := range items {
		if item.ImageURL == "" {
			return Catalog{}, fmt.Errorf("fixture %d in %s has no image_url", i, path)
		}
	}

	return NewCatalog(items), nil
}

// Len returns the number of items.
func (c Catalog) Len() int {
	return len(c.items)
}

// Search returns the page of items whose URL contains query, ignoring case,
// along with the number of matches across all pages.
func (c Catalog) Search(query string, page, size int) ([]search.ResultItem, int) {
	needle := strings.ToLower(query)

	var matches []search.ResultItem
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.ImageURL), needle) {
			matches = append(matches, item)
		}
	}

	return paginate(matches, page, size), len(matches)
}

// paginate slices results[(page-1)*size : page*size], clamped to the list.
func paginate(results []search.ResultItem, page, size int) []search.ResultItem {
	start := (page - 1) * size
	if start >= len(results) || start < 0 {
		return []search.ResultItem{}
	}
	end := min(start+size, len(results))
	return results[start:end]
}
