package scan

import (
	"path/filepath"
	"strings"

	"github.com/YellowKidokc/File-Organization/internal/services"
)

// Inventory renders entries as newline-separated root-relative paths in
// traversal order, using forward slashes so the payload is identical across
// platforms. An entry outside root fails with the path marker.
func Inventory(root string, entries []Entry) (string, error) {
	var b strings.Builder
	for i, entry := range entries {
		rel, err := filepath.Rel(root, entry.Path)
		if err != nil {
			return "", services.Wrap(services.ErrPath, "inventory", "relativize", entry.Path, err)
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", services.Wrap(services.ErrPath, "inventory", "relativize", entry.Path+" is outside "+root, nil)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(filepath.ToSlash(rel))
	}
	return b.String(), nil
}
