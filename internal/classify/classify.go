package classify

import (
	"path/filepath"
	"strings"
)

// FallbackLabel is the destination for files no category claims.
const FallbackLabel = "Other"

// Category pairs a destination directory label with the extensions it claims.
type Category struct {
	Label      string   `json:"label"`
	Extensions []string `json:"extensions"`
}

// categories is ordered: lookup is first match wins, so an extension claimed
// twice belongs to the earlier entry.
var categories = []Category{
	{Label: "Images", Extensions: []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg", ".webp", ".heic", ".ico"}},
	{Label: "Documents", Extensions: []string{".txt", ".md", ".pdf", ".doc", ".docx", ".rtf", ".odt", ".xls", ".xlsx", ".ppt", ".pptx", ".csv"}},
	{Label: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".ogg", ".m4a", ".aac"}},
	{Label: "Video", Extensions: []string{".mp4", ".mkv", ".mov", ".avi", ".webm", ".wmv"}},
	{Label: "Archives", Extensions: []string{".zip", ".tar", ".gz", ".bz2", ".xz", ".7z", ".rar"}},
	{Label: "Code", Extensions: []string{".py", ".go", ".js", ".ts", ".java", ".c", ".h", ".cpp", ".rs", ".rb", ".sh", ".html", ".css", ".json", ".yaml", ".yml", ".toml", ".sql"}},
}

var labelByExtension = buildIndex()

func buildIndex() map[string]string {
	index := make(map[string]string)
	for _, category := range categories {
		for _, ext := range category.Extensions {
			if _, claimed := index[ext]; claimed {
				continue
			}
			index[ext] = category.Label
		}
	}
	return index
}

// Classify returns the category label for the file at path based on its
// basename's extension, lowercased. It never touches the filesystem. A name
// without an extension, including a bare dotfile, maps to the fallback label.
func Classify(path string) string {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" || ext == strings.ToLower(base) {
		return FallbackLabel
	}
	if label, ok := labelByExtension[ext]; ok {
		return label
	}
	return FallbackLabel
}

// Table returns a copy of the category table in declaration order.
func Table() []Category {
	out := make([]Category, len(categories))
	for i, category := range categories {
		out[i] = Category{
			Label:      category.Label,
			Extensions: append([]string(nil), category.Extensions...),
		}
	}
	return out
}

// Labels returns every category label in table order with the fallback last.
func Labels() []string {
	out := make([]string, 0, len(categories)+1)
	for _, category := range categories {
		out = append(out, category.Label)
	}
	return append(out, FallbackLabel)
}
