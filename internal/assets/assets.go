package assets

import (
	"io/fs"
	"sort"
	"strings"
)

// DefaultTemplateName is the built-in standalone document template.
const DefaultTemplateName = "document"

// ListStyles returns the names of the embedded styles, sorted.
func ListStyles() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".css"); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
