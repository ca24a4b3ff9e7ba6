// Package docs holds the pcs documentation topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Topic returns the markdown content of a documentation topic.
func Topic(name string) (string, error) {
	content, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Read concatenates the given topics, separated by a blank line. The name "*"
// expands to every topic but the readme.
func Read(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			all, err := Read(Topics()...)
			if err != nil {
				return "", err
			}
			b.WriteString(all)
			continue
		}
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Topics returns the sorted topic names, the readme excepted.
func Topics() []string {
	matches, _ := fs.Glob(files, "*.md") // the pattern is valid
	var names []string
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != "readme" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
