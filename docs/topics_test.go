package docs

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/portfolio-lots"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// portfolioBlock is the info string of fenced blocks holding a portfolio file.
const portfolioBlock = "portfolio"

// readmeEntry matches a topic entry of readme.md: "* name: description".
var readmeEntry = regexp.MustCompile(`(?m)^\*\s+([^:]+):`)

func TestTopics(t *testing.T) {
	readme, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}
	var listed []string
	for _, m := range readmeEntry.FindAllSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(string(m[1])))
	}

	for _, name := range listed {
		if _, err := Topic(name); err != nil {
			t.Errorf("readme.md lists %q: %v", name, err)
		}
	}
	for _, name := range Topics() {
		if !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("nope"); err == nil {
		t.Error("Topic(nope) expected an error")
	}
}

func TestRead_All(t *testing.T) {
	content, err := Read("*")
	if err != nil {
		t.Fatalf("Read(*) unexpected error: %v", err)
	}
	if !strings.Contains(content, "# Rebalance") || !strings.Contains(content, "# Portfolio File") {
		t.Error("Read(*) is missing topics")
	}
	if strings.Contains(content, "pcs topic <topic>") {
		t.Error("Read(*) includes the readme")
	}
}

// TestPortfolioBlocks decodes every portfolio file example of the documentation.
func TestPortfolioBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, file := range files {
		for _, block := range portfolioBlocks(t, file) {
			count++
			if _, err := portfolio.Decode(strings.NewReader(block)); err != nil {
				t.Errorf("%s: invalid portfolio example: %v\n%s", file, err, block)
			}
		}
	}
	if count == 0 {
		t.Error("no portfolio examples found")
	}
}

// portfolioBlocks returns the content of the portfolio fenced blocks of file.
func portfolioBlocks(t *testing.T, file string) []string {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(content)) != portfolioBlock {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	return blocks
}
