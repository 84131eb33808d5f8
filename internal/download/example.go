package download

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// nthPreBlock parses a puzzle description page and returns the text
// of its index-th <pre> element. Puzzle pages show example inputs in
// <pre><code>...</code></pre> blocks in document order.
func nthPreBlock(page string, index int) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parsing puzzle page: %w", err)
	}

	seen := 0
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != "pre" {
			continue
		}
		if seen == index {
			var sb strings.Builder
			collectText(n, &sb)
			return sb.String(), nil
		}
		seen++
	}
	return "", fmt.Errorf("page has %d <pre> blocks, wanted index %d", seen, index)
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
