package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelector lists elements whose text never belongs to the page content.
const noiseSelector = "script, style, noscript, template"

// CleanText parses HTML, drops script and style elements and returns the
// remaining text with every run of whitespace collapsed to a single space.
// Text nodes are joined with a space so adjacent inline elements do not merge.
func CleanText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var sb strings.Builder
	for _, node := range doc.Nodes {
		collectText(node, &sb)
	}

	return strings.Join(strings.Fields(sb.String()), " "), nil
}

// collectText appends every text node under n in document order.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
