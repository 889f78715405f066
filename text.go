package tenk

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ExtractPlainText returns the filing's whole text content, cleaned for
// indexing. It is deliberately independent of structured extraction: a
// filing whose tables defeat the classifier still yields searchable text.
func ExtractPlainText(data []byte) (string, error) {
	normalized := NormalizeText(data)

	doc, err := html.Parse(strings.NewReader(string(normalized)))
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}

	return CleanExtractedText(nodeText(doc)), nil
}

// nodeText collects text content from a node subtree, skipping script and
// style payloads.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
