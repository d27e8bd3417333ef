// ABOUTME: HTML utilities for extracting plain text from markup
// ABOUTME: Used for excerpts, read-time word counts and keyword scanning

package html

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the text content of an HTML fragment, skipping
// script and style elements and collapsing runs of whitespace. If the
// fragment cannot be parsed the input is returned trimmed, since feed
// descriptions are frequently plain text already.
func StripHTML(fragment string) string {
	if !strings.ContainsRune(fragment, '<') {
		return collapseWhitespace(fragment)
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return collapseWhitespace(fragment)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(b.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
