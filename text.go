package unlocked

import (
	"strings"

	"golang.org/x/net/html"
)

// wordsPerMinute is the reading speed assumed for the reading-time
// estimate.
const wordsPerMinute = 200

// PlainText strips all tags from an HTML fragment and returns the
// decoded, whitespace-collapsed text content. Script and style contents
// are skipped.
func PlainText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	var b strings.Builder
	collectText(doc, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ReadingTime estimates reading time in whole minutes at 200 wpm,
// with a minimum of one minute for any non-empty content.
func ReadingTime(wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
