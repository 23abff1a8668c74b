// Package readability provides an alternative unlocked.Extractor backed
// by go-readability's generic content extraction. It trades the cascade
// extractor's Medium-specific rules for Mozilla's general heuristics and
// is selectable from the CLI.
package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// MinArticleChars mirrors the cascade extractor's floor.
const MinArticleChars = 200

// Ensure Extractor implements unlocked.Extractor at compile time.
var _ unlocked.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability. Its output still goes through the
// same sanitizer as the cascade extractor.
type Extractor struct {
	sanitizer unlocked.Sanitizer
}

// NewExtractor creates a new Extractor using the given sanitizer.
func NewExtractor(sanitizer unlocked.Sanitizer) *Extractor {
	return &Extractor{sanitizer: sanitizer}
}

// Extract processes raw HTML and returns the sanitized result.
func (e *Extractor) Extract(rawHTML string) (*unlocked.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, unlocked.Errorf(unlocked.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, unlocked.Errorf(unlocked.EINVALID, "readability parse: %v", err)
	}

	sanitized := e.sanitizer.Sanitize(article.Content)
	plain := unlocked.PlainText(sanitized)
	if len(plain) < MinArticleChars {
		return nil, unlocked.Errorf(unlocked.EINVALID, "insufficient article text (%d chars)", len(plain))
	}

	res := &unlocked.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Author:      strings.TrimSpace(article.Byline),
		ContentHTML: sanitized,
		PlainText:   plain,
		WordCount:   unlocked.CountWords(plain),
	}

	if frag, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized)); err == nil {
		res.ParagraphCount = frag.Find("p").Length()
		res.HeadingCount = frag.Find("h1, h2, h3, h4, h5, h6").Length()
		res.ImageCount = frag.Find("img").Length()
		res.BlockquoteCount = frag.Find("blockquote").Length()
		res.ListCount = frag.Find("ul, ol").Length()
		res.LinkCount = frag.Find("a[href]").Length()
	}

	return res, nil
}
