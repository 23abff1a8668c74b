// Package goquery provides the cascade-based implementation of
// unlocked.Extractor. Each field is resolved by trying an ordered list
// of structural rules against the parsed document; the content block is
// additionally chosen by scoring every candidate rather than taking the
// first match, so a short decorative block never beats the article body.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// MinArticleChars is the minimum plain-text length accepted as an
// article. Anything shorter fails the attempt with EINVALID.
const MinArticleChars = 200

// bodyFallbackChars is the text length a winning content candidate must
// reach; below it the extractor falls back to the whole document body.
const bodyFallbackChars = 1000

// paragraphWeight rewards structure when scoring content candidates:
// candidate score = stripped text length + paragraphs * paragraphWeight.
const paragraphWeight = 100

// titleSelectors are tried in order; the first match passing the length
// check wins.
var titleSelectors = []string{
	"article h1",
	"h1",
	"meta[property='og:title']",
	"title",
}

// authorSelectors are tried in order. Mirrors carry Medium's markup in
// varying states of decay, hence the mix of metadata and class rules.
var authorSelectors = []string{
	"meta[name='author']",
	"[data-testid='authorName']",
	"a[rel='author']",
	".author-name",
	".author",
	".byline a",
}

// authorBlacklist filters generic UI labels that author rules routinely
// match on mirror pages.
var authorBlacklist = map[string]bool{
	"follow":      true,
	"subscribe":   true,
	"sign in":     true,
	"sign up":     true,
	"member-only": true,
	"share":       true,
	"listen":      true,
}

// contentSelectors produce content-block candidates. All matches of all
// selectors compete; priority order only breaks ties.
var contentSelectors = []string{
	"article",
	"main",
	"[role='main']",
	".post-content",
	".article-content",
	"section.section-content",
	".postArticle-content",
	".main-content",
}

// boilerplateSelectors are removed from the document before the content
// block is chosen or sanitized.
var boilerplateSelectors = strings.Join([]string{
	"script", "style", "noscript", "iframe", "svg",
	"form", "input", "button", "select", "textarea",
	"nav", "header", "footer", "aside",
	"[class*='sidebar']", "[class*='related']", "[class*='comment']",
	"[class*='newsletter']", "[class*='promo']", "[class*='banner']",
	"[class*='share']", "[class*='social']", "[class*='tracking']",
	"[id*='cookie']", "[class*='advert']", "[class*='-ad-']",
}, ", ")

// Ensure Extractor implements unlocked.Extractor at compile time.
var _ unlocked.Extractor = (*Extractor)(nil)

// Extractor derives title, author and article body from raw mirror
// markup using selector cascades, then sanitizes the winning block.
type Extractor struct {
	sanitizer unlocked.Sanitizer
}

// NewExtractor creates an Extractor using the given sanitizer.
func NewExtractor(sanitizer unlocked.Sanitizer) *Extractor {
	return &Extractor{sanitizer: sanitizer}
}

// Extract processes raw HTML and returns the sanitized result.
func (e *Extractor) Extract(rawHTML string) (*unlocked.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, unlocked.Errorf(unlocked.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, unlocked.Errorf(unlocked.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)
	author := extractAuthor(doc)

	doc.Find(boilerplateSelectors).Remove()

	content := selectContent(doc)
	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, unlocked.Errorf(unlocked.EINVALID, "failed to render content: %v", err)
	}

	sanitized := e.sanitizer.Sanitize(contentHTML)
	plain := unlocked.PlainText(sanitized)
	if len(plain) < MinArticleChars {
		return nil, unlocked.Errorf(unlocked.EINVALID, "insufficient article text (%d chars)", len(plain))
	}

	res := &unlocked.ExtractResult{
		Title:       title,
		Author:      author,
		ContentHTML: sanitized,
		PlainText:   plain,
		WordCount:   unlocked.CountWords(plain),
	}
	countStructure(sanitized, res)
	return res, nil
}

// extractTitle returns the first cascade match of at least 5 characters.
func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := selectionText(sel)
		if len(text) >= 5 {
			return text
		}
	}
	return ""
}

// extractAuthor returns the first plausible cascade match, or an empty
// string when every rule misses or hits a blacklisted UI label.
func extractAuthor(doc *goquery.Document) string {
	for _, selector := range authorSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := selectionText(sel)
		if len(text) < 2 || len(text) > 100 {
			continue
		}
		if authorBlacklist[strings.ToLower(text)] {
			continue
		}
		return text
	}
	return ""
}

// selectionText returns trimmed text, preferring the content attribute
// for meta tags.
func selectionText(sel *goquery.Selection) string {
	if goquery.NodeName(sel) == "meta" {
		content, _ := sel.Attr("content")
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(sel.Text())
}

// selectContent picks the content block. Every match of every selector
// is scored; the highest-scoring candidate wins. If even the winner has
// too little text, the whole body is used instead.
func selectContent(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestScore := -1
	bestTextLen := 0

	for _, selector := range contentSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			textLen := len(strings.Join(strings.Fields(sel.Text()), " "))
			score := textLen + sel.Find("p").Length()*paragraphWeight
			if score > bestScore {
				best = sel
				bestScore = score
				bestTextLen = textLen
			}
		})
	}

	if best == nil || bestTextLen < bodyFallbackChars {
		if body := doc.Find("body"); body.Length() > 0 {
			return body
		}
		return doc.Selection
	}
	return best
}

// countStructure fills the structural counts from the sanitized content.
func countStructure(sanitized string, res *unlocked.ExtractResult) {
	frag, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return
	}
	res.ParagraphCount = frag.Find("p").Length()
	res.HeadingCount = frag.Find("h1, h2, h3, h4, h5, h6").Length()
	res.ImageCount = frag.Find("img").Length()
	res.BlockquoteCount = frag.Find("blockquote").Length()
	res.ListCount = frag.Find("ul, ol").Length()
	res.LinkCount = frag.Find("a[href]").Length()
}
