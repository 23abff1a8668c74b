package unlocked

// ExtractResult holds the fields derived from one page of raw mirror
// markup, plus the structural counts the completeness scorer consumes.
// ContentHTML and PlainText have already been sanitized.
type ExtractResult struct {
	Title  string
	Author string

	// ContentHTML is the sanitized article body. Boilerplate, scripts,
	// styles, forms and tracking containers have been removed; semantic
	// markup (headings, paragraphs, lists, blockquotes, images, links)
	// is preserved.
	ContentHTML string

	// PlainText is ContentHTML with remaining tags stripped and
	// entities decoded.
	PlainText string

	WordCount       int
	ParagraphCount  int
	HeadingCount    int
	ImageCount      int
	BlockquoteCount int
	ListCount       int
	LinkCount       int
}

// Extractor derives title, author and article body from raw mirror
// markup. Extraction is heuristic and best-effort: a miss on an unseen
// page structure is an expected outcome, not a defect.
type Extractor interface {
	// Extract processes raw HTML and returns the sanitized result.
	// Returns EINVALID when the input is empty or yields too little
	// text to be an article.
	Extract(html string) (*ExtractResult, error)
}

// Sanitizer strips executable and non-article markup while preserving
// semantic structure.
type Sanitizer interface {
	Sanitize(html string) string
}
