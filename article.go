package unlocked

// Article is the value returned to callers for a successful or partially
// successful extraction. It is immutable once produced.
type Article struct {
	Title              string            `json:"title"`
	Author             string            `json:"author"`
	ContentHTML        string            `json:"contentHtml"`
	PlainText          string            `json:"plainText"`
	WordCount          int               `json:"wordCount"`
	ReadingTimeMinutes int               `json:"readingTimeMinutes"`
	Score              int               `json:"score"`
	Method             string            `json:"method"`
	Cached             bool              `json:"cached"`
	Warning            string            `json:"warning,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// Partial reports whether the article is a partial success, i.e. its
// completeness score fell below the success threshold but it was still
// good enough to return.
func (a *Article) Partial() bool {
	return a.Warning != ""
}
