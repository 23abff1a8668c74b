package mock

import unlocked "github.com/Skasundra/medium-unlocked"

var _ unlocked.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of unlocked.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*unlocked.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*unlocked.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ unlocked.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of unlocked.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
