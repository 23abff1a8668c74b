package unlocked

import (
	"strings"
	"time"
)

// urlPlaceholder marks where the article URL is substituted into a
// strategy's URL template.
const urlPlaceholder = "{url}"

// Strategy describes one external mirror service: where to send the
// request and how patient to be with it. Strategies are static
// configuration; their order in a slice is their priority and is never
// changed at runtime.
type Strategy struct {
	// Name identifies the strategy in logs, reliability records and
	// cache entries (the "method").
	Name string

	// URLTemplate is the mirror URL with a {url} placeholder for the
	// original article URL.
	URLTemplate string

	// Timeout is the hard wall-clock budget for a single fetch.
	Timeout time.Duration

	// MaxRetries is the number of attempts for this strategy (minimum 1).
	MaxRetries int

	// Headers are merged over the fetcher's default browser profile.
	Headers map[string]string
}

// Resolve substitutes the article URL into the strategy's URL template.
func (s Strategy) Resolve(articleURL string) string {
	return strings.ReplaceAll(s.URLTemplate, urlPlaceholder, articleURL)
}

// DefaultStrategies returns the built-in mirror table in priority order.
// Freedium is first because it serves the cleanest markup; the Google
// cache is last because it is stale more often than not.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:        "freedium",
			URLTemplate: "https://freedium.cfd/{url}",
			Timeout:     15 * time.Second,
			MaxRetries:  2,
		},
		{
			Name:        "readmedium",
			URLTemplate: "https://readmedium.com/{url}",
			Timeout:     12 * time.Second,
			MaxRetries:  2,
		},
		{
			Name:        "google-cache",
			URLTemplate: "https://webcache.googleusercontent.com/search?q=cache:{url}",
			Timeout:     10 * time.Second,
			MaxRetries:  1,
			Headers: map[string]string{
				"Referer": "https://www.google.com/",
			},
		},
	}
}
