package unlocked

import (
	"regexp"
	"strings"
)

// Score thresholds consumed by the pipeline.
const (
	// ScoreSuccess accepts an extraction immediately; no further
	// strategies run and the result is cached.
	ScoreSuccess = 60

	// ScorePartialMin is the floor for tracking an extraction as the
	// best partial seen so far.
	ScorePartialMin = 40

	// ScoreSalvageMin is the floor for returning a best partial after
	// every strategy has been exhausted. Anything below is discarded.
	ScoreSalvageMin = 35
)

// readingTimeMarker matches Medium's explicit "N min read" annotation.
var readingTimeMarker = regexp.MustCompile(`(?i)\d+\s*min\s*read`)

// titlePlaceholders are title values that indicate the mirror served an
// error or interstitial page rather than the article.
var titlePlaceholders = map[string]bool{
	"":                 true,
	"untitled":         true,
	"medium":           true,
	"just a moment...": true,
	"access denied":    true,
}

// CompletenessScore rates an extraction 0-100 using an additive rubric
// over the extracted fields plus the raw markup. It is deterministic and
// always clamped to [0,100].
//
// The rubric:
//
//	title     non-placeholder; 15 if >=10 chars, else 8
//	author    10 if >=3 chars, else 5 if present
//	words     cumulative tiers at 100/300/500/1000/2000 (10/10/10/15/5)
//	structure 5 per paragraph tier (>=3, >=10), 5 for any heading
//	media     5 per image tier (>=1, >=3)
//	bonus     5 "min read" marker, 2 blockquotes, 2 lists, 1 low link density
func CompletenessScore(res *ExtractResult, rawHTML string) int {
	if res == nil {
		return 0
	}

	score := 0

	title := strings.TrimSpace(res.Title)
	if !titlePlaceholders[strings.ToLower(title)] {
		if len(title) >= 10 {
			score += 15
		} else {
			score += 8
		}
	}

	author := strings.TrimSpace(res.Author)
	if len(author) >= 3 {
		score += 10
	} else if author != "" {
		score += 5
	}

	for _, tier := range []struct{ words, points int }{
		{100, 10}, {300, 10}, {500, 10}, {1000, 15}, {2000, 5},
	} {
		if res.WordCount >= tier.words {
			score += tier.points
		}
	}

	if res.ParagraphCount >= 3 {
		score += 5
	}
	if res.ParagraphCount >= 10 {
		score += 5
	}
	if res.HeadingCount > 0 {
		score += 5
	}

	if res.ImageCount >= 1 {
		score += 5
	}
	if res.ImageCount >= 3 {
		score += 5
	}

	if readingTimeMarker.MatchString(rawHTML) {
		score += 5
	}
	if res.BlockquoteCount > 0 {
		score += 2
	}
	if res.ListCount > 0 {
		score += 2
	}
	if res.WordCount > 0 && res.LinkCount <= res.WordCount/100 {
		score += 1
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
