// Package pipeline orchestrates article extraction: cache lookup,
// sequential strategy iteration with retry and backoff, completeness
// scoring, and the side-effect writes to the cache, reliability records
// and audit log.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// DefaultBackoffBase is the base delay between same-strategy retries.
// The n-th retry waits base * 2^(n-1).
const DefaultBackoffBase = 1 * time.Second

// partialWarning is the caller-visible note attached to results below
// the full-success threshold.
const partialWarning = "This article could only be partially extracted and may be missing content."

// genericFailure is the only message shown when every strategy fails.
// Internal endpoint errors are logged, never surfaced.
const genericFailure = "Unable to retrieve this article right now. Please try again later."

// Pipeline drives the extraction strategy loop. Strategies run strictly
// sequentially in configured priority order; mirrors are never raced in
// parallel, a deliberate politeness tradeoff.
type Pipeline struct {
	Fetcher     unlocked.Fetcher
	Extractor   unlocked.Extractor
	Cache       unlocked.CacheService
	Reliability unlocked.ReliabilityService
	Audit       unlocked.AuditService

	// Limiter, when set, is consulted before each fetch. It is an
	// explicit dependency shared by reference, never a package global.
	Limiter unlocked.DomainLimiter

	// Strategies in priority order. Defaults to
	// unlocked.DefaultStrategies() when empty.
	Strategies []unlocked.Strategy

	// BackoffBase overrides DefaultBackoffBase; tests set it to a
	// millisecond to avoid real sleeps.
	BackoffBase time.Duration

	Logger *slog.Logger
}

// attemptOutcome carries one attempt's extraction and score while the
// loop decides whether something better may still come along.
type attemptOutcome struct {
	result *unlocked.ExtractResult
	score  int
	method string
}

// FetchArticle validates the URL, consults the cache, then works through
// the strategies until one yields an acceptable extraction.
//
// Only EINVALID (bad URL) and EUNAVAILABLE (everything exhausted) reach
// the caller; per-attempt errors are absorbed into retry and fallback.
// Context cancellation aborts in-flight fetches and remaining attempts.
func (p *Pipeline) FetchArticle(ctx context.Context, url string) (*unlocked.Article, error) {
	if err := unlocked.ValidateURL(url); err != nil {
		return nil, err
	}

	logger := p.logger().With("url", url)

	if entry, ok := p.cacheLookup(ctx, url, logger); ok {
		return entry.Article(), nil
	}

	strategies := p.Strategies
	if len(strategies) == 0 {
		strategies = unlocked.DefaultStrategies()
	}

	articleDomain := unlocked.Domain(url)

	var best *attemptOutcome
	var lastErr error

	for _, strategy := range strategies {
		retries := strategy.MaxRetries
		if retries < 1 {
			retries = 1
		}
		target := strategy.Resolve(url)

		for attempt := 1; attempt <= retries; attempt++ {
			if attempt > 1 {
				if err := p.backoff(ctx, attempt-1); err != nil {
					return nil, err
				}
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if p.Limiter != nil {
				if err := p.Limiter.Wait(ctx, unlocked.Domain(target)); err != nil {
					if ctx.Err() != nil {
						return nil, ctx.Err()
					}
					// A limiter rejection is an attempt failure, never a
					// caller-visible error code of its own.
					lastErr = err
					logger.Warn("rate limiter rejected attempt",
						"method", strategy.Name,
						"attempt", attempt,
						"error", err,
					)
					continue
				}
			}

			outcome, responseTime, err := p.attempt(ctx, strategy, target)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				lastErr = err
				logger.Debug("attempt failed",
					"method", strategy.Name,
					"attempt", attempt,
					"error", err,
				)
				p.recordAttempt(ctx, articleDomain, strategy.Name, false, responseTime, logger)
				p.audit(ctx, logger, &unlocked.LogEntry{
					URL:            url,
					Attempt:        attempt,
					Method:         strategy.Name,
					Status:         unlocked.StatusFailed,
					ErrorMessage:   unlocked.ErrorMessage(err),
					ResponseTimeMs: responseTime,
				})
				continue
			}

			entry := &unlocked.LogEntry{
				URL:            url,
				Attempt:        attempt,
				Method:         strategy.Name,
				ResponseTimeMs: responseTime,
				ContentLength:  len(outcome.result.ContentHTML),
				Score:          outcome.score,
			}

			if outcome.score >= unlocked.ScoreSuccess {
				article := buildArticle(outcome, false)
				p.recordAttempt(ctx, articleDomain, strategy.Name, true, responseTime, logger)
				entry.Status = unlocked.StatusSuccess
				p.audit(ctx, logger, entry)
				p.persist(ctx, url, article, logger)
				logger.Info("article extracted",
					"method", strategy.Name,
					"score", outcome.score,
					"words", article.WordCount,
				)
				return article, nil
			}

			p.recordAttempt(ctx, articleDomain, strategy.Name, false, responseTime, logger)
			if outcome.score >= unlocked.ScorePartialMin {
				entry.Status = unlocked.StatusPartial
				if best == nil || outcome.score > best.score {
					best = outcome
				}
			} else {
				entry.Status = unlocked.StatusFailed
				entry.ErrorMessage = "extraction below completeness floor"
			}
			p.audit(ctx, logger, entry)
		}
	}

	if best != nil && best.score >= unlocked.ScoreSalvageMin {
		article := buildArticle(best, true)
		logger.Info("returning best partial", "method", best.method, "score", best.score)
		return article, nil
	}

	logger.Info("all strategies exhausted", "error", lastErr)
	return nil, unlocked.Errorf(unlocked.EUNAVAILABLE, "%s", genericFailure)
}

// attempt performs one fetch+extract+score cycle and reports the fetch
// response time in milliseconds regardless of outcome.
func (p *Pipeline) attempt(ctx context.Context, strategy unlocked.Strategy, target string) (*attemptOutcome, int64, error) {
	start := time.Now()
	raw, err := p.Fetcher.Fetch(ctx, unlocked.FetchRequest{
		URL:     target,
		Timeout: strategy.Timeout,
		Headers: strategy.Headers,
	})
	responseTime := time.Since(start).Milliseconds()
	if err != nil {
		return nil, responseTime, err
	}

	result, err := p.Extractor.Extract(raw)
	if err != nil {
		return nil, responseTime, err
	}

	return &attemptOutcome{
		result: result,
		score:  unlocked.CompletenessScore(result, raw),
		method: strategy.Name,
	}, responseTime, nil
}

// cacheLookup returns the unexpired entry for the URL, if any, and logs
// the hit to the audit trail with method "cache".
func (p *Pipeline) cacheLookup(ctx context.Context, url string, logger *slog.Logger) (*unlocked.CacheEntry, bool) {
	if p.Cache == nil {
		return nil, false
	}
	entry, err := p.Cache.Get(ctx, url)
	if err != nil {
		if unlocked.ErrorCode(err) != unlocked.ENOTFOUND {
			logger.Warn("cache read failed", "error", err)
		}
		return nil, false
	}
	p.audit(ctx, logger, &unlocked.LogEntry{
		URL:           url,
		Method:        "cache",
		Status:        unlocked.StatusSuccess,
		ContentLength: len(entry.ContentHTML),
		Score:         entry.Score,
	})
	return entry, true
}

// persist writes the accepted article to the cache. Failures are logged
// and swallowed; the caller still gets the article.
func (p *Pipeline) persist(ctx context.Context, url string, article *unlocked.Article, logger *slog.Logger) {
	if p.Cache == nil {
		return
	}
	err := p.Cache.Put(ctx, &unlocked.CacheEntry{
		URL:                url,
		Title:              article.Title,
		Author:             article.Author,
		ContentHTML:        article.ContentHTML,
		PlainText:          article.PlainText,
		WordCount:          article.WordCount,
		ReadingTimeMinutes: article.ReadingTimeMinutes,
		Score:              article.Score,
		Method:             article.Method,
	})
	if err != nil {
		logger.Warn("cache write failed", "error", err)
	}
}

// recordAttempt updates the domain's reliability record. Failures are
// logged and swallowed.
func (p *Pipeline) recordAttempt(ctx context.Context, domain, method string, success bool, responseTime int64, logger *slog.Logger) {
	if p.Reliability == nil || domain == "" {
		return
	}
	if err := p.Reliability.RecordAttempt(ctx, domain, method, success, responseTime); err != nil {
		logger.Warn("reliability update failed", "error", err)
	}
}

// audit appends one attempt record. Failures are logged and swallowed;
// the audit trail never alters the result returned to the caller.
func (p *Pipeline) audit(ctx context.Context, logger *slog.Logger, entry *unlocked.LogEntry) {
	if p.Audit == nil {
		return
	}
	if err := p.Audit.Append(ctx, entry); err != nil {
		logger.Warn("audit append failed", "error", err)
	}
}

// buildArticle converts an attempt outcome into the caller-facing value.
func buildArticle(outcome *attemptOutcome, partial bool) *unlocked.Article {
	article := &unlocked.Article{
		Title:              outcome.result.Title,
		Author:             outcome.result.Author,
		ContentHTML:        outcome.result.ContentHTML,
		PlainText:          outcome.result.PlainText,
		WordCount:          outcome.result.WordCount,
		ReadingTimeMinutes: unlocked.ReadingTime(outcome.result.WordCount),
		Score:              outcome.score,
		Method:             outcome.method,
	}
	if partial {
		article.Warning = partialWarning
	}
	return article
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
