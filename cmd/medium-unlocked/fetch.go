package main

import (
	"encoding/json"
	"fmt"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	article, err := deps.Pipeline.FetchArticle(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unlocked.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}

	fmt.Fprintf(deps.Stdout, "%s\n", article.Title)
	if article.Author != "" {
		fmt.Fprintf(deps.Stdout, "by %s\n", article.Author)
	}
	fmt.Fprintf(deps.Stdout, "%d words · %d min read · via %s (score %d)\n",
		article.WordCount, article.ReadingTimeMinutes, article.Method, article.Score)
	if article.Cached {
		fmt.Fprintln(deps.Stdout, "(served from cache)")
	}
	if article.Warning != "" {
		fmt.Fprintf(deps.Stdout, "warning: %s\n", article.Warning)
	}
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, article.PlainText)

	return nil
}
