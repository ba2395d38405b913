package importcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/agentpress/agentpress/internal/common"
	"github.com/agentpress/agentpress/pkg/fetcher"
	"github.com/agentpress/agentpress/pkg/importer"
)

// ImportAction extracts an article draft from a legacy HTML page. With
// --file the page is read from disk; otherwise it is fetched from --url.
// --save persists the draft article into the content store; otherwise the
// draft prints to stdout for an editor to review.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	filePath := c.String("file")
	rawURL := c.String("url")
	if rawURL == "" {
		return fmt.Errorf("no URL provided via --url flag")
	}

	var html string
	if filePath != "" {
		data, err := os.ReadFile(filepath.Clean(filePath))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		html = string(data)
	} else {
		logger.Info("fetching page", "url", rawURL)
		var err error
		html, err = fetcher.NewFetcher().GetHTML(c.Context, rawURL)
		if err != nil {
			return err
		}
	}

	im := importer.New()
	draft, err := im.ImportHTML(rawURL, html)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", filePath, err)
	}

	if slug := c.String("slug"); slug != "" {
		draft.Article.Slug = slug
	}

	logger.Info("imported article draft",
		"slug", draft.Article.Slug,
		"language", draft.Article.Language,
		"words", draft.WordCt,
		"keywords", len(draft.Keywords))

	if c.Bool("save") {
		database, err := common.OpenDatabase(c)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.SaveArticle(draft.Article); err != nil {
			return err
		}
		logger.Info("draft saved to content store", "slug", draft.Article.Slug, "db", database.Path())
	}

	return common.PrintOutput(draft, c.String("format"))
}
