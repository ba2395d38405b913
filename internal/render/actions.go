package render

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/agentpress/agentpress/internal/common"
	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/analytics"
	"github.com/agentpress/agentpress/pkg/canonical"
	"github.com/agentpress/agentpress/pkg/db"
	"github.com/agentpress/agentpress/pkg/generators"
	"github.com/agentpress/agentpress/pkg/pipeline"
)

// RenderAction renders one article for one storefront context and prints the
// result with its uniqueness and canonical verdicts.
func RenderAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	articlePath := c.String("article")
	if articlePath == "" {
		return fmt.Errorf("no article provided via --article flag")
	}

	var article models.Article
	if err := common.LoadYAML(articlePath, &article); err != nil {
		return err
	}

	var tenant *models.Tenant
	if path := c.String("tenant"); path != "" {
		tenant = &models.Tenant{}
		if err := common.LoadYAML(path, tenant); err != nil {
			return err
		}
	}
	var agent *models.Agent
	if path := c.String("agent"); path != "" {
		agent = &models.Agent{}
		if err := common.LoadYAML(path, agent); err != nil {
			return err
		}
	}
	var location *models.LocationData
	if path := c.String("location"); path != "" {
		location = &models.LocationData{}
		if err := common.LoadYAML(path, location); err != nil {
			return err
		}
	}
	var announcements []models.Announcement
	if path := c.String("announcements"); path != "" {
		if err := common.LoadYAML(path, &announcements); err != nil {
			return err
		}
	}

	baseURL := c.String("base-url")
	logger.Info("rendering article", "slug", article.Slug, "tenant", tenantSlug(tenant), "base_url", baseURL)

	orch := pipeline.New(generators.NewRegistry())
	result := orch.RenderPostForAgent(&article, agent, location, tenant, baseURL, announcements)

	logger.Info("render complete",
		"score", result.Uniqueness.Score,
		"grade", result.Uniqueness.Grade,
		"sections", len(result.Sections),
		"canonical", result.Meta.CanonicalURL)

	if c.Bool("record") {
		if err := recordRun(c, &article, tenant, baseURL, result); err != nil {
			logger.Warn("failed to record run", "error", err)
		}
	}

	if c.Bool("text") {
		fmt.Println(result.Content)
	} else if err := common.PrintOutput(result, c.String("format")); err != nil {
		return err
	}

	if min := c.Int("require-unique"); min > 0 && result.Uniqueness.Score < min {
		return fmt.Errorf("uniqueness score %d below the required minimum %d", result.Uniqueness.Score, min)
	}
	return nil
}

// recordRun stores a single-target run in the content store so the render
// shows up in run history.
func recordRun(c *cli.Context, article *models.Article, tenant *models.Tenant,
	baseURL string, result models.RenderResult) error {

	database, err := common.OpenDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, _, err := database.CreateRun(db.RunKindRender, article.Slug, 1, false)
	if err != nil {
		return err
	}

	selfURL := canonical.SelfURL(baseURL, article.Slug)
	return database.InsertRunResult(runID, db.RunResult{
		TenantSlug:      tenantSlug(tenant),
		Status:          db.ResultSuccess,
		UniquenessScore: result.Uniqueness.Score,
		UniquenessGrade: string(result.Uniqueness.Grade),
		CanonicalURL:    result.Meta.CanonicalURL,
		SelfReferencing: result.Meta.CanonicalURL == selfURL,
		WordCount:       analytics.WordCount(result.Content),
	})
}

func tenantSlug(t *models.Tenant) string {
	if t == nil {
		return "(none)"
	}
	return t.Slug
}
