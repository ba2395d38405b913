package syndicate

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

// Plan is the syndication plan file: the storefronts one article should be
// pushed to. Target paths are relative to the plan file.
type Plan struct {
	BaseURL string   `yaml:"baseUrl,omitempty"`
	Targets []Target `yaml:"targets"`
}

// Target is one storefront in a plan.
type Target struct {
	Tenant   string `yaml:"tenant"`
	Agent    string `yaml:"agent,omitempty"`
	Location string `yaml:"location,omitempty"`

	// IntroVariant and ClosingVariant pin the variant slots; empty means the
	// rotation assigns one.
	IntroVariant   string `yaml:"introVariant,omitempty"`
	ClosingVariant string `yaml:"closingVariant,omitempty"`
}

// TargetResult is the per-storefront outcome reported to the operator.
type TargetResult struct {
	Tenant         string `json:"tenant" yaml:"tenant"`
	Status         string `json:"status" yaml:"status"`
	Score          int    `json:"score" yaml:"score"`
	Grade          string `json:"grade,omitempty" yaml:"grade,omitempty"`
	IntroVariant   string `json:"intro_variant,omitempty" yaml:"intro_variant,omitempty"`
	ClosingVariant string `json:"closing_variant,omitempty" yaml:"closing_variant,omitempty"`
	CanonicalURL   string `json:"canonical_url,omitempty" yaml:"canonical_url,omitempty"`
	Warning        string `json:"warning,omitempty" yaml:"warning,omitempty"`
	Error          string `json:"error,omitempty" yaml:"error,omitempty"`

	wordCount int
}

// Summary is the full command output.
type Summary struct {
	Article  string             `json:"article" yaml:"article"`
	BatchID  string             `json:"batch_id,omitempty" yaml:"batch_id,omitempty"`
	DryRun   bool               `json:"dry_run" yaml:"dry_run"`
	Strategy canonical.Strategy `json:"strategy" yaml:"strategy"`
	Results  []TargetResult     `json:"results" yaml:"results"`
	Failed   int                `json:"failed" yaml:"failed"`
}

// loadedTarget is a target with its documents read in.
type loadedTarget struct {
	Target
	tenant   *models.Tenant
	agent    *models.Agent
	location *models.LocationData
}

// SyndicateAction pushes one article across a plan of storefronts: it
// assigns rotating intro and closing variants so copies diverge, renders
// each copy, enforces the recommended strategy's minimum uniqueness score,
// and writes the resulting tenant bundles back into the article file.
// Any failed target makes the command exit non-zero.
func SyndicateAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	articlePath := c.String("article")
	planPath := c.String("plan")
	if articlePath == "" || planPath == "" {
		return fmt.Errorf("both --article and --plan are required")
	}
	dryRun := c.Bool("dry-run")

	var article models.Article
	if err := common.LoadYAML(articlePath, &article); err != nil {
		return err
	}
	var plan Plan
	if err := common.LoadYAML(planPath, &plan); err != nil {
		return err
	}
	if len(plan.Targets) == 0 {
		return fmt.Errorf("plan %s has no targets", planPath)
	}

	targets, err := loadTargets(planPath, plan.Targets)
	if err != nil {
		return err
	}
	targets = filterTargets(c, targets)
	if len(targets) == 0 {
		return fmt.Errorf("no targets left after filtering")
	}

	strategy := prospectiveStrategy(&article, targets)
	if len(strategy.Errors) > 0 {
		for _, e := range strategy.Errors {
			logger.Error("strategy error", "error", e)
		}
		return fmt.Errorf("article is not set up for this syndication breadth: %s", strategy.Errors[0])
	}
	logger.Info("syndicating article", "slug", article.Slug,
		"targets", len(targets), "strategy", strategy.Kind, "min_score", strategy.MinUniqueness)

	orch := pipeline.New(generators.NewRegistry())
	summary := Summary{Article: article.Slug, DryRun: dryRun, Strategy: strategy}

	var runResults []db.RunResult
	for i, t := range targets {
		result := renderTarget(orch, &article, plan.BaseURL, t, i, strategy, NoopParaphraser{})
		summary.Results = append(summary.Results, result)

		status := db.ResultSuccess
		if result.Error != "" {
			status = db.ResultFailed
			summary.Failed++
			logger.Error("target failed", "tenant", result.Tenant, "error", result.Error)
		} else {
			logger.Info("target rendered", "tenant", result.Tenant,
				"score", result.Score, "intro", result.IntroVariant, "closing", result.ClosingVariant)
		}
		runResults = append(runResults, db.RunResult{
			TenantSlug:      result.Tenant,
			Status:          status,
			UniquenessScore: result.Score,
			UniquenessGrade: result.Grade,
			CanonicalURL:    result.CanonicalURL,
			SelfReferencing: result.CanonicalURL != "" && result.CanonicalURL == canonical.SelfURL(targetBaseURL(plan.BaseURL, t.tenant), article.Slug),
			WordCount:       result.wordCount,
			ErrorMessage:    result.Error,
		})
	}

	if batchID, err := recordRun(c, &article, dryRun, runResults); err != nil {
		logger.Warn("failed to record run", "error", err)
	} else {
		summary.BatchID = batchID
	}

	if !dryRun {
		if err := common.SaveYAML(articlePath, &article); err != nil {
			return err
		}
		logger.Info("article updated", "path", articlePath,
			"tenant_overrides", len(article.TenantOverrides), "syndicated_agents", len(article.SyndicatedAgents))
	}

	if err := common.PrintOutput(summary, c.String("format")); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d targets failed", summary.Failed, len(targets))
	}
	return nil
}

// renderTarget assigns variants, mutates the article's tenant bundle, and
// renders one storefront copy. i drives the variant rotation.
func renderTarget(orch *pipeline.Orchestrator, article *models.Article, baseURL string,
	t loadedTarget, i int, strategy canonical.Strategy, p Paraphraser) TargetResult {

	intro := t.IntroVariant
	if intro == "" {
		intro = generators.IntroVariants[i%len(generators.IntroVariants)]
	}
	closing := t.ClosingVariant
	if closing == "" {
		closing = generators.ClosingVariants[i%len(generators.ClosingVariants)]
	}

	bundle := upsertBundle(article, t.tenant.Slug)
	bundle.IntroVariant = intro
	bundle.ClosingVariant = closing
	for j := range bundle.Sections {
		bundle.Sections[j].Content = p.Paraphrase(bundle.Sections[j].Content)
	}
	if t.agent != nil {
		addSyndicatedAgent(article, t.agent.Slug)
	}

	result := orch.RenderPostForAgent(article, t.agent, t.location, t.tenant,
		targetBaseURL(baseURL, t.tenant), nil)

	out := TargetResult{
		Tenant:         t.tenant.Slug,
		Status:         db.ResultSuccess,
		Score:          result.Uniqueness.Score,
		Grade:          string(result.Uniqueness.Grade),
		IntroVariant:   intro,
		ClosingVariant: closing,
		CanonicalURL:   result.Meta.CanonicalURL,
		Warning:        result.CanonicalWarning,
		wordCount:      analytics.WordCount(result.Content),
	}
	if result.Uniqueness.Score < strategy.MinUniqueness {
		out.Status = db.ResultFailed
		out.Error = fmt.Sprintf("uniqueness score %d below the required minimum %d for %s strategy",
			result.Uniqueness.Score, strategy.MinUniqueness, strategy.Kind)
	}
	return out
}

// upsertBundle finds or creates the tenant's override bundle on the article.
func upsertBundle(article *models.Article, tenantSlug string) *models.TenantOverride {
	for i := range article.TenantOverrides {
		if article.TenantOverrides[i].Tenant == tenantSlug {
			return &article.TenantOverrides[i]
		}
	}
	article.TenantOverrides = append(article.TenantOverrides, models.TenantOverride{Tenant: tenantSlug})
	return &article.TenantOverrides[len(article.TenantOverrides)-1]
}

func addSyndicatedAgent(article *models.Article, slug string) {
	for _, s := range article.SyndicatedAgents {
		if s == slug {
			return
		}
	}
	article.SyndicatedAgents = append(article.SyndicatedAgents, slug)
}

// targetBaseURL prefers the tenant's own primary domain over the plan-wide
// base URL.
func targetBaseURL(planBase string, tenant *models.Tenant) string {
	if host := tenant.PrimaryHost(); host != "" {
		return "https://" + host
	}
	return planBase
}

func recordRun(c *cli.Context, article *models.Article, dryRun bool, results []db.RunResult) (string, error) {
	database, err := common.OpenDatabase(c)
	if err != nil {
		return "", err
	}
	defer database.Close()

	runID, batchID, err := database.CreateRun(db.RunKindSyndicate, article.Slug, len(results), dryRun)
	if err != nil {
		return "", err
	}
	for _, r := range results {
		if err := database.InsertRunResult(runID, r); err != nil {
			return batchID, err
		}
	}
	return batchID, nil
}

func loadTargets(planPath string, raw []Target) ([]loadedTarget, error) {
	targets := make([]loadedTarget, 0, len(raw))
	for i, t := range raw {
		if t.Tenant == "" {
			return nil, fmt.Errorf("plan target %d has no tenant", i+1)
		}
		lt := loadedTarget{Target: t, tenant: &models.Tenant{}}
		if err := common.LoadYAML(common.ResolvePath(planPath, t.Tenant), lt.tenant); err != nil {
			return nil, err
		}
		if t.Agent != "" {
			lt.agent = &models.Agent{}
			if err := common.LoadYAML(common.ResolvePath(planPath, t.Agent), lt.agent); err != nil {
				return nil, err
			}
		}
		if t.Location != "" {
			lt.location = &models.LocationData{}
			if err := common.LoadYAML(common.ResolvePath(planPath, t.Location), lt.location); err != nil {
				return nil, err
			}
		}
		targets = append(targets, lt)
	}
	return targets, nil
}

// filterTargets applies --ids, --tier, and --region.
func filterTargets(c *cli.Context, targets []loadedTarget) []loadedTarget {
	ids := common.SplitCSV(c.String("ids"))
	tier := c.Int("tier")
	region := c.String("region")

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	var out []loadedTarget
	for _, t := range targets {
		if len(idSet) > 0 && !idSet[t.tenant.Slug] {
			continue
		}
		if tier > 0 && (t.location == nil || t.location.Tier != tier) {
			continue
		}
		if region != "" && (t.location == nil || t.location.Region != region) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// prospectiveStrategy recommends against the breadth the plan will reach,
// not just what the article already lists.
func prospectiveStrategy(article *models.Article, targets []loadedTarget) canonical.Strategy {
	prospective := *article
	seen := make(map[string]bool, len(article.SyndicatedAgents))
	for _, slug := range article.SyndicatedAgents {
		seen[slug] = true
	}
	for _, t := range targets {
		if t.agent != nil && !seen[t.agent.Slug] {
			prospective.SyndicatedAgents = append(prospective.SyndicatedAgents, t.agent.Slug)
			seen[t.agent.Slug] = true
		}
	}
	return canonical.RecommendStrategy(&prospective)
}
