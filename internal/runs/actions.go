package runs

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/agentpress/agentpress/internal/common"
)

// RunsAction lists recent render and syndication runs as a table.
func RunsAction(c *cli.Context) error {
	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runList, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runList) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-38s %-10s %-30s %-8s %-8s %-8s %-6s %-20s\n",
		"Batch", "Kind", "Article", "Targets", "Success", "Failed", "Dry", "Created")
	fmt.Println(strings.Repeat("-", 130))

	for _, r := range runList {
		dry := ""
		if r.DryRun {
			dry = "yes"
		}
		fmt.Printf("%-38s %-10s %-30s %-8d %-8d %-8d %-6s %-20s\n",
			r.BatchID, r.Kind, r.ArticleSlug, r.TargetCount,
			r.SuccessCount, r.FailedCount, dry,
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	fmt.Printf("\nTotal: %d runs\n", len(runList))
	fmt.Printf("\nTip: Use 'agentpress runs show <batch-id>' to see per-tenant results\n")
	return nil
}

// ShowRunAction prints the per-tenant results of one run.
func ShowRunAction(c *cli.Context) error {
	batchID := c.Args().First()
	if batchID == "" {
		return fmt.Errorf("no batch id provided")
	}

	database, err := common.OpenDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	run, err := database.GetRunByBatchID(batchID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("no run with batch id %q", batchID)
	}

	results, err := database.GetRunResults(run.ID)
	if err != nil {
		return fmt.Errorf("failed to get run results: %w", err)
	}

	fmt.Printf("Run %s\n", run.BatchID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Kind:      %s\n", run.Kind)
	fmt.Printf("Article:   %s\n", run.ArticleSlug)
	fmt.Printf("Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Targets:   %d total (%d success, %d failed)\n",
		run.TargetCount, run.SuccessCount, run.FailedCount)
	if run.DryRun {
		fmt.Println("Dry run:   yes (no articles were modified)")
	}

	if len(results) > 0 {
		fmt.Printf("\nResults (%d):\n", len(results))
		fmt.Println(strings.Repeat("-", 60))
		for i, r := range results {
			fmt.Printf("%2d. [%s] %s\n", i+1, r.Status, r.TenantSlug)
			if r.Status == "failed" {
				fmt.Printf("    Error: %s\n", r.ErrorMessage)
			} else {
				fmt.Printf("    Score: %d (%s) | Words: %d | Canonical: %s",
					r.UniquenessScore, r.UniquenessGrade, r.WordCount, r.CanonicalURL)
				if r.SelfReferencing {
					fmt.Print(" (self)")
				}
				fmt.Println()
			}
		}
	}
	return nil
}
