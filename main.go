package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/agentpress/agentpress/internal/importcmd"
	"github.com/agentpress/agentpress/internal/render"
	"github.com/agentpress/agentpress/internal/runs"
	"github.com/agentpress/agentpress/internal/syndicate"
	"github.com/agentpress/agentpress/internal/validate"
)

func main() {
	app := &cli.App{
		Name:  "agentpress",
		Usage: "content assembly and syndication safety for agent storefronts",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.StringFlag{Name: "db", Usage: "content store path (default: next to the binary)"},
			&cli.StringFlag{Name: "format", Value: "yaml", Usage: "output format: yaml or json"},
		},
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "render one article for one storefront context",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "article", Usage: "article YAML file", Required: true},
					&cli.StringFlag{Name: "tenant", Usage: "tenant YAML file"},
					&cli.StringFlag{Name: "agent", Usage: "agent YAML file"},
					&cli.StringFlag{Name: "location", Usage: "location YAML file"},
					&cli.StringFlag{Name: "announcements", Usage: "announcements YAML file"},
					&cli.StringFlag{Name: "base-url", Usage: "storefront base URL for canonical links"},
					&cli.BoolFlag{Name: "text", Usage: "print rendered text only"},
					&cli.BoolFlag{Name: "record", Usage: "record this render in run history"},
					&cli.IntFlag{Name: "require-unique", Usage: "exit non-zero if the uniqueness score is below this value"},
				},
				Action: render.RenderAction,
			},
			{
				Name:  "syndicate",
				Usage: "push an article across a plan of storefronts with variant rotation",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "article", Usage: "article YAML file", Required: true},
					&cli.StringFlag{Name: "plan", Usage: "syndication plan YAML file", Required: true},
					&cli.StringFlag{Name: "ids", Usage: "comma separated tenant slugs to include"},
					&cli.IntFlag{Name: "tier", Usage: "only targets whose location has this tier"},
					&cli.StringFlag{Name: "region", Usage: "only targets whose location is in this region"},
					&cli.BoolFlag{Name: "dry-run", Usage: "render and score without modifying the article"},
				},
				Action: syndicate.SyndicateAction,
			},
			{
				Name:  "validate",
				Usage: "check a template (and optionally an article's overrides) before publishing",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "template", Usage: "template YAML file", Required: true},
					&cli.StringFlag{Name: "article", Usage: "article YAML file to check overrides against"},
					&cli.StringFlag{Name: "sample", Usage: "sample context YAML for token checks"},
				},
				Action: validate.ValidateAction,
			},
			{
				Name:  "import",
				Usage: "extract an article draft from a legacy HTML page",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "original page URL", Required: true},
					&cli.StringFlag{Name: "file", Usage: "read the page from this HTML file instead of fetching"},
					&cli.StringFlag{Name: "slug", Usage: "override the derived article slug"},
					&cli.BoolFlag{Name: "save", Usage: "save the draft into the content store"},
				},
				Action: importcmd.ImportAction,
			},
			{
				Name:   "runs",
				Usage:  "list recent render and syndication runs",
				Action: runs.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to list"},
				},
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "show per-tenant results for one run",
						ArgsUsage: "<batch-id>",
						Action:    runs.ShowRunAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
