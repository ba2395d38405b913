package validate

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/agentpress/agentpress/internal/common"
	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/generators"
	"github.com/agentpress/agentpress/pkg/validator"
)

// ValidateAction checks a template file, and optionally an article's
// overrides against it, reporting every issue at once. Hard errors make the
// command exit non-zero; warnings alone do not.
func ValidateAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	templatePath := c.String("template")
	if templatePath == "" {
		return fmt.Errorf("no template provided via --template flag")
	}

	var template models.Template
	if err := common.LoadYAML(templatePath, &template); err != nil {
		return err
	}

	reg := generators.NewRegistry()

	var sample *models.RenderContext
	if path := c.String("sample"); path != "" {
		sample = &models.RenderContext{Now: time.Now()}
		var fixture struct {
			Agent    *models.Agent        `yaml:"agent"`
			Location *models.LocationData `yaml:"location"`
			Tenant   *models.Tenant       `yaml:"tenant"`
		}
		if err := common.LoadYAML(path, &fixture); err != nil {
			return err
		}
		sample.Agent = fixture.Agent
		sample.Location = fixture.Location
		sample.Tenant = fixture.Tenant
		sample.Article = &models.Article{}
	}

	report := validator.ValidateTemplate(&template, reg, sample)

	if path := c.String("article"); path != "" {
		var article models.Article
		if err := common.LoadYAML(path, &article); err != nil {
			return err
		}
		overrideReport := validator.ValidateOverrides(&template, &article)
		report.Issues = append(report.Issues, overrideReport.Issues...)
	}

	logger.Info("validation complete", "template", template.ID, "issues", len(report.Issues))

	if err := common.PrintOutput(report, c.String("format")); err != nil {
		return err
	}
	if report.HasErrors() {
		return fmt.Errorf("template %q has validation errors", template.ID)
	}
	return nil
}
