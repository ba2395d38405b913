// Package overrides normalizes the two override shapes that exist in source
// data (article-level and tenant-level) into one internal form and applies
// merged overrides to section text.
package overrides

import (
	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/tokens"
)

// Origin records which layer authored an override, so renderers can honor
// per-section override permissions.
type Origin string

const (
	OriginArticle Origin = "article"
	OriginTenant  Origin = "tenant"
)

// Override is the single internal override shape.
type Override struct {
	SectionID    string
	OverrideType models.OverrideType
	Content      string
	Origin       Origin
}

// NormalizeArticle converts article-level overrides (the richer original
// schema) to the internal shape. RichContent wins over Content when both
// are authored.
func NormalizeArticle(in []models.ArticleOverride) []Override {
	out := make([]Override, 0, len(in))
	for _, o := range in {
		content := o.Content
		if o.RichContent != "" {
			content = o.RichContent
		}
		out = append(out, Override{
			SectionID:    o.SectionID,
			OverrideType: o.OverrideType,
			Content:      content,
			Origin:       OriginArticle,
		})
	}
	return out
}

// NormalizeTenant converts tenant-level overrides (the shorter schema) to
// the internal shape.
func NormalizeTenant(in []models.TenantSectionOverride) []Override {
	out := make([]Override, 0, len(in))
	for _, o := range in {
		out = append(out, Override{
			SectionID:    o.SecID,
			OverrideType: o.Type,
			Content:      o.Content,
			Origin:       OriginTenant,
		})
	}
	return out
}

// Merge combines the two normalized lists. The article list is the base;
// every tenant entry either replaces the article entry with the same
// section id or is appended. Tenant-level always wins on collision.
func Merge(article, tenant []Override) []Override {
	merged := make([]Override, len(article))
	copy(merged, article)

	for _, t := range tenant {
		replaced := false
		for i := range merged {
			if merged[i].SectionID == t.SectionID {
				merged[i] = t
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, t)
		}
	}
	return merged
}

// ByID indexes a merged override list by section id. Later entries win,
// though Merge never produces duplicate ids.
func ByID(list []Override) map[string]Override {
	m := make(map[string]Override, len(list))
	for _, o := range list {
		m[o.SectionID] = o
	}
	return m
}

// Apply applies one override to already-generated base text. Override text
// is token-substituted here; base text is assumed substituted by its own
// generator or token path.
//
//	hide    -> empty, regardless of base
//	replace -> override text only
//	prepend -> override text, blank line, base
//	append  -> base, blank line, override text
//
// Unknown override types leave the base untouched.
func Apply(base string, o Override, ctx *models.RenderContext) string {
	switch o.OverrideType {
	case models.OverrideHide:
		return ""
	case models.OverrideReplace:
		return tokens.ReplaceTokens(o.Content, ctx)
	case models.OverridePrepend:
		return joinBlocks(tokens.ReplaceTokens(o.Content, ctx), base)
	case models.OverrideAppend:
		return joinBlocks(base, tokens.ReplaceTokens(o.Content, ctx))
	default:
		return base
	}
}

// joinBlocks joins two text blocks with a blank line, dropping empty sides.
func joinBlocks(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "\n\n" + b
}
