// Package importer turns legacy HTML pages into article drafts. Brokerages
// migrating onto the platform arrive with hundreds of old blog posts; the
// importer extracts the readable body, strips navigation boilerplate,
// detects the language, and suggests keywords so editors start from a draft
// instead of a blank page.
package importer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/analytics"
)

// Draft is the result of importing one HTML page. It carries everything an
// editor needs to finish an article by hand.
type Draft struct {
	Article  *models.Article `json:"article" yaml:"article"`
	Keywords []string        `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Excerpt  string          `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	WordCt   int             `json:"word_count" yaml:"word_count"`
}

// Importer extracts article drafts from HTML. Construct once; the language
// detector preloads its models.
type Importer struct {
	detector lingua.LanguageDetector
}

// languages the platform publishes in.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.Chinese,
	lingua.Vietnamese,
	lingua.Korean,
	lingua.Portuguese,
}

// New builds an Importer with a detector for the platform's supported
// languages.
func New() *Importer {
	return &Importer{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build(),
	}
}

// ImportHTML extracts a draft from one HTML document. rawURL anchors
// relative links during extraction and seeds the article slug.
func (im *Importer) ImportHTML(rawURL, html string) (*Draft, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %q: %w", rawURL, err)
	}

	readabilityParser := readability.NewParser()
	extracted, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract readable content: %w", err)
	}

	body, err := flattenContent(extracted.Content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("no readable content found at %q", rawURL)
	}

	article := &models.Article{
		Slug:            slugFromURL(parsedURL),
		Title:           normalizeText(extracted.Title),
		SyndicationMode: models.SyndicationAgentSpecific,
		RawBody:         body,
		Language:        im.detectLanguage(body),
	}
	if extracted.Excerpt != "" {
		article.MetaDescription = normalizeText(extracted.Excerpt)
	}

	return &Draft{
		Article:  article,
		Keywords: analytics.TopNWords(body, 10),
		Excerpt:  normalizeText(extracted.Excerpt),
		WordCt:   analytics.WordCount(body),
	}, nil
}

// flattenContent walks the distilled HTML and rebuilds it as plain blocks
// separated by blank lines, the shape the render pipeline expects for raw
// bodies. List items become dash bullets.
func flattenContent(cleanHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cleanHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse extracted content: %w", err)
	}

	var blocks []string
	doc.Find("h1,h2,h3,h4,p,li,blockquote").Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			text = "- " + text
		}
		blocks = append(blocks, text)
	})
	return strings.Join(blocks, "\n\n"), nil
}

// detectLanguage returns the ISO 639-1 code of the detected language, or
// empty when detection is inconclusive.
func (im *Importer) detectLanguage(text string) string {
	lang, ok := im.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// slugFromURL derives a slug from the final path segment, falling back to
// the hostname for root pages.
func slugFromURL(u *url.URL) string {
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return slugify(u.Hostname())
	}
	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	if i := strings.LastIndex(last, "."); i > 0 {
		last = last[:i]
	}
	return slugify(last)
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
