package importer

import (
	"strings"
	"testing"

	"github.com/agentpress/agentpress/models"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>Moving to Austin: A Relocation Guide | Old Blog</title>
<meta name="description" content="Everything you need to know before relocating to Austin, Texas."></head>
<body>
<nav><a href="/">Home</a> <a href="/about">About</a> <a href="/contact">Contact</a></nav>
<article>
<h1>Moving to Austin: A Relocation Guide</h1>
<p>Austin has become one of the most popular relocation destinations in the
country, drawing new residents with a strong job market, a celebrated food
scene, and year-round access to outdoor recreation along the Colorado River.</p>
<p>Housing costs have climbed steadily over the past decade, but the city
remains more affordable than coastal metros of comparable size. Buyers moving
from California or New York often find they can afford significantly more
house for the same budget, especially in the suburbs north of the city.</p>
<h2>Neighborhoods to know</h2>
<ul>
<li>Mueller, a walkable planned community on the old airport site</li>
<li>East Austin, known for its restaurants and music venues</li>
<li>Circle C Ranch, a family-oriented suburb with strong schools</li>
</ul>
<p>Before you commit to a neighborhood, spend a weekend exploring at
different times of day. Traffic patterns in Austin vary dramatically, and a
commute that looks short on a map can take three times as long at rush hour.</p>
</article>
<footer>Copyright 2019 Old Blog. All rights reserved.</footer>
</body>
</html>`

func TestImportHTML(t *testing.T) {
	im := New()

	draft, err := im.ImportHTML("https://oldblog.example.com/posts/moving-to-austin.html", sampleHTML)
	if err != nil {
		t.Fatalf("ImportHTML() error = %v", err)
	}

	if draft.Article.Slug != "moving-to-austin" {
		t.Errorf("Slug = %q, want %q", draft.Article.Slug, "moving-to-austin")
	}
	if !strings.Contains(draft.Article.Title, "Moving to Austin") {
		t.Errorf("Title = %q, want it to contain %q", draft.Article.Title, "Moving to Austin")
	}
	if draft.Article.SyndicationMode != models.SyndicationAgentSpecific {
		t.Errorf("SyndicationMode = %q, want %q", draft.Article.SyndicationMode, models.SyndicationAgentSpecific)
	}
	if !strings.Contains(draft.Article.RawBody, "relocation destinations") {
		t.Errorf("RawBody missing article text:\n%s", draft.Article.RawBody)
	}
	if strings.Contains(draft.Article.RawBody, "Copyright 2019") {
		t.Errorf("RawBody kept footer boilerplate:\n%s", draft.Article.RawBody)
	}
	if !strings.Contains(draft.Article.RawBody, "- Mueller") {
		t.Errorf("RawBody missing list items as bullets:\n%s", draft.Article.RawBody)
	}
}

func TestImportHTMLDetectsLanguage(t *testing.T) {
	im := New()

	draft, err := im.ImportHTML("https://oldblog.example.com/posts/moving-to-austin.html", sampleHTML)
	if err != nil {
		t.Fatalf("ImportHTML() error = %v", err)
	}
	if draft.Article.Language != "en" {
		t.Errorf("Language = %q, want %q", draft.Article.Language, "en")
	}
}

func TestImportHTMLSuggestsKeywords(t *testing.T) {
	im := New()

	draft, err := im.ImportHTML("https://oldblog.example.com/posts/moving-to-austin.html", sampleHTML)
	if err != nil {
		t.Fatalf("ImportHTML() error = %v", err)
	}
	if len(draft.Keywords) == 0 {
		t.Fatal("Keywords is empty")
	}
	found := false
	for _, k := range draft.Keywords {
		if k == "austin" {
			found = true
		}
	}
	if !found {
		t.Errorf("Keywords = %v, want them to include %q", draft.Keywords, "austin")
	}
	if draft.WordCt == 0 {
		t.Error("WordCt = 0, want a positive word count")
	}
}

func TestImportHTMLBadURL(t *testing.T) {
	im := New()

	if _, err := im.ImportHTML("://not-a-url", sampleHTML); err == nil {
		t.Fatal("ImportHTML() with a malformed URL succeeded, want error")
	}
}

func TestSlugFromURL(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{"https://example.com/posts/Living-In-Round-Rock.html", "living-in-round-rock"},
		{"https://example.com/blog/2019/best-schools/", "best-schools"},
		{"https://example.com/", "example-com"},
	}

	im := New()
	for _, tt := range tests {
		draft, err := im.ImportHTML(tt.rawURL, sampleHTML)
		if err != nil {
			t.Fatalf("ImportHTML(%q) error = %v", tt.rawURL, err)
		}
		if draft.Article.Slug != tt.want {
			t.Errorf("slug for %q = %q, want %q", tt.rawURL, draft.Article.Slug, tt.want)
		}
	}
}
