package render

import (
	"strings"
	"testing"

	"catpub/internal/catalog"
)

func sampleComponent() *catalog.Component {
	return &catalog.Component{
		Title:     "Foo",
		Link:      "https://example.com",
		Tags:      []catalog.Tag{catalog.TagUtil},
		Summary:   "s",
		Developer: "d",
		Date:      "2023-05-17",
	}
}

func TestFrontMatter_NoImage(t *testing.T) {
	got := FrontMatter(sampleComponent())

	want := "title: Foo\n" +
		"date: 2023-05-17\n" +
		"draft: true\n" +
		"hideLastModified: true\n" +
		"showInMenu: false\n" +
		"summary: s\n" +
		"link: https://example.com\n" +
		"tags: [Util]\n"

	if got != want {
		t.Errorf("FrontMatter mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if strings.Contains(got, "summaryImage") {
		t.Error("Expected no summaryImage line without an image")
	}
}

func TestFrontMatter_WithImage(t *testing.T) {
	c := sampleComponent()
	c.Image = "/abs/path/to/tmp/pic.png"

	got := FrontMatter(c)

	if !strings.Contains(got, "summaryImage: pic.png\n") {
		t.Errorf("Expected summaryImage with bare filename, got:\n%s", got)
	}

	if strings.Contains(got, "/abs/path") {
		t.Errorf("Image path leaked directory components:\n%s", got)
	}

	// summaryImage sits between the boolean flags and the summary
	idx := strings.Index(got, "summaryImage:")
	if idx == -1 || idx > strings.Index(got, "summary: ") {
		t.Errorf("summaryImage out of order:\n%s", got)
	}
}

func TestFrontMatter_MultipleTags(t *testing.T) {
	c := sampleComponent()
	c.Tags = []catalog.Tag{catalog.TagForceFields, catalog.TagMMSchema, catalog.TagUtil}

	got := FrontMatter(c)

	if !strings.Contains(got, "tags: [ForceFields,MMSchema,Util]\n") {
		t.Errorf("Expected symbolic tag names in order, got:\n%s", got)
	}
}

func TestFrontMatter_VerbatimValues(t *testing.T) {
	c := sampleComponent()
	c.Summary = `contains: colons and "quotes"`

	got := FrontMatter(c)

	if !strings.Contains(got, `summary: contains: colons and "quotes"`+"\n") {
		t.Errorf("Expected verbatim summary, got:\n%s", got)
	}
}

func TestPage_Delimiters(t *testing.T) {
	got := Page(sampleComponent())

	if !strings.HasPrefix(got, "---\n") {
		t.Errorf("Expected opening delimiter line, got:\n%s", got)
	}

	if !strings.HasSuffix(got, "\n---") {
		t.Errorf("Expected closing delimiter with no trailing newline, got:\n%s", got)
	}
}

func TestTagList_Empty(t *testing.T) {
	if got := TagList(nil); got != "[]" {
		t.Errorf("Expected [], got %q", got)
	}
}
