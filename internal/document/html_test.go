package document

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarbosa/cvgen/internal/styles"
)

func testStylesheet(t *testing.T) *styles.Stylesheet {
	t.Helper()
	sheet, err := styles.BuildStylesheet(map[string]any{
		"paragraph_styles": map[string]any{
			"NameStyle": map[string]any{
				"font_name":   "Helvetica-Bold",
				"font_size":   float64(22),
				"text_color":  "#1f3850",
				"alignment":   "center",
				"space_after": float64(4),
			},
			"BodyStyle": map[string]any{
				"font_size":   float64(9.5),
				"left_indent": float64(6),
			},
			"SectionTitleStyle": map[string]any{
				"font_name":      "Helvetica-Bold",
				"keep_with_next": true,
			},
		},
	})
	require.NoError(t, err)
	return sheet
}

func renderToDocument(t *testing.T, doc *Document) (*goquery.Document, string) {
	t.Helper()
	html, err := RenderHTML(doc)
	require.NoError(t, err)
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return parsed, html
}

func TestRenderHTML_BlocksInOrder(t *testing.T) {
	doc := &Document{
		Blocks: []Block{
			Paragraph{Style: "NameStyle", Markup: "John Doe"},
			Spacer{Height: 4},
			Paragraph{Style: "BodyStyle", Markup: "Ten years of <b>Go</b>"},
		},
		Styles: testStylesheet(t),
	}

	parsed, _ := renderToDocument(t, doc)

	paragraphs := parsed.Find("body p")
	require.Equal(t, 2, paragraphs.Length())
	assert.Equal(t, "NameStyle", paragraphs.First().AttrOr("class", ""))
	assert.Equal(t, "John Doe", paragraphs.First().Text())

	body := paragraphs.Last()
	assert.Equal(t, "BodyStyle", body.AttrOr("class", ""))
	assert.Equal(t, 1, body.Find("b").Length())
	assert.Equal(t, "Go", body.Find("b").Text())

	spacer := parsed.Find("div.spacer")
	require.Equal(t, 1, spacer.Length())
	assert.Equal(t, "height:4mm", spacer.AttrOr("style", ""))
}

func TestRenderHTML_StyleRules(t *testing.T) {
	doc := &Document{
		Blocks: []Block{Paragraph{Style: "NameStyle", Markup: "x"}},
		Styles: testStylesheet(t),
	}

	_, html := renderToDocument(t, doc)

	assert.Contains(t, html, `.NameStyle { font-family: "Helvetica"; font-size: 22pt; font-weight: bold;`)
	assert.Contains(t, html, "color: #1f3850;")
	assert.Contains(t, html, "text-align: center;")
	assert.Contains(t, html, "margin-bottom: 4pt;")
	assert.Contains(t, html, ".BodyStyle { font-family: \"Helvetica\"; font-size: 9.5pt;")
	assert.Contains(t, html, "margin-left: 6pt;")
	assert.Contains(t, html, "break-after: avoid;")
	assert.Contains(t, html, "@page { size: A4; }")
}

func TestRenderHTML_LinksSurvive(t *testing.T) {
	doc := &Document{
		Blocks: []Block{
			Paragraph{Style: "BodyStyle", Markup: `<a href="https://example.com" style="color:#1a0dab">Site</a>`},
		},
		Styles: testStylesheet(t),
	}

	parsed, _ := renderToDocument(t, doc)

	link := parsed.Find("p a")
	require.Equal(t, 1, link.Length())
	assert.Equal(t, "https://example.com", link.AttrOr("href", ""))
	assert.Equal(t, "Site", link.Text())
}

func TestRenderHTML_UnknownStyleFails(t *testing.T) {
	doc := &Document{
		Blocks: []Block{Paragraph{Style: "NoSuchStyle", Markup: "x"}},
		Styles: testStylesheet(t),
	}

	_, err := RenderHTML(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchStyle")
}

func TestSplitFontName_Variants(t *testing.T) {
	family, weight, fontStyle := splitFontName("Helvetica-BoldOblique")
	assert.Equal(t, "Helvetica", family)
	assert.Equal(t, "bold", weight)
	assert.Equal(t, "italic", fontStyle)

	family, weight, fontStyle = splitFontName("Georgia")
	assert.Equal(t, "Georgia", family)
	assert.Empty(t, weight)
	assert.Empty(t, fontStyle)

	family, _, _ = splitFontName("")
	assert.Equal(t, "Helvetica", family)
}

func TestBuildError_Message(t *testing.T) {
	err := &BuildError{OutputPath: "/tmp/cv.pdf", Cause: assert.AnError}
	assert.Contains(t, err.Error(), "/tmp/cv.pdf")
	assert.ErrorIs(t, err, assert.AnError)
}
